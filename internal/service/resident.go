package service

import (
	"context"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type residentService struct {
	residentRepo repository.ResidentRepository
}

func NewResidentService(residentRepo repository.ResidentRepository) ResidentService {
	return &residentService{residentRepo: residentRepo}
}

func (s *residentService) ListActive(ctx context.Context, tenantID int32) ([]domain.ResidentDetail, error) {
	return s.residentRepo.ListActive(ctx, tenantID)
}
