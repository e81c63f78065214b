package service

import (
	"context"
	"fmt"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type bedService struct {
	bedRepo  repository.BedRepository
	roomRepo repository.RoomRepository
}

func NewBedService(bedRepo repository.BedRepository, roomRepo repository.RoomRepository) BedService {
	return &bedService{bedRepo: bedRepo, roomRepo: roomRepo}
}

func (s *bedService) Create(ctx context.Context, bed *domain.Bed) error {
	if bed.RoomID == 0 || bed.BedNumber == "" || bed.RentPerMonthCents <= 0 {
		return fmt.Errorf("%w: room id, bed number and rent are required", domain.ErrValidation)
	}
	if _, err := s.roomRepo.GetByID(ctx, bed.TenantID, bed.RoomID); err != nil {
		return err
	}
	// New beds start available; the flag flips only through the
	// allocation and settlement paths.
	bed.IsAvailable = true
	return s.bedRepo.Create(ctx, bed)
}

func (s *bedService) ListByRoom(ctx context.Context, tenantID, roomID int32) ([]domain.Bed, error) {
	return s.bedRepo.ListByRoom(ctx, tenantID, roomID)
}

// Update edits descriptors only. Availability is deliberately not
// editable here: it belongs to the booking and checkout transitions.
func (s *bedService) Update(ctx context.Context, tenantID, bedID int32, bedNumber, description string, rentCents int64) error {
	bed, err := s.bedRepo.GetByID(ctx, tenantID, bedID)
	if err != nil {
		return err
	}
	if bedNumber != "" {
		bed.BedNumber = bedNumber
	}
	if description != "" {
		bed.Description = description
	}
	if rentCents > 0 {
		bed.RentPerMonthCents = rentCents
	}
	return s.bedRepo.Update(ctx, bed)
}
