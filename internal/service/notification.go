package service

import (
	"context"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) List(ctx context.Context, tenantID, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, tenantID, userID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, tenantID, userID, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, tenantID, notificationID, userID)
}
