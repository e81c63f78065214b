package service

import (
	"context"
	"fmt"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) Create(ctx context.Context, room *domain.Room) error {
	if room.RoomNumber == "" || room.MaxOccupancy <= 0 || room.RentPerMonthCents <= 0 {
		return fmt.Errorf("%w: room number, capacity and rent are required", domain.ErrValidation)
	}
	if room.FloorNumber == 0 {
		room.FloorNumber = 1
	}
	if room.RoomType == "" {
		room.RoomType = domain.RoomTypeNonAC
	}
	return s.roomRepo.Create(ctx, room)
}

func (s *roomService) List(ctx context.Context, tenantID int32) ([]domain.Room, error) {
	return s.roomRepo.List(ctx, tenantID)
}

func (s *roomService) Update(ctx context.Context, room *domain.Room) error {
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", domain.ErrValidation)
	}
	return s.roomRepo.Update(ctx, room)
}
