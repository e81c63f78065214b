package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pgstay-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.TenantRepository
	repository.UserRepository
	repository.RoomRepository
	repository.BedRepository
	repository.BookingRepository
	repository.ResidentRepository
	repository.PaymentRepository
	repository.SettlementRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		TenantRepository:       NewTenantRepository(db),
		UserRepository:         NewUserRepository(db),
		RoomRepository:         NewRoomRepository(db),
		BedRepository:          NewBedRepository(db),
		BookingRepository:      NewBookingRepository(db),
		ResidentRepository:     NewResidentRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		SettlementRepository:   NewSettlementRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// Transact runs fn inside a single transaction. Row locks taken with the
// FOR UPDATE queries stay held until the commit or rollback here, so a
// failure at any step leaves no partial effects visible to other
// transactions.
func (s *Store) Transact(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
