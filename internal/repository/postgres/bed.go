package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type bedRepository struct {
	db *sql.DB
}

func NewBedRepository(db *sql.DB) repository.BedRepository {
	return &bedRepository{db: db}
}

func (r *bedRepository) Create(ctx context.Context, bed *domain.Bed) error {
	query := `INSERT INTO beds (tenant_id, room_id, bed_number, rent_per_month_cents, is_available, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, bed.TenantID, bed.RoomID, bed.BedNumber,
		bed.RentPerMonthCents, bed.IsAvailable, bed.Description, time.Now()).Scan(&bed.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: bed number %s already exists in room %d", domain.ErrConflict, bed.BedNumber, bed.RoomID)
	}
	return err
}

func (r *bedRepository) GetByID(ctx context.Context, tenantID, id int32) (*domain.Bed, error) {
	bed := &domain.Bed{}
	query := `SELECT id, tenant_id, room_id, bed_number, rent_per_month_cents, is_available, COALESCE(description, ''), created_on
	          FROM beds WHERE id = $1 AND tenant_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(&bed.ID, &bed.TenantID, &bed.RoomID,
		&bed.BedNumber, &bed.RentPerMonthCents, &bed.IsAvailable, &bed.Description, &bed.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: bed %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return bed, nil
}

func (r *bedRepository) ListByRoom(ctx context.Context, tenantID, roomID int32) ([]domain.Bed, error) {
	query := `SELECT id, tenant_id, room_id, bed_number, rent_per_month_cents, is_available, COALESCE(description, ''), created_on
	          FROM beds WHERE room_id = $1 AND tenant_id = $2 ORDER BY bed_number`
	rows, err := r.db.QueryContext(ctx, query, roomID, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var beds []domain.Bed
	for rows.Next() {
		var bed domain.Bed
		if err := rows.Scan(&bed.ID, &bed.TenantID, &bed.RoomID, &bed.BedNumber,
			&bed.RentPerMonthCents, &bed.IsAvailable, &bed.Description, &bed.CreatedOn); err != nil {
			return nil, err
		}
		beds = append(beds, bed)
	}
	return beds, rows.Err()
}

func (r *bedRepository) Update(ctx context.Context, bed *domain.Bed) error {
	query := `UPDATE beds SET bed_number=$1, rent_per_month_cents=$2, description=$3 WHERE id=$4 AND tenant_id=$5`
	result, err := r.db.ExecContext(ctx, query, bed.BedNumber, bed.RentPerMonthCents, bed.Description, bed.ID, bed.TenantID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: bed %d", domain.ErrNotFound, bed.ID)
	}
	return nil
}

// ClaimForOccupancy locks the bed row for the rest of the transaction. A
// concurrent claim on the same bed blocks here until the winner commits,
// then sees is_available=false and fails the check below.
func (r *bedRepository) ClaimForOccupancy(ctx context.Context, tx *sql.Tx, tenantID, bedID int32) (*domain.Bed, error) {
	bed := &domain.Bed{}
	query := `SELECT id, tenant_id, room_id, bed_number, rent_per_month_cents, is_available, COALESCE(description, ''), created_on
	          FROM beds WHERE id = $1 AND tenant_id = $2 FOR UPDATE`
	err := tx.QueryRowContext(ctx, query, bedID, tenantID).Scan(&bed.ID, &bed.TenantID, &bed.RoomID,
		&bed.BedNumber, &bed.RentPerMonthCents, &bed.IsAvailable, &bed.Description, &bed.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: bed %d does not exist", domain.ErrConflict, bedID)
	}
	if err != nil {
		return nil, err
	}
	if !bed.IsAvailable {
		return nil, fmt.Errorf("%w: bed %d is no longer available", domain.ErrConflict, bedID)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE beds SET is_available = false WHERE id = $1 AND tenant_id = $2`, bedID, tenantID); err != nil {
		return nil, err
	}
	bed.IsAvailable = false
	return bed, nil
}

func (r *bedRepository) Release(ctx context.Context, tx *sql.Tx, tenantID, bedID int32) error {
	result, err := tx.ExecContext(ctx, `UPDATE beds SET is_available = true WHERE id = $1 AND tenant_id = $2`, bedID, tenantID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: bed %d", domain.ErrNotFound, bedID)
	}
	return nil
}
