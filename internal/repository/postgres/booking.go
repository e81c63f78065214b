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

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, tenant_id, user_id, bed_id, check_in_date, expected_check_out_date, booking_status, COALESCE(special_requests, ''), created_on, updated_on`

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.TenantID, &b.UserID, &b.BedID, &b.CheckInDate,
		&b.ExpectedCheckOutDate, &b.Status, &b.SpecialRequests, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (tenant_id, user_id, bed_id, check_in_date, expected_check_out_date, booking_status, special_requests, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, b.TenantID, b.UserID, b.BedID, b.CheckInDate,
		b.ExpectedCheckOutDate, b.Status, b.SpecialRequests, now, now).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, tenantID, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND tenant_id = $2`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id, tenantID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	return b, err
}

func (r *bookingRepository) GetForUpdate(ctx context.Context, tx *sql.Tx, tenantID, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND tenant_id = $2 FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, query, id, tenantID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	return b, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, tenantID, id int32, status domain.BookingStatus) error {
	query := `UPDATE bookings SET booking_status = $1, updated_on = $2 WHERE id = $3 AND tenant_id = $4`
	_, err := tx.ExecContext(ctx, query, status, time.Now(), id, tenantID)
	return err
}

// RejectPending is a lease-free conditional update: the status predicate
// makes a second reject, or a reject of a resolved booking, match no row.
func (r *bookingRepository) RejectPending(ctx context.Context, tenantID, id int32) error {
	query := `UPDATE bookings SET booking_status = 'REJECTED', updated_on = $1 WHERE id = $2 AND tenant_id = $3 AND booking_status = 'PENDING'`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id, tenantID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: booking %d not found or not pending", domain.ErrNotFound, id)
	}
	return nil
}

func (r *bookingRepository) CompleteApproved(ctx context.Context, tx *sql.Tx, tenantID, id int32) error {
	query := `UPDATE bookings SET booking_status = 'COMPLETED', updated_on = $1 WHERE id = $2 AND tenant_id = $3 AND booking_status = 'APPROVED'`
	result, err := tx.ExecContext(ctx, query, time.Now(), id, tenantID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: booking %d is not approved", domain.ErrInvalidState, id)
	}
	return nil
}

func (r *bookingRepository) HasActiveForUser(ctx context.Context, tenantID, userID int32) (bool, error) {
	var count int32
	query := `SELECT count(*) FROM bookings WHERE user_id = $1 AND tenant_id = $2 AND booking_status IN ('PENDING', 'APPROVED')`
	if err := r.db.QueryRowContext(ctx, query, userID, tenantID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, tenantID, userID int32) ([]domain.BookingDetail, error) {
	query := `SELECT b.id, b.booking_status, b.check_in_date, b.expected_check_out_date, r.room_number, bed.bed_number
	          FROM bookings b
	          JOIN beds bed ON b.bed_id = bed.id
	          JOIN rooms r ON bed.room_id = r.id
	          WHERE b.user_id = $1 AND b.tenant_id = $2
	          ORDER BY b.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.BookingDetail
	for rows.Next() {
		var d domain.BookingDetail
		if err := rows.Scan(&d.ID, &d.Status, &d.CheckInDate, &d.ExpectedCheckOutDate, &d.RoomNumber, &d.BedNumber); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *bookingRepository) ListPending(ctx context.Context, tenantID int32) ([]domain.BookingDetail, error) {
	query := `SELECT b.id, b.booking_status, b.check_in_date, b.expected_check_out_date, u.email, r.room_number, bed.bed_number
	          FROM bookings b
	          JOIN users u ON b.user_id = u.id
	          JOIN beds bed ON b.bed_id = bed.id
	          JOIN rooms r ON bed.room_id = r.id
	          WHERE b.booking_status = 'PENDING' AND b.tenant_id = $1
	          ORDER BY b.created_on`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.BookingDetail
	for rows.Next() {
		var d domain.BookingDetail
		if err := rows.Scan(&d.ID, &d.Status, &d.CheckInDate, &d.ExpectedCheckOutDate, &d.UserEmail, &d.RoomNumber, &d.BedNumber); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *bookingRepository) ExpirePendingBefore(ctx context.Context, tenantID int32, cutoff time.Time) ([]int32, error) {
	query := `UPDATE bookings SET booking_status = 'REJECTED', updated_on = $1
	          WHERE tenant_id = $2 AND booking_status = 'PENDING' AND created_on < $3
	          RETURNING id`
	rows, err := r.db.QueryContext(ctx, query, time.Now(), tenantID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
