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

type residentRepository struct {
	db *sql.DB
}

func NewResidentRepository(db *sql.DB) repository.ResidentRepository {
	return &residentRepository{db: db}
}

const residentColumns = `id, tenant_id, booking_id, user_id, bed_id, move_in_date, expected_move_out_date, actual_move_out_date, resident_status, security_deposit_cents, refundable_amount_cents, final_settlement_date`

func scanResident(row *sql.Row) (*domain.Resident, error) {
	res := &domain.Resident{}
	err := row.Scan(&res.ID, &res.TenantID, &res.BookingID, &res.UserID, &res.BedID,
		&res.MoveInDate, &res.ExpectedMoveOutDate, &res.ActualMoveOutDate, &res.Status,
		&res.SecurityDepositCents, &res.RefundableAmountCents, &res.FinalSettlementDate)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *residentRepository) Create(ctx context.Context, tx *sql.Tx, res *domain.Resident) error {
	query := `INSERT INTO residents (tenant_id, booking_id, user_id, bed_id, move_in_date, expected_move_out_date, resident_status, security_deposit_cents)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return tx.QueryRowContext(ctx, query, res.TenantID, res.BookingID, res.UserID, res.BedID,
		res.MoveInDate, res.ExpectedMoveOutDate, res.Status, res.SecurityDepositCents).Scan(&res.ID)
}

func (r *residentRepository) GetActive(ctx context.Context, tenantID, id int32) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE id = $1 AND tenant_id = $2 AND resident_status = 'ACTIVE'`
	res, err := scanResident(r.db.QueryRowContext(ctx, query, id, tenantID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: active resident %d", domain.ErrNotFound, id)
	}
	return res, err
}

func (r *residentRepository) GetActiveForUpdate(ctx context.Context, tx *sql.Tx, tenantID, id int32) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE id = $1 AND tenant_id = $2 AND resident_status = 'ACTIVE' FOR UPDATE`
	res, err := scanResident(tx.QueryRowContext(ctx, query, id, tenantID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: active resident %d", domain.ErrNotFound, id)
	}
	return res, err
}

// FinalizeCheckout is conditional on ACTIVE status so a second settlement
// of the same resident matches no row even if the caller skipped the lock.
func (r *residentRepository) FinalizeCheckout(ctx context.Context, tx *sql.Tx, tenantID, id int32, moveOut time.Time, refundableCents int64) error {
	query := `UPDATE residents
	          SET resident_status = 'CHECKED_OUT', actual_move_out_date = $1, refundable_amount_cents = $2, final_settlement_date = $3
	          WHERE id = $4 AND tenant_id = $5 AND resident_status = 'ACTIVE'`
	result, err := tx.ExecContext(ctx, query, moveOut, refundableCents, time.Now(), id, tenantID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: resident %d is not active", domain.ErrInvalidState, id)
	}
	return nil
}

func (r *residentRepository) ListActive(ctx context.Context, tenantID int32) ([]domain.ResidentDetail, error) {
	query := `SELECT res.id, res.resident_status, res.move_in_date, res.expected_move_out_date, u.email, r.room_number, bed.bed_number
	          FROM residents res
	          JOIN users u ON res.user_id = u.id
	          JOIN beds bed ON res.bed_id = bed.id
	          JOIN rooms r ON bed.room_id = r.id
	          WHERE res.resident_status = 'ACTIVE' AND res.tenant_id = $1
	          ORDER BY res.move_in_date`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.ResidentDetail
	for rows.Next() {
		var d domain.ResidentDetail
		if err := rows.Scan(&d.ID, &d.Status, &d.MoveInDate, &d.ExpectedMoveOutDate, &d.UserEmail, &d.RoomNumber, &d.BedNumber); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *residentRepository) LatestSettlementForUser(ctx context.Context, tenantID, userID int32) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents
	          WHERE user_id = $1 AND tenant_id = $2 AND resident_status = 'CHECKED_OUT'
	          ORDER BY final_settlement_date DESC LIMIT 1`
	res, err := scanResident(r.db.QueryRowContext(ctx, query, userID, tenantID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no settlement for user %d", domain.ErrNotFound, userID)
	}
	return res, err
}
