package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (tenant_id, user_id, booking_id, payment_for, amount_cents, payment_date, payment_status, upi_transaction_id, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.TenantID, p.UserID, p.BookingID, p.PaymentFor,
		p.AmountCents, p.PaymentDate, p.Status, p.UpiTransactionID, p.Notes, time.Now()).Scan(&p.ID)
}

func (r *paymentRepository) ListPending(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	query := `SELECT id, tenant_id, user_id, booking_id, payment_for, amount_cents, payment_date, payment_status, COALESCE(upi_transaction_id, ''), COALESCE(notes, ''), created_on
	          FROM payments WHERE payment_status = 'PENDING' AND tenant_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.TenantID, &p.UserID, &p.BookingID, &p.PaymentFor,
			&p.AmountCents, &p.PaymentDate, &p.Status, &p.UpiTransactionID, &p.Notes, &p.CreatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Verify(ctx context.Context, tenantID, id, verifierID int32) error {
	query := `UPDATE payments SET payment_status = 'VERIFIED', verified_by = $1, verified_at = $2
	          WHERE id = $3 AND tenant_id = $4 AND payment_status = 'PENDING'`
	return r.conditionalUpdate(ctx, query, verifierID, time.Now(), id, tenantID)
}

func (r *paymentRepository) Reject(ctx context.Context, tenantID, id, verifierID int32, reason string) error {
	query := `UPDATE payments SET payment_status = 'REJECTED', verified_by = $1, verified_at = $2, rejection_reason = $3
	          WHERE id = $4 AND tenant_id = $5 AND payment_status = 'PENDING'`
	return r.conditionalUpdate(ctx, query, verifierID, time.Now(), reason, id, tenantID)
}

func (r *paymentRepository) conditionalUpdate(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: payment not found or already processed", domain.ErrNotFound)
	}
	return nil
}

const sumPendingRentQuery = `SELECT COALESCE(SUM(amount_cents), 0) FROM payments
	          WHERE user_id = $1 AND tenant_id = $2 AND payment_for = 'RENT' AND payment_status = 'PENDING'`

func (r *paymentRepository) SumPendingRent(ctx context.Context, tenantID, userID int32) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx, sumPendingRentQuery, userID, tenantID).Scan(&sum)
	return sum, err
}

func (r *paymentRepository) SumPendingRentTx(ctx context.Context, tx *sql.Tx, tenantID, userID int32) (int64, error) {
	var sum int64
	err := tx.QueryRowContext(ctx, sumPendingRentQuery, userID, tenantID).Scan(&sum)
	return sum, err
}

func (r *paymentRepository) UsersWithPendingRent(ctx context.Context, tenantID int32) (map[int32]int64, error) {
	query := `SELECT user_id, SUM(amount_cents) FROM payments
	          WHERE tenant_id = $1 AND payment_for = 'RENT' AND payment_status = 'PENDING'
	          GROUP BY user_id`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[int32]int64)
	for rows.Next() {
		var userID int32
		var sum int64
		if err := rows.Scan(&userID, &sum); err != nil {
			return nil, err
		}
		totals[userID] = sum
	}
	return totals, rows.Err()
}
