package postgres

import (
	"context"
	"database/sql"
	"time"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type settlementRepository struct {
	db *sql.DB
}

func NewSettlementRepository(db *sql.DB) repository.SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) Create(ctx context.Context, tx *sql.Tx, s *domain.Settlement) error {
	query := `INSERT INTO settlements (tenant_id, resident_id, final_amount_cents, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return tx.QueryRowContext(ctx, query, s.TenantID, s.ResidentID, s.FinalAmountCents, s.Notes, time.Now()).Scan(&s.ID)
}
