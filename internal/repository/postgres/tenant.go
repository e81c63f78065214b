package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	query := `SELECT id, slug, name, status FROM tenants WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Slug, &t.Name, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: tenant %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	query := `SELECT id, slug, name, status FROM tenants WHERE slug = $1`
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&t.ID, &t.Slug, &t.Name, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: tenant %q", domain.ErrNotFound, slug)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tenantRepository) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	query := `SELECT id, slug, name, status FROM tenants WHERE status = 'ACTIVE' ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		var t domain.Tenant
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name, &t.Status); err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}
