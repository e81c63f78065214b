package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, tenantID, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, tenant_id, email, name, role FROM users WHERE id = $1 AND tenant_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(&u.ID, &u.TenantID, &u.Email, &u.Name, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
