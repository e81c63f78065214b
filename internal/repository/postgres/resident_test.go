package postgres_test

import (
	"context"
	"testing"
	"time"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func residentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "tenant_id", "booking_id", "user_id", "bed_id", "move_in_date", "expected_move_out_date", "actual_move_out_date", "resident_status", "security_deposit_cents", "refundable_amount_cents", "final_settlement_date"})
}

func TestResidentRepository_GetActiveForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewResidentRepository(db)
	ctx := context.Background()

	t.Run("Locks the active resident", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := db.Begin()
		assert.NoError(t, err)

		mock.ExpectQuery("SELECT (.+) FROM residents WHERE id = \\$1 AND tenant_id = \\$2 AND resident_status = 'ACTIVE' FOR UPDATE").
			WithArgs(int32(5), int32(1)).
			WillReturnRows(residentRows().AddRow(5, 1, 7, 2, 3, time.Now(), nil, nil, "ACTIVE", 500000, nil, nil))

		res, err := repo.GetActiveForUpdate(ctx, tx, 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, domain.ResidentStatusActive, res.Status)
		assert.Equal(t, int64(500000), res.SecurityDepositCents)
	})

	t.Run("Checked-out resident is not found", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := db.Begin()
		assert.NoError(t, err)

		mock.ExpectQuery("SELECT (.+) FROM residents WHERE id = \\$1 AND tenant_id = \\$2 AND resident_status = 'ACTIVE' FOR UPDATE").
			WithArgs(int32(5), int32(1)).
			WillReturnRows(residentRows())

		_, err = repo.GetActiveForUpdate(ctx, tx, 1, 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestResidentRepository_FinalizeCheckout(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewResidentRepository(db)
	ctx := context.Background()
	moveOut := time.Now()

	t.Run("Finalizes an active resident", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := db.Begin()
		assert.NoError(t, err)

		mock.ExpectExec("UPDATE residents").
			WithArgs(moveOut, int64(350000), sqlmock.AnyArg(), int32(5), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.FinalizeCheckout(ctx, tx, 1, 5, moveOut, 350000)
		assert.NoError(t, err)
	})

	t.Run("Second finalize fails", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := db.Begin()
		assert.NoError(t, err)

		mock.ExpectExec("UPDATE residents").
			WithArgs(moveOut, int64(350000), sqlmock.AnyArg(), int32(5), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.FinalizeCheckout(ctx, tx, 1, 5, moveOut, 350000)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Stores a negative settlement", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := db.Begin()
		assert.NoError(t, err)

		mock.ExpectExec("UPDATE residents").
			WithArgs(moveOut, int64(-50000), sqlmock.AnyArg(), int32(5), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.FinalizeCheckout(ctx, tx, 1, 5, moveOut, -50000)
		assert.NoError(t, err)
	})
}
