package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"

	"github.com/lib/pq"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	amenities, err := json.Marshal(room.Amenities)
	if err != nil {
		return err
	}
	query := `INSERT INTO rooms (tenant_id, room_number, floor_number, room_type, max_occupancy, rent_per_month_cents, amenities, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err = r.db.QueryRowContext(ctx, query, room.TenantID, room.RoomNumber, room.FloorNumber, room.RoomType,
		room.MaxOccupancy, room.RentPerMonthCents, amenities, room.Description, time.Now()).Scan(&room.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: room number %s already exists", domain.ErrConflict, room.RoomNumber)
	}
	return err
}

func (r *roomRepository) GetByID(ctx context.Context, tenantID, id int32) (*domain.Room, error) {
	room := &domain.Room{}
	var amenities []byte
	query := `SELECT id, tenant_id, room_number, floor_number, room_type, max_occupancy, rent_per_month_cents, amenities, COALESCE(description, ''), created_on
	          FROM rooms WHERE id = $1 AND tenant_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(&room.ID, &room.TenantID, &room.RoomNumber,
		&room.FloorNumber, &room.RoomType, &room.MaxOccupancy, &room.RentPerMonthCents, &amenities, &room.Description, &room.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: room %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if len(amenities) > 0 {
		if err := json.Unmarshal(amenities, &room.Amenities); err != nil {
			return nil, err
		}
	}
	return room, nil
}

func (r *roomRepository) List(ctx context.Context, tenantID int32) ([]domain.Room, error) {
	query := `SELECT id, tenant_id, room_number, floor_number, room_type, max_occupancy, rent_per_month_cents, amenities, COALESCE(description, ''), created_on
	          FROM rooms WHERE tenant_id = $1 ORDER BY room_number`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		var amenities []byte
		if err := rows.Scan(&room.ID, &room.TenantID, &room.RoomNumber, &room.FloorNumber, &room.RoomType,
			&room.MaxOccupancy, &room.RentPerMonthCents, &amenities, &room.Description, &room.CreatedOn); err != nil {
			return nil, err
		}
		if len(amenities) > 0 {
			if err := json.Unmarshal(amenities, &room.Amenities); err != nil {
				return nil, err
			}
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	amenities, err := json.Marshal(room.Amenities)
	if err != nil {
		return err
	}
	query := `UPDATE rooms SET room_number=$1, floor_number=$2, room_type=$3, max_occupancy=$4, rent_per_month_cents=$5, amenities=$6, description=$7
	          WHERE id=$8 AND tenant_id=$9`
	result, err := r.db.ExecContext(ctx, query, room.RoomNumber, room.FloorNumber, room.RoomType,
		room.MaxOccupancy, room.RentPerMonthCents, amenities, room.Description, room.ID, room.TenantID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: room %d", domain.ErrNotFound, room.ID)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
