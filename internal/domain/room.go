package domain

import "time"

type RoomType string

const (
	RoomTypeAC    RoomType = "AC"
	RoomTypeNonAC RoomType = "NON_AC"
)

type Room struct {
	ID                int32    `json:"id"`
	TenantID          int32    `json:"tenant_id"`
	RoomNumber        string   `json:"room_number"`
	FloorNumber       int32    `json:"floor_number"`
	RoomType          RoomType `json:"room_type"`
	MaxOccupancy      int32    `json:"max_occupancy"`
	RentPerMonthCents int64    `json:"rent_per_month_cents"`
	Amenities         []string `json:"amenities"`
	Description       string   `json:"description"`
	CreatedOn         time.Time `json:"created_on"`
}
