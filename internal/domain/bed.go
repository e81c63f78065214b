package domain

import "time"

// Bed is a rentable unit inside a room. IsAvailable is the authoritative
// occupancy signal: false exactly while one ACTIVE resident references the
// bed. The flag flips only through the allocator queries, never directly.
type Bed struct {
	ID                int32     `json:"id"`
	TenantID          int32     `json:"tenant_id"`
	RoomID            int32     `json:"room_id"`
	BedNumber         string    `json:"bed_number"`
	RentPerMonthCents int64     `json:"rent_per_month_cents"`
	IsAvailable       bool      `json:"is_available"`
	Description       string    `json:"description"`
	CreatedOn         time.Time `json:"created_on"`
}
