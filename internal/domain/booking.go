package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// Booking is a resident's request to occupy a specific bed. Legal
// transitions: PENDING->APPROVED, PENDING->REJECTED, APPROVED->COMPLETED.
// Rows are never deleted; terminal states are kept for audit.
type Booking struct {
	ID                   int32         `json:"id"`
	TenantID             int32         `json:"tenant_id"`
	UserID               int32         `json:"user_id"`
	BedID                int32         `json:"bed_id"`
	CheckInDate          time.Time     `json:"check_in_date"`
	ExpectedCheckOutDate *time.Time    `json:"expected_check_out_date,omitempty"`
	Status               BookingStatus `json:"status"`
	SpecialRequests      string        `json:"special_requests"`
	CreatedOn            time.Time     `json:"created_on"`
	UpdatedOn            time.Time     `json:"updated_on"`
}

// BookingDetail is a booking joined with its room and bed numbers, used by
// the listing endpoints.
type BookingDetail struct {
	ID                   int32         `json:"id"`
	Status               BookingStatus `json:"status"`
	CheckInDate          time.Time     `json:"check_in_date"`
	ExpectedCheckOutDate *time.Time    `json:"expected_check_out_date,omitempty"`
	UserEmail            string        `json:"user_email,omitempty"`
	RoomNumber           string        `json:"room_number"`
	BedNumber            string        `json:"bed_number"`
}
