package domain

import "time"

type ResidentStatus string

const (
	ResidentStatusActive     ResidentStatus = "ACTIVE"
	ResidentStatusCheckedOut ResidentStatus = "CHECKED_OUT"
)

// Resident is the active occupancy record created when a booking is
// approved, exactly one per approved booking. It transitions to
// CHECKED_OUT exactly once, at settlement time.
type Resident struct {
	ID                    int32          `json:"id"`
	TenantID              int32          `json:"tenant_id"`
	BookingID             int32          `json:"booking_id"`
	UserID                int32          `json:"user_id"`
	BedID                 int32          `json:"bed_id"`
	MoveInDate            time.Time      `json:"move_in_date"`
	ExpectedMoveOutDate   *time.Time     `json:"expected_move_out_date,omitempty"`
	ActualMoveOutDate     *time.Time     `json:"actual_move_out_date,omitempty"`
	Status                ResidentStatus `json:"status"`
	SecurityDepositCents  int64          `json:"security_deposit_cents"`
	RefundableAmountCents *int64         `json:"refundable_amount_cents,omitempty"`
	FinalSettlementDate   *time.Time     `json:"final_settlement_date,omitempty"`
}

// ResidentDetail is an active resident joined with user and room/bed
// numbers for the staff listing.
type ResidentDetail struct {
	ID                  int32          `json:"id"`
	Status              ResidentStatus `json:"status"`
	MoveInDate          time.Time      `json:"move_in_date"`
	ExpectedMoveOutDate *time.Time     `json:"expected_move_out_date,omitempty"`
	UserEmail           string         `json:"user_email"`
	RoomNumber          string         `json:"room_number"`
	BedNumber           string         `json:"bed_number"`
}
