package domain

import "time"

type PaymentFor string

const (
	PaymentForRent    PaymentFor = "RENT"
	PaymentForDeposit PaymentFor = "DEPOSIT"
	PaymentForMess    PaymentFor = "MESS"
	PaymentForOther   PaymentFor = "OTHER"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusVerified PaymentStatus = "VERIFIED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// Payment is a charge or submitted payment awaiting staff verification.
// The sum of PENDING rent payments for a user is the outstanding rent the
// settlement engine nets against the security deposit.
type Payment struct {
	ID               int32         `json:"id"`
	TenantID         int32         `json:"tenant_id"`
	UserID           int32         `json:"user_id"`
	BookingID        *int32        `json:"booking_id,omitempty"`
	PaymentFor       PaymentFor    `json:"payment_for"`
	AmountCents      int64         `json:"amount_cents"`
	PaymentDate      time.Time     `json:"payment_date"`
	Status           PaymentStatus `json:"payment_status"`
	UpiTransactionID string        `json:"upi_transaction_id,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	VerifiedBy       *int32        `json:"verified_by,omitempty"`
	VerifiedAt       *time.Time    `json:"verified_at,omitempty"`
	RejectionReason  string        `json:"rejection_reason,omitempty"`
	CreatedOn        time.Time     `json:"created_on"`
}
