package domain

import "time"

// Settlement is the append-only audit record written when a checkout is
// confirmed. FinalAmountCents may be negative, meaning the resident owes
// money; the engine never clamps it.
type Settlement struct {
	ID               int32     `json:"id"`
	TenantID         int32     `json:"tenant_id"`
	ResidentID       int32     `json:"resident_id"`
	FinalAmountCents int64     `json:"final_amount_cents"`
	Notes            string    `json:"notes"`
	CreatedOn        time.Time `json:"created_on"`
}

// CheckoutPreview is the advisory, lock-free settlement estimate. The
// figures may change before Confirm runs; Confirm recomputes them inside
// its transaction.
type CheckoutPreview struct {
	ResidentID            int32 `json:"resident_id"`
	SecurityDepositCents  int64 `json:"security_deposit_cents"`
	PendingRentCents      int64 `json:"pending_rent_cents"`
	RefundableAmountCents int64 `json:"refundable_amount_cents"`
}
