package domain

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "ACTIVE"
	TenantStatusSuspended TenantStatus = "SUSPENDED"
)

// Tenant is an isolated customer organization (one paying-guest operator).
// Every persisted row belongs to exactly one tenant and must never be
// visible to another.
type Tenant struct {
	ID     int32        `json:"id"`
	Slug   string       `json:"slug"`
	Name   string       `json:"name"`
	Status TenantStatus `json:"status"`
}
