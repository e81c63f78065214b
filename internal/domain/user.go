package domain

type Role string

const (
	RoleResident Role = "RESIDENT"
	RoleStaff    Role = "STAFF"
)

// User is the authenticated caller identity supplied by the auth
// collaborator. The core only reads users; signup and sessions live
// outside this service.
type User struct {
	ID       int32  `json:"id"`
	TenantID int32  `json:"tenant_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}
