package models

// Employee roles. The client only uses these for UX gating; the server is the
// authority on what a role may actually do.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

type Employee struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// SaveEmployeeRequest is the canonical employee write payload. Password is
// mandatory when creating and optional when updating (blank keeps the current one).
type SaveEmployeeRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=ADMIN MANAGER STAFF"`
	Password string `json:"password,omitempty"`
}
