package domain

// Role identifies which side of the placement workflow an actor belongs to.
type Role string

const (
	RoleStudent      Role = "STUDENT"
	RoleOrganization Role = "ORGANIZATION"
	RoleCoordinator  Role = "COORDINATOR"
)

// User is the minimal actor record the workflow needs for ownership and login.
type User struct {
	UserID         string `json:"userID"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PasswordHash   string `json:"-"`
	Role           Role   `json:"role"`
	OrganizationID string `json:"organizationID,omitempty"` // set only for organization members
	AuditFields
}

// Actor is the authenticated identity attached to a request.
type Actor struct {
	UserID         string
	Role           Role
	OrganizationID string
}
