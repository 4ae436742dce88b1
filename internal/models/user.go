package models

// User represents an authenticated actor.
type User struct {
	UserID         string  `json:"userID" db:"user_id"`
	Name           string  `json:"name" db:"name"`
	Email          string  `json:"email" db:"email"`
	PasswordHash   string  `json:"-" db:"password_hash"`
	Role           string  `json:"role" db:"role"`
	OrganizationID *string `json:"organizationID,omitempty" db:"organization_id"`
	AuditFields
}

// AcceptedApplication is the slice of the collaborator-owned applications
// table that placement creation depends on.
type AcceptedApplication struct {
	ApplicationID  string `json:"applicationID" db:"application_id"`
	StudentID      string `json:"studentID" db:"student_id"`
	OrganizationID string `json:"organizationID" db:"organization_id"`
	JobListingID   string `json:"jobListingID" db:"job_listing_id"`
}
