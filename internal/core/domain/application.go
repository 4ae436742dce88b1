package domain

// AcceptedApplication is the record the placement workflow consumes from the
// application-tracking collaborator. Only accepted applications are visible
// through the reader port.
type AcceptedApplication struct {
	ApplicationID  string `json:"applicationID"`
	StudentID      string `json:"studentID"`
	OrganizationID string `json:"organizationID"`
	JobListingID   string `json:"jobListingID"`
}
