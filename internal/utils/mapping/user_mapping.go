package mapping

import (
	"github.com/SvcLearn/service_learning_app/internal/core/domain"
	"github.com/SvcLearn/service_learning_app/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	orgID := ""
	if m.OrganizationID != nil {
		orgID = *m.OrganizationID
	}
	return domain.User{
		UserID:         m.UserID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		Role:           domain.Role(m.Role),
		OrganizationID: orgID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		RecipientID:    d.RecipientID,
		Title:          d.Title,
		Body:           d.Body,
		Category:       string(d.Category),
		Target:         d.Target,
		Read:           false,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainAcceptedApplication converts a model AcceptedApplication to its domain form
func ToDomainAcceptedApplication(m models.AcceptedApplication) domain.AcceptedApplication {
	return domain.AcceptedApplication{
		ApplicationID:  m.ApplicationID,
		StudentID:      m.StudentID,
		OrganizationID: m.OrganizationID,
		JobListingID:   m.JobListingID,
	}
}
