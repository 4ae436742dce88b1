package domain

import "time"

// NotificationCategory tags a notification request for the delivery layer.
type NotificationCategory string

const (
	NotifyInfo    NotificationCategory = "INFO"
	NotifySuccess NotificationCategory = "SUCCESS"
	NotifyWarning NotificationCategory = "WARNING"
	NotifyError   NotificationCategory = "ERROR"
)

// Notification is a structured notification request emitted by the workflow.
// Delivery, persistence of read state and rendering belong to the
// notification collaborator, not to this core.
type Notification struct {
	NotificationID string               `json:"notificationID"`
	RecipientID    string               `json:"recipientID"`
	Title          string               `json:"title"`
	Body           string               `json:"body"`
	Category       NotificationCategory `json:"category"`
	Target         string               `json:"target,omitempty"` // deep-link for the UI
	CreatedAt      time.Time            `json:"createdAt"`
}
