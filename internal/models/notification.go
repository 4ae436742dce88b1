package models

import "time"

// Notification represents a persisted notification request. Delivery is
// handled by an external worker reading this table.
type Notification struct {
	NotificationID string    `json:"notificationID" db:"notification_id"`
	RecipientID    string    `json:"recipientID" db:"recipient_id"`
	Title          string    `json:"title" db:"title"`
	Body           string    `json:"body" db:"body"`
	Category       string    `json:"category" db:"category"`
	Target         string    `json:"target" db:"target"`
	Read           bool      `json:"read" db:"read"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
