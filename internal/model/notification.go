package model

import "time"

// Notification is an admin-authored message addressed to one user.
// IsRead is stored but no operation changes it.
type Notification struct {
	ID        int64
	UserID    int64
	AdminID   int64
	Message   string
	Timestamp time.Time
	IsRead    bool
}

// SendNotificationRequest is the payload of POST /users/:id/notifications.
type SendNotificationRequest struct {
	Message string `json:"message"`
}
