package entity

import (
	"errors"
	"strconv"
	"time"
)

// Notification event types.
const (
	NotificationProfileUpdate     = "profile_update"
	NotificationDescriptionUpdate = "description_update"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is an admin-facing workflow event record. It is distinct
// from outbound email: notifications persist in their own collection and
// are immutable once created except for the read flag.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	LeadID    int       `json:"leadId"`
	BrandName string    `json:"brandName"`
	Email     string    `json:"email"`
	Details   []string  `json:"details"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewNotification(typ string, leadID int, brandName, email string, details []string) *Notification {
	now := time.Now()
	return &Notification{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Type:      typ,
		LeadID:    leadID,
		BrandName: brandName,
		Email:     email,
		Details:   details,
		Read:      false,
		CreatedAt: now,
	}
}
