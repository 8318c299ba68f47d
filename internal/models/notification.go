package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationShortage   NotificationType = "shortage"
	NotificationSurplus    NotificationType = "surplus"
	NotificationExpiration NotificationType = "expiration"
	NotificationAlert      NotificationType = "alert"
)

// Notification is an alert for a single user.
type Notification struct {
	DefaultModel
	Type       NotificationType `gorm:"index:idx_notification_lookup"`
	Message    string
	MaterialID *uuid.UUID `gorm:"index:idx_notification_lookup"`
	Material   *Material  `json:"-"`
	UserID     uuid.UUID  `gorm:"index:idx_notification_lookup"`
	User       User       `json:"-"`
	Read       bool       `gorm:"index:idx_notification_lookup;default:false"`
}

func (n Notification) Self() string {
	return "Notification"
}

func (n *Notification) BeforeSave(_ *gorm.DB) error {
	n.Message = strings.TrimSpace(n.Message)

	switch n.Type {
	case NotificationShortage, NotificationSurplus, NotificationExpiration, NotificationAlert:
	default:
		return ErrNotificationTypeInvalid
	}

	// Ensure that the material ID is nil and not a pointer to a nil UUID
	if n.MaterialID != nil && *n.MaterialID == uuid.Nil {
		n.MaterialID = nil
	}

	return nil
}
