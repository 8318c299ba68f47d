package notify

import (
	"context"
	"fmt"

	"github.com/fairshare-aid/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Publisher delivers notifications to users in real time.
type Publisher interface {
	Publish(userID uuid.UUID, notification models.Notification)
}

// Notifier creates stock alerts for materials in shortage or surplus.
type Notifier struct {
	db         *gorm.DB
	recipients RecipientResolver
	publisher  Publisher
}

func New(db *gorm.DB, recipients RecipientResolver, publisher Publisher) Notifier {
	return Notifier{
		db:         db,
		recipients: recipients,
		publisher:  publisher,
	}
}

// Message returns the alert message for a material with the given status.
func Message(status models.Status, name string) string {
	if status == models.StatusSurplus {
		return fmt.Sprintf("Alert: Surplus in material %s", name)
	}
	return fmt.Sprintf("Alert: Shortage in material %s", name)
}

// NotifyIfCritical creates a notification for every recipient if the
// material is in shortage or surplus and returns the created notifications.
//
// Recipients that still have an unread notification for the same material
// and status are skipped. Nothing happens when automatic alerts are
// disabled in the settings.
func (n Notifier) NotifyIfCritical(ctx context.Context, materialID uuid.UUID) ([]models.Notification, error) {
	db := n.db.WithContext(ctx)

	settings, err := models.LoadSettings(db)
	if err != nil {
		return nil, err
	}

	if !settings.AutomaticAlerts {
		return nil, nil
	}

	var material models.Material
	err = db.First(&material, "id = ?", materialID).Error
	if err != nil {
		return nil, err
	}

	status := material.Status()
	if !status.Critical() {
		return nil, nil
	}

	users, err := n.recipients.Recipients(ctx)
	if err != nil {
		return nil, err
	}

	notificationType := models.NotificationType(status)
	notifications := []models.Notification{}

	for _, user := range users {
		var unread int64
		err := db.Model(&models.Notification{}).
			Where("material_id = ? AND type = ? AND user_id = ? AND read = ?", material.ID, notificationType, user.ID, false).
			Count(&unread).Error
		if err != nil {
			return notifications, err
		}

		if unread > 0 {
			continue
		}

		notification := models.Notification{
			Type:       notificationType,
			Message:    Message(status, material.Name),
			MaterialID: &material.ID,
			UserID:     user.ID,
		}

		err = db.Omit(clause.Associations).Create(&notification).Error
		if err != nil {
			return notifications, err
		}

		created.WithLabelValues(string(notificationType)).Inc()
		n.publisher.Publish(user.ID, notification)
		notifications = append(notifications, notification)
	}

	log.Debug().Str("material", material.ID.String()).Str("status", string(status)).Int("created", len(notifications)).Msg("Notifier")
	return notifications, nil
}
