package v1

import (
	"github.com/fairshare-aid/backend/internal/inventory"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/fairshare-aid/backend/internal/notify"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func ledger() inventory.Ledger {
	return inventory.NewLedger(models.DB)
}

// notifyIfCritical runs the notification trigger for the material.
//
// It is called after a mutation has been committed, so failures are
// only logged.
func notifyIfCritical(c *gin.Context, materialID uuid.UUID) {
	notifier := notify.New(models.DB, notify.AllUsers{DB: models.DB}, notify.DefaultHub)

	notifications, err := notifier.NotifyIfCritical(c.Request.Context(), materialID)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Str("material", materialID.String()).Err(err).Msg("Notification trigger")
		return
	}

	if len(notifications) > 0 {
		log.Debug().Str("request-id", requestid.Get(c)).Str("material", materialID.String()).Int("count", len(notifications)).Msg("Notification trigger")
	}
}
