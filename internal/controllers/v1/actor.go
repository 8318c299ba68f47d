package v1

import (
	"errors"
	"strings"

	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActorHeader is set by the authenticating gateway to the ID of the
// user making the request.
const ActorHeader = "X-User-ID"

// actor returns the user making the request.
func actor(c *gin.Context) (models.User, error) {
	header := strings.TrimSpace(c.GetHeader(ActorHeader))
	if header == "" {
		return models.User{}, errActorMissing
	}

	id, err := uuid.Parse(header)
	if err != nil {
		return models.User{}, errActorUnknown
	}

	var user models.User
	err = models.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, errActorUnknown
	} else if err != nil {
		return models.User{}, err
	}

	return user, nil
}
