package v1

import (
	"fmt"

	"github.com/fairshare-aid/backend/internal/models"
	ez_uuid "github.com/fairshare-aid/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/notifications/1e777d24-3f5b-4c43-8000-04f65f895578"`      // The notification itself
	Read     string `json:"read" example:"https://example.com/api/v1/notifications/1e777d24-3f5b-4c43-8000-04f65f895578/read"` // Marks the notification as read
	Material string `json:"material" example:"https://example.com/api/v1/materials/3b1ea324-d438-4419-882a-2fc91d71772f"`      // The material the notification is about, if any
}

type Notification struct {
	models.DefaultModel
	Type       models.NotificationType `json:"type" example:"shortage"`                                   // Type of the notification
	Message    string                  `json:"message" example:"Alert: Shortage in material Rice"`        // Message for the user
	MaterialID *uuid.UUID              `json:"materialId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the material, if any
	UserID     uuid.UUID               `json:"userId" example:"9b2f5b45-3e0a-4c8d-8a4f-ff2f3e1b9a10"`     // ID of the user the notification is for
	Read       bool                    `json:"read" example:"false"`                                      // Has the notification been read?
	Links      NotificationLinks       `json:"links"`
}

func newNotification(c *gin.Context, model models.Notification) Notification {
	url := c.GetString(string(models.DBContextURL))

	n := Notification{
		DefaultModel: model.DefaultModel,
		Type:         model.Type,
		Message:      model.Message,
		MaterialID:   model.MaterialID,
		UserID:       model.UserID,
		Read:         model.Read,
		Links: NotificationLinks{
			Self: fmt.Sprintf("%s/v1/notifications/%s", url, model.ID),
			Read: fmt.Sprintf("%s/v1/notifications/%s/read", url, model.ID),
		},
	}

	if model.MaterialID != nil {
		n.Links.Material = fmt.Sprintf("%s/v1/materials/%s", url, *model.MaterialID)
	}

	return n
}

type NotificationListResponse struct {
	Data       []Notification `json:"data"`                                                          // List of notifications
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type NotificationResponse struct {
	Data  *Notification `json:"data"`                                                          // Data for the notification
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type NotificationQueryFilter struct {
	Read       bool                    `form:"read"`                       // Is the notification read?
	Type       models.NotificationType `form:"type"`                       // By type
	MaterialID ez_uuid.UUID            `form:"material"`                   // By ID of the material
	UserID     ez_uuid.UUID            `form:"user"`                       // By ID of the user
	Offset     uint                    `form:"offset" filterField:"false"` // The offset of the first notification returned. Defaults to 0.
	Limit      int                     `form:"limit" filterField:"false"`  // Maximum number of notifications to return. Defaults to 100.
}

func (f NotificationQueryFilter) model() models.Notification {
	return models.Notification{
		Read:       f.Read,
		Type:       f.Type,
		MaterialID: f.MaterialID.Ptr(),
		UserID:     f.UserID.UUID,
	}
}
