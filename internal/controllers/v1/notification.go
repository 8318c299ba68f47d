package v1

import (
	"net/http"
	"time"

	"github.com/fairshare-aid/backend/internal/httputil"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/fairshare-aid/backend/internal/notify"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// streamHeartbeat is the interval in which heartbeat events are sent
// to notification streams so that proxies keep the connection open.
const streamHeartbeat = 30 * time.Second

// RegisterNotificationRoutes registers the routes for notifications with
// the RouterGroup that is passed.
func RegisterNotificationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsNotificationList)
		r.GET("", GetNotifications)
		r.OPTIONS("/stream", OptionsNotificationList)
		r.GET("/stream", StreamNotifications)
	}

	// Notification with ID
	{
		r.OPTIONS("/:id/read", OptionsNotificationRead)
		r.POST("/:id/read", ReadNotification)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
// @Router			/v1/notifications/stream [options]
func OptionsNotificationList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id}/read [options]
func OptionsNotificationRead(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get notifications
// @Description	Returns a list of notifications, newest first
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationListResponse
// @Failure		400	{object}	NotificationListResponse
// @Failure		500	{object}	NotificationListResponse
// @Router			/v1/notifications [get]
// @Param			read		query	bool	false	"Filter by read status"
// @Param			type		query	string	false	"Filter by type"
// @Param			material	query	string	false	"Filter by material ID"
// @Param			user		query	string	false	"Filter by user ID"
// @Param			offset		query	uint	false	"The offset of the first Notification returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Notifications to return. Defaults to 100."
func GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(status(httputil.ErrInvalidQueryString), NotificationListResponse{
			Error: message(c, httputil.ErrInvalidQueryString),
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 100 notifications and set the limit
	limit := 100
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var notifications []models.Notification
	err = q.Find(&notifications).Error
	if err != nil {
		c.JSON(status(err), NotificationListResponse{
			Error: message(c, err),
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		c.JSON(status(err), NotificationListResponse{
			Error: message(c, err),
		})
		return
	}

	data := make([]Notification, 0, len(notifications))
	for _, notification := range notifications {
		data = append(data, newNotification(c, notification))
	}

	c.JSON(http.StatusOK, NotificationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Mark notification as read
// @Description	Marks a notification as read. New alerts for the same material and type are only created once it is read.
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationResponse
// @Failure		400	{object}	NotificationResponse
// @Failure		404	{object}	NotificationResponse
// @Failure		500	{object}	NotificationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id}/read [post]
func ReadNotification(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), NotificationResponse{
			Error: message(c, err),
		})
		return
	}

	var notification models.Notification
	err = models.DB.First(&notification, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), NotificationResponse{
			Error: message(c, err),
		})
		return
	}

	notification.Read = true
	err = models.DB.Omit(clause.Associations).Save(&notification).Error
	if err != nil {
		c.JSON(status(err), NotificationResponse{
			Error: message(c, err),
		})
		return
	}

	data := newNotification(c, notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &data})
}

// @Summary		Stream notifications
// @Description	Streams new notifications for the acting user as Server-Sent Events with the event name "notification".
// @Description	Requires the X-User-ID header.
// @Tags			Notifications
// @Produce		text/event-stream
// @Success		200
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-User-ID	header		string	true	"ID of the acting user"
// @Router			/v1/notifications/stream [get]
func StreamNotifications(c *gin.Context) {
	user, err := actor(c)
	if err != nil {
		abort(c, err)
		return
	}

	notifications, unsubscribe := notify.DefaultHub.Subscribe(user.ID)
	defer unsubscribe()

	log.Debug().Str("request-id", requestid.Get(c)).Str("user", user.ID.String()).Msg("Notification stream opened")

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			log.Debug().Str("request-id", requestid.Get(c)).Str("user", user.ID.String()).Msg("Notification stream closed")
			return
		case notification, ok := <-notifications:
			if !ok {
				return
			}
			c.SSEvent("notification", newNotification(c, notification))
			c.Writer.Flush()
		case t := <-heartbeat.C:
			c.SSEvent("heartbeat", t.UTC().Format(time.RFC3339))
			c.Writer.Flush()
		}
	}
}
