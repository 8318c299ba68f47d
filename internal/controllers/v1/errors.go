package v1

import (
	"errors"
	"net/http"

	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrSKUNotUnique), errors.Is(err, models.ErrEmailNotUnique):
		return http.StatusConflict
	case errors.Is(err, errActorMissing), errors.Is(err, errActorUnknown):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// message returns the error message sent to the client.
//
// Internal errors are logged with their cause, the client only
// receives the general error message.
func message(c *gin.Context, err error) *string {
	s := err.Error()
	if errors.Is(err, models.ErrGeneral) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		s = models.ErrGeneral.Error()
	}

	return &s
}

// abort sends an httpError response.
func abort(c *gin.Context, err error) {
	c.JSON(status(err), httpError{
		Error: *message(c, err),
	})
}

var (
	errActorMissing = errors.New("the X-User-ID header must contain the ID of the acting user")
	errActorUnknown = errors.New("the X-User-ID header does not reference an existing user")
)

// Query errors
var (
	errDateInvalid  = errors.New("dates must be specified as YYYY-MM-DD or in RFC 3339 format")
	errRangeInvalid = errors.New("the range must be a positive number of days")
	errRangePartial = errors.New("from and to must be specified together")
	errRangeOrder   = errors.New("from must not be after to")
)

// Donation errors
var (
	errDonationMaterialImmutable = errors.New("the material of a donation cannot be changed, delete the donation and record a new one")
)
