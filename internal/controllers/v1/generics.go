package v1

import (
	"github.com/fairshare-aid/backend/internal/httputil"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Material | models.Family | models.Donation | models.User](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	err = models.DB.First(&resource, "id = ?", uri.ID.UUID).Error
	if err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
