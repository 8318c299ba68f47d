package v1

import (
	"fmt"
	"net/http"

	"github.com/fairshare-aid/backend/internal/httputil"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// SettingsEditable represents all configurable settings
type SettingsEditable struct {
	AutomaticAlerts   bool           `json:"automaticAlerts" example:"true"`            // If stock alerts are created automatically
	AIRecommendations bool           `json:"aiRecommendations" example:"true"`          // If distribution suggestions are shown
	DonationReminders bool           `json:"donationReminders" example:"false"`         // If donors are reminded
	ExpirationAlerts  bool           `json:"expirationAlerts" example:"true"`           // If alerts for expiring materials are shown
	MaterialNeeds     map[string]any `json:"materialNeeds" swaggertype:"object,number"` // Free form need planning per material
}

// apply sets all fields of the settings that are set in the request body.
func (editable SettingsEditable) apply(settings *models.Settings, fields []string) {
	for _, field := range fields {
		switch field {
		case "AutomaticAlerts":
			settings.AutomaticAlerts = editable.AutomaticAlerts
		case "AIRecommendations":
			settings.AIRecommendations = editable.AIRecommendations
		case "DonationReminders":
			settings.DonationReminders = editable.DonationReminders
		case "ExpirationAlerts":
			settings.ExpirationAlerts = editable.ExpirationAlerts
		case "MaterialNeeds":
			settings.MaterialNeeds = datatypes.JSONMap(editable.MaterialNeeds)
			if settings.MaterialNeeds == nil {
				settings.MaterialNeeds = datatypes.JSONMap{}
			}
		}
	}
}

type SettingsLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/settings"` // The settings themselves
}

type Settings struct {
	models.DefaultModel
	SettingsEditable
	Links SettingsLinks `json:"links"`
}

func newSettings(c *gin.Context, model models.Settings) Settings {
	needs := map[string]any(model.MaterialNeeds)
	if needs == nil {
		needs = map[string]any{}
	}

	return Settings{
		DefaultModel: model.DefaultModel,
		SettingsEditable: SettingsEditable{
			AutomaticAlerts:   model.AutomaticAlerts,
			AIRecommendations: model.AIRecommendations,
			DonationReminders: model.DonationReminders,
			ExpirationAlerts:  model.ExpirationAlerts,
			MaterialNeeds:     needs,
		},
		Links: SettingsLinks{
			Self: fmt.Sprintf("%s/v1/settings", c.GetString(string(models.DBContextURL))),
		},
	}
}

type SettingsResponse struct {
	Data  *Settings `json:"data"`                                                 // The settings
	Error *string   `json:"error" example:"the request body could not be parsed"` // The error, if any occurred
}

// RegisterSettingsRoutes registers the routes for the settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the settings. They are created with the defaults on first access.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		c.JSON(status(err), SettingsResponse{
			Error: message(c, err),
		})
		return
	}

	data := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Update the settings. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		c.JSON(status(err), SettingsResponse{
			Error: message(c, err),
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		c.JSON(status(err), SettingsResponse{
			Error: message(c, err),
		})
		return
	}

	var data SettingsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), SettingsResponse{
			Error: message(c, err),
		})
		return
	}

	data.apply(&settings, updateFields)

	err = models.DB.Omit(clause.Associations).Save(&settings).Error
	if err != nil {
		c.JSON(status(err), SettingsResponse{
			Error: message(c, err),
		})
		return
	}

	r := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &r})
}
