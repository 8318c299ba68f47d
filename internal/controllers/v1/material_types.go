package v1

import (
	"fmt"
	"time"

	"github.com/fairshare-aid/backend/internal/inventory"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MaterialEditable represents all user configurable parameters
type MaterialEditable struct {
	Name               string                  `json:"name" example:"Rice" default:""`                                // Name of the material
	Category           models.MaterialCategory `json:"category" example:"Staple Food"`                                // Category of the material
	SKU                string                  `json:"sku" example:"RICE-5KG" default:""`                             // Stock keeping unit, unique. Stored upper-cased
	Unit               models.Unit             `json:"unit" example:"kg"`                                             // Unit the material is counted in
	CurrentQuantity    decimal.Decimal         `json:"currentQuantity" swaggertype:"string" example:"60" default:"0"` // Quantity in stock
	AverageMonthlyNeed decimal.Decimal         `json:"averageMonthlyNeed" swaggertype:"string" example:"100"`         // Quantity needed per month
	ExpiringAt         *time.Time              `json:"expiringAt" example:"2025-08-01T00:00:00Z"`                     // Expiry date of the stock, if any
}

func (editable MaterialEditable) model() models.Material {
	return models.Material{
		Name:               editable.Name,
		Category:           editable.Category,
		SKU:                editable.SKU,
		Unit:               editable.Unit,
		CurrentQuantity:    editable.CurrentQuantity,
		AverageMonthlyNeed: editable.AverageMonthlyNeed,
		ExpiringAt:         editable.ExpiringAt,
	}
}

// update returns the update for all fields that are set in the request body.
func (editable MaterialEditable) update(fields []string) inventory.MaterialUpdate {
	var u inventory.MaterialUpdate

	for _, field := range fields {
		switch field {
		case "Name":
			u.Name = &editable.Name
		case "Category":
			u.Category = &editable.Category
		case "SKU":
			u.SKU = &editable.SKU
		case "Unit":
			u.Unit = &editable.Unit
		case "CurrentQuantity":
			u.CurrentQuantity = &editable.CurrentQuantity
		case "AverageMonthlyNeed":
			u.AverageMonthlyNeed = &editable.AverageMonthlyNeed
		case "ExpiringAt":
			// null removes the expiry date
			if editable.ExpiringAt == nil {
				u.ExpiringAt = &time.Time{}
			} else {
				u.ExpiringAt = editable.ExpiringAt
			}
		}
	}

	return u
}

type MaterialLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/materials/3b1ea324-d438-4419-882a-2fc91d71772f"`               // The material itself
	Donations string `json:"donations" example:"https://example.com/api/v1/donations?material=3b1ea324-d438-4419-882a-2fc91d71772f"` // Donations of this material
}

type Material struct {
	models.DefaultModel
	MaterialEditable
	Links MaterialLinks `json:"links"`

	// These fields are computed
	Status models.Status `json:"status" example:"shortage"` // Stock status relative to the average monthly need
}

func newMaterial(c *gin.Context, model models.Material) Material {
	url := c.GetString(string(models.DBContextURL))

	return Material{
		DefaultModel: model.DefaultModel,
		MaterialEditable: MaterialEditable{
			Name:               model.Name,
			Category:           model.Category,
			SKU:                model.SKU,
			Unit:               model.Unit,
			CurrentQuantity:    model.CurrentQuantity,
			AverageMonthlyNeed: model.AverageMonthlyNeed,
			ExpiringAt:         model.ExpiringAt,
		},
		Links: MaterialLinks{
			Self:      fmt.Sprintf("%s/v1/materials/%s", url, model.ID),
			Donations: fmt.Sprintf("%s/v1/donations?material=%s", url, model.ID),
		},
		Status: model.Status(),
	}
}

type MaterialListResponse struct {
	Data       []Material  `json:"data"`                                                          // List of materials
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MaterialCreateResponse struct {
	Data  []MaterialResponse `json:"data"`                                                          // List of the created materials or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (m *MaterialCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	m.Data = append(m.Data, MaterialResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MaterialResponse struct {
	Data  *Material `json:"data"`                                                          // Data for the material
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MaterialCategoryListResponse struct {
	Data []models.MaterialCategory `json:"data"` // All material categories
}

type MaterialQueryFilter struct {
	Name     string                  `form:"name" filterField:"false"`   // By name
	Category models.MaterialCategory `form:"category"`                   // By category
	SKU      string                  `form:"sku" filterField:"false"`    // By SKU
	Unit     models.Unit             `form:"unit"`                       // By unit
	Search   string                  `form:"search" filterField:"false"` // By string in name or SKU
	Offset   uint                    `form:"offset" filterField:"false"` // The offset of the first material returned. Defaults to 0.
	Limit    int                     `form:"limit" filterField:"false"`  // Maximum number of materials to return. Defaults to 50.
}

func (f MaterialQueryFilter) model() models.Material {
	return models.Material{
		Category: f.Category,
		Unit:     f.Unit,
	}
}
