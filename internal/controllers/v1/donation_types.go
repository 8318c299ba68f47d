package v1

import (
	"fmt"
	"time"

	"github.com/fairshare-aid/backend/internal/inventory"
	"github.com/fairshare-aid/backend/internal/models"
	ez_uuid "github.com/fairshare-aid/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationEditable represents all user configurable parameters
type DonationEditable struct {
	MaterialID uuid.UUID       `json:"materialId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the donated material. Cannot be changed
	Quantity   decimal.Decimal `json:"quantity" swaggertype:"string" example:"50"`                // Donated quantity, must be positive
	Date       time.Time       `json:"date" example:"2025-03-14T10:00:00Z"`                       // Date of the donation, defaults to now
	Donor      string          `json:"donor" example:"Bakery Nour" default:"Anonymous"`           // Name of the donor
}

func (editable DonationEditable) input() inventory.DonationInput {
	return inventory.DonationInput{
		MaterialID: editable.MaterialID,
		Quantity:   editable.Quantity,
		Date:       editable.Date,
		Donor:      editable.Donor,
	}
}

// update returns the update for all fields that are set in the request body.
func (editable DonationEditable) update(fields []string) inventory.DonationUpdate {
	var u inventory.DonationUpdate

	for _, field := range fields {
		switch field {
		case "Quantity":
			u.Quantity = &editable.Quantity
		case "Date":
			u.Date = &editable.Date
		case "Donor":
			u.Donor = &editable.Donor
		}
	}

	return u
}

type DonationLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/donations/1e777d24-3f5b-4c43-8000-04f65f895578"`     // The donation itself
	Material string `json:"material" example:"https://example.com/api/v1/materials/3b1ea324-d438-4419-882a-2fc91d71772f"` // The donated material
}

type Donation struct {
	models.DefaultModel
	DonationEditable
	Unit        models.Unit   `json:"unit" example:"kg"`                                          // Unit of the material at the time of the donation
	CreatedByID uuid.UUID     `json:"createdById" example:"9b2f5b45-3e0a-4c8d-8a4f-ff2f3e1b9a10"` // ID of the user who recorded the donation
	Links       DonationLinks `json:"links"`
}

func newDonation(c *gin.Context, model models.Donation) Donation {
	url := c.GetString(string(models.DBContextURL))

	return Donation{
		DefaultModel: model.DefaultModel,
		DonationEditable: DonationEditable{
			MaterialID: model.MaterialID,
			Quantity:   model.Quantity,
			Date:       model.Date,
			Donor:      model.Donor,
		},
		Unit:        model.Unit,
		CreatedByID: model.CreatedByID,
		Links: DonationLinks{
			Self:     fmt.Sprintf("%s/v1/donations/%s", url, model.ID),
			Material: fmt.Sprintf("%s/v1/materials/%s", url, model.MaterialID),
		},
	}
}

type DonationListResponse struct {
	Data       []Donation  `json:"data"`                                                          // List of donations
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DonationCreateResponse struct {
	Data  []DonationResponse `json:"data"`                                                          // List of the created donations or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (d *DonationCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	d.Data = append(d.Data, DonationResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DonationResponse struct {
	Data  *Donation `json:"data"`                                                          // Data for the donation
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// recentDonations is the number of donations returned with recent=true.
const recentDonations = 5

type DonationQueryFilter struct {
	MaterialID ez_uuid.UUID `form:"material"`                   // By ID of the material
	Donor      string       `form:"donor" filterField:"false"`  // By donor
	From       string       `form:"from" filterField:"false"`   // Donations on or after this date
	To         string       `form:"to" filterField:"false"`     // Donations on or before this date
	Recent     bool         `form:"recent" filterField:"false"` // Only the five most recent donations
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first donation returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of donations to return. Defaults to 50.
}

func (f DonationQueryFilter) model() models.Donation {
	return models.Donation{
		MaterialID: f.MaterialID.UUID,
	}
}
