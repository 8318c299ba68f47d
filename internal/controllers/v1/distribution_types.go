package v1

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fairshare-aid/backend/internal/inventory"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DistributionLinks struct {
	Material    string `json:"material" example:"https://example.com/api/v1/materials/3b1ea324-d438-4419-882a-2fc91d71772f"`   // The distributed material
	Beneficiary string `json:"beneficiary" example:"https://example.com/api/v1/families/1e777d24-3f5b-4c43-8000-04f65f895578"` // The family that received the distribution
}

// Distribution is a committed transfer of a material to a family. Distributions
// are created by executing a distribution and never edited.
type Distribution struct {
	models.DefaultModel
	MaterialID      uuid.UUID         `json:"materialId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`      // ID of the distributed material
	BeneficiaryID   uuid.UUID         `json:"beneficiaryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`   // ID of the family
	Quantity        decimal.Decimal   `json:"quantity" swaggertype:"string" example:"10"`                     // Distributed quantity
	Unit            models.Unit       `json:"unit" example:"kg"`                                              // Unit of the material at the time of the distribution
	Date            time.Time         `json:"date" example:"2025-03-14T10:00:00Z"`                            // Date of the distribution
	DistributedByID uuid.UUID         `json:"distributedById" example:"9b2f5b45-3e0a-4c8d-8a4f-ff2f3e1b9a10"` // ID of the user who executed the distribution
	Reason          string            `json:"reason" example:"Smart Distribution"`                            // Reason for the distribution
	Links           DistributionLinks `json:"links"`
}

func newDistribution(c *gin.Context, model models.Distribution) Distribution {
	url := c.GetString(string(models.DBContextURL))

	return Distribution{
		DefaultModel:    model.DefaultModel,
		MaterialID:      model.MaterialID,
		BeneficiaryID:   model.BeneficiaryID,
		Quantity:        model.Quantity,
		Unit:            model.Unit,
		Date:            model.Date,
		DistributedByID: model.DistributedByID,
		Reason:          model.Reason,
		Links: DistributionLinks{
			Material:    fmt.Sprintf("%s/v1/materials/%s", url, model.MaterialID),
			Beneficiary: fmt.Sprintf("%s/v1/families/%s", url, model.BeneficiaryID),
		},
	}
}

type DistributionListResponse struct {
	Data       []Distribution `json:"data"`                                                          // List of distributions
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type SuggestRequest struct {
	MaterialID uuid.UUID          `json:"materialId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the material to distribute
	Strategy   inventory.Strategy `json:"strategy" example:"priority" enums:"equal,priority"`        // Allocation strategy
}

type Suggestions struct {
	Material    string                 `json:"material" example:"Rice"`                                   // Name of the material
	MaterialID  uuid.UUID              `json:"materialId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the material
	Unit        models.Unit            `json:"unit" example:"kg"`                                         // Unit of the material
	Available   decimal.Decimal        `json:"available" swaggertype:"string" example:"100"`              // Quantity in stock
	Strategy    inventory.Strategy     `json:"strategy" example:"priority"`                               // The strategy used
	Suggestions []inventory.Suggestion `json:"suggestions"`                                               // One suggestion per family
}

type SuggestResponse struct {
	Data  *Suggestions `json:"data"`                                                        // The suggested distribution
	Error *string      `json:"error" example:"the strategy must be one of equal, priority"` // The error, if any occurred
}

type ExecuteEntry struct {
	FamilyID uuid.UUID       `json:"familyId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the family
	Quantity decimal.Decimal `json:"quantity" swaggertype:"string" example:"10"`              // Quantity for the family

	invalid bool
}

// UnmarshalJSON decodes an entry without failing on unparseable
// family IDs or quantities. Such entries are marked invalid and
// skipped when the distribution is executed.
func (e *ExecuteEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		FamilyID json.RawMessage `json:"familyId"`
		Quantity json.RawMessage `json:"quantity"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		e.invalid = true
		return nil
	}

	var familyID string
	if err := json.Unmarshal(raw.FamilyID, &familyID); err != nil {
		e.invalid = true
		return nil
	}

	id, err := uuid.Parse(familyID)
	if err != nil {
		e.invalid = true
		return nil
	}
	e.FamilyID = id

	if len(raw.Quantity) == 0 || e.Quantity.UnmarshalJSON(raw.Quantity) != nil {
		e.invalid = true
		return nil
	}

	return nil
}

type ExecuteRequest struct {
	MaterialID    uuid.UUID      `json:"materialId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the material to distribute
	Distributions []ExecuteEntry `json:"distributions"`                                             // Quantities per family. Unknown or unparseable families and quantities that are not positive numbers are skipped
	Date          *time.Time     `json:"date" example:"2025-03-14T10:00:00Z"`                       // Date of the distribution, defaults to now
}

func (r ExecuteRequest) input() inventory.DistributionInput {
	input := inventory.DistributionInput{
		MaterialID: r.MaterialID,
		Entries:    make([]inventory.DistributionEntry, 0, len(r.Distributions)),
	}

	for _, entry := range r.Distributions {
		if entry.invalid {
			continue
		}

		input.Entries = append(input.Entries, inventory.DistributionEntry{
			FamilyID: entry.FamilyID,
			Quantity: entry.Quantity,
		})
	}

	if r.Date != nil {
		input.Date = *r.Date
	}

	return input
}

type ExecuteResult struct {
	TotalDistributed decimal.Decimal `json:"totalDistributed" swaggertype:"string" example:"30"` // Sum of all distributed quantities
	Distributions    []Distribution  `json:"distributions"`                                      // The recorded distributions
}

type ExecuteResponse struct {
	Data  *ExecuteResult `json:"data"`                                                     // The executed distribution
	Error *string        `json:"error" example:"there is no material matching your query"` // The error, if any occurred
}
