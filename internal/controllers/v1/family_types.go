package v1

import (
	"fmt"
	"time"

	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// FamilyEditable represents all user configurable parameters
type FamilyEditable struct {
	Name               string     `json:"name" example:"Haddad" default:""`                  // Name of the family
	FamilySize         int        `json:"familySize" example:"5"`                            // Number of family members
	Area               string     `json:"area" example:"North District"`                     // Area the family lives in
	SpecialNeeds       []string   `json:"specialNeeds" example:"infant,diabetes"`            // Special needs. Entries are split on commas
	LastDistributionAt *time.Time `json:"lastDistributionAt" example:"2025-03-14T10:00:00Z"` // Time of the last distribution to the family
}

func (editable FamilyEditable) model() models.Family {
	return models.Family{
		Name:               editable.Name,
		FamilySize:         editable.FamilySize,
		Area:               editable.Area,
		SpecialNeeds:       editable.SpecialNeeds,
		LastDistributionAt: editable.LastDistributionAt,
	}
}

// apply sets all fields of the family that are set in the request body.
func (editable FamilyEditable) apply(family *models.Family, fields []string) {
	for _, field := range fields {
		switch field {
		case "Name":
			family.Name = editable.Name
		case "FamilySize":
			family.FamilySize = editable.FamilySize
		case "Area":
			family.Area = editable.Area
		case "SpecialNeeds":
			family.SpecialNeeds = editable.SpecialNeeds
		case "LastDistributionAt":
			family.LastDistributionAt = editable.LastDistributionAt
		}
	}
}

type FamilyLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/families/3b1ea324-d438-4419-882a-2fc91d71772f"`                        // The family itself
	Distributions string `json:"distributions" example:"https://example.com/api/v1/families/3b1ea324-d438-4419-882a-2fc91d71772f/distributions"` // Distributions to this family
}

type Family struct {
	models.DefaultModel
	FamilyEditable
	Links FamilyLinks `json:"links"`

	// These fields are computed
	Vulnerability int `json:"vulnerability" example:"4"` // Vulnerability score, derived from the family size and the special needs
}

func newFamily(c *gin.Context, model models.Family) Family {
	url := c.GetString(string(models.DBContextURL))

	needs := []string(model.SpecialNeeds)
	if needs == nil {
		needs = []string{}
	}

	return Family{
		DefaultModel: model.DefaultModel,
		FamilyEditable: FamilyEditable{
			Name:               model.Name,
			FamilySize:         model.FamilySize,
			Area:               model.Area,
			SpecialNeeds:       needs,
			LastDistributionAt: model.LastDistributionAt,
		},
		Links: FamilyLinks{
			Self:          fmt.Sprintf("%s/v1/families/%s", url, model.ID),
			Distributions: fmt.Sprintf("%s/v1/families/%s/distributions", url, model.ID),
		},
		Vulnerability: model.Vulnerability,
	}
}

type FamilyListResponse struct {
	Data       []Family    `json:"data"`                                                          // List of families
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type FamilyCreateResponse struct {
	Data  []FamilyResponse `json:"data"`                                                          // List of the created families or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (f *FamilyCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	f.Data = append(f.Data, FamilyResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FamilyResponse struct {
	Data  *Family `json:"data"`                                                          // Data for the family
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FamilyQueryFilter struct {
	Name       string `form:"name" filterField:"false"`   // By name
	FamilySize int    `form:"familySize"`                 // By family size
	Area       string `form:"area" filterField:"false"`   // By area. Supports * as wildcard
	Search     string `form:"search" filterField:"false"` // By string in name or area
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first family returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of families to return. Defaults to 50.
}

func (f FamilyQueryFilter) model() models.Family {
	return models.Family{
		FamilySize: f.FamilySize,
	}
}
