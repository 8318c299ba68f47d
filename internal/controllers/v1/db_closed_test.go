package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fairshare-aid/backend/internal/controllers/v1"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/fairshare-aid/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestDBClosed() {
	material := suite.createTestMaterial(v1.MaterialEditable{})
	user := suite.createTestUser(v1.UserEditable{})

	tests := []struct {
		method  string
		path    string
		body    any
		headers map[string]string
	}{
		{http.MethodGet, "http://example.com/v1/materials", "", nil},
		{http.MethodPost, "http://example.com/v1/materials", []v1.MaterialEditable{{Name: "Rice", SKU: "X", Category: models.CategoryOthers, Unit: models.UnitBoxes}}, nil},
		{http.MethodGet, "http://example.com/v1/materials/critical", "", nil},
		{http.MethodGet, material.Data.Links.Self, "", nil},
		{http.MethodPatch, material.Data.Links.Self, `{ "name": "Wheat" }`, nil},
		{http.MethodDelete, material.Data.Links.Self, "", nil},
		{http.MethodGet, "http://example.com/v1/families", "", nil},
		{http.MethodPost, "http://example.com/v1/families", []v1.FamilyEditable{{Name: "Haddad", Area: "North", FamilySize: 3}}, nil},
		{http.MethodGet, "http://example.com/v1/donations", "", nil},
		{http.MethodPost, "http://example.com/v1/donations", []v1.DonationEditable{{MaterialID: material.Data.ID}}, actorHeader(user.Data.ID)},
		{http.MethodPost, "http://example.com/v1/distribution/suggest", v1.SuggestRequest{MaterialID: material.Data.ID}, nil},
		{http.MethodPost, "http://example.com/v1/distribution/execute", v1.ExecuteRequest{MaterialID: material.Data.ID}, actorHeader(user.Data.ID)},
		{http.MethodGet, "http://example.com/v1/notifications", "", nil},
		{http.MethodPost, "http://example.com/v1/notifications/" + uuid.NewString() + "/read", "", nil},
		{http.MethodGet, "http://example.com/v1/users", "", nil},
		{http.MethodGet, user.Data.Links.Self, "", nil},
		{http.MethodGet, "http://example.com/v1/settings", "", nil},
		{http.MethodPatch, "http://example.com/v1/settings", `{ "automaticAlerts": false }`, nil},
		{http.MethodGet, "http://example.com/v1/dashboard/summary", "", nil},
		{http.MethodGet, "http://example.com/v1/reports/summary", "", nil},
		{http.MethodGet, "http://example.com/v1/reports/charts", "", nil},
	}

	suite.CloseDB()

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			var headers []map[string]string
			if tt.headers != nil {
				headers = append(headers, tt.headers)
			}

			r := test.Request(t, tt.method, tt.path, tt.body, headers...)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, r.Body.String(), models.ErrGeneral.Error())
			assert.NotContains(t, r.Body.String(), "database is closed")
		})
	}
}
