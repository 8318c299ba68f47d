package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fairshare-aid/backend/internal/controllers/v1"
	"github.com/fairshare-aid/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/materials", "OPTIONS, GET, POST"},
		{"http://example.com/v1/families", "OPTIONS, GET, POST"},
		{"http://example.com/v1/donations", "OPTIONS, GET, POST"},
		{"http://example.com/v1/distribution/suggest", "OPTIONS, POST"},
		{"http://example.com/v1/distribution/execute", "OPTIONS, POST"},
		{"http://example.com/v1/notifications", "OPTIONS, GET"},
		{"http://example.com/v1/notifications/stream", "OPTIONS, GET"},
		{fmt.Sprintf("http://example.com/v1/notifications/%s/read", uuid.New()), "OPTIONS, POST"},
		{"http://example.com/v1/users", "OPTIONS, GET, POST"},
		{"http://example.com/v1/settings", "OPTIONS, GET, PATCH"},
		{"http://example.com/v1/dashboard/summary", "OPTIONS, GET"},
		{"http://example.com/v1/reports/summary", "OPTIONS, GET"},
		{"http://example.com/v1/reports/charts", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

// TestOptionsDetail verifies that OPTIONS requests for single resources
// check that the resource exists.
func (suite *TestSuiteStandard) TestOptionsDetail() {
	material := suite.createTestMaterial(v1.MaterialEditable{})
	family := suite.createTestFamily(v1.FamilyEditable{})
	user := suite.createTestUser(v1.UserEditable{})
	donation := suite.createTestDonation(v1.DonationEditable{}, user.Data.ID)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Material exists", material.Data.Links.Self, http.StatusNoContent},
		{"Family exists", family.Data.Links.Self, http.StatusNoContent},
		{"User exists", user.Data.Links.Self, http.StatusNoContent},
		{"Donation exists", donation.Data.Links.Self, http.StatusNoContent},
		{"No Material with this ID", fmt.Sprintf("http://example.com/v1/materials/%s", uuid.New()), http.StatusNotFound},
		{"No Family with this ID", fmt.Sprintf("http://example.com/v1/families/%s", uuid.New()), http.StatusNotFound},
		{"No User with this ID", fmt.Sprintf("http://example.com/v1/users/%s", uuid.New()), http.StatusNotFound},
		{"No Donation with this ID", fmt.Sprintf("http://example.com/v1/donations/%s", uuid.New()), http.StatusNotFound},
		{"Not a valid UUID", "http://example.com/v1/materials/NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}
