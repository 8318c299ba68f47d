package v1_test

import (
	"net/http"

	v1 "github.com/fairshare-aid/backend/internal/controllers/v1"
	"github.com/fairshare-aid/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestSettingsDefaults verifies that the settings are created with
// the defaults on first access.
func (suite *TestSuiteStandard) TestSettingsDefaults() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &settings)

	assert.True(suite.T(), settings.Data.AutomaticAlerts)
	assert.True(suite.T(), settings.Data.AIRecommendations)
	assert.False(suite.T(), settings.Data.DonationReminders)
	assert.True(suite.T(), settings.Data.ExpirationAlerts)
	assert.Empty(suite.T(), settings.Data.MaterialNeeds)
	assert.Equal(suite.T(), "http://example.com/v1/settings", settings.Data.Links.Self)

	// The same settings are returned on the next request
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	var again v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &again)
	assert.Equal(suite.T(), settings.Data.ID, again.Data.ID)
}

// TestSettingsUpdate verifies that only the fields in the body are updated.
func (suite *TestSuiteStandard) TestSettingsUpdate() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"donationReminders": true,
		"expirationAlerts":  false,
		"materialNeeds":     map[string]any{"Rice": 120},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &settings)
	assert.True(suite.T(), settings.Data.AutomaticAlerts)
	assert.True(suite.T(), settings.Data.DonationReminders)
	assert.False(suite.T(), settings.Data.ExpirationAlerts)
	assert.Equal(suite.T(), float64(120), settings.Data.MaterialNeeds["Rice"])

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.DecodeResponse(suite.T(), &r, &settings)
	assert.True(suite.T(), settings.Data.DonationReminders)
	assert.Equal(suite.T(), float64(120), settings.Data.MaterialNeeds["Rice"])
}

func (suite *TestSuiteStandard) TestSettingsUpdateFails() {
	for _, body := range []string{"", `{ "automaticAlerts": "sometimes" }`, `[]`} {
		r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}
