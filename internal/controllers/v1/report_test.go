package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/fairshare-aid/backend/internal/controllers/v1"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/fairshare-aid/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) getReport(query string) v1.Report {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/summary?%s", query), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var report v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &report)
	return *report.Data
}

// TestReport verifies the donated and distributed quantities per material
// in a period.
func (suite *TestSuiteStandard) TestReport() {
	user := suite.createTestUser(v1.UserEditable{}).Data.ID
	family := suite.createTestFamily(v1.FamilyEditable{}).Data.ID
	oil := suite.createTestMaterial(v1.MaterialEditable{Name: "Oil", Unit: models.UnitLiter, AverageMonthlyNeed: decimal.NewFromInt(10)})
	rice := suite.createTestMaterial(v1.MaterialEditable{Name: "Rice", Category: models.CategoryStapleFood})

	suite.createTestDonation(v1.DonationEditable{MaterialID: rice.Data.ID, Quantity: decimal.NewFromInt(40), Date: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}, user)
	suite.createTestDonation(v1.DonationEditable{MaterialID: oil.Data.ID, Quantity: decimal.NewFromInt(50), Date: time.Date(2025, 1, 31, 22, 0, 0, 0, time.UTC)}, user)
	suite.createTestDonation(v1.DonationEditable{MaterialID: rice.Data.ID, Quantity: decimal.NewFromInt(30)}, user)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/distribution/execute", v1.ExecuteRequest{
		MaterialID:    rice.Data.ID,
		Distributions: []v1.ExecuteEntry{{FamilyID: family, Quantity: decimal.NewFromInt(10)}},
	}, actorHeader(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// January only
	report := suite.getReport("from=2025-01-01&to=2025-01-31")
	assert.Equal(suite.T(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), report.From)
	assert.Equal(suite.T(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), report.To)
	suite.Require().Len(report.Summary, 2)

	assert.Equal(suite.T(), "Oil", report.Summary[0].Material)
	assert.Equal(suite.T(), oil.Data.ID, report.Summary[0].MaterialID)
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(report.Summary[0].Donated))
	assert.True(suite.T(), report.Summary[0].Distributed.IsZero())
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(report.Summary[0].Remaining))
	assert.Equal(suite.T(), models.UnitLiter, report.Summary[0].Unit)
	assert.Equal(suite.T(), "Surplus", report.Summary[0].Status)

	assert.Equal(suite.T(), "Rice", report.Summary[1].Material)
	assert.True(suite.T(), decimal.NewFromInt(40).Equal(report.Summary[1].Donated))
	assert.True(suite.T(), report.Summary[1].Distributed.IsZero())
	assert.True(suite.T(), decimal.NewFromInt(60).Equal(report.Summary[1].Remaining))
	assert.Equal(suite.T(), "Shortage", report.Summary[1].Status)

	// The default range and a range of one day only contain today
	for _, query := range []string{"", "range=1"} {
		report = suite.getReport(query)
		suite.Require().Len(report.Summary, 2)
		assert.True(suite.T(), report.Summary[0].Donated.IsZero())
		assert.True(suite.T(), decimal.NewFromInt(30).Equal(report.Summary[1].Donated), "donated is %s", report.Summary[1].Donated)
		assert.True(suite.T(), decimal.NewFromInt(10).Equal(report.Summary[1].Distributed), "distributed is %s", report.Summary[1].Distributed)
	}

	today := time.Now().In(time.UTC).Truncate(24 * time.Hour)
	report = suite.getReport("")
	assert.Equal(suite.T(), today.AddDate(0, 0, -29), report.From)
	assert.Equal(suite.T(), today.AddDate(0, 0, 1), report.To)
}

func (suite *TestSuiteStandard) TestReportNormalStatus() {
	suite.createTestMaterial(v1.MaterialEditable{CurrentQuantity: decimal.NewFromInt(100)})

	report := suite.getReport("range=7")
	suite.Require().Len(report.Summary, 1)
	assert.Equal(suite.T(), "Normal", report.Summary[0].Status)
}

func (suite *TestSuiteStandard) TestReportInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"Only from", "from=2025-01-01"},
		{"Only to", "to=2025-01-31"},
		{"From after to", "from=2025-02-01&to=2025-01-01"},
		{"Broken date", "from=first&to=2025-01-01"},
		{"Zero range", "range=0"},
		{"Negative range", "range=-3"},
		{"Range not a number", "range=week"},
	}

	for _, endpoint := range []string{"summary", "charts"} {
		for _, tt := range tests {
			suite.T().Run(fmt.Sprintf("%s %s", endpoint, tt.name), func(t *testing.T) {
				r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s?%s", endpoint, tt.query), "")
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

				var report v1.ReportResponse
				test.DecodeResponse(t, &r, &report)
				assert.NotNil(t, report.Error)
			})
		}
	}
}
