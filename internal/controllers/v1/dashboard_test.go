package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/fairshare-aid/backend/internal/controllers/v1"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/fairshare-aid/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var dashboard v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &dashboard)

	assert.Equal(suite.T(), int64(0), dashboard.Data.Summary.TotalDonations)
	assert.True(suite.T(), dashboard.Data.Summary.TotalStock.IsZero())
	assert.Len(suite.T(), dashboard.Data.Summary.TotalStockByUnit, len(models.Units))
	assert.Empty(suite.T(), dashboard.Data.StockByCategory)
	assert.Empty(suite.T(), dashboard.Data.CriticalItems)
	assert.Len(suite.T(), dashboard.Data.DonationTrends.Labels, 5)
	assert.Len(suite.T(), dashboard.Data.DonationTrends.Data, 5)
}

// TestDashboard verifies the totals, the donation trend and the critical items.
func (suite *TestSuiteStandard) TestDashboard() {
	user := suite.createTestUser(v1.UserEditable{}).Data.ID
	rice := suite.createTestMaterial(v1.MaterialEditable{Name: "Rice", CurrentQuantity: decimal.NewFromInt(10)})
	milk := suite.createTestMaterial(v1.MaterialEditable{Name: "Milk", Category: models.CategoryPerishable, Unit: models.UnitLiter, CurrentQuantity: decimal.NewFromInt(100)})
	blankets := suite.createTestMaterial(v1.MaterialEditable{Name: "Blankets", Category: models.CategoryReliefSupplies, Unit: models.UnitUnits, CurrentQuantity: decimal.NewFromInt(200)})
	suite.createTestFamily(v1.FamilyEditable{})
	suite.createTestFamily(v1.FamilyEditable{})

	now := time.Now().In(time.UTC)
	suite.createTestDonation(v1.DonationEditable{MaterialID: rice.Data.ID, Quantity: decimal.NewFromInt(5)}, user)
	suite.createTestDonation(v1.DonationEditable{MaterialID: milk.Data.ID, Quantity: decimal.NewFromInt(20), Date: now.AddDate(0, 0, -10)}, user)
	suite.createTestDonation(v1.DonationEditable{MaterialID: milk.Data.ID, Quantity: decimal.NewFromInt(1), Date: now.AddDate(0, 0, -60)}, user)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	dashboard := response.Data

	assert.Equal(suite.T(), int64(3), dashboard.Summary.TotalDonations)
	assert.Equal(suite.T(), int64(2), dashboard.Summary.RegisteredFamilies)
	assert.Equal(suite.T(), 2, dashboard.Summary.ActiveAlerts)
	assert.True(suite.T(), decimal.NewFromInt(336).Equal(dashboard.Summary.TotalStock), "total stock is %s", dashboard.Summary.TotalStock)

	byUnit := map[models.Unit]int64{
		models.UnitKilogram: 15,
		models.UnitLiter:    121,
		models.UnitUnits:    200,
		models.UnitBoxes:    0,
	}
	for unit, quantity := range byUnit {
		assert.True(suite.T(), decimal.NewFromInt(quantity).Equal(dashboard.Summary.TotalStockByUnit[unit]), "stock in %s is %s", unit, dashboard.Summary.TotalStockByUnit[unit])
	}

	suite.Require().Len(dashboard.StockByCategory, 3)
	assert.Equal(suite.T(), models.CategoryStapleFood, dashboard.StockByCategory[0].Category)
	assert.Equal(suite.T(), models.CategoryPerishable, dashboard.StockByCategory[1].Category)
	assert.Equal(suite.T(), models.CategoryReliefSupplies, dashboard.StockByCategory[2].Category)
	assert.True(suite.T(), decimal.NewFromInt(121).Equal(dashboard.StockByCategory[1].Quantity))

	suite.Require().Len(dashboard.CriticalItems, 2)
	assert.Equal(suite.T(), blankets.Data.ID, dashboard.CriticalItems[0].ID)
	assert.Equal(suite.T(), models.StatusSurplus, dashboard.CriticalItems[0].Status)
	assert.Equal(suite.T(), rice.Data.ID, dashboard.CriticalItems[1].ID)
	assert.Equal(suite.T(), models.StatusShortage, dashboard.CriticalItems[1].Status)
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(dashboard.CriticalItems[1].RequiredLevel))

	today := now.Truncate(24 * time.Hour)
	assert.Equal(suite.T(), fmt.Sprintf("%s - %s", today.AddDate(0, 0, -6).Format("Jan 2"), today.Format("Jan 2")), dashboard.DonationTrends.Labels[4])

	expected := []int64{0, 0, 0, 20, 5}
	for i, quantity := range expected {
		assert.True(suite.T(), decimal.NewFromInt(quantity).Equal(dashboard.DonationTrends.Data[i]), "week %d has %s", i, dashboard.DonationTrends.Data[i])
	}

	// Critical items link to the material
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/materials/%s", rice.Data.ID), dashboard.CriticalItems[1].Link)
}
