package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fairshare-aid/backend/internal/httputil"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// trendWeeks is the number of weeks shown in the donation trend.
const trendWeeks = 5

type DashboardSummary struct {
	TotalDonations     int64                           `json:"totalDonations" example:"42"`                    // Number of recorded donations
	TotalStock         decimal.Decimal                 `json:"totalStock" swaggertype:"string" example:"1250"` // Sum of the stock of all materials, regardless of unit
	TotalStockByUnit   map[models.Unit]decimal.Decimal `json:"totalStockByUnit" swaggertype:"object,string"`   // Sum of the stock per unit
	RegisteredFamilies int64                           `json:"registeredFamilies" example:"17"`                // Number of registered families
	ActiveAlerts       int                             `json:"activeAlerts" example:"3"`                       // Number of materials with a shortage or a surplus
}

type CategoryStock struct {
	Category models.MaterialCategory `json:"category" example:"Staple Food"`              // The category
	Quantity decimal.Decimal         `json:"quantity" swaggertype:"string" example:"300"` // Sum of the stock of all materials in the category
}

type DonationTrends struct {
	Labels []string          `json:"labels" example:"Mar 8 - Mar 14"`               // Label for each week, oldest first
	Data   []decimal.Decimal `json:"data" swaggertype:"array,string" example:"120"` // Donated quantity for each week
}

type CriticalItem struct {
	ID              uuid.UUID               `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`  // ID of the material
	Name            string                  `json:"name" example:"Rice"`                                // Name of the material
	Category        models.MaterialCategory `json:"category" example:"Staple Food"`                     // Category of the material
	CurrentQuantity decimal.Decimal         `json:"currentQuantity" swaggertype:"string" example:"20"`  // Quantity in stock
	RequiredLevel   decimal.Decimal         `json:"requiredLevel" swaggertype:"string" example:"100"`   // Average monthly need
	Unit            models.Unit             `json:"unit" example:"kg"`                                  // Unit of the material
	Status          models.Status           `json:"status" example:"shortage" enums:"shortage,surplus"` // Status of the material
	Link            string                  `json:"link" example:"https://example.com/api/v1/materials/65392deb-5e92-4268-b114-297faad6cdce"`
}

type Dashboard struct {
	Summary         DashboardSummary `json:"summary"`
	StockByCategory []CategoryStock  `json:"stockByCategory"` // Stock per category, only categories that have materials
	DonationTrends  DonationTrends   `json:"donationTrends"`
	CriticalItems   []CriticalItem   `json:"criticalItems"` // Materials with a shortage or a surplus
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                 // The dashboard
	Error *string    `json:"error" example:"there is a problem with the database"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsDashboard)
	r.GET("/summary", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard/summary [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns stock totals, the donation trend of the last five weeks and all critical materials
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard/summary [get]
func GetDashboard(c *gin.Context) {
	dashboard, err := buildDashboard(c, time.Now())
	if err != nil {
		c.JSON(status(err), DashboardResponse{
			Error: message(c, err),
		})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}

func buildDashboard(c *gin.Context, now time.Time) (Dashboard, error) {
	url := c.GetString(string(models.DBContextURL))

	var materials []models.Material
	err := models.DB.Order("name ASC").Find(&materials).Error
	if err != nil {
		return Dashboard{}, err
	}

	var summary DashboardSummary
	err = models.DB.Model(&models.Donation{}).Count(&summary.TotalDonations).Error
	if err != nil {
		return Dashboard{}, err
	}

	err = models.DB.Model(&models.Family{}).Count(&summary.RegisteredFamilies).Error
	if err != nil {
		return Dashboard{}, err
	}

	summary.TotalStockByUnit = make(map[models.Unit]decimal.Decimal, len(models.Units))
	for _, unit := range models.Units {
		summary.TotalStockByUnit[unit] = decimal.Zero
	}

	byCategory := make(map[models.MaterialCategory]decimal.Decimal)
	critical := make([]CriticalItem, 0)

	for _, material := range materials {
		summary.TotalStock = summary.TotalStock.Add(material.CurrentQuantity)
		summary.TotalStockByUnit[material.Unit] = summary.TotalStockByUnit[material.Unit].Add(material.CurrentQuantity)
		byCategory[material.Category] = byCategory[material.Category].Add(material.CurrentQuantity)

		materialStatus := material.Status()
		if !materialStatus.Critical() {
			continue
		}

		critical = append(critical, CriticalItem{
			ID:              material.ID,
			Name:            material.Name,
			Category:        material.Category,
			CurrentQuantity: material.CurrentQuantity,
			RequiredLevel:   material.AverageMonthlyNeed,
			Unit:            material.Unit,
			Status:          materialStatus,
			Link:            fmt.Sprintf("%s/v1/materials/%s", url, material.ID),
		})
	}
	summary.ActiveAlerts = len(critical)

	stock := make([]CategoryStock, 0, len(byCategory))
	for _, category := range models.MaterialCategories {
		quantity, ok := byCategory[category]
		if !ok {
			continue
		}
		stock = append(stock, CategoryStock{Category: category, Quantity: quantity})
	}

	trends, err := donationTrends(now)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Summary:         summary,
		StockByCategory: stock,
		DonationTrends:  trends,
		CriticalItems:   critical,
	}, nil
}

// donationTrends sums the donated quantity per week for the last
// trendWeeks weeks. The most recent week ends with the day of now.
func donationTrends(now time.Time) (DonationTrends, error) {
	today := startOfDay(now)
	first := today.AddDate(0, 0, -(7*trendWeeks - 1))
	end := today.AddDate(0, 0, 1)

	var donations []models.Donation
	err := models.DB.
		Where("date >= ? AND date < ?", first, end).
		Find(&donations).Error
	if err != nil {
		return DonationTrends{}, err
	}

	trends := DonationTrends{
		Labels: make([]string, trendWeeks),
		Data:   make([]decimal.Decimal, trendWeeks),
	}

	for i := 0; i < trendWeeks; i++ {
		start := first.AddDate(0, 0, 7*i)
		trends.Labels[i] = fmt.Sprintf("%s - %s", start.Format("Jan 2"), start.AddDate(0, 0, 6).Format("Jan 2"))
		trends.Data[i] = decimal.Zero
	}

	for _, donation := range donations {
		week := int(donation.Date.In(time.UTC).Sub(first) / (7 * 24 * time.Hour))
		if week < 0 || week >= trendWeeks {
			continue
		}
		trends.Data[week] = trends.Data[week].Add(donation.Quantity)
	}

	return trends, nil
}
