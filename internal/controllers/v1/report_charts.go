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

// Periods of up to dailyChartDays days are charted per day, longer
// periods per week.
const dailyChartDays = 7

// unknownMaterial labels donations whose material has been deleted.
const unknownMaterial = "Unknown"

// familySizeGroups are the groups distributions are counted in.
var familySizeGroups = []struct {
	label   string
	matches func(size int) bool
}{
	{"Large Families (5+)", func(size int) bool { return size >= 5 }},
	{"Medium Families (3-4)", func(size int) bool { return size >= 3 && size <= 4 }},
	{"Small Families (1-2)", func(size int) bool { return size <= 2 }},
}

type ChartSeries struct {
	Labels []string          `json:"labels" example:"Rice"`           // One label per value
	Data   []decimal.Decimal `json:"data" swaggertype:"array,string"` // The values
}

type ChartDataset struct {
	Label string  `json:"label" example:"Large Families (5+)"` // Name of the dataset
	Data  []int64 `json:"data"`                                // One value per label of the chart
}

type DistributionProgress struct {
	Labels   []string       `json:"labels" example:"Week 1"` // One label per day or week
	Datasets []ChartDataset `json:"datasets"`                // Number of distributions per family size group
}

type SurplusShortage struct {
	Labels   []string          `json:"labels" example:"Rice"`                   // Material names
	Surplus  []decimal.Decimal `json:"surplusData" swaggertype:"array,string"`  // Quantity above 1.5 times the monthly need
	Shortage []decimal.Decimal `json:"shortageData" swaggertype:"array,string"` // Quantity missing to 0.8 times the monthly need
}

type Charts struct {
	From                 time.Time            `json:"from" example:"2025-02-13T00:00:00Z"` // Start of the period
	To                   time.Time            `json:"to" example:"2025-03-15T00:00:00Z"`   // End of the period, exclusive
	DonationsPerMaterial ChartSeries          `json:"donationsPerMaterial"`                // Donated quantity per material in the period
	DistributionProgress DistributionProgress `json:"distributionProgress"`                // Distributions per day or week and family size
	SurplusShortage      SurplusShortage      `json:"surplusShortage"`                     // Current surplus and shortage per material
}

type ChartsResponse struct {
	Data  *Charts `json:"data"`                                                                        // The chart data
	Error *string `json:"error" example:"dates must be specified as YYYY-MM-DD or in RFC 3339 format"` // The error, if any occurred
}

// @Summary		Get report charts
// @Description	Returns chart data for a period: donations per material, distributions per family size over time
// @Description	and the current surplus and shortage per material. The period is selected like for the report summary.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ChartsResponse
// @Failure		400		{object}	ChartsResponse
// @Failure		500		{object}	ChartsResponse
// @Param			from	query		string	false	"First day, YYYY-MM-DD"
// @Param			to		query		string	false	"Last day, YYYY-MM-DD"
// @Param			range	query		int		false	"Number of days up to and including today. Defaults to 30."
// @Router			/v1/reports/charts [get]
func GetReportCharts(c *gin.Context) {
	var query ReportQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(httputil.ErrInvalidQueryString), ChartsResponse{
			Error: message(c, httputil.ErrInvalidQueryString),
		})
		return
	}

	from, to, err := query.period(time.Now())
	if err != nil {
		c.JSON(status(err), ChartsResponse{
			Error: message(c, err),
		})
		return
	}

	charts, err := buildCharts(from, to)
	if err != nil {
		c.JSON(status(err), ChartsResponse{
			Error: message(c, err),
		})
		return
	}

	c.JSON(http.StatusOK, ChartsResponse{Data: &charts})
}

func buildCharts(from, to time.Time) (Charts, error) {
	var materials []models.Material
	err := models.DB.Order("name ASC").Find(&materials).Error
	if err != nil {
		return Charts{}, err
	}

	var donations []models.Donation
	err = models.DB.Where("date >= ? AND date < ?", from, to).Find(&donations).Error
	if err != nil {
		return Charts{}, err
	}

	var distributions []models.Distribution
	err = models.DB.Where("date >= ? AND date < ?", from, to).Find(&distributions).Error
	if err != nil {
		return Charts{}, err
	}

	var families []models.Family
	err = models.DB.Find(&families).Error
	if err != nil {
		return Charts{}, err
	}

	return Charts{
		From:                 from,
		To:                   to,
		DonationsPerMaterial: donationsPerMaterial(materials, donations),
		DistributionProgress: distributionProgress(from, to, families, distributions),
		SurplusShortage:      surplusShortage(materials),
	}, nil
}

// donationsPerMaterial sums the donations per material. Only materials
// with donations are listed, ordered like the materials passed in.
func donationsPerMaterial(materials []models.Material, donations []models.Donation) ChartSeries {
	donated := make(map[uuid.UUID]decimal.Decimal)
	for _, donation := range donations {
		donated[donation.MaterialID] = donated[donation.MaterialID].Add(donation.Quantity)
	}

	series := ChartSeries{
		Labels: make([]string, 0),
		Data:   make([]decimal.Decimal, 0),
	}

	for _, material := range materials {
		total, ok := donated[material.ID]
		if !ok {
			continue
		}

		series.Labels = append(series.Labels, material.Name)
		series.Data = append(series.Data, total)
		delete(donated, material.ID)
	}

	if len(donated) > 0 {
		unknown := decimal.Zero
		for _, total := range donated {
			unknown = unknown.Add(total)
		}

		series.Labels = append(series.Labels, unknownMaterial)
		series.Data = append(series.Data, unknown)
	}

	return series
}

// distributionProgress counts distributions per family size group in
// daily or weekly buckets starting at from. Distributions to deleted
// families are not counted.
func distributionProgress(from, to time.Time, families []models.Family, distributions []models.Distribution) DistributionProgress {
	step := 24 * time.Hour
	daily := to.Sub(from) <= dailyChartDays*24*time.Hour
	if !daily {
		step = 7 * step
	}

	labels := make([]string, 0)
	for cursor := from; cursor.Before(to); cursor = cursor.Add(step) {
		if daily {
			labels = append(labels, cursor.Format("Jan 2"))
		} else {
			labels = append(labels, fmt.Sprintf("Week %d", len(labels)+1))
		}
	}

	sizes := make(map[uuid.UUID]int, len(families))
	for _, family := range families {
		sizes[family.ID] = family.FamilySize
	}

	progress := DistributionProgress{
		Labels:   labels,
		Datasets: make([]ChartDataset, 0, len(familySizeGroups)),
	}

	for _, group := range familySizeGroups {
		data := make([]int64, len(labels))
		for _, distribution := range distributions {
			size, ok := sizes[distribution.BeneficiaryID]
			if !ok || !group.matches(size) {
				continue
			}

			bucket := int(distribution.Date.Sub(from) / step)
			if bucket >= 0 && bucket < len(data) {
				data[bucket]++
			}
		}

		progress.Datasets = append(progress.Datasets, ChartDataset{
			Label: group.label,
			Data:  data,
		})
	}

	return progress
}

// surplusShortage returns the quantity above the surplus threshold and
// the quantity missing to the shortage threshold for every material.
func surplusShortage(materials []models.Material) SurplusShortage {
	chart := SurplusShortage{
		Labels:   make([]string, 0, len(materials)),
		Surplus:  make([]decimal.Decimal, 0, len(materials)),
		Shortage: make([]decimal.Decimal, 0, len(materials)),
	}

	for _, material := range materials {
		surplus := material.CurrentQuantity.Sub(material.AverageMonthlyNeed.Mul(models.SurplusFactor))
		shortage := material.AverageMonthlyNeed.Mul(models.ShortageFactor).Sub(material.CurrentQuantity)

		chart.Labels = append(chart.Labels, material.Name)
		chart.Surplus = append(chart.Surplus, decimal.Max(decimal.Zero, surplus))
		chart.Shortage = append(chart.Shortage, decimal.Max(decimal.Zero, shortage))
	}

	return chart
}
