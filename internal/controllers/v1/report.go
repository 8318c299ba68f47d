package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fairshare-aid/backend/internal/httputil"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultReportRange is the number of days covered by a report
// when no dates are given.
const defaultReportRange = 30

type ReportQuery struct {
	From  string `form:"from"`  // First day of the report, YYYY-MM-DD
	To    string `form:"to"`    // Last day of the report, YYYY-MM-DD
	Range string `form:"range"` // Number of days up to and including today. Ignored if from and to are set
}

// period returns the time range covered by the report. to is exclusive.
func (q ReportQuery) period(now time.Time) (time.Time, time.Time, error) {
	if q.From != "" || q.To != "" {
		if q.From == "" || q.To == "" {
			return time.Time{}, time.Time{}, errRangePartial
		}

		from, err := parseDate(q.From, false)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}

		to, err := parseDate(q.To, true)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}

		if from.After(to) {
			return time.Time{}, time.Time{}, errRangeOrder
		}

		return from, to.Add(time.Nanosecond), nil
	}

	days := defaultReportRange
	if q.Range != "" {
		var err error
		days, err = strconv.Atoi(q.Range)
		if err != nil || days <= 0 {
			return time.Time{}, time.Time{}, errRangeInvalid
		}
	}

	today := startOfDay(now)
	return today.AddDate(0, 0, -(days - 1)), today.AddDate(0, 0, 1), nil
}

type ReportEntry struct {
	Material    string                  `json:"material" example:"Rice"`                                   // Name of the material
	MaterialID  uuid.UUID               `json:"materialId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the material
	Category    models.MaterialCategory `json:"category" example:"Staple Food"`                            // Category of the material
	Donated     decimal.Decimal         `json:"donated" swaggertype:"string" example:"150"`                // Quantity donated in the period
	Distributed decimal.Decimal         `json:"distributed" swaggertype:"string" example:"90"`             // Quantity distributed in the period
	Remaining   decimal.Decimal         `json:"remaining" swaggertype:"string" example:"60"`               // Current quantity in stock
	Unit        models.Unit             `json:"unit" example:"kg"`                                         // Unit of the material
	Status      string                  `json:"status" example:"Shortage" enums:"Shortage,Normal,Surplus"` // Current status of the material
}

type Report struct {
	From    time.Time     `json:"from" example:"2025-02-13T00:00:00Z"` // Start of the period
	To      time.Time     `json:"to" example:"2025-03-15T00:00:00Z"`   // End of the period, exclusive
	Summary []ReportEntry `json:"summary"`                             // One entry per material
}

type ReportResponse struct {
	Data  *Report `json:"data"`                                                                        // The report
	Error *string `json:"error" example:"dates must be specified as YYYY-MM-DD or in RFC 3339 format"` // The error, if any occurred
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsReport)
	r.GET("/summary", GetReport)
	r.OPTIONS("/charts", OptionsReport)
	r.GET("/charts", GetReportCharts)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/summary [options]
// @Router			/v1/reports/charts [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report
// @Description	Returns the donated and distributed quantity per material in a period, together with the current stock.
// @Description	The period is either given by from and to, or as a number of days up to today. It defaults to 30 days.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			from	query		string	false	"First day, YYYY-MM-DD"
// @Param			to		query		string	false	"Last day, YYYY-MM-DD"
// @Param			range	query		int		false	"Number of days up to and including today. Defaults to 30."
// @Router			/v1/reports/summary [get]
func GetReport(c *gin.Context) {
	var query ReportQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(httputil.ErrInvalidQueryString), ReportResponse{
			Error: message(c, httputil.ErrInvalidQueryString),
		})
		return
	}

	from, to, err := query.period(time.Now())
	if err != nil {
		c.JSON(status(err), ReportResponse{
			Error: message(c, err),
		})
		return
	}

	report, err := buildReport(from, to)
	if err != nil {
		c.JSON(status(err), ReportResponse{
			Error: message(c, err),
		})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &report})
}

func buildReport(from, to time.Time) (Report, error) {
	var materials []models.Material
	err := models.DB.Order("name ASC").Find(&materials).Error
	if err != nil {
		return Report{}, err
	}

	var donations []models.Donation
	err = models.DB.Where("date >= ? AND date < ?", from, to).Find(&donations).Error
	if err != nil {
		return Report{}, err
	}

	var distributions []models.Distribution
	err = models.DB.Where("date >= ? AND date < ?", from, to).Find(&distributions).Error
	if err != nil {
		return Report{}, err
	}

	donated := make(map[uuid.UUID]decimal.Decimal)
	for _, donation := range donations {
		donated[donation.MaterialID] = donated[donation.MaterialID].Add(donation.Quantity)
	}

	distributed := make(map[uuid.UUID]decimal.Decimal)
	for _, distribution := range distributions {
		distributed[distribution.MaterialID] = distributed[distribution.MaterialID].Add(distribution.Quantity)
	}

	title := cases.Title(language.English)
	entries := make([]ReportEntry, 0, len(materials))
	for _, material := range materials {
		entries = append(entries, ReportEntry{
			Material:    material.Name,
			MaterialID:  material.ID,
			Category:    material.Category,
			Donated:     donated[material.ID],
			Distributed: distributed[material.ID],
			Remaining:   material.CurrentQuantity,
			Unit:        material.Unit,
			Status:      title.String(string(material.Status())),
		})
	}

	return Report{
		From:    from,
		To:      to,
		Summary: entries,
	}, nil
}
