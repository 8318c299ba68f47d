package v1

import (
	"net/http"
	"strings"

	"github.com/fairshare-aid/backend/internal/httputil"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// RegisterFamilyRoutes registers the routes for families with
// the RouterGroup that is passed.
func RegisterFamilyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFamilyList)
		r.GET("", GetFamilies)
		r.POST("", CreateFamilies)
	}

	// Family with ID
	{
		r.OPTIONS("/:id", OptionsFamilyDetail)
		r.GET("/:id", GetFamily)
		r.PATCH("/:id", UpdateFamily)
		r.DELETE("/:id", DeleteFamily)
		r.GET("/:id/distributions", GetFamilyDistributions)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Router			/v1/families [options]
func OptionsFamilyList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id} [options]
func OptionsFamilyDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Family{})
}

// @Summary		Create families
// @Description	Registers new families. The vulnerability score is computed.
// @Tags			Families
// @Produce		json
// @Success		201			{object}	FamilyCreateResponse
// @Failure		400			{object}	FamilyCreateResponse
// @Failure		500			{object}	FamilyCreateResponse
// @Param			families	body		[]FamilyEditable	true	"Families"
// @Router			/v1/families [post]
func CreateFamilies(c *gin.Context) {
	var editables []FamilyEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), FamilyCreateResponse{
			Error: message(c, err),
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FamilyCreateResponse{}

	for _, editable := range editables {
		family := editable.model()

		err = models.DB.Create(&family).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newFamily(c, family)
		r.Data = append(r.Data, FamilyResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get families
// @Description	Returns a list of families
// @Tags			Families
// @Produce		json
// @Success		200	{object}	FamilyListResponse
// @Failure		400	{object}	FamilyListResponse
// @Failure		500	{object}	FamilyListResponse
// @Router			/v1/families [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			familySize	query	int		false	"Filter by family size"
// @Param			area		query	string	false	"Filter by area, * matches any text"
// @Param			search		query	string	false	"Search for this text in name and area"
// @Param			offset		query	uint	false	"The offset of the first Family returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Families to return. Defaults to 50."
func GetFamilies(c *gin.Context) {
	var filter FamilyQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(status(httputil.ErrInvalidQueryString), FamilyListResponse{
			Error: message(c, httputil.ErrInvalidQueryString),
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Search, "name", "area")

	var families []models.Family
	err = q.Find(&families).Error
	if err != nil {
		c.JSON(status(err), FamilyListResponse{
			Error: message(c, err),
		})
		return
	}

	// The area pattern is matched here, so pagination is
	// applied to the matching families
	if slices.Contains(setFields, "Area") {
		families = matchArea(families, filter.Area)
	}

	// Default to 50 families and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	total := len(families)
	start := min(int(filter.Offset), total)
	end := total
	if limit >= 0 {
		end = min(start+limit, total)
	}

	data := make([]Family, 0, end-start)
	for _, family := range families[start:end] {
		data = append(data, newFamily(c, family))
	}

	c.JSON(http.StatusOK, FamilyListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// matchArea returns the families whose area matches the pattern.
// The match ignores case, * matches any text.
func matchArea(families []models.Family, pattern string) []models.Family {
	pattern = strings.ToLower(strings.TrimSpace(pattern))

	matching := make([]models.Family, 0, len(families))
	for _, family := range families {
		if glob.Glob(pattern, strings.ToLower(family.Area)) {
			matching = append(matching, family)
		}
	}

	return matching
}

// @Summary		Get family
// @Description	Returns a specific family
// @Tags			Families
// @Produce		json
// @Success		200	{object}	FamilyResponse
// @Failure		400	{object}	FamilyResponse
// @Failure		404	{object}	FamilyResponse
// @Failure		500	{object}	FamilyResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id} [get]
func GetFamily(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), FamilyResponse{
			Error: message(c, err),
		})
		return
	}

	var family models.Family
	err = models.DB.First(&family, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), FamilyResponse{
			Error: message(c, err),
		})
		return
	}

	data := newFamily(c, family)
	c.JSON(http.StatusOK, FamilyResponse{Data: &data})
}

// @Summary		Update family
// @Description	Update an existing family. Only values to be updated need to be specified. The vulnerability score is recomputed.
// @Tags			Families
// @Accept			json
// @Produce		json
// @Success		200		{object}	FamilyResponse
// @Failure		400		{object}	FamilyResponse
// @Failure		404		{object}	FamilyResponse
// @Failure		500		{object}	FamilyResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			family	body		FamilyEditable	true	"Family"
// @Router			/v1/families/{id} [patch]
func UpdateFamily(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), FamilyResponse{
			Error: message(c, err),
		})
		return
	}

	var family models.Family
	err = models.DB.First(&family, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), FamilyResponse{
			Error: message(c, err),
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, FamilyEditable{})
	if err != nil {
		c.JSON(status(err), FamilyResponse{
			Error: message(c, err),
		})
		return
	}

	var data FamilyEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), FamilyResponse{
			Error: message(c, err),
		})
		return
	}

	data.apply(&family, updateFields)

	// The full model is saved so that the vulnerability is recomputed
	err = models.DB.Omit(clause.Associations).Save(&family).Error
	if err != nil {
		c.JSON(status(err), FamilyResponse{
			Error: message(c, err),
		})
		return
	}

	r := newFamily(c, family)
	c.JSON(http.StatusOK, FamilyResponse{Data: &r})
}

// @Summary		Delete family
// @Description	Deletes a family
// @Tags			Families
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id} [delete]
func DeleteFamily(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	var family models.Family
	err = models.DB.First(&family, "id = ?", uri.ID.UUID).Error
	if err != nil {
		abort(c, err)
		return
	}

	err = models.DB.Delete(&family).Error
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get distributions of a family
// @Description	Returns all distributions to the family, newest first
// @Tags			Families
// @Produce		json
// @Success		200	{object}	DistributionListResponse
// @Failure		400	{object}	DistributionListResponse
// @Failure		404	{object}	DistributionListResponse
// @Failure		500	{object}	DistributionListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/distributions [get]
func GetFamilyDistributions(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), DistributionListResponse{
			Error: message(c, err),
		})
		return
	}

	var family models.Family
	err = models.DB.First(&family, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), DistributionListResponse{
			Error: message(c, err),
		})
		return
	}

	var distributions []models.Distribution
	err = models.DB.
		Where(&models.Distribution{BeneficiaryID: family.ID}).
		Order("date DESC").
		Find(&distributions).Error
	if err != nil {
		c.JSON(status(err), DistributionListResponse{
			Error: message(c, err),
		})
		return
	}

	data := make([]Distribution, 0, len(distributions))
	for _, distribution := range distributions {
		data = append(data, newDistribution(c, distribution))
	}

	c.JSON(http.StatusOK, DistributionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Total: int64(len(data)),
			Limit: len(data),
		},
	})
}
