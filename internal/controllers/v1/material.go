package v1

import (
	"net/http"
	"strings"

	"github.com/fairshare-aid/backend/internal/httputil"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterMaterialRoutes registers the routes for materials with
// the RouterGroup that is passed.
func RegisterMaterialRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMaterialList)
		r.GET("", GetMaterials)
		r.POST("", CreateMaterials)
		r.GET("/critical", GetCriticalMaterials)
		r.GET("/categories", GetMaterialCategories)
	}

	// Material with ID
	{
		r.OPTIONS("/:id", OptionsMaterialDetail)
		r.GET("/:id", GetMaterial)
		r.PATCH("/:id", UpdateMaterial)
		r.DELETE("/:id", DeleteMaterial)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Materials
// @Success		204
// @Router			/v1/materials [options]
func OptionsMaterialList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Materials
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/materials/{id} [options]
func OptionsMaterialDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Material{})
}

// @Summary		Create materials
// @Description	Creates new materials
// @Tags			Materials
// @Produce		json
// @Success		201			{object}	MaterialCreateResponse
// @Failure		400			{object}	MaterialCreateResponse
// @Failure		409			{object}	MaterialCreateResponse
// @Failure		500			{object}	MaterialCreateResponse
// @Param			materials	body		[]MaterialEditable	true	"Materials"
// @Router			/v1/materials [post]
func CreateMaterials(c *gin.Context) {
	var editables []MaterialEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), MaterialCreateResponse{
			Error: message(c, err),
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := MaterialCreateResponse{}

	for _, editable := range editables {
		material, err := ledger().CreateMaterial(c.Request.Context(), editable.model())
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newMaterial(c, material)
		r.Data = append(r.Data, MaterialResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get materials
// @Description	Returns a list of materials
// @Tags			Materials
// @Produce		json
// @Success		200	{object}	MaterialListResponse
// @Failure		400	{object}	MaterialListResponse
// @Failure		500	{object}	MaterialListResponse
// @Router			/v1/materials [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			category	query	string	false	"Filter by category"
// @Param			sku			query	string	false	"Filter by SKU"
// @Param			unit		query	string	false	"Filter by unit"
// @Param			search		query	string	false	"Search for this text in name and SKU"
// @Param			offset		query	uint	false	"The offset of the first Material returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Materials to return. Defaults to 50."
func GetMaterials(c *gin.Context) {
	var filter MaterialQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(status(httputil.ErrInvalidQueryString), MaterialListResponse{
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

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Search, "name", "sku")

	if filter.SKU != "" {
		q = q.Where("sku = ?", strings.ToUpper(strings.TrimSpace(filter.SKU)))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 materials and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var materials []models.Material
	err = q.Find(&materials).Error
	if err != nil {
		c.JSON(status(err), MaterialListResponse{
			Error: message(c, err),
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		c.JSON(status(err), MaterialListResponse{
			Error: message(c, err),
		})
		return
	}

	data := make([]Material, 0, len(materials))
	for _, material := range materials {
		data = append(data, newMaterial(c, material))
	}

	c.JSON(http.StatusOK, MaterialListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get critical materials
// @Description	Returns all materials with a shortage or a surplus
// @Tags			Materials
// @Produce		json
// @Success		200	{object}	MaterialListResponse
// @Failure		500	{object}	MaterialListResponse
// @Router			/v1/materials/critical [get]
func GetCriticalMaterials(c *gin.Context) {
	var materials []models.Material
	err := models.DB.Order("name ASC").Find(&materials).Error
	if err != nil {
		c.JSON(status(err), MaterialListResponse{
			Error: message(c, err),
		})
		return
	}

	data := make([]Material, 0)
	for _, material := range materials {
		if material.Status().Critical() {
			data = append(data, newMaterial(c, material))
		}
	}

	c.JSON(http.StatusOK, MaterialListResponse{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Total: int64(len(data)),
			Limit: len(data),
		},
	})
}

// @Summary		Get material categories
// @Description	Returns all valid material categories
// @Tags			Materials
// @Produce		json
// @Success		200	{object}	MaterialCategoryListResponse
// @Router			/v1/materials/categories [get]
func GetMaterialCategories(c *gin.Context) {
	c.JSON(http.StatusOK, MaterialCategoryListResponse{
		Data: models.MaterialCategories,
	})
}

// @Summary		Get material
// @Description	Returns a specific material
// @Tags			Materials
// @Produce		json
// @Success		200	{object}	MaterialResponse
// @Failure		400	{object}	MaterialResponse
// @Failure		404	{object}	MaterialResponse
// @Failure		500	{object}	MaterialResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/materials/{id} [get]
func GetMaterial(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), MaterialResponse{
			Error: message(c, err),
		})
		return
	}

	var material models.Material
	err = models.DB.First(&material, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), MaterialResponse{
			Error: message(c, err),
		})
		return
	}

	data := newMaterial(c, material)
	c.JSON(http.StatusOK, MaterialResponse{Data: &data})
}

// @Summary		Update material
// @Description	Update an existing material. Only values to be updated need to be specified.
// @Description	Setting the current quantity is a manual stock correction. Stock alerts are sent if the material becomes critical.
// @Tags			Materials
// @Accept			json
// @Produce		json
// @Success		200			{object}	MaterialResponse
// @Failure		400			{object}	MaterialResponse
// @Failure		404			{object}	MaterialResponse
// @Failure		409			{object}	MaterialResponse
// @Failure		500			{object}	MaterialResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			material	body		MaterialEditable	true	"Material"
// @Router			/v1/materials/{id} [patch]
func UpdateMaterial(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), MaterialResponse{
			Error: message(c, err),
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MaterialEditable{})
	if err != nil {
		c.JSON(status(err), MaterialResponse{
			Error: message(c, err),
		})
		return
	}

	var data MaterialEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), MaterialResponse{
			Error: message(c, err),
		})
		return
	}

	material, err := ledger().AdjustMaterial(c.Request.Context(), uri.ID.UUID, data.update(updateFields))
	if err != nil {
		c.JSON(status(err), MaterialResponse{
			Error: message(c, err),
		})
		return
	}

	notifyIfCritical(c, material.ID)

	r := newMaterial(c, material)
	c.JSON(http.StatusOK, MaterialResponse{Data: &r})
}

// @Summary		Delete material
// @Description	Deletes a material
// @Tags			Materials
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/materials/{id} [delete]
func DeleteMaterial(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	var material models.Material
	err = models.DB.First(&material, "id = ?", uri.ID.UUID).Error
	if err != nil {
		abort(c, err)
		return
	}

	err = models.DB.Delete(&material).Error
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
