package v1

import (
	"net/http"

	"github.com/fairshare-aid/backend/internal/httputil"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterDonationRoutes registers the routes for donations with
// the RouterGroup that is passed.
func RegisterDonationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDonationList)
		r.GET("", GetDonations)
		r.POST("", CreateDonations)
	}

	// Donation with ID
	{
		r.OPTIONS("/:id", OptionsDonationDetail)
		r.GET("/:id", GetDonation)
		r.PATCH("/:id", UpdateDonation)
		r.DELETE("/:id", DeleteDonation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donations
// @Success		204
// @Router			/v1/donations [options]
func OptionsDonationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donations/{id} [options]
func OptionsDonationDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Donation{})
}

// @Summary		Record donations
// @Description	Records new donations and adds their quantity to the stock of the material. Requires the X-User-ID header.
// @Tags			Donations
// @Produce		json
// @Success		201			{object}	DonationCreateResponse
// @Failure		400			{object}	DonationCreateResponse
// @Failure		401			{object}	DonationCreateResponse
// @Failure		404			{object}	DonationCreateResponse
// @Failure		500			{object}	DonationCreateResponse
// @Param			X-User-ID	header		string				true	"ID of the acting user"
// @Param			donations	body		[]DonationEditable	true	"Donations"
// @Router			/v1/donations [post]
func CreateDonations(c *gin.Context) {
	user, err := actor(c)
	if err != nil {
		c.JSON(status(err), DonationCreateResponse{
			Error: message(c, err),
		})
		return
	}

	var editables []DonationEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), DonationCreateResponse{
			Error: message(c, err),
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DonationCreateResponse{}

	for _, editable := range editables {
		donation, err := ledger().RecordDonation(c.Request.Context(), editable.input(), user)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		notifyIfCritical(c, donation.MaterialID)

		data := newDonation(c, donation)
		r.Data = append(r.Data, DonationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get donations
// @Description	Returns a list of donations, newest first
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationListResponse
// @Failure		400	{object}	DonationListResponse
// @Failure		500	{object}	DonationListResponse
// @Router			/v1/donations [get]
// @Param			material	query	string	false	"Filter by material ID"
// @Param			donor		query	string	false	"Filter by donor"
// @Param			from		query	string	false	"Donations on or after this date. YYYY-MM-DD or RFC 3339"
// @Param			to			query	string	false	"Donations on or before this date. YYYY-MM-DD or RFC 3339"
// @Param			recent		query	bool	false	"Only return the five most recent donations"
// @Param			offset		query	uint	false	"The offset of the first Donation returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Donations to return. Defaults to 50."
func GetDonations(c *gin.Context) {
	var filter DonationQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(status(httputil.ErrInvalidQueryString), DonationListResponse{
			Error: message(c, httputil.ErrInvalidQueryString),
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("date DESC").
		Where(&filterModel, queryFields...)

	if filter.Donor != "" {
		q = q.Where("donor LIKE ?", "%"+filter.Donor+"%")
	}

	if filter.From != "" {
		from, err := parseDate(filter.From, false)
		if err != nil {
			c.JSON(status(err), DonationListResponse{
				Error: message(c, err),
			})
			return
		}
		q = q.Where("date >= ?", from)
	}

	if filter.To != "" {
		to, err := parseDate(filter.To, true)
		if err != nil {
			c.JSON(status(err), DonationListResponse{
				Error: message(c, err),
			})
			return
		}
		q = q.Where("date <= ?", to)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 donations and set the limit
	limit := 50
	if filter.Recent {
		limit = recentDonations
	} else if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var donations []models.Donation
	err = q.Find(&donations).Error
	if err != nil {
		c.JSON(status(err), DonationListResponse{
			Error: message(c, err),
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		c.JSON(status(err), DonationListResponse{
			Error: message(c, err),
		})
		return
	}

	data := make([]Donation, 0, len(donations))
	for _, donation := range donations {
		data = append(data, newDonation(c, donation))
	}

	c.JSON(http.StatusOK, DonationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get donation
// @Description	Returns a specific donation
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationResponse
// @Failure		400	{object}	DonationResponse
// @Failure		404	{object}	DonationResponse
// @Failure		500	{object}	DonationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donations/{id} [get]
func GetDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), DonationResponse{
			Error: message(c, err),
		})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), DonationResponse{
			Error: message(c, err),
		})
		return
	}

	data := newDonation(c, donation)
	c.JSON(http.StatusOK, DonationResponse{Data: &data})
}

// @Summary		Edit donation
// @Description	Update an existing donation. Only values to be updated need to be specified.
// @Description	When the quantity changes, the stock of the material is corrected by the difference.
// @Tags			Donations
// @Accept			json
// @Produce		json
// @Success		200			{object}	DonationResponse
// @Failure		400			{object}	DonationResponse
// @Failure		404			{object}	DonationResponse
// @Failure		500			{object}	DonationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			donation	body		DonationEditable	true	"Donation"
// @Router			/v1/donations/{id} [patch]
func UpdateDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), DonationResponse{
			Error: message(c, err),
		})
		return
	}

	var donation models.Donation
	err = models.DB.First(&donation, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), DonationResponse{
			Error: message(c, err),
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DonationEditable{})
	if err != nil {
		c.JSON(status(err), DonationResponse{
			Error: message(c, err),
		})
		return
	}

	var data DonationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), DonationResponse{
			Error: message(c, err),
		})
		return
	}

	if slices.Contains(updateFields, "MaterialID") && data.MaterialID != donation.MaterialID {
		c.JSON(status(errDonationMaterialImmutable), DonationResponse{
			Error: message(c, errDonationMaterialImmutable),
		})
		return
	}

	donation, err = ledger().EditDonation(c.Request.Context(), donation.ID, data.update(updateFields))
	if err != nil {
		c.JSON(status(err), DonationResponse{
			Error: message(c, err),
		})
		return
	}

	notifyIfCritical(c, donation.MaterialID)

	r := newDonation(c, donation)
	c.JSON(http.StatusOK, DonationResponse{Data: &r})
}

// @Summary		Delete donation
// @Description	Deletes a donation and removes its quantity from the stock of the material
// @Tags			Donations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donations/{id} [delete]
func DeleteDonation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	materialID, err := ledger().DeleteDonation(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		abort(c, err)
		return
	}

	notifyIfCritical(c, materialID)

	c.JSON(http.StatusNoContent, nil)
}
