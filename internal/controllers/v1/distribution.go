package v1

import (
	"net/http"

	"github.com/fairshare-aid/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterDistributionRoutes registers the routes for distribution
// suggestions and execution with the RouterGroup that is passed.
func RegisterDistributionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/suggest", OptionsDistribution)
	r.POST("/suggest", SuggestDistribution)
	r.OPTIONS("/execute", OptionsDistribution)
	r.POST("/execute", ExecuteDistribution)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Distribution
// @Success		204
// @Router			/v1/distribution/suggest [options]
// @Router			/v1/distribution/execute [options]
func OptionsDistribution(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Suggest a distribution
// @Description	Suggests how to split the current stock of a material between all families.
// @Description	The equal strategy gives every family the same quantity, the priority strategy weighs families by size plus vulnerability.
// @Description	Quantities are rounded down, the sum never exceeds the stock.
// @Tags			Distribution
// @Accept			json
// @Produce		json
// @Success		200			{object}	SuggestResponse
// @Failure		400			{object}	SuggestResponse
// @Failure		404			{object}	SuggestResponse
// @Failure		500			{object}	SuggestResponse
// @Param			request		body		SuggestRequest	true	"Material and strategy"
// @Router			/v1/distribution/suggest [post]
func SuggestDistribution(c *gin.Context) {
	var request SuggestRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), SuggestResponse{
			Error: message(c, err),
		})
		return
	}

	material, suggestions, err := ledger().SuggestDistribution(c.Request.Context(), request.MaterialID, request.Strategy)
	if err != nil {
		c.JSON(status(err), SuggestResponse{
			Error: message(c, err),
		})
		return
	}

	c.JSON(http.StatusOK, SuggestResponse{
		Data: &Suggestions{
			Material:    material.Name,
			MaterialID:  material.ID,
			Unit:        material.Unit,
			Available:   material.CurrentQuantity,
			Strategy:    request.Strategy,
			Suggestions: suggestions,
		},
	})
}

// @Summary		Execute a distribution
// @Description	Records a distribution for every entry and removes the total from the stock of the material.
// @Description	Entries for unknown families and entries with a quantity that is not positive are skipped.
// @Description	Requires the X-User-ID header.
// @Tags			Distribution
// @Accept			json
// @Produce		json
// @Success		201			{object}	ExecuteResponse
// @Failure		400			{object}	ExecuteResponse
// @Failure		401			{object}	ExecuteResponse
// @Failure		404			{object}	ExecuteResponse
// @Failure		500			{object}	ExecuteResponse
// @Param			X-User-ID	header		string			true	"ID of the acting user"
// @Param			request		body		ExecuteRequest	true	"Distribution"
// @Router			/v1/distribution/execute [post]
func ExecuteDistribution(c *gin.Context) {
	user, err := actor(c)
	if err != nil {
		c.JSON(status(err), ExecuteResponse{
			Error: message(c, err),
		})
		return
	}

	var request ExecuteRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), ExecuteResponse{
			Error: message(c, err),
		})
		return
	}

	result, err := ledger().ExecuteDistribution(c.Request.Context(), request.input(), user)
	if err != nil {
		c.JSON(status(err), ExecuteResponse{
			Error: message(c, err),
		})
		return
	}

	notifyIfCritical(c, request.MaterialID)

	data := ExecuteResult{
		TotalDistributed: result.Total,
		Distributions:    make([]Distribution, 0, len(result.Distributions)),
	}
	for _, distribution := range result.Distributions {
		data.Distributions = append(data.Distributions, newDistribution(c, distribution))
	}

	c.JSON(http.StatusCreated, ExecuteResponse{Data: &data})
}
