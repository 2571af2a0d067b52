package v1

import (
	"bytes"
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/tabular"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for the CSV export with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.Export)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all data of the session as a CSV file
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co Controller) Export(c *gin.Context) {
	var buf bytes.Buffer

	err := tabular.Export(&buf, co.Data.Releases(), co.Data.Resources(), co.Data.Allocations(), co.Costing)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("content-disposition", `attachment; filename="crewplan.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
