package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/tabular"
	"github.com/gin-gonic/gin"
)

type ImportWarning struct {
	Line  int    `json:"line" example:"3"`                                                               // Line of the file the warning was raised for
	Error string `json:"error" example:"the month could not be parsed, it must be formatted as YYYY-MM"` // What was wrong with the line
}

type ImportData struct {
	Releases    int             `json:"releases" example:"2"`     // Number of releases imported
	Resources   int             `json:"resources" example:"5"`    // Number of resources imported
	Allocations int             `json:"allocations" example:"12"` // Number of allocations imported
	Warnings    []ImportWarning `json:"warnings"`                 // Lines that were skipped or adjusted during the import
}

type ImportResponse struct {
	Data  *ImportData `json:"data"`                                                  // Counts and warnings for the imported file
	Error *string     `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
}

// RegisterImportRoutes registers the routes for the CSV import with
// the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsImport)
	r.POST("", co.Import)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import data
// @Description	Replaces all data of the session with the contents of a CSV file
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func (co Controller) Import(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	result, err := tabular.Parse(f, co.Data.IDSource())
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	co.Data.Replace(result.Releases, result.Resources, result.Allocations)

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	warnings := make([]ImportWarning, 0, len(result.Warnings))
	for _, warning := range result.Warnings {
		warnings = append(warnings, ImportWarning{
			Line:  warning.Line,
			Error: warning.Err.Error(),
		})
	}

	c.JSON(http.StatusCreated, ImportResponse{
		Data: &ImportData{
			Releases:    len(result.Releases),
			Resources:   len(result.Resources),
			Allocations: len(result.Allocations),
			Warnings:    warnings,
		},
	})
}
