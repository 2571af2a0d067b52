package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary		Delete everything
// @Description	Permanently deletes all data of the session
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all data. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	co.Data.Clear()
	c.JSON(http.StatusNoContent, nil)
}
