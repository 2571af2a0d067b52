package healthz

import (
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health
// @Tags			General
// @Success		204
// @Router			/healthz [get]
func Get(c *gin.Context) {
	// The session store lives in process memory, there is nothing to ping
	c.Status(http.StatusNoContent)
}
