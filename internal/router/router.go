package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/crewplan/backend/api"
	"github.com/crewplan/backend/internal/controllers/healthz"
	"github.com/crewplan/backend/internal/controllers/root"
	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/internal/controllers/version"
	"github.com/crewplan/backend/internal/httperror"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var backendVersion = "0.0.0"

// Config sets up the router with all middlewares and the API documentation.
//
// The returned function has to be called before the process exits, it
// cleans up global state the router configuration sets up.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.NewFromString("This HTTP method is not allowed for the endpoint you called"))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	r.Use(MetricsMiddleware())

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", backendVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Crewplan"
	docs.SwaggerInfo.Version = backendVersion
	docs.SwaggerInfo.Description = "The backend for Crewplan, a resource planning and release cost estimation tool. Check out the source code at https://github.com/crewplan/backend."

	return r, func() { unregisterPrometheusMetrics() }, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup) {
	root.RegisterRoutes(group)
	version.RegisterRoutes(group.Group("/version"), backendVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 setup
	v1Group := group.Group("/v1")
	co.RegisterRootRoutes(v1Group)

	co.RegisterReleaseRoutes(v1Group.Group("/releases"))
	co.RegisterResourceRoutes(v1Group.Group("/resources"))
	co.RegisterAllocationRoutes(v1Group.Group("/allocations"))
	co.RegisterImportRoutes(v1Group.Group("/import"))
	co.RegisterExportRoutes(v1Group.Group("/export"))
	co.RegisterOverviewRoutes(v1Group.Group("/overview"))
}
