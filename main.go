package main

import (
	"io"
	"net/url"
	"os"

	"github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/internal/costing"
	"github.com/crewplan/backend/internal/dataset"
	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/narrative"
	"github.com/crewplan/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load a .env file if one exists, variables that are already set
	// take precedence
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// The URL the backend is reachable at, used to generate absolute
	// links in responses
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg("environment variable API_URL must be a valid URL")
	}

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	assumptions := costing.DefaultAssumptions()
	router.AttachRoutes(v1.Controller{
		Data:      dataset.New(models.RandomIDs()),
		Costing:   assumptions,
		Summaries: narrative.GeminiSummarizer{Assumptions: assumptions},
	}, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
