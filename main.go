package main

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	v1 "github.com/pocketdiary/backend/internal/controllers/v1"
	"github.com/pocketdiary/backend/internal/models"
	"github.com/pocketdiary/backend/internal/router"
	"github.com/pocketdiary/backend/internal/settlement"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
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

	// The base URL the API is reachable at, used to construct links
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database. This also migrates the schema and seeds
	// the default settings.
	err = models.Connect("data/pocketdiary.db")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config(url)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group(url.Path))

	// The settlement checker writes the end of day summary once the
	// configured settlement time has passed
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checker := settlement.Checker{
		SettlementTime: func() (string, error) {
			settings, err := models.LoadSettings(models.DB)
			if err != nil {
				return "", err
			}

			return settings.SettlementTime, nil
		},
		Breakdown: v1.ComputeBreakdown,
	}
	go checker.Run(ctx)

	// r.Run() uses the PORT environment variable if set
	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
