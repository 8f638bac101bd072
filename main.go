package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rhizvo/Budget-Planner/internal/models"
	"github.com/rhizvo/Budget-Planner/internal/router"
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

	// The database location can be overridden, e.g. for containers with
	// a mounted volume
	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dataDir := filepath.Join(".", "data")
		if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}

		dsn = filepath.Join(dataDir, "gorm.db")
	}

	// Connect to the database and migrate all models
	if err := models.Connect(dsn); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"))

	log.Info().Msg("backend startup complete")

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
