package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ngmaloney/wandersoul/internal/config"
	"github.com/ngmaloney/wandersoul/internal/database"
	"github.com/ngmaloney/wandersoul/internal/geocoding"
	"github.com/ngmaloney/wandersoul/internal/logger"
	"github.com/ngmaloney/wandersoul/internal/mapview"
	"github.com/ngmaloney/wandersoul/internal/planner"
	"github.com/ngmaloney/wandersoul/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	apiURL := flag.String("api", cfg.APIBaseURL, "Base URL of the recommendation backend")
	lat := flag.Float64("lat", cfg.DefaultLatitude, "Default latitude for the preference form")
	lon := flag.Float64("lon", cfg.DefaultLongitude, "Default longitude for the preference form")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	noProvision := flag.Bool("no-provision", !cfg.Provision, "Skip first-run downloads of the ZIP code table and coastline")
	flag.Parse()

	if err := logger.Init(cfg.LogFile, *logLevel, zap.String("api", *apiURL)); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Log

	db, err := database.Open(cfg.DBPath())
	if err != nil {
		log.Error("opening local database", zap.Error(err))
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	opts := ui.Options{
		Client:           planner.NewClient(*apiURL, cfg.UserAgent, log.Named("planner")),
		Geocoder:         geocoding.NewGeocoder(db, cfg.UserAgent, log.Named("geocoding")),
		Opener:           ui.BrowserOpener{},
		Logger:           log.Named("ui"),
		DefaultLatitude:  *lat,
		DefaultLongitude: *lon,
		NotificationTTL:  cfg.NotificationTTL,
		LoadBasemap:      func() (*mapview.Basemap, error) { return mapview.LoadBasemap(db) },
	}
	if !*noProvision {
		opts.Setup = setupSteps(db, cfg.DataDir, log)
	}

	log.Info("starting wandersoul", zap.Float64("lat", *lat), zap.Float64("lon", *lon))

	p := tea.NewProgram(ui.NewModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", zap.Error(err))
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// setupSteps lists the first-run downloads. Each step is a no-op once its
// table exists.
func setupSteps(db *sql.DB, dataDir string, log *zap.Logger) []ui.SetupStep {
	return []ui.SetupStep{
		{
			Name: "Downloading ZIP code table",
			Run: func(ctx context.Context) error {
				return geocoding.ProvisionZipcodes(ctx, db, dataDir, log.Named("provision"))
			},
		},
		{
			Name: "Downloading coastline map",
			Run: func(ctx context.Context) error {
				return mapview.ProvisionBasemap(ctx, db, dataDir, log.Named("provision"))
			},
		},
	}
}
