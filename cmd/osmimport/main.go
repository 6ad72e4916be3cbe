package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"campus-coffee-backend/config"
	"campus-coffee-backend/internal/db"
	"campus-coffee-backend/internal/osm"
	"campus-coffee-backend/internal/service"
	"campus-coffee-backend/internal/store"
)

// One-off importer: fetches a single OSM node and upserts it as a pos.
func main() {
	nodeID := flag.Int64("node", 0, "OSM node ID to import")
	configPath := flag.String("config", "./config/config.yaml", "path to the config file")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Str("app", "osmimport").Logger()

	if *nodeID <= 0 {
		log.Fatal().Msg("--node is required and must be positive")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load configuration")
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	posService := service.NewPosService(store.NewGormStore(gormDB), osm.NewStubClient(log), log)

	pos, err := posService.ImportFromOsm(context.Background(), *nodeID)
	if err != nil {
		log.Fatal().Err(err).Int64("node_id", *nodeID).Msg("import failed")
	}

	log.Info().
		Int64("node_id", *nodeID).
		Int64("pos_id", pos.ID).
		Str("name", pos.Name).
		Msg("import complete")
}
