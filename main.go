package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/color-swatch/api/api"
	"github.com/color-swatch/api/datastore"
	"github.com/color-swatch/api/logger"
	"github.com/color-swatch/api/metrics"
	"github.com/color-swatch/api/migrations"
)

func main() {
	config, err := api.LoadConfig()
	if err != nil {
		bootLog := logger.New(true)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(config.DevMode)

	colorRepo, closeDB, err := openColorRepository(config, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up color storage")
	}
	defer closeDB()

	app := &api.Application{
		Config:       config,
		Logger:       log,
		ColorRepo:    colorRepo,
		Auth:         api.SessionTokenAuthenticator{APIKey: config.APIKey, APISecret: config.APISecret},
		WriteLimiter: config.NewWriteLimiter(),
	}

	if config.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics.RegisterCollectors(reg)
		app.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	mux := http.NewServeMux()

	log.Info().Str("storage", config.DatabaseType).Msg("color swatch admin starting")
	if err := app.Serve(mux); err != nil {
		log.Error().Err(err).Msg("server error")
		closeDB()
		os.Exit(1)
	}
}

// openColorRepository connects the configured storage and runs its migrations
func openColorRepository(config api.Config, log zerolog.Logger) (datastore.ColorRepository, func(), error) {
	if config.DatabaseType == "memory" {
		log.Warn().Msg("using in-memory color storage, colors are lost on restart")
		return datastore.NewMemoryColorStore(), func() {}, nil
	}

	dialect, err := datastore.ParseDialect(config.DatabaseType)
	if err != nil {
		return nil, nil, err
	}

	connStr := config.DatabasePath
	if dialect == datastore.Postgres {
		connStr = datastore.BuildDBConnStr(
			config.DatabaseHost,
			config.DatabasePort,
			config.DatabasePassword,
			config.DatabaseUser,
			config.DatabaseName,
			config.SSLMode,
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbConn, err := datastore.NewDB(ctx, dialect, connStr)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { dbConn.Close() }

	if err := migrations.RunMigrations(ctx, dbConn, dialect, log); err != nil {
		closeDB()
		return nil, nil, err
	}

	colorRepo, err := datastore.NewColorDatabase(dbConn, dialect)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	return colorRepo, closeDB, nil
}
