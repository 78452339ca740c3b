package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"roadnav.opentransit.org/internal/app"
	"roadnav.opentransit.org/internal/appconf"
	"roadnav.opentransit.org/internal/logging"
	"roadnav.opentransit.org/internal/nav"
	"roadnav.opentransit.org/internal/restapi"
	"roadnav.opentransit.org/internal/webui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine; flags and real env vars still apply.
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg appconf.Config
	var envFlag string
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", envOrDefault("NAV_ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", envOrDefault("NAV_API_KEYS", "test"), "Comma separated API keys")
	flag.StringVar(&cfg.NetworkPath, "network", envOrDefault("NAV_NETWORK", ""), "Path to a JSON network snapshot to load at startup")
	flag.StringVar(&cfg.GTFSSource, "gtfs-source", envOrDefault("NAV_GTFS_SOURCE", ""), "GTFS static feed (URL or zip file) to build the network from")
	flag.StringVar(&cfg.DBPath, "db-path", envOrDefault("NAV_DB_PATH", "navigator.db"), "SQLite database used to persist the network")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per API key")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose database logging")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	navManager, err := nav.InitNavManager(nav.Config{
		NetworkPath: cfg.NetworkPath,
		GTFSSource:  cfg.GTFSSource,
		DBPath:      cfg.DBPath,
		Env:         cfg.Env,
		Verbose:     cfg.Verbose,
	})
	if err != nil {
		logging.LogError(logger, "failed to initialize navigation manager", err)
		os.Exit(1)
	}

	navManager.PrintStatistics(context.Background())

	application := &app.Application{
		Config:     cfg,
		Logger:     logger,
		NavManager: navManager,
	}

	api := restapi.NewRestAPI(application)
	ui := webui.NewWebUI(application)

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	ui.SetWebUIRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.ApplyMiddleware(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())

	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logging.LogError(logger, "server stopped unexpectedly", err)
		navManager.Shutdown()
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logging.LogError(logger, "graceful shutdown failed", err)
	}

	navManager.Shutdown()
	logger.Info("server stopped")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
