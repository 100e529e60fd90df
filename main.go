package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/internal/config"
	"github.com/nremp/dashboard/pkg/auth"
	"github.com/nremp/dashboard/pkg/controllers"
	"github.com/nremp/dashboard/pkg/fleet"
	"github.com/nremp/dashboard/pkg/notes"
	"github.com/nremp/dashboard/pkg/realtime"
	"github.com/nremp/dashboard/pkg/router"
	"github.com/nremp/dashboard/pkg/session"
	"github.com/nremp/dashboard/pkg/store/sqlstore"
	"github.com/nremp/dashboard/pkg/users"
	"github.com/nremp/dashboard/pkg/workspace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(filepath.Dir(cfg.DatabasePath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	st, err := sqlstore.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	provider, err := auth.NewLocal(st.DB(), auth.LocalConfig{
		Secret:   []byte(cfg.TokenSecret),
		TokenTTL: cfg.TokenTTL,
	})
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	var fleetService fleet.Service = fleet.Mock{Delay: cfg.FleetMockDelay}
	if cfg.FleetAPIURL != "" {
		fleetService = fleet.NewClient(cfg.FleetAPIURL, cfg.FleetAPIToken, cfg.FleetAPIKey, nil)
		log.Info().Str("url", cfg.FleetAPIURL).Msg("Fleet inventory")
	} else {
		log.Info().Dur("delay", cfg.FleetMockDelay).Msg("Using mocked fleet inventory")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := session.New(provider, st, cfg.BootstrapAdminEmail)
	sess.Start(ctx)

	ws := workspace.New(st, fleetService, sess)
	ws.Start(ctx)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := realtime.RegisterMetrics(registry); err != nil {
		log.Fatal().Msg(err.Error())
	}

	opts := router.Options{
		AllowOrigins: cfg.CORSAllowOrigins,
		EnablePprof:  cfg.EnablePprof,
		Language:     cfg.Language(),
		Registry:     registry,
	}

	r, err := router.Config(&cfg.APIURL, opts)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(controllers.Controller{
		DB:        st.DB(),
		Auth:      provider,
		Session:   sess,
		Workspace: ws,
		Notes:     notes.NewService(st, sess),
		Users:     users.NewService(st, provider, sess),
	}, r.Group("/"), opts)

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.ListenAddress).Msg("Listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown")
	}

	ws.Close()
	sess.Close()

	if err := st.Close(); err != nil {
		log.Error().Err(err).Msg("Closing the store")
	}
}
