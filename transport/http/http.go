package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"larkspur/config"
	"larkspur/internal/domains/crm/service"
	"larkspur/internal/events"
	"larkspur/shared/constant"
	"larkspur/transport/http/middleware"
	"larkspur/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config    *config.Config
	Router    router.Router
	State     ServerState
	mux       *chi.Mux
	app       middleware.AppMiddleware
	crm       service.CRM
	forwarder *events.Forwarder
}

func New(cfg *config.Config, r router.Router, app middleware.AppMiddleware, crm service.CRM, forwarder *events.Forwarder) *HTTP {
	return &HTTP{
		Config:    cfg,
		Router:    r,
		app:       app,
		crm:       crm,
		forwarder: forwarder,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := http.ListenAndServe(net.JoinHostPort("0.0.0.0", h.Config.Server.Port), h.mux); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the fully wired server run behind serverless entry points.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.mux == nil {
		h.setup()
	}

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.setupRoutes()
	h.setupState()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(h.app.CORS())
	h.mux.Use(h.app.Tracing)
	h.mux.Use(h.app.RateLimit())

	h.Router.SetupRoutes(h.mux)
}

func (h *HTTP) setupState() {
	if err := h.crm.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize guest records")
	}

	h.forwarder.Start()
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	h.forwarder.Stop()

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
