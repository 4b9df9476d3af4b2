package health

import (
	"net/http"

	"larkspur/config"
	"larkspur/infras/postgres"
	"larkspur/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	cfg   *config.Config
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(cfg *config.Config, db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the server and its backing stores are reachable.
// @Summary Health check
// @Description Ping the database and cache and report server health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Server healthy"
// @Failure 503 {object} response.Message "Server unhealthy"
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("database unreachable")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("cache unreachable")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, handler.cfg.App.Name+" is healthy")
}
