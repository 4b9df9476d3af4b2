//go:build wireinject
// +build wireinject

package di

import (
	"larkspur/config"
	"larkspur/infras/jwt"
	"larkspur/infras/kafka"
	"larkspur/infras/otel"
	"larkspur/infras/postgres"
	"larkspur/infras/redis"
	"larkspur/infras/s3"
	"larkspur/internal/events"
	"larkspur/permissions"
	"larkspur/shared/cache"
	"larkspur/shared/pubsub"
	"larkspur/transport/http"
	"larkspur/transport/http/middleware"
	"larkspur/transport/http/router"

	authService "larkspur/internal/domains/auth/service"
	bookingRepository "larkspur/internal/domains/booking/repository"
	bookingService "larkspur/internal/domains/booking/service"
	contentRepository "larkspur/internal/domains/content/repository"
	contentService "larkspur/internal/domains/content/service"
	crmService "larkspur/internal/domains/crm/service"
	crmStore "larkspur/internal/domains/crm/store"
	mediaRepository "larkspur/internal/domains/media/repository"
	mediaService "larkspur/internal/domains/media/service"
	userRepository "larkspur/internal/domains/user/repository"
	userService "larkspur/internal/domains/user/service"

	authHandler "larkspur/internal/handlers/auth"
	bookingHandler "larkspur/internal/handlers/booking"
	contentHandler "larkspur/internal/handlers/content"
	crmHandler "larkspur/internal/handlers/crm"
	healthHandler "larkspur/internal/handlers/health"
	mediaHandler "larkspur/internal/handlers/media"
	userHandler "larkspur/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	pubsub.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var mediaDomain = wire.NewSet(
	mediaRepository.New,
	mediaService.New,
)

var crmDomain = wire.NewSet(
	crmStore.New,
	crmService.New,
	events.NewForwarder,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	bookingDomain,
	contentDomain,
	mediaDomain,
	crmDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	contentHandler.New,
	crmHandler.New,
	healthHandler.New,
	mediaHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
