package router

import (
	"larkspur/internal/handlers/auth"
	"larkspur/internal/handlers/booking"
	"larkspur/internal/handlers/content"
	"larkspur/internal/handlers/crm"
	"larkspur/internal/handlers/health"
	"larkspur/internal/handlers/media"
	"larkspur/internal/handlers/user"
	"larkspur/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Content content.Handler
	CRM     crm.Handler
	Health  health.Handler
	Media   media.Handler
	User    user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.APIKey)
		routerGroup.Use(r.Middleware.Auth)
		routerGroup.Use(r.Middleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Content.Router(routerGroup)
		r.DomainHandlers.CRM.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     authRole,
	}
}
