package content

import (
	"net/http"

	"larkspur/infras/otel"
	"larkspur/internal/domains/content/model/dto"
	"larkspur/internal/domains/content/service"
	"larkspur/shared/constant"
	"larkspur/shared/validator"
	"larkspur/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hero", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHero)
		routerGroup.Post("/", handler.SetHero)
	})

	router.Route("/home", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHome)
		routerGroup.Post("/", handler.SetHome)
	})

	router.Route("/site-config", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSiteConfig)
		routerGroup.Post("/", handler.SetSiteConfig)
		routerGroup.Put("/", handler.SetSiteConfig)
		routerGroup.Delete("/", handler.DeleteSiteConfig)
	})
}

// GetHero retrieves the hero section content.
// @Summary Get hero content
// @Description Retrieve the hero section content, falling back to defaults when unset.
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} dto.HeroContent "Hero content"
// @Failure 500 {object} response.Error
// @Router /v1/hero [get]
func (handler *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHero")
	defer scope.End()

	hero, err := handler.service.GetHero(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hero content")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hero content retrieved successfully")

	response.WithJSON(w, http.StatusOK, hero)
}

// SetHero replaces the hero section content.
// @Summary Update hero content
// @Description Replace the hero section content with the provided document.
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.HeroContent true "Hero Content"
// @Success 200 {object} response.Message "Hero content updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hero [post]
// @Security BearerAuth
func (handler *Handler) SetHero(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetHero")
	defer scope.End()

	req := dto.HeroContent{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetHero(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hero content")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hero content updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hero content updated successfully")
}

// GetHome retrieves the home page content.
// @Summary Get home content
// @Description Retrieve the home page content, falling back to defaults when unset.
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} dto.HomeContent "Home content"
// @Failure 500 {object} response.Error
// @Router /v1/home [get]
func (handler *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHome")
	defer scope.End()

	home, err := handler.service.GetHome(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get home content")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Home content retrieved successfully")

	response.WithJSON(w, http.StatusOK, home)
}

// SetHome replaces the home page content.
// @Summary Update home content
// @Description Replace the home page content with the provided document.
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.HomeContent true "Home Content"
// @Success 200 {object} response.Message "Home content updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/home [post]
// @Security BearerAuth
func (handler *Handler) SetHome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetHome")
	defer scope.End()

	req := dto.HomeContent{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetHome(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update home content")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Home content updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Home content updated successfully")
}

// GetSiteConfig retrieves the site configuration.
// @Summary Get site configuration
// @Description Retrieve the site configuration, falling back to defaults when unset.
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} dto.SiteConfig "Site configuration"
// @Failure 500 {object} response.Error
// @Router /v1/site-config [get]
func (handler *Handler) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSiteConfig")
	defer scope.End()

	cfg, err := handler.service.GetSiteConfig(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get site config")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Site config retrieved successfully")

	response.WithJSON(w, http.StatusOK, cfg)
}

// SetSiteConfig replaces the site configuration.
// @Summary Update site configuration
// @Description Replace the site configuration. The navigation must retain an active home item.
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.SiteConfig true "Site Configuration"
// @Success 200 {object} response.Message "Site config updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/site-config [put]
// @Security BearerAuth
func (handler *Handler) SetSiteConfig(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetSiteConfig")
	defer scope.End()

	req := dto.SiteConfig{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetSiteConfig(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update site config")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Site config updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Site config updated successfully")
}

// DeleteSiteConfig removes the stored site configuration.
// @Summary Delete site configuration
// @Description Remove the stored site configuration so defaults apply again.
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Site config deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/site-config [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSiteConfig(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSiteConfig")
	defer scope.End()

	if err := handler.service.DeleteSiteConfig(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete site config")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Site config deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Site config deleted successfully")
}
