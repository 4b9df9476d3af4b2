package middleware

import (
	"fmt"
	"net/http"

	"larkspur/config"
	"larkspur/infras/otel"
	"larkspur/shared/cache"
	"larkspur/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	CORS() func(http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// statusWriter captures the status code written by downstream handlers.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   a.config.App.CORS.AllowedOrigins,
		AllowedMethods:   a.config.App.CORS.AllowedMethods,
		AllowedHeaders:   a.config.App.CORS.AllowedHeaders,
		AllowCredentials: a.config.App.CORS.AllowCredentials,
		MaxAge:           a.config.App.CORS.MaxAgeSeconds,
	})
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		route := r.URL.Path
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.route":      route,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": sw.status,
		})
	})
}
