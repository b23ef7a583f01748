package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-cursos/internal/http/handlers"
	appmw "service-cursos/internal/http/middleware"
	"service-cursos/internal/http/middleware/ratelimit"
	"service-cursos/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	h *handlers.Handlers,
	cursos *handlers.CursoHandler,
	rl *ratelimit.Middleware,
	logger logx.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(appmw.Observability(logger))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if rl != nil {
			r.Use(rl.Handler())
		}
		r.Route("/cursos", func(r chi.Router) {
			r.Get("/", cursos.List)
			r.Post("/", cursos.Create)
			r.Get("/{id}", cursos.GetByID)
			r.Put("/{id}", cursos.Update)
			r.Delete("/{id}", cursos.Delete)
		})
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
