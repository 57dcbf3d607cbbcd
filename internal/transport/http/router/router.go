package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/sparcom/backend/internal/domain"
	"github.com/sparcom/backend/internal/metrics"
	http_handlers "github.com/sparcom/backend/internal/transport/http/handlers"
	"github.com/sparcom/backend/internal/transport/http/middleware"
	"github.com/sparcom/backend/internal/transport/http/response"
)

type Config struct {
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	CORSAllowedOrigins []string
}

type Deps struct {
	Health *http_handlers.HealthHandler
	Auth   *http_handlers.AuthHandler
	Events *http_handlers.EventsHandler
	Roles  *http_handlers.RolesHandler

	Sessions middleware.SessionResolver
	Logger   zerolog.Logger
}

func New(deps Deps, cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(deps.Logger))
	r.Use(middleware.Metrics)

	if cfg.RLEnabled {
		r.Use(httprate.Limit(
			cfg.RLLimit,
			cfg.RLWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, req *http.Request) {
				response.WriteError(w, req, domain.ErrRateLimited())
			}),
		))
	}

	authMW := middleware.Auth(deps.Sessions, response.WriteError)
	organizerMW := middleware.Require(domain.CanCreateEvents, "organizer", response.WriteError)
	masterMW := middleware.Require(domain.CanReviewApplications, "master", response.WriteError)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.Post("/logout", deps.Auth.Logout)
			r.With(authMW).Get("/me", deps.Auth.Me)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", deps.Events.List)
			r.Get("/{id}", deps.Events.Get)
			r.With(authMW, organizerMW).Post("/", deps.Events.Create)
		})

		r.Route("/roles/applications", func(r chi.Router) {
			r.Use(authMW)
			r.Post("/", deps.Roles.Apply)
			r.Get("/my", deps.Roles.My)
			r.With(masterMW).Get("/", deps.Roles.Pending)
		})
	})

	return r
}
