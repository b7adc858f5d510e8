package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/royalstarlog/freightdesk-backend/api/controllers"
	"github.com/royalstarlog/freightdesk-backend/api/middleware"
	"github.com/royalstarlog/freightdesk-backend/internal/agents"
	authsvc "github.com/royalstarlog/freightdesk-backend/internal/auth"
	"github.com/royalstarlog/freightdesk-backend/internal/carriers"
	"github.com/royalstarlog/freightdesk-backend/internal/loads"
	"github.com/royalstarlog/freightdesk-backend/internal/rateconfirmations"
	"github.com/royalstarlog/freightdesk-backend/internal/shippers"
	"github.com/royalstarlog/freightdesk-backend/pkg/auth/session"
	"github.com/royalstarlog/freightdesk-backend/pkg/config"
	"github.com/royalstarlog/freightdesk-backend/pkg/db"
	"github.com/royalstarlog/freightdesk-backend/pkg/logger"
	"github.com/royalstarlog/freightdesk-backend/pkg/metrics"
	"github.com/royalstarlog/freightdesk-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redis.Client
	Sessions session.AccessSessionChecker

	AuthService    authsvc.Service
	AgentService   agents.Service
	LoadService    loads.Service
	ShipperService shippers.Service
	CarrierService carriers.Service
	RateConService rateconfirmations.Service

	UploadDir string
}

// NewRouter wires the full route tree: health, auth, the five entity
// resources, document viewing, and static upload serving.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Logging(logg),
		metrics.Middleware("freightdesk-api"),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		login := r.With()
		if deps.Redis != nil {
			policy := middleware.NewAuthRateLimitPolicy(
				"login",
				cfg.RateLimit.LoginWindow,
				cfg.RateLimit.LoginIPLimit,
				cfg.RateLimit.LoginEmailLimit,
			)
			login = r.With(middleware.AuthRateLimit(policy, deps.Redis, logg))
		}
		login.Post("/login", controllers.Login(deps.AuthService, logg))
		r.With(middleware.RequireAuth(cfg.JWT, deps.Sessions, logg)).
			Post("/logout", controllers.Logout(deps.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.JWT, deps.Sessions, logg))

		r.Route("/agents", func(r chi.Router) {
			r.Post("/", controllers.AgentCreate(deps.AgentService, logg))
			r.Get("/", controllers.AgentList(deps.AgentService, logg))
			r.Get("/{id}", controllers.AgentGet(deps.AgentService, logg))
			r.Put("/{id}", controllers.AgentUpdate(deps.AgentService, logg))
			r.Delete("/{id}", controllers.AgentDelete(deps.AgentService, logg))
		})

		// legacy alias kept for clients that list without a filter
		r.Get("/all-loads", controllers.LoadList(deps.LoadService, logg))

		r.Route("/loads", func(r chi.Router) {
			r.Post("/", controllers.LoadCreate(deps.LoadService, logg))
			r.Get("/", controllers.LoadList(deps.LoadService, logg))
			r.Get("/{id}", controllers.LoadGet(deps.LoadService, logg))
			r.Put("/{id}", controllers.LoadUpdate(deps.LoadService, logg))
			r.Put("/{id}/status", controllers.LoadUpdateStatus(deps.LoadService, logg))
			r.Put("/{id}/notes", controllers.LoadUpdateNotes(deps.LoadService, logg))
			r.Delete("/{id}", controllers.LoadDelete(deps.LoadService, logg))
		})

		r.Route("/shippers", func(r chi.Router) {
			r.Post("/", controllers.ShipperCreate(deps.ShipperService, logg))
			r.Get("/", controllers.ShipperList(deps.ShipperService, logg))
			r.Get("/{id}", controllers.ShipperGet(deps.ShipperService, logg))
			r.Put("/{id}", controllers.ShipperUpdate(deps.ShipperService, logg))
			r.Put("/{id}/status", controllers.ShipperUpdateStatus(deps.ShipperService, logg))
			r.Put("/{id}/notes", controllers.ShipperUpdateNotes(deps.ShipperService, logg))
			r.Delete("/{id}", controllers.ShipperDelete(deps.ShipperService, logg))
		})

		r.Route("/carriers", func(r chi.Router) {
			r.Post("/", controllers.CarrierCreate(deps.CarrierService, cfg.Storage.MaxUploadMB, logg))
			r.Get("/", controllers.CarrierList(deps.CarrierService, logg))
			r.Get("/{id}", controllers.CarrierGet(deps.CarrierService, logg))
			r.Put("/{id}", controllers.CarrierUpdate(deps.CarrierService, logg))
			r.Delete("/{id}", controllers.CarrierDelete(deps.CarrierService, logg))
			r.Get("/{mcNumber}/files", controllers.CarrierFiles(deps.CarrierService, logg))
		})

		r.Route("/rate-confirmations", func(r chi.Router) {
			r.Post("/", controllers.RateConSave(deps.RateConService, logg))
			r.Post("/pdf", controllers.RateConSaveDocument(deps.RateConService, logg))
			r.Get("/", controllers.RateConList(deps.RateConService, logg))
			r.Get("/{loadNo}", controllers.RateConGet(deps.RateConService, logg))
			r.Delete("/{loadNo}", controllers.RateConDelete(deps.RateConService, logg))
		})
	})

	r.With(middleware.RequireAuth(cfg.JWT, deps.Sessions, logg)).
		Get("/view-rate-con/{loadNo}", controllers.RateConView(deps.RateConService, logg))

	if deps.UploadDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir)))
		r.With(middleware.RequireAuth(cfg.JWT, deps.Sessions, logg)).
			Get("/uploads/*", fileServer.ServeHTTP)
	}

	return r
}
