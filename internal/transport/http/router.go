package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
	"golang.org/x/time/rate"

	_ "github.com/notification-types-api/docs" // OpenAPI spec registration
	"github.com/notification-types-api/internal/application/catalog"
	"github.com/notification-types-api/internal/config"
	jwtinfra "github.com/notification-types-api/internal/infrastructure/jwt"
	"github.com/notification-types-api/internal/metrics"
	"github.com/notification-types-api/internal/transport/http/handler"
	appmiddleware "github.com/notification-types-api/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	TypeRepo    NotificationTypeRepository
	JWTProvider *jwtinfra.Provider
	Metrics     *metrics.Metrics
}

// NewRouter builds and returns the application router. The auth middleware
// runs globally; /health, /docs and /openapi.json pass through via its
// allow-list.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(appmiddleware.Auth(deps.JWTProvider, deps.Metrics))

	catalogSvc := catalog.NewService(deps.TypeRepo)

	healthH := handler.NewHealthHandler()
	typesH := handler.NewNotificationTypeHandler(catalogSvc, deps.Metrics)

	// 10 requests/second per IP, burst of 20, on the catalog endpoint.
	apiRL := appmiddleware.NewRateLimiter(rate.Limit(10), 20)

	// ── Public routes (auth allow-list) ──────────────────────────────────
	r.Get("/health", healthH.Check)
	r.Get("/docs", http.RedirectHandler("/docs/index.html", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/docs/*", httpSwagger.Handler())
	r.Get("/openapi.json", serveOpenAPI)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(apiRL.Limit)
		r.Get("/", typesH.List)
	})

	return r
}

// serveOpenAPI writes the registered OpenAPI document as JSON.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, "schema unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
