package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/company-profiles/internal/handler/http/middleware"
	"github.com/cmlabs-hris/company-profiles/internal/handler/http/response"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	// RouteSegment is the first path segment of company pages, e.g. "company".
	RouteSegment string
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, companyHandler CompanyHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	// Company pages, pretty and query permalinks
	r.Get("/", companyHandler.ShowByQuery)
	r.Get("/"+opts.RouteSegment+"/*", companyHandler.ShowByPath)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companyHandler.Search)
			r.Get("/directory", companyHandler.Directory)
			r.Get("/industries", companyHandler.Industries)
			r.Get("/url", companyHandler.ProfileURL)

			r.Route("/{name}", func(r chi.Router) {
				r.Get("/profile", companyHandler.Profile)
				r.Get("/listings", companyHandler.Listings)
				r.Get("/positions/count", companyHandler.PositionCount)
			})
		})

		// Requires an admin token
		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Post("/companies/slugs", companyHandler.BackfillSlugs)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Page not found")
	})

	return r
}
