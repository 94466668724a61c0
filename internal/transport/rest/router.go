package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/opportunest/opportunest-server/internal/metrics"
	"github.com/opportunest/opportunest-server/internal/security"
	"github.com/opportunest/opportunest-server/internal/service"
	"github.com/opportunest/opportunest-server/internal/storage"
)

type Handler struct {
	users   *service.UserService
	catalog *service.CatalogService
	apps    *service.ApplicationService
	reviews *service.ReviewService
	stats   *service.StatsService

	uploader storage.Uploader
}

func NewHandler(
	users *service.UserService,
	catalog *service.CatalogService,
	apps *service.ApplicationService,
	reviews *service.ReviewService,
	stats *service.StatsService,
	uploader storage.Uploader,
) *Handler {
	return &Handler{
		users:    users,
		catalog:  catalog,
		apps:     apps,
		reviews:  reviews,
		stats:    stats,
		uploader: uploader,
	}
}

type RouterDeps struct {
	Handler     *Handler
	Verifier    security.TokenVerifier
	Roles       RoleReader
	CORSOrigins []string
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Handler == nil {
		panic("rest.NewRouter: nil handler")
	}
	if d.Verifier == nil {
		panic("rest.NewRouter: nil verifier")
	}
	if d.Roles == nil {
		panic("rest.NewRouter: nil role reader")
	}

	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(HTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	auth := AuthMiddleware(d.Verifier)
	mod := RequireModerator(d.Roles)
	admin := RequireAdmin(d.Roles)

	// public
	r.Get("/healthz", d.Handler.Healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/scholarships", d.Handler.ListScholarships)
	r.Get("/scholarships-top", d.Handler.TopScholarships)
	r.Get("/scholarships/{id}", d.Handler.GetScholarship)
	r.Get("/reviews/{scholarshipID}", d.Handler.ReviewsByScholarship)

	// any signed-in user
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/sync-user", d.Handler.SyncUser)
		r.Post("/upload-image", d.Handler.UploadImage)

		r.Post("/applications", d.Handler.Apply)
		r.Get("/my-applications", d.Handler.MyApplications)
		r.Patch("/applications/{id}", d.Handler.UpdateApplication)
		r.Delete("/applications/{id}", d.Handler.CancelApplication)

		r.Post("/reviews", d.Handler.AddReview)
		r.Get("/my-reviews", d.Handler.MyReviews)
		r.Patch("/reviews/{id}", d.Handler.UpdateReview)
		r.Delete("/reviews/{id}", d.Handler.DeleteReview)
	})

	// moderator and above
	r.Group(func(r chi.Router) {
		r.Use(auth, mod)

		r.Post("/scholarships", d.Handler.CreateScholarship)
		r.Get("/scholarships-admin", d.Handler.AdminListScholarships)
		r.Patch("/scholarships/{id}", d.Handler.UpdateScholarship)
		r.Delete("/scholarships/{id}", d.Handler.DeleteScholarship)

		r.Get("/admin/applications", d.Handler.AdminApplications)
		r.Patch("/admin/applications/{id}/status", d.Handler.SetApplicationStatus)
		r.Patch("/admin/applications/{id}/feedback", d.Handler.SetApplicationFeedback)

		r.Get("/reviews", d.Handler.AdminReviews)
		r.Delete("/admin/reviews/{id}", d.Handler.AdminDeleteReview)
	})

	// admin only
	r.Group(func(r chi.Router) {
		r.Use(auth, admin)

		r.Get("/admin/users", d.Handler.AdminListUsers)
		r.Patch("/admin/users/{id}/role", d.Handler.AdminChangeRole)
		r.Delete("/admin/users/{id}", d.Handler.AdminDeleteUser)

		r.Get("/admin/stats", d.Handler.AdminStats)
	})

	return r
}
