package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storelinkhq/storelink-backend/api/controllers"
	"github.com/storelinkhq/storelink-backend/api/middleware"
	products "github.com/storelinkhq/storelink-backend/internal/products"
	"github.com/storelinkhq/storelink-backend/internal/sociallinks"
	"github.com/storelinkhq/storelink-backend/internal/stores"
	"github.com/storelinkhq/storelink-backend/internal/uploads"
	"github.com/storelinkhq/storelink-backend/internal/users"
	"github.com/storelinkhq/storelink-backend/pkg/config"
	"github.com/storelinkhq/storelink-backend/pkg/db"
	"github.com/storelinkhq/storelink-backend/pkg/logger"
	"github.com/storelinkhq/storelink-backend/pkg/metrics"
	"github.com/storelinkhq/storelink-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	usersService users.Service,
	storeService stores.Service,
	productService products.Service,
	socialLinksService sociallinks.Service,
	uploadService uploads.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbClient, redisClient, logg))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Identity(usersService, logg))

		r.Post("/upload-images", controllers.UploadImages(uploadService, storeService, cfg, logg))

		r.Route("/owner", func(r chi.Router) {
			r.Use(middleware.RequireOwner(logg))

			r.Route("/products", func(r chi.Router) {
				r.Post("/create", controllers.OwnerCreateProduct(productService, logg))
				r.Get("/list", controllers.OwnerListProducts(productService, logg))
				r.Get("/view/{id}", controllers.OwnerViewProduct(productService, logg))
				r.Put("/edit/{id}", controllers.OwnerEditProduct(productService, logg))
				r.Delete("/delete/{id}", controllers.OwnerDeleteProduct(productService, logg))
			})

			r.Route("/social-links", func(r chi.Router) {
				r.Get("/", controllers.GetSocialLinks(socialLinksService, logg))
				r.Post("/", controllers.UpdateSocialLinks(socialLinksService, logg))
			})

			r.Route("/web-content", func(r chi.Router) {
				r.Post("/", controllers.CreateWebContent(storeService, logg))
				r.Put("/", controllers.UpdateWebContent(storeService, logg))
				r.Get("/", controllers.FetchWebContent(storeService, logg))
			})

			r.Route("/admin-data", func(r chi.Router) {
				r.Get("/basic", controllers.AdminDataBasic(usersService, storeService, logg))
				r.Get("/all", controllers.AdminDataAll(usersService, storeService, logg))
			})
		})
	})

	return r
}
