package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Cheertaboi/catalog-coupon-service/internal/api/handlers"
	"github.com/Cheertaboi/catalog-coupon-service/internal/api/middleware"
)

// NewRouter builds the HTTP router for the catalog service
func NewRouter(coupons handlers.CouponService, categories handlers.CategoryService, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	couponHandler := handlers.NewCouponHandler(coupons, logger)
	categoryHandler := handlers.NewCategoryHandler(categories, logger)
	graphQLHandler := handlers.NewGraphQLHandler(coupons, categories, logger)

	// Public endpoints
	r.Get("/coupons/{code}", couponHandler.GetCoupon)

	// Admin endpoints
	r.Route("/admin", func(r chi.Router) {
		r.Post("/coupons", couponHandler.CreateCoupon)
		r.Patch("/categories/{id}", categoryHandler.UpdateMainCategory)
	})

	r.Post("/graphql", graphQLHandler.Serve)
	r.Get("/schema.graphql", handlers.Schema)

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
