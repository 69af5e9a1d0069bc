// Package rest exposes the application services over HTTP.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arsicorp/zenith-lab-robotics/internal/application"
)

type Server struct {
	auth     *application.AuthService
	profiles *application.ProfileService
	catalog  *application.CatalogService
	carts    *application.CartService
	checkout *application.CheckoutService
	orders   *application.OrderService
	careers  *application.CareersService
	sales    *application.SalesService
}

func NewServer(
	auth *application.AuthService,
	profiles *application.ProfileService,
	catalog *application.CatalogService,
	carts *application.CartService,
	checkout *application.CheckoutService,
	orders *application.OrderService,
	careers *application.CareersService,
	sales *application.SalesService,
) *Server {
	return &Server{
		auth:     auth,
		profiles: profiles,
		catalog:  catalog,
		carts:    carts,
		checkout: checkout,
		orders:   orders,
		careers:  careers,
		sales:    sales,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)

	r.Get("/products", s.handleListProducts)
	r.Get("/products/{productID}", s.handleGetProduct)

	r.Get("/jobs", s.handleListJobs)
	r.Get("/jobs/{jobID}", s.handleGetJob)
	r.Post("/job-applications", s.handleApply)
	r.Post("/sales-inquiries", s.handleSubmitInquiry)

	r.Group(func(r chi.Router) {
		r.Use(Authenticate)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleUpdateProfile)

		r.Get("/cart", s.handleGetCart)
		r.Post("/cart/products/{productID}", s.handleAddCartItem)
		r.Put("/cart/products/{productID}", s.handleUpdateCartItem)
		r.Delete("/cart/products/{productID}", s.handleRemoveCartItem)
		r.Delete("/cart", s.handleClearCart)

		r.Post("/orders", s.handleCheckout)
		r.Get("/orders", s.handleListOrders)
		r.Get("/orders/{orderID}", s.handleGetOrder)
	})

	r.Group(func(r chi.Router) {
		r.Use(Authenticate)
		r.Use(RequireAdmin)

		r.Get("/admin/orders", s.handleAdminListOrders)
		r.Get("/admin/job-applications", s.handleAdminListApplications)
		r.Get("/admin/sales-inquiries", s.handleAdminListInquiries)
	})

	return r
}
