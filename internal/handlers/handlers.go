package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/invoicedash/docs"
	authhandlers "github.com/GlebRadaev/invoicedash/internal/handlers/auth"
	customerhandlers "github.com/GlebRadaev/invoicedash/internal/handlers/customers"
	dashboardhandlers "github.com/GlebRadaev/invoicedash/internal/handlers/dashboard"
	invoicehandlers "github.com/GlebRadaev/invoicedash/internal/handlers/invoices"
	seedhandlers "github.com/GlebRadaev/invoicedash/internal/handlers/seed"
	"github.com/GlebRadaev/invoicedash/internal/service"
	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	Revenue(w http.ResponseWriter, r *http.Request)
	LatestInvoices(w http.ResponseWriter, r *http.Request)
	Cards(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Pages(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Filtered(w http.ResponseWriter, r *http.Request)
}

type SeedHandler interface {
	Seed(w http.ResponseWriter, r *http.Request)
	Query(w http.ResponseWriter, r *http.Request)
}

// Cache serves dashboard reads and is revalidated by invoice writes.
type Cache interface {
	Middleware(next http.Handler) http.Handler
	RevalidatePath(prefix string)
}

type Handlers struct {
	AuthHandler      AuthHandler
	DashboardHandler DashboardHandler
	InvoiceHandler   InvoiceHandler
	CustomerHandler  CustomerHandler
	SeedHandler      SeedHandler

	tokens auth.JWTServiceInterface
	cache  Cache
}

func New(s *service.Services, tokens auth.JWTServiceInterface, cache Cache) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		InvoiceHandler:   invoicehandlers.New(s.InvoiceService, cache),
		CustomerHandler:  customerhandlers.New(s.CustomerService),
		SeedHandler:      seedhandlers.New(s.SeedService, cache),
		tokens:           tokens,
		cache:            cache,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/seed", h.SeedHandler.Seed)
	r.Get("/query", h.SeedHandler.Query)
	r.Post("/api/login", h.AuthHandler.Login)

	r.Route("/api/dashboard", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.tokens))
		r.Use(h.cache.Middleware)

		r.Get("/revenue", h.DashboardHandler.Revenue)
		r.Get("/latest-invoices", h.DashboardHandler.LatestInvoices)
		r.Get("/cards", h.DashboardHandler.Cards)

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.InvoiceHandler.List)
			r.Post("/", h.InvoiceHandler.Create)
			r.Get("/pages", h.InvoiceHandler.Pages)
			r.Get("/{id}", h.InvoiceHandler.Get)
			r.Put("/{id}", h.InvoiceHandler.Update)
			r.Post("/{id}", h.InvoiceHandler.Update)
			r.Delete("/{id}", h.InvoiceHandler.Delete)
		})
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.CustomerHandler.List)
			r.Get("/filtered", h.CustomerHandler.Filtered)
		})
	})

	return r
}
