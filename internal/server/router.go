package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tallermanager/workshop-backend/internal/handlers"
	"github.com/tallermanager/workshop-backend/internal/middleware"
	"github.com/tallermanager/workshop-backend/internal/models"
)

// Handlers groups every HTTP handler wired into the router.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Users        *handlers.UserHandler
	Appointments *handlers.AppointmentHandler
	Clients      *handlers.ClientHandler
	Workshops    *handlers.WorkshopHandler
	Services     *handlers.ServiceHandler
	Products     *handlers.ProductHandler
	Stocks       *handlers.StockHandler
	Suppliers    *handlers.SupplierHandler
	Invoices     *handlers.InvoiceHandler
	Transactions *handlers.TransactionHandler
}

// NewRouter wires HTTP routes and middleware. All API routes live under
// /api; everything except the test greeting and register/login requires a
// bearer token, and user management additionally requires an admin role.
func NewRouter(authMw *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger())
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/test", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"¡Hola Mundo! El backend está funcionando correctamente 🚀"}`))
		})

		h.Auth.RegisterRoutes(api)

		api.Group(func(pr chi.Router) {
			pr.Use(authMw.Authenticate)

			h.Appointments.RegisterRoutes(pr)
			h.Clients.RegisterRoutes(pr)
			h.Workshops.RegisterRoutes(pr)
			h.Services.RegisterRoutes(pr)
			h.Products.RegisterRoutes(pr)
			h.Stocks.RegisterRoutes(pr)
			h.Suppliers.RegisterRoutes(pr)
			h.Invoices.RegisterRoutes(pr)
			h.Transactions.RegisterRoutes(pr)

			pr.Group(func(ar chi.Router) {
				ar.Use(authMw.RequireRole(models.RoleSuperadmin, models.RoleAdmin))
				h.Users.RegisterRoutes(ar)
			})
		})
	})

	return r
}
