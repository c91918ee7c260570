package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tanish-jain-225/hotel-management-system/api/controllers"
	"github.com/tanish-jain-225/hotel-management-system/api/middleware"
	"github.com/tanish-jain-225/hotel-management-system/internal/cart"
	"github.com/tanish-jain-225/hotel-management-system/internal/checkout"
	"github.com/tanish-jain-225/hotel-management-system/internal/fulfillment"
	"github.com/tanish-jain-225/hotel-management-system/internal/menu"
	"github.com/tanish-jain-225/hotel-management-system/pkg/config"
	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
	pkgredis "github.com/tanish-jain-225/hotel-management-system/pkg/redis"
)

// Dependencies carries everything the router wires together. Store and Cache
// are the readiness probes; Idempotency may be nil to disable the checkout
// replay guard (tests do this).
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       controllers.Pinger
	Cache       controllers.Pinger
	Idempotency pkgredis.IdempotencyStore

	Menu        menu.Service
	Cart        cart.Service
	Checkout    checkout.Service
	Fulfillment fulfillment.Service

	MetricsHandler http.Handler
}

func New(deps Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.CORS(deps.Config.CORS))

	health := controllers.NewHealthController(deps.Logger, deps.Store, deps.Cache)
	menuCtrl := controllers.NewMenuController(deps.Menu, deps.Logger)
	cartCtrl := controllers.NewCartController(deps.Cart, deps.Config.Pricing, deps.Logger)
	checkoutCtrl := controllers.NewCheckoutController(deps.Cart, deps.Checkout, deps.Config.Pricing, deps.Logger)
	ordersCtrl := controllers.NewOrdersController(deps.Fulfillment, deps.Logger)

	r.Get("/health/live", health.Live)
	r.Get("/health/ready", health.Ready)

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", menuCtrl.List)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/menu", menuCtrl.Create)
			r.Delete("/menu/{itemId}", menuCtrl.Delete)
			r.Get("/orders", ordersCtrl.ListActive)
			r.Post("/orders/{orderId}/complete", ordersCtrl.Complete)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(deps.Config.Session, deps.Logger))

			r.Get("/cart", cartCtrl.Get)
			r.Delete("/cart/entries/{entryId}", cartCtrl.RemoveEntry)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Idempotency(deps.Idempotency, deps.Logger))
				r.Post("/checkout", checkoutCtrl.Submit)
			})
		})
	})

	return r
}
