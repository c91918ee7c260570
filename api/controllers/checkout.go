package controllers

import (
	"net/http"

	"github.com/tanish-jain-225/hotel-management-system/api/middleware"
	"github.com/tanish-jain-225/hotel-management-system/api/responses"
	"github.com/tanish-jain-225/hotel-management-system/api/validators"
	"github.com/tanish-jain-225/hotel-management-system/internal/cart"
	"github.com/tanish-jain-225/hotel-management-system/internal/checkout"
	"github.com/tanish-jain-225/hotel-management-system/internal/pricing"
	"github.com/tanish-jain-225/hotel-management-system/pkg/config"
	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
	"github.com/tanish-jain-225/hotel-management-system/pkg/storeapi"
)

type checkoutRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type CheckoutController struct {
	carts    cart.Service
	checkout checkout.Service
	pricing  config.PricingConfig
	logg     *logger.Logger
}

func NewCheckoutController(carts cart.Service, checkoutSvc checkout.Service, pricingCfg config.PricingConfig, logg *logger.Logger) *CheckoutController {
	return &CheckoutController{
		carts:    carts,
		checkout: checkoutSvc,
		pricing:  pricingCfg,
		logg:     logg,
	}
}

// Submit takes the customer fields from the body and everything else from
// the server's own view of the session's cart. The client never supplies
// items or totals; the snapshot priced here is what the order stores.
func (c *CheckoutController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkoutRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	sessionID := middleware.SessionIDFromContext(ctx)
	entries, err := c.carts.Load(ctx, sessionID)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	items := cart.Aggregate(entries)
	result, err := c.checkout.Submit(ctx, checkout.Input{
		SessionID: sessionID,
		Customer: storeapi.Customer{
			Name:    req.Name,
			Contact: req.Contact,
			Address: req.Address,
		},
		Items:  items,
		Totals: pricing.ComputeTotals(items, c.pricing.TaxRate),
	})
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	responses.WriteSuccessStatus(w, http.StatusCreated, result)
}
