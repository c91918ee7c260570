package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tanish-jain-225/hotel-management-system/api/middleware"
	"github.com/tanish-jain-225/hotel-management-system/api/responses"
	"github.com/tanish-jain-225/hotel-management-system/internal/cart"
	"github.com/tanish-jain-225/hotel-management-system/internal/pricing"
	"github.com/tanish-jain-225/hotel-management-system/pkg/config"
	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
)

// CartView is what the site renders: the aggregated lines plus totals,
// recomputed from raw entries on every read.
type CartView struct {
	Items  []cart.Item    `json:"items"`
	Totals pricing.Totals `json:"totals"`
}

type CartController struct {
	service cart.Service
	pricing config.PricingConfig
	logg    *logger.Logger
}

func NewCartController(service cart.Service, pricingCfg config.PricingConfig, logg *logger.Logger) *CartController {
	return &CartController{service: service, pricing: pricingCfg, logg: logg}
}

func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := c.loadView(ctx, middleware.SessionIDFromContext(ctx))
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, view)
}

// RemoveEntry deletes one raw line entry and returns the reloaded view.
// Removing a single entry can shrink a grouped quantity rather than drop a
// whole row, so the client must never patch locally.
func (c *CartController) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionIDFromContext(ctx)
	entryID := chi.URLParam(r, "entryId")

	if err := c.service.Remove(ctx, sessionID, entryID); err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	view, err := c.loadView(ctx, sessionID)
	if err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, view)
}

func (c *CartController) loadView(ctx context.Context, sessionID string) (*CartView, error) {
	entries, err := c.service.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items := cart.Aggregate(entries)
	return &CartView{
		Items:  items,
		Totals: pricing.ComputeTotals(items, c.pricing.TaxRate),
	}, nil
}
