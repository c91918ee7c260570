package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tanish-jain-225/hotel-management-system/api/responses"
	"github.com/tanish-jain-225/hotel-management-system/api/validators"
	"github.com/tanish-jain-225/hotel-management-system/internal/fulfillment"
	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
)

type completeOrderRequest struct {
	Confirm bool `json:"confirm" validate:"eq=true"`
}

type OrdersController struct {
	service fulfillment.Service
	logg    *logger.Logger
}

func NewOrdersController(service fulfillment.Service, logg *logger.Logger) *OrdersController {
	return &OrdersController{service: service, logg: logg}
}

func (c *OrdersController) ListActive(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.ListActive(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, orders)
}

// Complete marks one active order fulfilled. The transition is irreversible,
// so the body must carry an explicit confirm flag; absence or false is
// rejected before the store is touched.
func (c *OrdersController) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	var req completeOrderRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}

	if c.logg != nil {
		ctx = c.logg.WithOrderID(ctx, orderID)
	}

	if err := c.service.Complete(ctx, orderID); err != nil {
		responses.WriteError(ctx, c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, map[string]string{"completed": orderID})
}
