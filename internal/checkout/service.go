package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tanish-jain-225/hotel-management-system/internal/cart"
	"github.com/tanish-jain-225/hotel-management-system/internal/pricing"
	"github.com/tanish-jain-225/hotel-management-system/pkg/config"
	pkgerrors "github.com/tanish-jain-225/hotel-management-system/pkg/errors"
	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
	"github.com/tanish-jain-225/hotel-management-system/pkg/storeapi"
)

// Store is the slice of the document store contract the orchestrator needs.
type Store interface {
	PlaceOrder(ctx context.Context, order storeapi.Order) (*storeapi.Order, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// Metrics records checkout outcomes.
type Metrics interface {
	IncAttempt()
	IncFailure(stage string)
	IncCartClearFailure()
}

// Input carries everything Submit needs; the session token is threaded
// explicitly rather than read from ambient state.
type Input struct {
	SessionID string
	Customer  storeapi.Customer
	Items     []cart.Item
	Totals    pricing.Totals
}

// Result reports a placed order. CartCleared is false when the order was
// created but the follow-up cart clear failed; the order still stands.
type Result struct {
	Order       *storeapi.Order `json:"order"`
	CartCleared bool            `json:"cartCleared"`
}

// Service turns an aggregated cart plus totals into a persisted order.
type Service interface {
	Submit(ctx context.Context, input Input) (*Result, error)
}

type service struct {
	store        Store
	metrics      Metrics
	logg         *logger.Logger
	paymentLabel string
	now          func() time.Time
}

// NewService builds the checkout orchestrator.
func NewService(store Store, metrics Metrics, logg *logger.Logger, cfg config.CheckoutConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("checkout store required")
	}
	if metrics == nil {
		return nil, fmt.Errorf("checkout metrics required")
	}
	return &service{
		store:        store,
		metrics:      metrics,
		logg:         logg,
		paymentLabel: cfg.PaymentMethodLabel,
		now:          time.Now,
	}, nil
}

// Submit validates the input, creates the order, then clears the session's
// cart. The two store calls are not transactional: a clear failure after the
// order was created is a recoverable inconsistency, reported but never rolled
// back, since the guest already holds a confirmed order. If order creation
// fails the clear is never attempted and the cart stays intact for a retry.
func (s *service) Submit(ctx context.Context, input Input) (*Result, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	s.metrics.IncAttempt()

	order := storeapi.Order{
		SessionID:     input.SessionID,
		Customer:      trimmedCustomer(input.Customer),
		PaymentMethod: s.paymentLabel,
		Items:         orderItems(input.Items),
		Subtotal:      input.Totals.Subtotal,
		TaxAmount:     input.Totals.TaxAmount,
		GrandTotal:    input.Totals.GrandTotal,
		OrderDate:     s.now().UTC(),
	}

	created, err := s.store.PlaceOrder(ctx, order)
	if err != nil {
		s.metrics.IncFailure("place_order")
		return nil, err
	}

	if err := s.store.ClearCart(ctx, input.SessionID); err != nil {
		s.metrics.IncCartClearFailure()
		if s.logg != nil {
			ctx = s.logg.WithFields(ctx, map[string]any{
				"event":      "checkout.cart_clear_failed",
				"session_id": input.SessionID,
				"order_id":   created.ID,
			})
			s.logg.Error(ctx, "order placed but cart clear failed; stale entries need reconciliation", err)
		}
		return &Result{Order: created, CartCleared: false}, nil
	}

	return &Result{Order: created, CartCleared: true}, nil
}

// validate enforces the checkout preconditions before any network call.
func validate(input Input) error {
	details := map[string]string{}
	if strings.TrimSpace(input.Customer.Name) == "" {
		details["name"] = "is required"
	}
	if strings.TrimSpace(input.Customer.Contact) == "" {
		details["contact"] = "is required"
	}
	if strings.TrimSpace(input.Customer.Address) == "" {
		details["address"] = "is required"
	}
	if len(input.Items) == 0 {
		details["items"] = "cart is empty"
	}
	if input.SessionID == "" {
		details["sessionId"] = "is required"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "checkout validation failed").WithDetails(details)
	}
	return nil
}

func trimmedCustomer(c storeapi.Customer) storeapi.Customer {
	return storeapi.Customer{
		Name:    strings.TrimSpace(c.Name),
		Contact: strings.TrimSpace(c.Contact),
		Address: strings.TrimSpace(c.Address),
	}
}

func orderItems(items []cart.Item) []storeapi.OrderItem {
	out := make([]storeapi.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, storeapi.OrderItem{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Cuisine:    item.Cuisine,
			Section:    item.Section,
			Image:      item.Image,
			Price:      item.UnitPrice,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		})
	}
	return out
}
