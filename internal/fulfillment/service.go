package fulfillment

import (
	"context"
	"fmt"
	"sort"

	pkgerrors "github.com/tanish-jain-225/hotel-management-system/pkg/errors"
	"github.com/tanish-jain-225/hotel-management-system/pkg/storeapi"
)

// Store is the slice of the document store contract fulfillment needs.
type Store interface {
	ActiveOrders(ctx context.Context) ([]storeapi.Order, error)
	CompleteOrder(ctx context.Context, orderID string) error
}

// Metrics records fulfillment outcomes.
type Metrics interface {
	IncOrderCompleted()
}

// Service drives the placed -> completed transition. There are no other
// states: no cancellation, no partial fulfillment, no archive.
type Service interface {
	ListActive(ctx context.Context) ([]storeapi.Order, error)
	Complete(ctx context.Context, orderID string) error
}

type service struct {
	store   Store
	metrics Metrics
}

// NewService builds the fulfillment manager.
func NewService(store Store, metrics Metrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("fulfillment store required")
	}
	if metrics == nil {
		return nil, fmt.Errorf("fulfillment metrics required")
	}
	return &service{store: store, metrics: metrics}, nil
}

// ListActive returns placed orders newest first. Date ties keep the store's
// insertion order.
func (s *service) ListActive(ctx context.Context) ([]storeapi.Order, error) {
	orders, err := s.store.ActiveOrders(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

// Complete removes the order from the active queue. The transition is
// irreversible; the staff confirmation gate is enforced at the API boundary
// before this is ever called.
func (s *service) Complete(ctx context.Context, orderID string) error {
	if orderID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if err := s.store.CompleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.metrics.IncOrderCompleted()
	return nil
}
