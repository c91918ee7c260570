package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/tanish-jain-225/hotel-management-system/pkg/errors"
	"github.com/tanish-jain-225/hotel-management-system/pkg/storeapi"
)

// Store is the slice of the document store contract the aggregator needs.
type Store interface {
	CartEntries(ctx context.Context, sessionID string) ([]storeapi.LineEntry, error)
	RemoveCartEntry(ctx context.Context, sessionID, entryID string) error
}

// Item is one aggregated cart line: every raw entry sharing a product
// identity merged into a single priced row. Derived and in-memory only;
// recomputed on every read.
type Item struct {
	ProductID  string  `json:"productId,omitempty"`
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine,omitempty"`
	Section    string  `json:"section,omitempty"`
	Image      string  `json:"image,omitempty"`
	UnitPrice  float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// Service loads and mutates the session's raw cart entries.
type Service interface {
	Load(ctx context.Context, sessionID string) ([]storeapi.LineEntry, error)
	Remove(ctx context.Context, sessionID, entryID string) error
}

type service struct {
	store Store
}

// NewService builds the cart service over the external store.
func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{store: store}, nil
}

// Load fetches all raw entries for the session. Single attempt; a store
// failure is surfaced to the caller without retry.
func (s *service) Load(ctx context.Context, sessionID string) ([]storeapi.LineEntry, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	entries, err := s.store.CartEntries(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Remove deletes one entry keyed by (sessionId, entryId). The caller must
// reload and re-aggregate afterwards; one removal can change a grouped
// quantity shared with other entries, so no local patching is correct.
func (s *service) Remove(ctx context.Context, sessionID, entryID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if entryID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "entry id required")
	}
	return s.store.RemoveCartEntry(ctx, sessionID, entryID)
}

// Aggregate groups raw entries by product identity: the stable product id
// when the entry carries one, the display name (case-sensitive) for legacy
// entries without an id. Quantity defaults to 1 when absent. Pure function;
// output preserves first-seen order of each identity.
func Aggregate(entries []storeapi.LineEntry) []Item {
	items := make([]Item, 0, len(entries))
	totals := make([]decimal.Decimal, 0, len(entries))
	index := make(map[string]int, len(entries))

	for _, entry := range entries {
		qty := entry.Quantity
		if qty <= 0 {
			qty = 1
		}
		lineTotal := decimal.NewFromFloat(entry.Price).Mul(decimal.NewFromInt(int64(qty)))

		key := identityKey(entry)
		if i, ok := index[key]; ok {
			items[i].Quantity += qty
			totals[i] = totals[i].Add(lineTotal)
			continue
		}

		index[key] = len(items)
		items = append(items, Item{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			Cuisine:   entry.Cuisine,
			Section:   entry.Section,
			Image:     entry.Image,
			UnitPrice: entry.Price,
			Quantity:  qty,
		})
		totals = append(totals, lineTotal)
	}

	for i := range items {
		items[i].TotalPrice = totals[i].InexactFloat64()
	}
	return items
}

func identityKey(entry storeapi.LineEntry) string {
	if entry.ProductID != "" {
		return "id:" + entry.ProductID
	}
	return "name:" + entry.Name
}
