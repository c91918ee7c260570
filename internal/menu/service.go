package menu

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/tanish-jain-225/hotel-management-system/pkg/errors"
	"github.com/tanish-jain-225/hotel-management-system/pkg/storeapi"
)

// Store is the slice of the document store contract the menu proxy needs.
type Store interface {
	MenuItems(ctx context.Context) ([]storeapi.MenuItem, error)
	CreateMenuItem(ctx context.Context, item storeapi.MenuItem) (*storeapi.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID string) error
}

// CreateInput carries a new catalog item from the admin form.
type CreateInput struct {
	Name    string  `json:"name"`
	Cuisine string  `json:"cuisine"`
	Section string  `json:"section"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
	Info    string  `json:"info,omitempty"`
}

// Service proxies the store's menu CRUD for the site.
type Service interface {
	List(ctx context.Context) ([]storeapi.MenuItem, error)
	Create(ctx context.Context, input CreateInput) (*storeapi.MenuItem, error)
	Delete(ctx context.Context, itemID string) error
}

type service struct {
	store Store
}

// NewService builds the menu service over the external store.
func NewService(store Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("menu store required")
	}
	return &service{store: store}, nil
}

func (s *service) List(ctx context.Context) ([]storeapi.MenuItem, error) {
	return s.store.MenuItems(ctx)
}

// Create normalizes the admin input the way the catalog stores it: trimmed
// and lowercased text fields, positive price.
func (s *service) Create(ctx context.Context, input CreateInput) (*storeapi.MenuItem, error) {
	item := storeapi.MenuItem{
		Name:    normalize(input.Name),
		Cuisine: normalize(input.Cuisine),
		Section: normalize(input.Section),
		Price:   input.Price,
		Image:   strings.TrimSpace(input.Image),
		Info:    normalize(input.Info),
	}

	details := map[string]string{}
	if item.Name == "" {
		details["name"] = "is required"
	}
	if item.Cuisine == "" {
		details["cuisine"] = "is required"
	}
	if item.Section == "" {
		details["section"] = "is required"
	}
	if item.Image == "" {
		details["image"] = "is required"
	}
	if item.Price <= 0 {
		details["price"] = "must be greater than zero"
	}
	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item validation failed").WithDetails(details)
	}

	return s.store.CreateMenuItem(ctx, item)
}

func (s *service) Delete(ctx context.Context, itemID string) error {
	if itemID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	return s.store.DeleteMenuItem(ctx, itemID)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
