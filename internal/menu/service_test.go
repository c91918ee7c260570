package menu

import (
	"context"
	"testing"

	pkgerrors "github.com/tanish-jain-225/hotel-management-system/pkg/errors"
	"github.com/tanish-jain-225/hotel-management-system/pkg/storeapi"
)

type stubStore struct {
	created     *storeapi.MenuItem
	createCalls int
	deleteCalls int
	deletedID   string
}

func (s *stubStore) MenuItems(ctx context.Context) ([]storeapi.MenuItem, error) {
	return []storeapi.MenuItem{{ID: "m1", Name: "dosa"}}, nil
}

func (s *stubStore) CreateMenuItem(ctx context.Context, item storeapi.MenuItem) (*storeapi.MenuItem, error) {
	s.createCalls++
	item.ID = "m2"
	s.created = &item
	return &item, nil
}

func (s *stubStore) DeleteMenuItem(ctx context.Context, itemID string) error {
	s.deleteCalls++
	s.deletedID = itemID
	return nil
}

func TestCreateNormalizesFields(t *testing.T) {
	store := &stubStore{}
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, err := svc.Create(context.Background(), CreateInput{
		Name:    "  Masala Dosa ",
		Cuisine: "South Indian",
		Section: " Breakfast",
		Price:   80,
		Image:   " https://cdn.example/dosa.jpg ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "masala dosa" || item.Cuisine != "south indian" || item.Section != "breakfast" {
		t.Fatalf("expected normalized fields got %+v", item)
	}
	if store.created.Image != "https://cdn.example/dosa.jpg" {
		t.Fatalf("expected trimmed image url got %q", store.created.Image)
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	store := &stubStore{}
	svc, _ := NewService(store)

	_, err := svc.Create(context.Background(), CreateInput{Name: "dosa", Price: -5})
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
	details := pkgerrors.As(err).Details().(map[string]string)
	for _, field := range []string{"cuisine", "section", "image", "price"} {
		if details[field] == "" {
			t.Fatalf("expected %s named in details got %v", field, details)
		}
	}
	if store.createCalls != 0 {
		t.Fatalf("expected no store call got %d", store.createCalls)
	}
}

func TestDeleteRequiresID(t *testing.T) {
	store := &stubStore{}
	svc, _ := NewService(store)

	if err := svc.Delete(context.Background(), ""); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
	if err := svc.Delete(context.Background(), "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.deleteCalls != 1 || store.deletedID != "m1" {
		t.Fatalf("expected one delete for m1 got calls=%d id=%q", store.deleteCalls, store.deletedID)
	}
}
