package storeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanish-jain-225/hotel-management-system/pkg/config"
	pkgerrors "github.com/tanish-jain-225/hotel-management-system/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.StoreConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return client, srv
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.StoreConfig{})
	require.Error(t, err)
}

func TestCartEntriesFetchesBySession(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		gotQuery = r.URL.Query().Get("sessionId")
		json.NewEncoder(w).Encode([]LineEntry{
			{ID: "e1", SessionID: "session_1", Name: "paneer tikka", Price: 250, Quantity: 2},
		})
	}))

	entries, err := client.CartEntries(context.Background(), "session_1")
	require.NoError(t, err)
	assert.Equal(t, "session_1", gotQuery)
	require.Len(t, entries, 1)
	assert.Equal(t, "paneer tikka", entries[0].Name)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestRemoveCartEntrySendsKeys(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "session_1", body["sessionId"])
		assert.Equal(t, "e1", body["_id"])
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.RemoveCartEntry(context.Background(), "session_1", "e1"))
}

func TestClearCartSendsSession(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/orders/clear", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "session_9", body["sessionId"])
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.ClearCart(context.Background(), "session_9"))
}

func TestPlaceOrderEchoesCreatedOrder(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/place-order", r.URL.Path)
		var order Order
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		order.ID = "ord-1"
		order.SerialNumber = 42
		json.NewEncoder(w).Encode(order)
	}))

	created, err := client.PlaceOrder(context.Background(), Order{
		SessionID:  "session_1",
		Customer:   Customer{Name: "Asha", Contact: "9999", Address: "MG Road"},
		GrandTotal: 105,
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", created.ID)
	assert.Equal(t, 42, created.SerialNumber)
	assert.Equal(t, "session_1", created.SessionID)
}

func TestPlaceOrderFallsBackToSubmittedPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Bare acknowledgement without an echo.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))

	submitted := Order{SessionID: "session_2", GrandTotal: 50}
	created, err := client.PlaceOrder(context.Background(), submitted)
	require.NoError(t, err)
	assert.Equal(t, submitted.SessionID, created.SessionID)
	assert.Equal(t, submitted.GrandTotal, created.GrandTotal)
}

func TestCompleteOrderTargetsOrderPath(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.CompleteOrder(context.Background(), "ord-7"))
	assert.Equal(t, "/place-order/ord-7", gotPath)
}

func TestErrorUsesStoreMessageVerbatim(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"replica set unavailable"}`))
	}))

	_, err := client.ActiveOrders(context.Background())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
	assert.Equal(t, "replica set unavailable", typed.Message())
}

func TestErrorFallsBackToGenericMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json at all"))
	}))

	_, err := client.MenuItems(context.Background())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, "store returned status 500", typed.Message())
}

func TestCompleteOrderNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Order not found"}`))
	}))

	err := client.CompleteOrder(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestCreateMenuItemUnwrapsNewItem(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]MenuItem{
			"newItem": {ID: "m1", Name: "dosa", Price: 80},
		})
	}))

	item, err := client.CreateMenuItem(context.Background(), MenuItem{Name: "dosa", Price: 80})
	require.NoError(t, err)
	assert.Equal(t, "m1", item.ID)
}
