package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanish-jain-225/hotel-management-system/pkg/logger"
)

type memoryIdempotencyStore struct {
	values map[string]string
}

func newMemoryIdempotencyStore() *memoryIdempotencyStore {
	return &memoryIdempotencyStore{values: map[string]string{}}
}

func (s *memoryIdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	val, ok := s.values[key]
	if !ok {
		return "", redis.Nil
	}
	return val, nil
}

func (s *memoryIdempotencyStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if _, ok := s.values[key]; ok {
		return false, nil
	}
	s.values[key] = value.(string)
	return true, nil
}

func (s *memoryIdempotencyStore) IdempotencyKey(scope, id string) string {
	return "hms:idempotency:" + scope + ":" + id
}

func (s *memoryIdempotencyStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func idempotencyTestHandler(calls *atomic.Int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"order":"o1"}}`))
	})
}

func checkoutRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Idempotency-Key", "key-1")
	return req
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	store := newMemoryIdempotencyStore()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	var calls atomic.Int64
	handler := Idempotency(store, logg)(idempotencyTestHandler(&calls))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, checkoutRequest(`{"name":"Asha"}`))
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, int64(1), calls.Load())

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, checkoutRequest(`{"name":"Asha"}`))
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, int64(1), calls.Load(), "handler must not run on replay")
}

func TestIdempotencyRejectsKeyReuseWithDifferentBody(t *testing.T) {
	store := newMemoryIdempotencyStore()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	var calls atomic.Int64
	handler := Idempotency(store, logg)(idempotencyTestHandler(&calls))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, checkoutRequest(`{"name":"Asha"}`))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, checkoutRequest(`{"name":"Ravi"}`))
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, int64(1), calls.Load())
}

func TestIdempotencyRequiresHeaderOnGuardedRoute(t *testing.T) {
	store := newMemoryIdempotencyStore()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	var calls atomic.Int64
	handler := Idempotency(store, logg)(idempotencyTestHandler(&calls))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int64(0), calls.Load())
}

func TestIdempotencyIgnoresUnguardedRoutes(t *testing.T) {
	store := newMemoryIdempotencyStore()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	var calls atomic.Int64
	handler := Idempotency(store, logg)(idempotencyTestHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), calls.Load())
	assert.Empty(t, store.values)
}
