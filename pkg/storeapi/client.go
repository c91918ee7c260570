package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tanish-jain-225/hotel-management-system/pkg/config"
	pkgerrors "github.com/tanish-jain-225/hotel-management-system/pkg/errors"
)

const (
	cartPath          = "/orders"
	cartClearPath     = "/orders/clear"
	ordersPath        = "/place-order"
	defaultTimeout    = 15 * time.Second
	errorBodyReadLimit int64 = 4096
)

var errBaseURLRequired = errors.New("store base url is required")

// Client speaks the document store's REST contract. Every method makes a
// single attempt; retries are left to fresh user actions.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds a store client from config.
func NewClient(cfg config.StoreConfig, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// Ping checks the store is reachable by listing the catalog root.
func (c *Client) Ping(ctx context.Context) error {
	var items []MenuItem
	return c.do(ctx, http.MethodGet, "/", nil, &items)
}

// MenuItems lists the catalog.
func (c *Client) MenuItems(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.do(ctx, http.MethodGet, "/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMenuItem adds a catalog document. The store echoes the created item
// under a newItem wrapper.
func (c *Client) CreateMenuItem(ctx context.Context, item MenuItem) (*MenuItem, error) {
	var resp struct {
		NewItem MenuItem `json:"newItem"`
	}
	if err := c.do(ctx, http.MethodPost, "/", item, &resp); err != nil {
		return nil, err
	}
	return &resp.NewItem, nil
}

// DeleteMenuItem removes a catalog document by id.
func (c *Client) DeleteMenuItem(ctx context.Context, itemID string) error {
	body := map[string]string{"_id": itemID}
	return c.do(ctx, http.MethodDelete, "/", body, nil)
}

// CartEntries fetches all raw line entries for the session.
func (c *Client) CartEntries(ctx context.Context, sessionID string) ([]LineEntry, error) {
	path := cartPath + "?sessionId=" + url.QueryEscape(sessionID)
	var entries []LineEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// RemoveCartEntry deletes one line entry keyed by (sessionId, entryId).
func (c *Client) RemoveCartEntry(ctx context.Context, sessionID, entryID string) error {
	body := map[string]string{"sessionId": sessionID, "_id": entryID}
	return c.do(ctx, http.MethodDelete, cartPath, body, nil)
}

// ClearCart removes every line entry for the session.
func (c *Client) ClearCart(ctx context.Context, sessionID string) error {
	body := map[string]string{"sessionId": sessionID}
	return c.do(ctx, http.MethodDelete, cartClearPath, body, nil)
}

// PlaceOrder creates the order document. The store acknowledges with the
// created order; when the echo is partial the submitted payload is returned.
func (c *Client) PlaceOrder(ctx context.Context, order Order) (*Order, error) {
	var created Order
	if err := c.do(ctx, http.MethodPost, ordersPath, order, &created); err != nil {
		return nil, err
	}
	if created.ID == "" {
		created = order
	}
	return &created, nil
}

// ActiveOrders lists orders in the placed state.
func (c *Client) ActiveOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, ordersPath, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CompleteOrder removes the order from the active set. Irreversible.
func (c *Client) CompleteOrder(ctx context.Context, orderID string) error {
	path := ordersPath + "/" + url.PathEscape(orderID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode store request")
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build store request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store request failed")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(resp)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode store response")
	}
	return nil
}

// errorFromResponse maps a non-2xx store reply onto the error taxonomy. A
// parseable {message} body is surfaced verbatim.
func (c *Client) errorFromResponse(resp *http.Response) error {
	message := fmt.Sprintf("store returned status %d", resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
	if err == nil && len(raw) > 0 {
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &body) == nil && strings.TrimSpace(body.Message) != "" {
			message = body.Message
		}
	}

	code := pkgerrors.CodeDependency
	if resp.StatusCode == http.StatusNotFound {
		code = pkgerrors.CodeNotFound
	}
	return pkgerrors.New(code, message).WithDetails(map[string]any{"status": resp.StatusCode})
}
