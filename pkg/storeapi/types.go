package storeapi

import "time"

// MenuItem is a catalog document owned by the store.
type MenuItem struct {
	ID      string  `json:"_id,omitempty"`
	Name    string  `json:"name"`
	Cuisine string  `json:"cuisine"`
	Section string  `json:"section"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
	Info    string  `json:"info,omitempty"`
}

// LineEntry is one raw add-to-cart record as stored per session. Multiple
// entries may reference the same product.
type LineEntry struct {
	ID        string  `json:"_id"`
	SessionID string  `json:"sessionId"`
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity,omitempty"`
	Cuisine   string  `json:"cuisine,omitempty"`
	Section   string  `json:"section,omitempty"`
	Image     string  `json:"image,omitempty"`
}

// Customer holds the fields collected at checkout.
type Customer struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// OrderItem is one aggregated cart line frozen into an order.
type OrderItem struct {
	ProductID  string  `json:"productId,omitempty"`
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine,omitempty"`
	Section    string  `json:"section,omitempty"`
	Image      string  `json:"image,omitempty"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// Order is the persisted order document. Immutable once created; its only
// lifecycle transition is removal from the active queue on completion.
type Order struct {
	ID            string      `json:"_id,omitempty"`
	SessionID     string      `json:"sessionId"`
	Customer      Customer    `json:"customer"`
	PaymentMethod string      `json:"paymentMethod"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	TaxAmount     float64     `json:"taxAmount"`
	GrandTotal    float64     `json:"grandTotal"`
	OrderDate     time.Time   `json:"orderDate"`
	SerialNumber  int         `json:"serialNumber,omitempty"`
}
