package pricing

import (
	"testing"

	"github.com/tanish-jain-225/hotel-management-system/internal/cart"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name       string
		items      []cart.Item
		taxRate    float64
		subtotal   float64
		taxAmount  float64
		grandTotal float64
	}{
		{
			name:       "default gst on round subtotal",
			items:      []cart.Item{{TotalPrice: 60}, {TotalPrice: 40}},
			taxRate:    0.05,
			subtotal:   100,
			taxAmount:  5,
			grandTotal: 105,
		},
		{
			name:    "empty cart yields zero totals",
			items:   nil,
			taxRate: 0.05,
		},
		{
			name:       "tax computed from rounded subtotal",
			items:      []cart.Item{{TotalPrice: 33.335}, {TotalPrice: 33.333}},
			taxRate:    0.05,
			subtotal:   66.67,
			taxAmount:  3.33,
			grandTotal: 70,
		},
		{
			name:       "fractional prices stay at two decimals",
			items:      []cart.Item{{TotalPrice: 9.99}, {TotalPrice: 0.02}},
			taxRate:    0.05,
			subtotal:   10.01,
			taxAmount:  0.5,
			grandTotal: 10.51,
		},
		{
			name:       "zero tax rate",
			items:      []cart.Item{{TotalPrice: 250}},
			taxRate:    0,
			subtotal:   250,
			taxAmount:  0,
			grandTotal: 250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.items, tt.taxRate)
			if totals.Subtotal != tt.subtotal {
				t.Fatalf("expected subtotal %v got %v", tt.subtotal, totals.Subtotal)
			}
			if totals.TaxAmount != tt.taxAmount {
				t.Fatalf("expected tax %v got %v", tt.taxAmount, totals.TaxAmount)
			}
			if totals.GrandTotal != tt.grandTotal {
				t.Fatalf("expected grand total %v got %v", tt.grandTotal, totals.GrandTotal)
			}
		})
	}
}

func TestComputeTotalsIsPure(t *testing.T) {
	items := []cart.Item{{TotalPrice: 12.34}, {TotalPrice: 56.78}}
	first := ComputeTotals(items, 0.05)
	second := ComputeTotals(items, 0.05)
	if first != second {
		t.Fatalf("expected identical totals got %+v vs %+v", first, second)
	}
}
