package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tanish-jain-225/hotel-management-system/internal/cart"
)

// Totals is the priced summary of an aggregated cart. All values are
// non-negative and rounded to two decimal places.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxAmount  float64 `json:"taxAmount"`
	GrandTotal float64 `json:"grandTotal"`
}

// ComputeTotals prices the aggregated cart under the configured tax rate.
// The tax is computed from the rounded subtotal, and the grand total is the
// sum of the two rounded values rather than an independently rounded figure;
// stored order totals depend on this exact sequence.
func ComputeTotals(items []cart.Item, taxRate float64) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(item.TotalPrice))
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Round(2)
	grand := subtotal.Add(tax)

	return Totals{
		Subtotal:   subtotal.InexactFloat64(),
		TaxAmount:  tax.InexactFloat64(),
		GrandTotal: grand.InexactFloat64(),
	}
}
