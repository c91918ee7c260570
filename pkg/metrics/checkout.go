package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records outcomes of the order lifecycle.
type CheckoutMetrics struct {
	attempts          prometheus.Counter
	failures          *prometheus.CounterVec
	cartClearFailures prometheus.Counter
	ordersCompleted   prometheus.Counter
}

// NewCheckoutMetrics registers the order lifecycle metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	attempts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_attempts_total",
		Help: "Checkout submissions that passed validation.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_failures_total",
		Help: "Checkout submissions that failed, by stage.",
	}, []string{"stage"})
	cartClearFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_cart_clear_failures_total",
		Help: "Orders placed whose cart clear failed; input for reconciliation.",
	})
	ordersCompleted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_completed_total",
		Help: "Orders marked completed by staff.",
	})
	reg.MustRegister(attempts, failures, cartClearFailures, ordersCompleted)
	return &CheckoutMetrics{
		attempts:          attempts,
		failures:          failures,
		cartClearFailures: cartClearFailures,
		ordersCompleted:   ordersCompleted,
	}
}

// IncAttempt counts a validated checkout submission.
func (m *CheckoutMetrics) IncAttempt() {
	if m == nil || m.attempts == nil {
		return
	}
	m.attempts.Inc()
}

// IncFailure counts a failed checkout at the named stage.
func (m *CheckoutMetrics) IncFailure(stage string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(stage).Inc()
}

// IncCartClearFailure counts the partial-checkout inconsistency window.
func (m *CheckoutMetrics) IncCartClearFailure() {
	if m == nil || m.cartClearFailures == nil {
		return
	}
	m.cartClearFailures.Inc()
}

// IncOrderCompleted counts a fulfilled order.
func (m *CheckoutMetrics) IncOrderCompleted() {
	if m == nil || m.ordersCompleted == nil {
		return
	}
	m.ordersCompleted.Inc()
}
