// Package metrics defines and registers all custom Prometheus metrics for
// the sales management API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sales"

// ── Login metrics ─────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - outcome: "success", "invalid_credentials", or "backend_error"
//   - kind: the matched principal source ("operator", "staff", "customer"),
//     or "none" when no source matched
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome and principal kind.",
	},
	[]string{"outcome", "kind"},
)

// TokenRejectionsTotal counts protected requests rejected by the auth
// middleware.
// Label:
//   - reason: "missing_header", "invalid_header", or "invalid_token"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected at the auth middleware.",
	},
	[]string{"reason"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartItemsAddedTotal counts cart add operations.
var CartItemsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_items_added_total",
		Help:      "Total number of cart add operations.",
	},
)
