// Package metrics is the single source of truth for the Prometheus metrics
// exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookspace"

// RoleChangesTotal counts applied role transitions.
// Labels:
//   - action: "assign" or "dismiss"
//   - role: the short role name (owner, manager, assistant_manager, worker)
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role transitions applied to users.",
	},
	[]string{"action", "role"},
)

// OrdersCreatedTotal counts checkouts that committed successfully.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

// AuthFailuresTotal counts rejected requests at the authorization gate.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authorization gate.",
	},
	[]string{"reason"},
)
