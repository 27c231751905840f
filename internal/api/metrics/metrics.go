// Package metrics defines and registers all custom Prometheus metrics for
// the REPOPA API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "repopa"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "ok", "missing", "unknown_user", "bad_password", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts authorization denials at the route layer.
// Label:
//   - role: the denied session's role, or "anonymous"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of role-gate denials.",
	},
	[]string{"role"},
)

// EntesCreatedTotal counts newly registered entes.
// Label:
//   - tipo: "ORGANISMO", "FIDEICOMISO", or "EMPRESA"
var EntesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entes_created_total",
		Help:      "Total number of entes registered, by tipo.",
	},
	[]string{"tipo"},
)

// PoderesReplacedTotal counts full replacements of an ente's powers set.
var PoderesReplacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "poderes_replaced_total",
		Help:      "Total number of poderes replacements.",
	},
)
