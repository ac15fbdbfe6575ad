// Package metrics defines the Prometheus metrics of the rental console. It is
// the single source of truth for metric names, labels and help strings.
//
// Metrics are registered with the default registry through promauto when the
// package is first imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tedcar"

// ── Backend calls ─────────────────────────────────────────────────────────────

// BackendRequestsTotal counts calls made to the rental backend.
// Labels:
//   - operation: register, token, list_vehicles, list_my_vehicles, create_vehicle,
//     update_vehicle, delete_vehicle, ping
//   - code: HTTP status code as a string, or "error" on transport failure
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Total number of requests sent to the rental backend.",
	},
	[]string{"operation", "code"},
)

// BackendRequestDuration measures the round trip of a backend call.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests sent to the rental backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Session ───────────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - result: "allowed" or "redirected"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "guard_decisions_total",
		Help:      "Total number of dashboard guard decisions, by result.",
	},
	[]string{"result"},
)

// ── Import ────────────────────────────────────────────────────────────────────

// ImportedVehiclesTotal counts vehicles processed by a bulk import.
// Label:
//   - result: "created" or "failed"
var ImportedVehiclesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "import",
		Name:      "vehicles_total",
		Help:      "Total number of vehicles processed by bulk imports, by result.",
	},
	[]string{"result"},
)
