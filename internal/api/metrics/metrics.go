// Package metrics defines and registers all custom Prometheus metrics for
// the courier tracking API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Collectors register with the default Prometheus registry at import time
// via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courier"

// ── Tracking metrics ──────────────────────────────────────────────────────────

// TrackingLookupsTotal counts successful public tracking lookups.
// Label:
//   - source: which backend answered ("local", "carrier", "demo")
var TrackingLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_lookups_total",
		Help:      "Total number of tracking lookups that returned a result, by source.",
	},
	[]string{"source"},
)

// TrackingErrorsTotal counts failed public tracking lookups.
// Label:
//   - reason: "invalid_request", "not_found", "carrier_unconfigured", "upstream", "internal"
var TrackingErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_errors_total",
		Help:      "Total number of tracking lookups that failed, by reason.",
	},
	[]string{"reason"},
)

// ── Shipment metrics ──────────────────────────────────────────────────────────

// ShipmentsCreatedTotal counts newly created shipments.
// Label:
//   - status: the initial status assigned on creation
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by initial status.",
	},
	[]string{"status"},
)

// ShipmentsDeletedTotal counts deleted shipments.
var ShipmentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_deleted_total",
		Help:      "Total number of shipments deleted.",
	},
)

// RateLimitedTotal counts requests rejected by the public rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)
