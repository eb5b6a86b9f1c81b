// Package metrics defines and registers all custom Prometheus metrics for the
// delivery quote API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and exposed by the router at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "delivery_quote"

// ── Quote metrics ─────────────────────────────────────────────────────────────

// QuotesTotal counts quote requests answered.
// Labels:
//   - delivery_type: the requested tier (e.g. "express")
//   - outcome: "computed" or "fallback"
var QuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_total",
		Help:      "Total number of delivery quotes served, by requested tier and outcome.",
	},
	[]string{"delivery_type", "outcome"},
)

// QuoteFallbackTotal counts quotes replaced by the flat-rate fallback.
// Label:
//   - reason: short description of the failure (e.g. "panic", "non_finite", "empty_cart")
var QuoteFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_fallback_total",
		Help:      "Total number of quotes that degraded to the fallback option.",
	},
	[]string{"reason"},
)

// QuoteDuration measures the time spent computing a quote.
var QuoteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_duration_seconds",
		Help:      "Duration of quote computation, including collaborator lookups.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	},
)

// ZoneResolutionsTotal counts delivery-point resolutions.
// Label:
//   - catalog: "city", "regional" or "none"
var ZoneResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "zone_resolutions_total",
		Help:      "Total number of delivery zone resolutions, by catalog tier.",
	},
	[]string{"catalog"},
)

// RiderSnapshotTotal counts rider availability lookups.
// Label:
//   - result: "live", "default" (no snapshot) or "error" (lookup failed or timed out)
var RiderSnapshotTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rider_snapshot_total",
		Help:      "Total number of rider availability lookups, by result.",
	},
	[]string{"result"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheRefreshTotal counts cache refresh attempts.
// Labels:
//   - cache: "settings" or "catalog"
//   - result: "ok" or "error"
var CacheRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_refresh_total",
		Help:      "Total number of cache refreshes, by cache and result.",
	},
	[]string{"cache", "result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit records waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit records dropped because the worker queue was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of quote audit records dropped on a full queue.",
	},
)

// AuditErrorsTotal counts audit records that failed to persist.
var AuditErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of quote audit records that failed to persist.",
	},
)
