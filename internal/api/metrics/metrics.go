// Package metrics defines and registers all custom Prometheus metrics for the
// Valo.Rant community API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto and register with the default registry at package
// initialisation; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "valorant"

// ── Board metrics ─────────────────────────────────────────────────────────────

// PostsTotal counts rant-board post mutations.
// Label:
//   - op: "created" or "deleted"
var PostsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_total",
		Help:      "Total number of rant posts created and deleted.",
	},
	[]string{"op"},
)

// RepliesTotal counts reply mutations.
// Label:
//   - op: "created" or "deleted"
var RepliesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "replies_total",
		Help:      "Total number of replies created and deleted.",
	},
	[]string{"op"},
)

// PatchesTotal counts patch-notes mutations.
// Label:
//   - op: "created", "updated" or "deleted"
var PatchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patches_total",
		Help:      "Total number of patch-notes mutations, by operation.",
	},
	[]string{"op"},
)

// ── Identity metrics ──────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok", "invalid" or "conflict"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "admin" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogFetchesTotal counts upstream catalog fetches.
// Label:
//   - result: "ok", "timeout" or "error"
var CatalogFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fetches_total",
		Help:      "Total number of external catalog fetches, by result.",
	},
	[]string{"result"},
)

// CatalogFetchDuration measures successful catalog round-trip time.
var CatalogFetchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_fetch_duration_seconds",
		Help:      "Duration of successful external catalog fetches.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
