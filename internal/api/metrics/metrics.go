// Package metrics defines all custom Prometheus metrics for the SkyParcel
// admin API. It is the single source of truth for metric names, labels, and
// help strings. Metrics are registered with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skyparcel"

// ── Shipment metrics ──────────────────────────────────────────────────────────

// StatusUpdatesTotal counts applied status transitions.
// Labels:
//   - from: the status before the transition
//   - to: the status written
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of shipment status transitions applied.",
	},
	[]string{"from", "to"},
)

// StatusUpdateErrorsTotal counts rejected or failed status transitions.
// Label:
//   - reason: short description ("invalid_transition", "not_found", "write_failed")
var StatusUpdateErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_update_errors_total",
		Help:      "Total number of shipment status transitions that were rejected or failed.",
	},
	[]string{"reason"},
)

// ListRequestsTotal counts working-list queries served to the console.
var ListRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_requests_total",
		Help:      "Total number of shipment list queries served.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome ("success" or "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// ── Timeline event metrics ────────────────────────────────────────────────────

// EventsProcessedTotal counts timeline events that completed processing.
var EventsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of timeline events successfully processed.",
	},
)

// EventsErrorsTotal counts timeline events that failed processing.
// Label:
//   - reason: short description of the failure
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of timeline events that failed processing.",
	},
	[]string{"reason"},
)

// EventsQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventProcessingDuration measures how long a single event takes to process
// from dequeue to persistence.
var EventProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of timeline event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
