// Package metrics defines and registers all custom Prometheus metrics for
// the PriorityParcel portal API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init and
// are exposed through the /metrics endpoint mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "priorityparcel"

// --- Intake metrics ---

// ContactMessagesTotal counts stored contact-form submissions.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages stored.",
	},
)

// OffertesTotal counts stored price-quote requests.
// Label:
//   - transport_type: "nationaal" or "internationaal"
var OffertesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offertes_total",
		Help:      "Total number of price-quote requests stored, by transport type.",
	},
	[]string{"transport_type"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// --- Update pipeline metrics ---

// UpdatesProcessedTotal counts zending updates that completed processing.
// Label:
//   - status: the new zending status applied by the update (e.g. "onderweg")
var UpdatesProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_processed_total",
		Help:      "Total number of zending updates successfully processed.",
	},
	[]string{"status"},
)

// UpdatesErrorsTotal counts zending updates that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition", "zending_not_found", "apply_failed")
var UpdatesErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_errors_total",
		Help:      "Total number of zending updates that failed processing.",
	},
	[]string{"reason"},
)

// UpdatesDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new update, processed)
var UpdatesDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// UpdatesQueueDepth tracks the number of updates waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var UpdatesQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "updates_queue_depth",
		Help:      "Current number of updates pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// UpdateProcessingDuration measures how long a single update takes end-to-end.
// Label:
//   - status: the resulting zending status
var UpdateProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "update_processing_duration_seconds",
		Help:      "Duration of update processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)
