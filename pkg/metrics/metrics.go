// Package metrics defines and registers all custom Prometheus metrics for the
// freight site API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry through
// promauto when the package is first imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "site"

// Entity names used as the "entity" label.
const (
	EntityContent     = "content"
	EntityService     = "service"
	EntityPricing     = "pricing"
	EntityTestimonial = "testimonial"
	EntityContact     = "contact"
	EntityUser        = "user"
)

// Mutation operations used as the "op" label.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpUpsert = "upsert"
)

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntityMutationsTotal counts successful writes.
// Labels:
//   - entity: one of the Entity* constants
//   - op: one of the Op* constants
var EntityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_mutations_total",
		Help:      "Total number of successful entity writes, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactSubmissionsTotal counts contact form submissions.
// Label:
//   - result: "accepted", "duplicate" or "error"
var ContactSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact form submissions, by result.",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// RecordMutation increments EntityMutationsTotal for entity and op.
func RecordMutation(entity, op string) {
	EntityMutationsTotal.WithLabelValues(entity, op).Inc()
}
