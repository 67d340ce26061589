// Package metrics defines all custom Prometheus metrics for the meeting
// scheduler API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto against
// the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scheduler"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure" (failure covers unknown email and wrong
//     password alike; they are deliberately not distinguished)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Meeting metrics ───────────────────────────────────────────────────────────

// MeetingsCreatedTotal counts newly created meetings.
var MeetingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meetings_created_total",
		Help:      "Total number of meetings created.",
	},
)

// ── Invite metrics ────────────────────────────────────────────────────────────

// InvitesCreatedTotal counts minted invite links by scope.
// Label:
//   - scope: "view" or "book"
var InvitesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invites_created_total",
		Help:      "Total number of invite links created, by scope.",
	},
	[]string{"scope"},
)

// InviteResolutionsTotal counts resolution attempts on the public invite path.
// Label:
//   - result: "ok", "not_found", or "expired"
var InviteResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invite_resolutions_total",
		Help:      "Total number of invite link resolution attempts, by result.",
	},
	[]string{"result"},
)
