// Package metrics defines and registers the custom Prometheus metrics of the
// portal API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry on package init through
// promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Directory metrics ─────────────────────────────────────────────────────────

// UsersCreatedTotal counts employee and client accounts created by the CEO.
// Label:
//   - role: "employee" or "client"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// UsersDeletedTotal counts hard-deleted accounts.
var UsersDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted, by role.",
	},
	[]string{"role"},
)

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts new projects.
// Label:
//   - priority: "low", "medium" or "high"
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by priority.",
	},
	[]string{"priority"},
)

// ProjectsDeletedTotal counts deleted projects.
var ProjectsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_deleted_total",
		Help:      "Total number of projects deleted.",
	},
)

// ── Timesheet metrics ─────────────────────────────────────────────────────────

// TimesheetsSubmittedTotal counts newly submitted timesheets.
var TimesheetsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timesheets_submitted_total",
		Help:      "Total number of timesheets submitted.",
	},
)

// TimesheetReviewsTotal counts reviewer transitions.
// Label:
//   - status: the status the timesheet was moved to
var TimesheetReviewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timesheet_reviews_total",
		Help:      "Total number of timesheet review transitions, by target status.",
	},
	[]string{"status"},
)

// TimesheetWeeklyHours observes the total hours reported per submitted week.
var TimesheetWeeklyHours = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "timesheet_weekly_hours",
		Help:      "Distribution of total hours reported per timesheet week.",
		Buckets:   []float64{0, 8, 16, 24, 32, 40, 48, 56, 72, 96, 168},
	},
)
