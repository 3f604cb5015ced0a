// Package metrics defines the Prometheus counters tracking domain outcomes of
// the devconnector API. Per-request HTTP metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "devconnector"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountsDeletedTotal counts deleted accounts.
var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of deleted accounts.",
	},
)

// ── Profile metrics ───────────────────────────────────────────────────────────

// ProfileEntriesTotal counts experience and education changes.
// Labels:
//   - kind: "experience" or "education"
//   - op: "add" or "remove"
var ProfileEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_entries_total",
		Help:      "Total number of experience/education entries added or removed.",
	},
	[]string{"kind", "op"},
)

// GitHubLookupsTotal counts repository lookups.
// Label:
//   - result: "found" or "not_found"
var GitHubLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "github_lookups_total",
		Help:      "Total number of GitHub repository lookups, by result.",
	},
	[]string{"result"},
)

// ── Feed metrics ──────────────────────────────────────────────────────────────

// PostsCreatedTotal counts created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// PostReactionsTotal counts feed interactions.
// Label:
//   - action: "like", "unlike", "comment" or "uncomment"
var PostReactionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_reactions_total",
		Help:      "Total number of likes, unlikes and comment changes on posts.",
	},
	[]string{"action"},
)

// ErrorsTotal counts error responses rendered by the HTTP error handler.
// Label:
//   - status: the HTTP status code class, e.g. "4xx" or "5xx"
var ErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_errors_total",
		Help:      "Total number of error responses, by status class.",
	},
	[]string{"status"},
)
