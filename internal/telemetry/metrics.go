// Package telemetry registers the Prometheus metrics exported on GET /metrics.
//
// HTTP metrics use the gin route template (c.FullPath()) as the path label so
// user supplied path segments such as tokens or ids do not inflate cardinality.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics, labelled by method, route template and status code
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route template, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route template.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter, by route template.",
		},
		[]string{"path"},
	)
)

// Domain event metrics
var (
	NewsletterSubscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_subscriptions_total",
			Help: "Newsletter subscription changes, by action (subscribe, unsubscribe, preferences).",
		},
		[]string{"action"},
	)

	ForumReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_reports_total",
			Help: "Forum report submissions, by target kind and result (created, duplicate).",
		},
		[]string{"kind", "result"},
	)

	InvitationResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invitation_responses_total",
			Help: "Organization invitation responses, by action (accept, reject) and result.",
		},
		[]string{"action", "result"},
	)

	AttachmentDownloadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "attachment_downloads_total",
			Help: "Forum attachment downloads served.",
		},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Cache lookups for cached pages, by key and result (hit, miss).",
		},
		[]string{"key", "result"},
	)
)
