// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationRequests counts generation attempts by kind (content|campaign).
	GenerationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "generation_requests_total",
		Help: "Total generation requests received, by kind.",
	}, []string{"kind"})

	// GenerationFailures counts failed generation attempts by kind and reason.
	GenerationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "generation_failures_total",
		Help: "Total failed generation requests, by kind and reason.",
	}, []string{"kind", "reason"})

	// PostsCreated counts social post records inserted.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "social_posts_created_total",
		Help: "Total social post records inserted.",
	})

	// RelayUpstreamErrors counts non-success responses from the workflow webhook.
	RelayUpstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_upstream_errors_total",
		Help: "Total upstream webhook failures observed by the relay.",
	})
)
