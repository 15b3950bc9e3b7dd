package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the service's Prometheus collectors.
type Metrics struct {
	JobsCreated       prometheus.Counter
	JobsAssigned      prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
}

// New registers all collectors against the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		JobsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "darzi_jobs_created_total",
			Help: "Jobs submitted by customers.",
		}),
		JobsAssigned: factory.NewCounter(prometheus.CounterOpts{
			Name: "darzi_jobs_assigned_total",
			Help: "Jobs assigned to tailors.",
		}),
		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "darzi_job_status_transitions_total",
			Help: "Job status updates by target status.",
		}, []string{"status"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "darzi_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "path", "status"}),
	}
}
