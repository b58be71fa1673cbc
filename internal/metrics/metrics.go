// Package metrics registers the pipeline's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quill"

var (
	FetchSources = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fetch",
		Name:      "sources_total",
		Help:      "Feed sources polled, by result.",
	}, []string{"result"})

	FetchNewItems = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fetch",
		Name:      "new_items_total",
		Help:      "Fetched items inserted as pending.",
	})

	GenerationAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "generation",
		Name:      "attempts_total",
		Help:      "Generation attempts, by mode and result.",
	}, []string{"mode", "result"})

	ProviderWait = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "generation",
		Name:      "rate_limit_wait_seconds",
		Help:      "Time generation calls spent waiting for the provider rate limiter.",
		Buckets:   []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 30},
	})

	Publishes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "publish",
		Name:      "items_total",
		Help:      "Publish attempts, by trigger and result.",
	}, []string{"trigger", "result"})

	JobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "runs_total",
		Help:      "Scheduled job runs, by job and result.",
	}, []string{"job", "result"})

	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scheduler",
		Name:      "run_duration_seconds",
		Help:      "Scheduled job run duration.",
		Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 900},
	}, []string{"job"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "API requests, by method, route and status code.",
	}, []string{"method", "route", "code"})
)

const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Result maps an error to the success/failed label.
func Result(err error) string {
	if err != nil {
		return ResultFailed
	}
	return ResultSuccess
}

// ObserveJob records one scheduler run.
func ObserveJob(job, result string, elapsed time.Duration) {
	JobRuns.WithLabelValues(job, result).Inc()
	if result != ResultSkipped {
		JobDuration.WithLabelValues(job).Observe(elapsed.Seconds())
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
