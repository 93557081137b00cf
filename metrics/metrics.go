// Package metrics provides Prometheus metrics for the back office.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	// ListFetchTotal counts list fetches by entity and outcome.
	ListFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admin",
			Name:      "list_fetch_total",
			Help:      "Total number of list fetches",
		},
		[]string{"entity", "outcome"},
	)

	ListFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "admin",
			Name:      "list_fetch_duration_seconds",
			Help:      "Duration of list fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"entity"},
	)

	// IntentsTotal counts dispatched mutation intents.
	IntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admin",
			Name:      "intents_total",
			Help:      "Total number of mutation intents",
		},
		[]string{"entity", "kind", "outcome"},
	)
)

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}

// RecordListFetch records one list fetch.
func RecordListFetch(entity string, started time.Time, err error) {
	ListFetchTotal.WithLabelValues(entity, outcome(err)).Inc()
	ListFetchDuration.WithLabelValues(entity).Observe(time.Since(started).Seconds())
}

// RecordIntent records one intent dispatch.
func RecordIntent(entity, kind string, err error) {
	IntentsTotal.WithLabelValues(entity, kind, outcome(err)).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
