package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"

	OutcomeHit    = "hit"
	OutcomeMiss   = "miss"
	OutcomeBypass = "bypass"
)

var (
	// FetchTotal counts upstream fetches by resource and outcome.
	FetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_fetch_total",
		Help: "Upstream API fetches by resource and outcome.",
	}, []string{"resource", "outcome"})

	// CacheRequests counts cached-fetch decisions. A "bypass" is a
	// fresh-but-empty payload that forced a refetch.
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_cache_requests_total",
		Help: "Cache store lookups by resource and outcome.",
	}, []string{"resource", "outcome"})

	// ErrorRecords counts entries added to the error log.
	ErrorRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_error_records_total",
		Help: "Errors reported to the error log.",
	})
)
