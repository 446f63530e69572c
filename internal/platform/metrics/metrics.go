// Package metrics exposes prometheus collectors for the money-moving paths.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration observes request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "riddimbase",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	// LedgerOperations counts balance mutations by operation and result.
	LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "riddimbase",
		Name:      "ledger_operations_total",
		Help:      "Ledger operations by operation (ensure, debit, credit, reset) and result.",
	}, []string{"operation", "result"})

	// LedgerRetries counts optimistic-lock conflicts that triggered a retry.
	LedgerRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "riddimbase",
		Name:      "ledger_cas_retries_total",
		Help:      "Compare-and-set conflicts retried, by subsystem (ledger, boost).",
	}, []string{"subsystem"})

	// SplitCreditFailures counts collaborator credits that failed after the
	// split row was durably recorded.
	SplitCreditFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "riddimbase",
		Name:      "split_credit_failures_total",
		Help:      "Sale split payouts recorded but not credited.",
	})
)
