// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ssms_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ssms_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	ledgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ssms_ledger_operations_total",
		Help: "Ledger write operations by ledger, operation and result",
	}, []string{"ledger", "operation", "result"})

	batchItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ssms_ledger_batch_items_total",
		Help: "Items processed by bulk deletes, by ledger and result",
	}, []string{"ledger", "result"})

	outboxPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ssms_outbox_events_total",
		Help: "Outbox events relayed to Kafka by result",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveLedgerOperation counts a create/update/save call. err decides the result label.
func ObserveLedgerOperation(ledger, operation string, err error) {
	ledgerOperations.WithLabelValues(ledger, operation, result(err)).Inc()
}

func ObserveBatch(ledger string, succeeded, failed int) {
	batchItems.WithLabelValues(ledger, "succeeded").Add(float64(succeeded))
	batchItems.WithLabelValues(ledger, "failed").Add(float64(failed))
}

func ObserveOutbox(err error) {
	outboxPublished.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
