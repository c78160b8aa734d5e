package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "campaign_report"

// Report outcomes used as the "outcome" label.
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeInvalid     = "invalid"
	OutcomeSourceError = "source_error"
	OutcomeError       = "error"
)

var (
	reportRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "report",
		Name:      "requests_total",
		Help:      "Campaign report requests by outcome.",
	}, []string{"outcome"})
	reportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "report",
		Name:      "duration_seconds",
		Help:      "Time spent building a campaign report.",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"outcome"})
	rowsLoaded = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "source",
		Name:      "rows_loaded",
		Help:      "Rows returned by the most recent full read of each source table.",
	}, []string{"table"})
)

func init() {
	prometheus.MustRegister(reportRequests, reportDuration, rowsLoaded)
}

// ObserveReport counts a finished report request and its latency.
func ObserveReport(outcome string, elapsed time.Duration) {
	reportRequests.WithLabelValues(outcome).Inc()
	reportDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// RecordRowsLoaded sets the row count of the latest read of table.
func RecordRowsLoaded(table string, n int) {
	rowsLoaded.WithLabelValues(table).Set(float64(n))
}
