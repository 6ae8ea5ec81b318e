package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Результаты запроса к внешнему API
const (
	FetchOK         = "ok"
	FetchHTTPError  = "http_error"
	FetchUnexpected = "unexpected"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "code"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of response latency (seconds) for HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)
	UpstreamFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_fetch_total",
			Help: "Fetches of the user list by result",
		},
		[]string{"result"},
	)
	RecordsAggregatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "records_aggregated_total",
			Help: "User records folded into department summaries",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(UpstreamFetchTotal)
	prometheus.MustRegister(RecordsAggregatedTotal)
}
