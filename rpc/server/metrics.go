package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ValentinKolb/cstore/rpc/common"
	vmetrics "github.com/VictoriaMetrics/metrics"
)

// serverMetrics tracks request counts and latencies per request type
type serverMetrics struct {
	duration *vmetrics.Summary
	errors   *vmetrics.Counter
}

func newServerMetrics() *serverMetrics {
	return &serverMetrics{
		duration: vmetrics.GetOrCreateSummary(`cstore_request_duration_seconds`),
		errors:   vmetrics.GetOrCreateCounter(`cstore_request_errors_total`),
	}
}

// observe records one handled request
func (m *serverMetrics) observe(reqType common.RequestType, start time.Time, failed bool) {
	vmetrics.GetOrCreateCounter(
		fmt.Sprintf(`cstore_requests_total{type=%q}`, reqType.String()),
	).Inc()

	m.duration.UpdateDuration(start)

	if failed {
		m.errors.Inc()
	}
}

// serveMetricsEndpoint exposes all collected metrics in Prometheus text
// format on the given address. It blocks, so it is run in its own goroutine.
func serveMetricsEndpoint(endpoint string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, _ *http.Request) {
		vmetrics.WritePrometheus(w, true)
	})

	Logger.Infof("Starting metrics endpoint on %s", endpoint)
	return http.ListenAndServe(endpoint, mux)
}
