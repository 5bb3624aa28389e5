package main

import (
	"io"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// newHandler routes GET / and GET /metrics. Every other request gets an
// empty 404. Requests are counted in reg.
func newHandler(reg *prometheus.Registry) http.Handler {
	requests := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "hello_http_requests_total",
		Help: "HTTP requests by path and status code",
	}, []string{"path", "code"})

	metricsHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		path := "other"
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/":
			path = "/"
			rec.Header().Set("Content-Type", "text/plain; charset=utf-8")
			io.WriteString(rec, "hello world")
		case r.Method == http.MethodGet && r.URL.Path == "/metrics":
			path = "/metrics"
			metricsHandler.ServeHTTP(rec, r)
		default:
			rec.WriteHeader(http.StatusNotFound)
		}

		requests.WithLabelValues(path, strconv.Itoa(rec.code)).Inc()
	})
}
