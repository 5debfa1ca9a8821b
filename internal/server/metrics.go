package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	toolCalls    *prometheus.CounterVec
	toolLatency  *prometheus.HistogramVec
	requests     *prometheus.CounterVec
	decodeErrors prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "allometry",
			Name:      "tool_calls_total",
			Help:      "Tool calls by tool and outcome (ok or error kind).",
		}, []string{"tool", "outcome"}),
		toolLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "allometry",
			Name:      "tool_call_duration_seconds",
			Help:      "Time spent evaluating a tool call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"tool"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "allometry",
			Name:      "http_requests_total",
			Help:      "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
		decodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "allometry",
			Name:      "decode_errors_total",
			Help:      "Tool requests rejected before dispatch.",
		}),
	}
	reg.MustRegister(m.toolCalls, m.toolLatency, m.requests, m.decodeErrors)
	return m
}

func (m *metrics) observe(tool, kind string, d time.Duration) {
	outcome := "ok"
	if kind != "" {
		outcome = kind
	}
	// Unknown tool names are folded to keep label cardinality bounded.
	if kind == "request" && !knownTool(tool) {
		tool = "unknown"
	}
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
	m.toolLatency.WithLabelValues(tool).Observe(d.Seconds())
}

func knownTool(name string) bool {
	switch name {
	case "predict", "invert", "evaluate", "solve_inverse", "list_species", "list_relationships", "tool_spec":
		return true
	}
	return false
}
