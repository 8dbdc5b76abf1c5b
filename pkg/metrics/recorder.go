package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded for each summarization attempt.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeUpstream     = "upstream_failure"
)

// Recorder receives summarization observations.
type Recorder interface {
	RecordRequest(shape, length, outcome string, duration time.Duration)
	RecordUsage(usage TokenUsage)
}

// PrometheusRecorder implements Recorder on a dedicated registry.
type PrometheusRecorder struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	tokens   *prometheus.CounterVec
}

// NewPrometheusRecorder registers the summarizer collectors on reg.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "summarizer_requests_total",
			Help: "Summarization requests by shape, length and outcome.",
		}, []string{"shape", "length", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "summarizer_request_duration_seconds",
			Help:    "Time spent producing a summary, including the provider call.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 45},
		}, []string{"outcome"}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "summarizer_tokens_total",
			Help: "Tokens reported by the provider.",
		}, []string{"kind"}),
	}
	reg.MustRegister(r.requests, r.duration, r.tokens)
	return r
}

// RecordRequest counts one attempt and observes its latency.
func (r *PrometheusRecorder) RecordRequest(shape, length, outcome string, duration time.Duration) {
	r.requests.WithLabelValues(shape, length, outcome).Inc()
	r.duration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordUsage adds provider token counts.
func (r *PrometheusRecorder) RecordUsage(usage TokenUsage) {
	if usage.IsZero() {
		return
	}
	r.tokens.WithLabelValues("prompt").Add(float64(usage.PromptTokens))
	r.tokens.WithLabelValues("completion").Add(float64(usage.CompletionTokens))
}

// NopRecorder discards observations.
type NopRecorder struct{}

func (NopRecorder) RecordRequest(string, string, string, time.Duration) {}
func (NopRecorder) RecordUsage(TokenUsage)                              {}

var (
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = NopRecorder{}
)
