package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var CompletionTime = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "relay",
	Subsystem: "completion",
	Name:      "request_seconds",
})

var TranscriptionTime = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "relay",
	Subsystem: "transcription",
	Name:      "request_seconds",
})

// Errors counts failures by stage and error kind.
var Errors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "relay",
	Name:      "errors_total",
}, []string{"stage", "kind"})

// Fallbacks counts completions replaced by the fixed fallback text.
var Fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "relay",
	Subsystem: "completion",
	Name:      "fallbacks_total",
}, []string{"endpoint"})

var UploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "relay",
	Subsystem: "upload",
	Name:      "bytes",
	Buckets:   prometheus.ExponentialBuckets(16<<10, 4, 8),
})
