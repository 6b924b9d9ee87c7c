package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PromRequestsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_requests_submitted_total",
			Help: "Verification requests accepted by the issuer",
		},
		[]string{"type"},
	)

	PromResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_resolutions_total",
			Help: "Terminal transitions persisted by the status resolver",
		},
		[]string{"status", "source"},
	)

	PromSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_syncs_total",
			Help: "Reconciliation calls by outcome",
		},
		[]string{"outcome"},
	)

	PromOracleCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "verification_oracle_call_duration_seconds",
			Help: "Duration of oracle submissions in seconds",
			Buckets: []float64{
				0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
			},
		},
		[]string{"outcome"},
	)
)

// Recorder records verification metrics. The zero value records nothing.
type Recorder struct {
	enabled bool
}

func NewRecorder() *Recorder {
	return &Recorder{enabled: true}
}

func NewNoopRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RequestSubmitted(verificationType string) {
	if r == nil || !r.enabled {
		return
	}
	PromRequestsSubmitted.WithLabelValues(verificationType).Inc()
}

func (r *Recorder) RequestResolved(status, source string) {
	if r == nil || !r.enabled {
		return
	}
	PromResolutions.WithLabelValues(status, source).Inc()
}

func (r *Recorder) SyncCompleted(outcome string) {
	if r == nil || !r.enabled {
		return
	}
	PromSyncs.WithLabelValues(outcome).Inc()
}

func (r *Recorder) OracleCall(outcome string, elapsed time.Duration) {
	if r == nil || !r.enabled {
		return
	}
	PromOracleCallDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
