package reaction

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Applied    *prometheus.CounterVec
	Confirmed  *prometheus.CounterVec
	RolledBack *prometheus.CounterVec
	InFlight   prometheus.Gauge
	Latency    prometheus.Histogram
}

// NewMetrics registers reaction metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Applied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "postfeed_reactions_applied_total",
			Help: "Optimistic reaction increments applied to the feed.",
		}, []string{"kind"}),
		Confirmed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "postfeed_reactions_confirmed_total",
			Help: "Reactions acknowledged by the confirmer.",
		}, []string{"kind"}),
		RolledBack: f.NewCounterVec(prometheus.CounterOpts{
			Name: "postfeed_reactions_rolled_back_total",
			Help: "Reactions reverted after a failed confirmation.",
		}, []string{"kind"}),
		InFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "postfeed_reactions_in_flight",
			Help: "Reactions awaiting confirmation.",
		}),
		Latency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "postfeed_reaction_confirm_seconds",
			Help:    "Time spent waiting for reaction confirmation.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
