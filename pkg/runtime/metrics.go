package runtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	renders        prometheus.Counter
	renderDuration prometheus.Histogram
	mutations      *prometheus.CounterVec
	effectRuns     prometheus.Counter
	sweptPaths     prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		renders: f.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "runtime",
			Name:      "renders_total",
			Help:      "Completed render passes.",
		}),
		renderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "loom",
			Subsystem: "runtime",
			Name:      "render_duration_seconds",
			Help:      "Wall-clock duration of one render pass.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "runtime",
			Name:      "host_mutations_total",
			Help:      "Host tree mutations applied, by operation.",
		}, []string{"op"}),
		effectRuns: f.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "runtime",
			Name:      "effect_runs_total",
			Help:      "Effect bodies executed during post-commit flushes.",
		}),
		sweptPaths: f.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Subsystem: "runtime",
			Name:      "swept_paths_total",
			Help:      "Hook paths discarded because their component unmounted.",
		}),
	}
}
