package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"

	"homogebra/internal/scene"
)

var (
	sceneEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homogebra",
			Subsystem: "scene",
			Name:      "events_total",
			Help:      "Events dispatched by scene objects",
		},
		[]string{"type"},
	)

	sceneRecomputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homogebra",
			Subsystem: "scene",
			Name:      "recomputations_total",
			Help:      "Construction evaluations by result (valid, degenerate)",
		},
		[]string{"result"},
	)

	sceneDestroyedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homogebra",
			Subsystem: "scene",
			Name:      "destroyed_total",
			Help:      "Destroyed objects by cause (direct, cascade)",
		},
		[]string{"cause"},
	)

	sceneObserverPanicsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "homogebra",
			Subsystem: "scene",
			Name:      "observer_panics_total",
			Help:      "Observer callbacks that panicked and were recovered",
		},
	)

	sceneObjects = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "homogebra",
			Subsystem: "scene",
			Name:      "objects",
			Help:      "Live objects in the scene",
		},
	)
)

func init() {
	prometheus.MustRegister(sceneEventsTotal, sceneRecomputationsTotal, sceneDestroyedTotal, sceneObserverPanicsTotal, sceneObjects)
}

// SceneMetrics exports scene counters to Prometheus. Pass it as
// scene.Config.Metrics.
type SceneMetrics struct{}

var _ scene.Metrics = SceneMetrics{}

func (SceneMetrics) EventDispatched(t scene.EventType) {
	sceneEventsTotal.WithLabelValues(string(t)).Inc()
}

func (SceneMetrics) Recomputed(valid bool) {
	if valid {
		sceneRecomputationsTotal.WithLabelValues("valid").Inc()
		return
	}
	sceneRecomputationsTotal.WithLabelValues("degenerate").Inc()
}

func (SceneMetrics) Destroyed(cascade bool) {
	if cascade {
		sceneDestroyedTotal.WithLabelValues("cascade").Inc()
		return
	}
	sceneDestroyedTotal.WithLabelValues("direct").Inc()
}

func (SceneMetrics) ObserverPanicked() { sceneObserverPanicsTotal.Inc() }

func (SceneMetrics) ObjectCount(n int) { sceneObjects.Set(float64(n)) }
