package tui

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/blockbreak/internal/blockbreak"
)

const metricsNamespace = "blockbreak"

// Metrics holds the Prometheus collectors for game sessions.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	SessionsActive  prometheus.Gauge
	SessionsTotal   prometheus.Counter
	GamesFinished   *prometheus.CounterVec
	FinalScore      prometheus.Histogram
	BlocksDestroyed prometheus.Counter
	LivesLost       prometheus.Counter
	LevelsCleared   prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_active",
			Help:      "Number of currently connected sessions",
		}),
		SessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_total",
			Help:      "Total number of sessions started",
		}),
		GamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "games_finished_total",
			Help:      "Finished games by outcome",
		}, []string{"outcome"}),
		FinalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "final_score",
			Help:      "Score at the end of a game",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}),
		BlocksDestroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "blocks_destroyed_total",
			Help:      "Total number of blocks destroyed",
		}),
		LivesLost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lives_lost_total",
			Help:      "Total number of lives lost",
		}),
		LevelsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "levels_cleared_total",
			Help:      "Total number of levels cleared",
		}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.SessionsActive,
		m.SessionsTotal,
		m.GamesFinished,
		m.FinalScore,
		m.BlocksDestroyed,
		m.LivesLost,
		m.LevelsCleared,
	)
	return m
}

// SessionStarted records a new connected session.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.SessionsActive.Inc()
	m.SessionsTotal.Inc()
}

// SessionEnded records a disconnected session.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
}

// ObserveEvents updates counters from game events.
func (m *Metrics) ObserveEvents(events []blockbreak.Event) {
	if m == nil {
		return
	}
	for _, ev := range events {
		switch ev.Kind {
		case blockbreak.EventBlockDestroyed:
			m.BlocksDestroyed.Inc()
		case blockbreak.EventLifeLost:
			m.LivesLost.Inc()
		case blockbreak.EventLevelComplete:
			m.LevelsCleared.Inc()
		case blockbreak.EventGameOver, blockbreak.EventGameComplete:
			m.GamesFinished.WithLabelValues(ev.Kind.String()).Inc()
			m.FinalScore.Observe(float64(ev.Score))
		}
	}
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
