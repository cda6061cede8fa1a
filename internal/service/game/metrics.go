package game

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "bowling"

// Metrics holds the game service collectors.
type Metrics struct {
	gamesStarted   prometheus.Counter
	gamesFinished  prometheus.Counter
	gamesAbandoned prometheus.Counter
	throws         *prometheus.CounterVec
	throwErrors    *prometheus.CounterVec
	scores         prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "games_started_total",
			Help:      "Games started.",
		}),
		gamesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "games_finished_total",
			Help:      "Games played to the end.",
		}),
		gamesAbandoned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "games_abandoned_total",
			Help:      "Games replaced by a new game before finishing.",
		}),
		throws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "throws_total",
			Help:      "Accepted throws by phase.",
		}, []string{"phase"}),
		throwErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "throw_errors_total",
			Help:      "Rejected throws by reason.",
		}, []string{"reason"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "game_score",
			Help:      "Final score of finished games.",
			Buckets:   prometheus.LinearBuckets(0, 30, 11),
		}),
	}
	reg.MustRegister(
		m.gamesStarted,
		m.gamesFinished,
		m.gamesAbandoned,
		m.throws,
		m.throwErrors,
		m.scores,
	)
	return m
}
