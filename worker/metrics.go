package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "ticks_total",
			Help:      "Turns applied to running games.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "food_eaten_total",
			Help:      "Food eaten across all games.",
		},
	)
	gamesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "games_total",
			Help:      "Games that reached a terminal status.",
		},
		[]string{"status"},
	)
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "tick_duration_seconds",
			Help:      "Time spent applying a single turn.",
			Buckets:   prometheus.ExponentialBuckets(0.000005, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(ticksTotal, foodEaten, gamesFinished, tickDuration)
}
