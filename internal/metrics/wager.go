package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wagerTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wager_requests_total",
			Help: "Total wager requests by game and result",
		},
		[]string{"game", "result"},
	)

	wagerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wager_request_duration_ms",
			Help:    "Wager settlement duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"game", "result"},
	)
)

// RecordWager пишет бизнес-метрики одной ставки.
// result - "success" либо "fail"
func RecordWager(game, result string, started time.Time) {
	if result != "success" {
		result = "fail"
	}
	wagerTotal.WithLabelValues(game, result).Inc()
	wagerDuration.WithLabelValues(game, result).Observe(float64(time.Since(started).Milliseconds()))
}
