// Package metrics holds the prometheus collectors of the bot and the small
// HTTP server that exposes them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "birdhunter"

var CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "commands_total",
	Help:      "Interactions handled, by command and outcome.",
}, []string{"command", "status"})

var CommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "command_duration_seconds",
	Help:      "Time spent handling an interaction.",
	Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
}, []string{"command"})

var CoinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "coins_total",
	Help:      "Coins paid out (earned) or taken (spent) by the game.",
}, []string{"direction"})

var BirdsCaptured = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "birds_captured_total",
	Help:      "Birds captured, by rarity.",
}, []string{"rarity"})

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusTimeout = "timeout"
)

// ObserveCommand records one finished interaction.
func ObserveCommand(command, status string, took time.Duration) {
	CommandsTotal.WithLabelValues(command, status).Inc()
	CommandDuration.WithLabelValues(command).Observe(took.Seconds())
}

func CoinsEarned(amount int64) {
	if amount > 0 {
		CoinsTotal.WithLabelValues("earned").Add(float64(amount))
	}
}

func CoinsSpent(amount int64) {
	if amount > 0 {
		CoinsTotal.WithLabelValues("spent").Add(float64(amount))
	}
}

func BirdCaptured(rarity string) {
	BirdsCaptured.WithLabelValues(rarity).Inc()
}
