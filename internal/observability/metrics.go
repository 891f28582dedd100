package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "btdctl",
			Subsystem: "session",
			Name:      "commands_total",
			Help:      "Total daemon commands issued.",
		},
		[]string{"command", "outcome"},
	)
	commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "btdctl",
			Subsystem: "session",
			Name:      "command_duration_seconds",
			Help:      "Daemon command round-trip duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"command"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(commandsTotal, commandDuration)
	})
}

// RecordCommand records one command round-trip. Outcome is "error" for
// transport failures, otherwise the daemon's status token.
func RecordCommand(command, outcome string, duration time.Duration) {
	if command == "" {
		command = "unknown"
	}
	commandsTotal.WithLabelValues(command, outcome).Inc()
	commandDuration.WithLabelValues(command).Observe(duration.Seconds())
}
