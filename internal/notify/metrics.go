package notify

import "github.com/prometheus/client_golang/prometheus"

var created = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notifications_created_total",
		Help: "How many notifications were created, partitioned by type.",
	},
	[]string{"type"},
)

var dropped = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "notifications_dropped_total",
		Help: "How many realtime notifications were dropped because the subscriber was not ready.",
	},
)

// Collectors returns the Prometheus collectors of the notifier.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{created, dropped}
}
