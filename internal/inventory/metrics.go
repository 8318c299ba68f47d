package inventory

import "github.com/prometheus/client_golang/prometheus"

var stockChanges = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "inventory_stock_changes_total",
		Help: "How many inventory operations were committed, partitioned by operation.",
	},
	[]string{"operation"},
)

var rollbacks = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "inventory_rollbacks_total",
		Help: "How many inventory operations were rolled back, partitioned by operation.",
	},
	[]string{"operation"},
)

// Collectors returns the Prometheus collectors of the inventory ledger.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{stockChanges, rollbacks}
}
