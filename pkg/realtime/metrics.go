package realtime

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors of this package.
var Metrics = []prometheus.Collector{
	activeSubscriptions,
	snapshotsDelivered,
	snapshotErrors,
	rejectedDocuments,
}

// RegisterMetrics registers all collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range Metrics {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

var activeSubscriptions = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "realtime_subscriptions_active",
		Help: "Number of attached subscriptions, partitioned by collection.",
	},
	[]string{"collection"},
)

var snapshotsDelivered = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "realtime_snapshots_total",
		Help: "How many snapshots were delivered, partitioned by collection.",
	},
	[]string{"collection"},
)

var snapshotErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "realtime_snapshot_errors_total",
		Help: "How many snapshots failed to read and were delivered empty, partitioned by collection.",
	},
	[]string{"collection"},
)

var rejectedDocuments = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "realtime_rejected_documents_total",
		Help: "How many documents were dropped because they are not records, partitioned by collection.",
	},
	[]string{"collection"},
)
