package services

import "github.com/prometheus/client_golang/prometheus"

var validationOutcomes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "allocation_validations_total",
		Help: "Allocation validations, partitioned by account group and outcome (valid, warning, invalid, rejected).",
	},
	[]string{"group", "outcome"},
)

var workspaceLookupFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "workspace_lookup_failures_total",
		Help: "Failed membership or company lookups during workspace resolution, partitioned by step.",
	},
	[]string{"step"},
)

// Collectors returns the service level metrics so the caller can register them.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{validationOutcomes, workspaceLookupFailures}
}
