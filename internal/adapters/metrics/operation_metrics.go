package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetricsCollector records command/query execution metrics
type OperationMetricsCollector struct {
	operationDuration *prometheus.HistogramVec
	operationsTotal   *prometheus.CounterVec
}

// NewOperationMetricsCollector creates a new operation metrics collector
func NewOperationMetricsCollector() *OperationMetricsCollector {
	return &OperationMetricsCollector{
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operation_duration_seconds",
				Help:      "Operation execution duration distribution",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation", "status"},
		),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operations_total",
				Help:      "Total number of operations executed by type and status",
			},
			[]string{"operation", "status"},
		),
	}
}

// Register registers all operation metrics with the Prometheus registry
func (c *OperationMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{c.operationDuration, c.operationsTotal} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordOperation records one operation execution
func (c *OperationMetricsCollector) RecordOperation(operation string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}

	c.operationDuration.WithLabelValues(operation, status).Observe(duration)
	c.operationsTotal.WithLabelValues(operation, status).Inc()
}
