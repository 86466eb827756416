package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CalculationMetricsCollector records production-calculation outcomes
type CalculationMetricsCollector struct {
	calculationsTotal *prometheus.CounterVec
	lastUnitCost      *prometheus.GaugeVec
	stockAlertsTotal  *prometheus.CounterVec
}

// NewCalculationMetricsCollector creates a new calculation metrics collector
func NewCalculationMetricsCollector() *CalculationMetricsCollector {
	return &CalculationMetricsCollector{
		calculationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "calculations_total",
				Help:      "Total number of production cost calculations by product and feasibility",
			},
			[]string{"product", "feasible"},
		),
		lastUnitCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_unit_cost",
				Help:      "Unit cost from the most recent calculation per product",
			},
			[]string{"product"},
		),
		stockAlertsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "stock_alerts_total",
				Help:      "Total number of low-stock alerts raised by status",
			},
			[]string{"status"},
		),
	}
}

// Register registers all calculation metrics with the Prometheus registry
func (c *CalculationMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.calculationsTotal,
		c.lastUnitCost,
		c.stockAlertsTotal,
	}
	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordCalculation records one completed calculation
func (c *CalculationMetricsCollector) RecordCalculation(product string, unitCost float64, feasible bool) {
	feasibleLabel := "yes"
	if !feasible {
		feasibleLabel = "no"
	}

	c.calculationsTotal.WithLabelValues(product, feasibleLabel).Inc()
	c.lastUnitCost.WithLabelValues(product).Set(unitCost)
}

// RecordStockAlert records one raised stock alert
func (c *CalculationMetricsCollector) RecordStockAlert(status string) {
	c.stockAlertsTotal.WithLabelValues(status).Inc()
}
