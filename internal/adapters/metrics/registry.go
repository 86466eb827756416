package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace for all metrics
	namespace = "factoryops"
	// Subsystem for the planning engine
	subsystem = "engine"
)

// Registry is the global Prometheus registry for all metrics
var Registry *prometheus.Registry

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Handler returns an HTTP handler exposing the registry, or nil when metrics
// are disabled
func Handler() http.Handler {
	if Registry == nil {
		return nil
	}
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Serve starts a blocking HTTP server exposing the metrics endpoint
func Serve(host string, port int, path string) error {
	handler := Handler()
	if handler == nil {
		return fmt.Errorf("metrics registry not initialized")
	}
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	return http.ListenAndServe(fmt.Sprintf("%s:%d", host, port), mux)
}
