package config

// MetricsConfig holds metrics collection and exposure configuration
type MetricsConfig struct {
	// Enabled controls whether the Prometheus registry and HTTP endpoint
	// are started
	Enabled bool `mapstructure:"enabled"`

	// Port for the HTTP metrics server
	Port int `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Host to bind the metrics HTTP server
	Host string `mapstructure:"host"`

	// Path for the metrics endpoint
	Path string `mapstructure:"path"`
}
