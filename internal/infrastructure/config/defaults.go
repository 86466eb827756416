package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults: local SQLite file keeps the CLI zero-setup
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "factoryops.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "factoryops"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "factoryops"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Engine defaults mirror the built-in domain tables
	if cfg.Engine.MarkupFactor == 0 {
		cfg.Engine.MarkupFactor = 1.4
	}
	if cfg.Engine.MinimumMargin == 0 {
		cfg.Engine.MinimumMargin = 0.20
	}
	if cfg.Engine.SafetyStockDays == 0 {
		cfg.Engine.SafetyStockDays = 3
	}
	if cfg.Engine.StandardOutputPerHour == 0 {
		cfg.Engine.StandardOutputPerHour = 10
	}
	if cfg.Engine.DefaultFallbackPrice == 0 {
		cfg.Engine.DefaultFallbackPrice = 1000
	}
	if cfg.Engine.HistoryLimit == 0 {
		cfg.Engine.HistoryLimit = 10
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "database"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9190
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
