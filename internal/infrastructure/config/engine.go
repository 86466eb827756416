package config

// EngineConfig holds the tunable tables of the planning engine. Zero values
// mean "use the built-in default"; SetDefaults fills them in.
type EngineConfig struct {
	// Markup factor applied when no selling price is known (1.4 = 40% markup)
	MarkupFactor float64 `mapstructure:"markup_factor" validate:"omitempty,gt=1"`

	// Minimum acceptable profit margin as a fraction of cost
	MinimumMargin float64 `mapstructure:"minimum_margin" validate:"omitempty,gt=0,lt=1"`

	// Safety stock buffer expressed in days of usage
	SafetyStockDays float64 `mapstructure:"safety_stock_days" validate:"omitempty,gt=0"`

	// Standard output per worker-hour used as the productivity baseline
	StandardOutputPerHour float64 `mapstructure:"standard_output_per_hour" validate:"omitempty,gt=0"`

	// Global additional-cost coefficients by category name. Entries override
	// the built-in table; omitted categories keep their defaults.
	Coefficients map[string]float64 `mapstructure:"coefficients" validate:"dive,gte=0,lte=1"`

	// Fallback unit prices for materials missing from the catalog, matched
	// by keyword in order
	FallbackPrices []KeywordPriceConfig `mapstructure:"fallback_prices"`

	// Price used when no fallback keyword matches
	DefaultFallbackPrice float64 `mapstructure:"default_fallback_price" validate:"omitempty,gt=0"`

	// Number of calculations the history report returns
	HistoryLimit int `mapstructure:"history_limit" validate:"omitempty,min=1,max=100"`
}

// KeywordPriceConfig pairs a material-name keyword with a fallback price
type KeywordPriceConfig struct {
	Keyword string  `mapstructure:"keyword" validate:"required"`
	Price   float64 `mapstructure:"price" validate:"gt=0"`
}
