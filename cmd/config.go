package cmd

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the runtime configuration of the dashboard service.
// Loaded from environment variables by cmd/app and validated before the
// composition root is built.
type Config struct {
	HTTPPort string `validate:"required,numeric"`

	OrdersBaseURL   string `validate:"required,url"`
	OrdersToken     string `validate:"required"`
	OrdersPageSize  int    `validate:"gte=0,lte=100"`
	GeocodeBaseURL  string `validate:"omitempty,url"`
	RefreshSchedule string

	// EnrichmentStagger spaces out reverse-geocoding requests to respect
	// the geocoding provider's rate limits. Zero keeps the default.
	EnrichmentStagger time.Duration `validate:"gte=0"`
}

// Validate checks the configuration for missing or malformed values.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}
