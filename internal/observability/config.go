package observability

import (
	"fmt"
	"strings"
)

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled" mapstructure:"enabled"`
	Provider     string  `yaml:"provider" mapstructure:"provider"`
	Endpoint     string  `yaml:"endpoint" mapstructure:"endpoint"`
	ServiceName  string  `yaml:"service_name" mapstructure:"service_name"`
	SampleRate   float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	InsecureMode bool    `yaml:"insecure_mode" mapstructure:"insecure_mode"` // plaintext gRPC to the collector
}

// Validate validates the TracingConfig fields.
// Returns an error if Provider is not otlp or noop, if SampleRate is outside [0, 1],
// or if the otlp provider has no endpoint.
func (c *TracingConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	provider := strings.ToLower(c.Provider)
	if provider != "otlp" && provider != "noop" {
		return fmt.Errorf("invalid tracing provider: %s (must be one of: otlp, noop)", c.Provider)
	}

	if c.SampleRate < 0.0 || c.SampleRate > 1.0 {
		return fmt.Errorf("invalid sample rate: %f (must be between 0.0 and 1.0)", c.SampleRate)
	}

	if provider == "otlp" && c.Endpoint == "" {
		return fmt.Errorf("endpoint is required when tracing is enabled")
	}

	return nil
}
