package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/monejava/neptune-demo/internal/types"
	"github.com/monejava/neptune-demo/internal/util"
)

// ConfigLoader resolves configuration from the environment, a properties file and defaults.
type ConfigLoader interface {
	// Load resolves and validates the configuration.
	Load(path string) (*Config, error)
	// Resolve resolves the configuration without validating it.
	Resolve(path string) (*Config, error)
}

// LoaderOption customizes a ConfigLoader.
type LoaderOption func(*viperConfigLoader)

// WithEnvLookup replaces os.Getenv as the source of environment variables.
func WithEnvLookup(lookup func(string) string) LoaderOption {
	return func(l *viperConfigLoader) {
		l.getenv = lookup
	}
}

// viperConfigLoader implements ConfigLoader using Viper.
type viperConfigLoader struct {
	validator ConfigValidator
	getenv    func(string) string
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader(validator ConfigValidator, opts ...LoaderOption) ConfigLoader {
	l := &viperConfigLoader{
		validator: validator,
		getenv:    os.Getenv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves the configuration and validates it.
func (l *viperConfigLoader) Load(path string) (*Config, error) {
	cfg, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}

	if err := l.validator.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Resolve builds the configuration. For every setting the first non-blank value wins:
// environment variable, then properties file, then default. A missing file is not an error.
func (l *viperConfigLoader) Resolve(path string) (*Config, error) {
	file, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	resolved := viper.New()
	for _, s := range settings {
		value := s.def
		if v := fileValue(file, s); v != "" {
			value = v
		}
		if v := strings.TrimSpace(l.getenv(s.env)); v != "" {
			value = v
		}
		if value == "" {
			continue
		}
		resolved.Set(s.key, s.normalize(value))
	}

	var cfg Config
	if err := resolved.Unmarshal(&cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED, "failed to decode configuration", err)
	}

	return &cfg, nil
}

// readConfigFile reads path into a fresh viper instance after expanding ~ and $VAR.
// A nil instance is returned when path is empty or the file does not exist.
func readConfigFile(path string) (*viper.Viper, error) {
	path, ok, err := util.ExistingFile(path)
	if err != nil {
		return nil, types.WrapError(types.CONFIG_LOAD_FAILED, "failed to stat config file", err)
	}
	if !ok {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType(path))

	if err := v.ReadInConfig(); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED, "failed to read config file", err)
	}

	return v, nil
}

// fileValue looks a setting up by its properties key first and its decode key second,
// so both application.properties and nested YAML layouts work.
func fileValue(v *viper.Viper, s setting) string {
	if v == nil {
		return ""
	}
	if value := strings.TrimSpace(v.GetString(s.property)); value != "" {
		return value
	}
	return strings.TrimSpace(v.GetString(s.key))
}
