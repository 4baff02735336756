package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/monejava/neptune-demo/internal/observability"
)

// Config is the root configuration for the Neptune demos.
type Config struct {
	Neptune NeptuneConfig               `mapstructure:"neptune" yaml:"neptune" validate:"required"`
	AWS     AWSConfig                   `mapstructure:"aws" yaml:"aws" validate:"required"`
	Logging LoggingConfig               `mapstructure:"logging" yaml:"logging"`
	Tracing observability.TracingConfig `mapstructure:"tracing" yaml:"tracing"`
}

// NeptuneConfig describes the Neptune cluster endpoint.
type NeptuneConfig struct {
	Endpoint          string        `mapstructure:"endpoint" yaml:"endpoint" validate:"required"`
	Port              int           `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	IAMAuth           bool          `mapstructure:"iam_auth" yaml:"iam_auth"`
	TLS               bool          `mapstructure:"tls" yaml:"tls"`
	ConnectionTimeout time.Duration `mapstructure:"connection_timeout" yaml:"connection_timeout" validate:"min=1s"`
}

// AWSConfig holds the region and the optional static credentials.
// When AccessKey or SecretKey is empty the default provider chain is used.
type AWSConfig struct {
	Region       string `mapstructure:"region" yaml:"region" validate:"required"`
	AccessKey    string `mapstructure:"access_key" yaml:"access_key,omitempty"`
	SecretKey    string `mapstructure:"secret_key" yaml:"secret_key,omitempty"`
	SessionToken string `mapstructure:"session_token" yaml:"session_token,omitempty"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=auto text json"`
}

// Address returns host:port of the cluster endpoint.
func (c NeptuneConfig) Address() string {
	return net.JoinHostPort(c.Endpoint, strconv.Itoa(c.Port))
}

// BoltURI returns the Bolt connection URI. With TLS enabled the driver encrypts the
// connection and verifies the server against the system trust store.
func (c NeptuneConfig) BoltURI() string {
	scheme := "bolt"
	if c.TLS {
		scheme = "bolt+s"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Address())
}

// HTTPSURI returns the HTTPS base URI used by the Data API and for request signing.
func (c NeptuneConfig) HTTPSURI() string {
	return "https://" + c.Address()
}

// HasStaticCredentials reports whether both an access key and a secret key are configured.
func (c AWSConfig) HasStaticCredentials() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

// Redacted returns a copy of the configuration safe to print.
func (c Config) Redacted() Config {
	redact := func(s string) string {
		if s == "" {
			return ""
		}
		return "[REDACTED]"
	}
	out := c
	out.AWS.SecretKey = redact(c.AWS.SecretKey)
	out.AWS.SessionToken = redact(c.AWS.SessionToken)
	if len(c.AWS.AccessKey) > 4 {
		out.AWS.AccessKey = c.AWS.AccessKey[:4] + "****"
	}
	return out
}
