package config

import (
	"strings"
)

// setting binds one configuration value to its properties-file key, its environment
// variable and its default.
type setting struct {
	// key is the path used to decode into Config.
	key string
	// property is the key looked up in the properties file.
	property string
	env      string
	def      string
	boolean  bool
}

var settings = []setting{
	{key: "neptune.endpoint", property: "neptune.endpoint", env: "NEPTUNE_ENDPOINT"},
	{key: "neptune.port", property: "neptune.port", env: "NEPTUNE_PORT", def: "8182"},
	{key: "neptune.iam_auth", property: "neptune.iam.auth", env: "NEPTUNE_IAM_AUTH", def: "false", boolean: true},
	{key: "neptune.tls", property: "neptune.tls", env: "NEPTUNE_TLS", def: "true", boolean: true},
	{key: "neptune.connection_timeout", property: "neptune.connection.timeout", env: "NEPTUNE_CONNECTION_TIMEOUT", def: "30s"},

	{key: "aws.region", property: "aws.region", env: "AWS_REGION", def: "us-east-1"},
	{key: "aws.access_key", property: "aws.access.key", env: "AWS_ACCESS_KEY_ID"},
	{key: "aws.secret_key", property: "aws.secret.key", env: "AWS_SECRET_ACCESS_KEY"},
	{key: "aws.session_token", property: "aws.session.token", env: "AWS_SESSION_TOKEN"},

	{key: "logging.level", property: "logging.level", env: "NEPTUNE_LOG_LEVEL", def: "info"},
	{key: "logging.format", property: "logging.format", env: "NEPTUNE_LOG_FORMAT", def: "auto"},

	{key: "tracing.enabled", property: "tracing.enabled", env: "NEPTUNE_TRACING_ENABLED", def: "false", boolean: true},
	{key: "tracing.provider", property: "tracing.provider", env: "NEPTUNE_TRACING_PROVIDER", def: "otlp"},
	{key: "tracing.endpoint", property: "tracing.endpoint", env: "OTEL_EXPORTER_OTLP_ENDPOINT"},
	{key: "tracing.service_name", property: "tracing.service.name", env: "OTEL_SERVICE_NAME", def: "neptune-demo"},
	{key: "tracing.sample_rate", property: "tracing.sample.rate", env: "NEPTUNE_TRACING_SAMPLE_RATE", def: "1.0"},
	{key: "tracing.insecure_mode", property: "tracing.insecure", env: "NEPTUNE_TRACING_INSECURE", def: "false", boolean: true},
}

// normalize applies the boolean rule: only a case-insensitive "true" is true.
func (s setting) normalize(value string) string {
	if !s.boolean {
		return value
	}
	if strings.EqualFold(value, "true") {
		return "true"
	}
	return "false"
}
