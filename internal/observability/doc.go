// Package observability sets up structured logging and OpenTelemetry tracing.
//
// Logs are written through log/slog with sensitive attributes redacted and, when the
// context carries a span, trace_id and span_id attached. Tracing exports over OTLP/gRPC
// or is disabled entirely, in which case spans are created but never recorded.
package observability
