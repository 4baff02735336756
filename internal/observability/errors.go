package observability

import "github.com/monejava/neptune-demo/internal/types"

// Observability error codes
const (
	// ErrCodeExporterConnection indicates failure to set up a telemetry exporter.
	ErrCodeExporterConnection types.ErrorCode = "OBSERVABILITY_EXPORTER_CONNECTION"

	// ErrCodeShutdownTimeout indicates pending spans could not be flushed on shutdown.
	ErrCodeShutdownTimeout types.ErrorCode = "OBSERVABILITY_SHUTDOWN_TIMEOUT"

	// ErrCodeInvalidLogging indicates an unknown log level or format.
	ErrCodeInvalidLogging types.ErrorCode = "OBSERVABILITY_INVALID_LOGGING"
)
