package internal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monejava/neptune-demo/internal/dataapi"
	"github.com/monejava/neptune-demo/internal/graph"
	"github.com/monejava/neptune-demo/internal/observability"
	"github.com/monejava/neptune-demo/internal/sigv4"
	"github.com/monejava/neptune-demo/internal/types"
)

// Exit code constants for the CLI
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitError indicates a general or usage error
	ExitError = 1
	// ExitTimeout indicates the operation timed out
	ExitTimeout = 3
	// ExitCancelled indicates the operation was cancelled
	ExitCancelled = 4
	// ExitConfigError indicates a configuration or credential error
	ExitConfigError = 10
	// ExitDatabaseError indicates a Neptune connection or query error
	ExitDatabaseError = 12
)

// CLIError represents a CLI-specific error with an exit code
type CLIError struct {
	Code    int
	Message string
	Cause   error

	// Usage is printed after the message when set.
	Usage string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WrapError creates a new CLIError wrapping an existing error
func WrapError(code int, message string, err error) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// NewCLIError creates a new CLIError with the given code and message
func NewCLIError(code int, message string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
	}
}

// NewUsageError creates an ExitError that prints usage after the message.
func NewUsageError(message, usage string) *CLIError {
	return &CLIError{
		Code:    ExitError,
		Message: message,
		Usage:   usage,
	}
}

// HandleError handles an error and returns the appropriate exit code
// It also prints the error message to the command's error output
func HandleError(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		cmd.PrintErrln("Operation cancelled")
		return ExitCancelled
	}

	if errors.Is(err, context.DeadlineExceeded) {
		cmd.PrintErrln("Operation timed out")
		return ExitTimeout
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Cause != nil {
			cmd.PrintErrln("Error:", cliErr.Error())
		} else {
			cmd.PrintErrln("Error:", cliErr.Message)
		}
		if cliErr.Usage != "" {
			cmd.PrintErrln()
			cmd.PrintErr(cliErr.Usage)
		}
		if cliErr.Cause != nil && isVerboseFlag(cmd) {
			printCodes(cmd, cliErr.Cause)
		}
		return cliErr.Code
	}

	cmd.PrintErrln("Error:", err)
	if isVerboseFlag(cmd) {
		printCodes(cmd, err)
	}
	return ExitCodeFor(err)
}

// ExitCodeFor maps the error codes in err's chain to an exit code. The innermost
// recognized code wins, so a failed step reports the database error that caused it.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, context.Canceled) {
		return ExitCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ExitTimeout
	}

	codes := types.Codes(err)
	for i := len(codes) - 1; i >= 0; i-- {
		if exit, ok := mapErrorCodeToExitCode(codes[i]); ok {
			return exit
		}
	}
	return ExitError
}

// mapErrorCodeToExitCode maps error codes to CLI exit codes
func mapErrorCodeToExitCode(code types.ErrorCode) (int, bool) {
	switch code {
	case types.CONFIG_LOAD_FAILED,
		types.CONFIG_PARSE_FAILED,
		types.CONFIG_VALIDATION_FAILED,
		types.CREDENTIAL_UNAVAILABLE,
		types.CREDENTIAL_INVALID,
		types.SIGNING_FAILED,
		sigv4.ErrCodeInvalidSigner,
		observability.ErrCodeInvalidLogging,
		observability.ErrCodeExporterConnection,
		graph.ErrCodeGraphInvalidConfig,
		dataapi.ErrCodeInvalidConfig:
		return ExitConfigError, true
	case graph.ErrCodeGraphConnectionFailed,
		graph.ErrCodeGraphConnectionClosed,
		graph.ErrCodeGraphQueryFailed,
		dataapi.ErrCodeClientClosed,
		dataapi.ErrCodeRequestFailed,
		dataapi.ErrCodeResultParsing,
		dataapi.ErrCodeEngineStatusFailed:
		return ExitDatabaseError, true
	default:
		return 0, false
	}
}

func printCodes(cmd *cobra.Command, err error) {
	for _, code := range types.Codes(err) {
		cmd.PrintErrln("  code:", code)
	}
}

func isVerboseFlag(cmd *cobra.Command) bool {
	verboseFlag := cmd.Flag("verbose")
	return verboseFlag != nil && verboseFlag.Changed
}

// IsVerbose checks if verbose mode is enabled via environment variable or flag
// This is used for panic recovery to determine if stack traces should be shown
func IsVerbose() bool {
	if os.Getenv("NEPTUNE_DEMO_VERBOSE") != "" {
		return true
	}

	for _, arg := range os.Args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}

	return false
}
