package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/term"

	"github.com/monejava/neptune-demo/internal/types"
)

const redacted = "[REDACTED]"

// sensitiveKeys are normalized attribute keys (lower case, no '_' or '-') whose values
// never reach the log output.
var sensitiveKeys = map[string]bool{
	"secret":          true,
	"secretkey":       true,
	"secretaccesskey": true,
	"password":        true,
	"token":           true,
	"sessiontoken":    true,
	"credential":      true,
	"credentials":     true,
	"authorization":   true,
	"apikey":          true,
}

// NewLogger builds the process logger. format is "json", "text" or "auto"; auto picks
// text when w is a terminal and JSON otherwise. Every record is stamped with run_id
// and, when the context carries a span, with trace_id and span_id.
func NewLogger(w io.Writer, level, format, runID string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch ResolveFormat(format, w) {
	case "json":
		handler = NewJSONHandler(w, lvl)
	case "text":
		handler = NewTextHandler(w, lvl)
	default:
		return nil, types.NewError(ErrCodeInvalidLogging, "unsupported log format: "+format)
	}

	logger := slog.New(&correlationHandler{Handler: handler})
	if runID != "" {
		logger = logger.With(slog.String("run_id", runID))
	}
	return logger, nil
}

// ParseLevel parses debug, info, warn or error (case-insensitive).
func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, types.WrapError(ErrCodeInvalidLogging, "unsupported log level: "+level, err)
	}
	return lvl, nil
}

// ResolveFormat turns "auto" into "text" or "json" depending on whether w is a terminal.
func ResolveFormat(format string, w io.Writer) string {
	format = strings.ToLower(format)
	if format != "auto" && format != "" {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "text"
	}
	return "json"
}

// NewJSONHandler creates a JSON log handler with redaction of sensitive attributes.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactAttr,
	})
}

// NewTextHandler creates a human-readable log handler with redaction of sensitive attributes.
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactAttr,
	})
}

// redactAttr replaces the value of sensitive attributes, at every level.
func redactAttr(_ []string, a slog.Attr) slog.Attr {
	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, redacted)
	}
	return a
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(key))
	return sensitiveKeys[normalized]
}

// correlationHandler adds OpenTelemetry trace correlation to every record.
type correlationHandler struct {
	slog.Handler
}

// Handle adds trace_id and span_id when ctx carries a valid span context.
func (h *correlationHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *correlationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &correlationHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *correlationHandler) WithGroup(name string) slog.Handler {
	return &correlationHandler{Handler: h.Handler.WithGroup(name)}
}
