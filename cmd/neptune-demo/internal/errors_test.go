package internal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/monejava/neptune-demo/internal/dataapi"
	"github.com/monejava/neptune-demo/internal/demo"
	"github.com/monejava/neptune-demo/internal/graph"
	"github.com/monejava/neptune-demo/internal/types"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolP("verbose", "v", false, "")
	var buf bytes.Buffer
	cmd.SetErr(&buf)
	return cmd, &buf
}

func TestExitCodeFor(t *testing.T) {
	stepFailed := types.WrapError(demo.ErrCodeStepFailed, "step create failed",
		types.WrapError(graph.ErrCodeGraphQueryFailed, "write query failed", errors.New("syntax error")))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain", err: errors.New("boom"), want: ExitError},
		{name: "cancelled", err: fmt.Errorf("run: %w", context.Canceled), want: ExitCancelled},
		{name: "timeout", err: context.DeadlineExceeded, want: ExitTimeout},
		{name: "config", err: types.NewError(types.CONFIG_VALIDATION_FAILED, "endpoint required"), want: ExitConfigError},
		{name: "credentials", err: types.NewError(types.CREDENTIAL_UNAVAILABLE, "no chain"), want: ExitConfigError},
		{name: "connection", err: types.NewError(graph.ErrCodeGraphConnectionFailed, "refused"), want: ExitDatabaseError},
		{name: "data api", err: types.NewError(dataapi.ErrCodeRequestFailed, "403"), want: ExitDatabaseError},
		{name: "step wraps query", err: stepFailed, want: ExitDatabaseError},
		{name: "step without db cause", err: types.WrapError(demo.ErrCodeStepFailed, "step failed", errors.New("panic")), want: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestHandleError_UsageError(t *testing.T) {
	cmd, buf := newTestCommand()

	code := HandleError(cmd, NewUsageError("Exactly one argument required.", "Usage: neptune-demo <demo-type>\n"))

	assert.Equal(t, ExitError, code)
	assert.Equal(t, "Error: Exactly one argument required.\n\nUsage: neptune-demo <demo-type>\n", buf.String())
}

func TestHandleError_WrappedDemoError(t *testing.T) {
	cmd, buf := newTestCommand()
	cause := types.NewError(graph.ErrCodeGraphConnectionFailed, "refused")

	code := HandleError(cmd, WrapError(ExitCodeFor(cause), "Error running demo", cause))

	assert.Equal(t, ExitDatabaseError, code)
	assert.Contains(t, buf.String(), "Error: Error running demo: [GRAPH_CONNECTION_FAILED] refused")
}

func TestHandleError_Cancelled(t *testing.T) {
	cmd, buf := newTestCommand()

	code := HandleError(cmd, WrapError(ExitDatabaseError, "Error running demo", context.Canceled))

	assert.Equal(t, ExitCancelled, code)
	assert.Contains(t, buf.String(), "Operation cancelled")
}

func TestHandleError_Generic(t *testing.T) {
	cmd, buf := newTestCommand()

	code := HandleError(cmd, types.NewError(types.CONFIG_PARSE_FAILED, "bad yaml"))

	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, buf.String(), "bad yaml")
}

func TestHandleError_Nil(t *testing.T) {
	cmd, _ := newTestCommand()
	assert.Equal(t, ExitSuccess, HandleError(cmd, nil))
}
