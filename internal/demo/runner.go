package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/monejava/neptune-demo/internal/graph"
	"github.com/monejava/neptune-demo/internal/observability"
	"github.com/monejava/neptune-demo/internal/types"
)

const tracerName = "github.com/monejava/neptune-demo/internal/demo"

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithRunID sets the run id recorded in spans and the report. An empty id is
// replaced by a generated one.
func WithRunID(id observability.RunID) RunnerOption {
	return func(r *Runner) {
		r.runID = id
	}
}

// WithEndpoint sets the endpoint shown in logs and the report.
func WithEndpoint(endpoint string) RunnerOption {
	return func(r *Runner) {
		r.endpoint = endpoint
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.now = now
	}
}

// Runner runs a demo against one client: connect, health, steps in order, close.
type Runner struct {
	client   graph.GraphClient
	logger   *slog.Logger
	tracer   trace.Tracer
	runID    observability.RunID
	endpoint string
	now      func() time.Time
}

// NewRunner creates a runner for client. A nil logger discards output.
func NewRunner(client graph.GraphClient, logger *slog.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Runner{
		client: client,
		logger: logger,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.runID.IsZero() {
		r.runID = observability.NewRunID()
	}
	return r
}

// Run executes d. The first failing required step aborts the run and the remaining
// steps are reported as skipped. The client is closed whatever the outcome. The
// returned report is never nil; the error is the first failure, or the close error.
func (r *Runner) Run(ctx context.Context, d Demo) (*Report, error) {
	logger := r.logger.With("demo", d.Kind.String())

	ctx, span := r.tracer.Start(ctx, observability.SpanDemoRun,
		trace.WithAttributes(
			attribute.String(observability.DemoName, d.Kind.String()),
			attribute.String(observability.DemoRunID, r.runID.String()),
			attribute.String(observability.NeptuneEndpoint, r.endpoint),
		))
	defer span.End()

	started := r.now()
	report := &Report{
		RunID:     r.runID.String(),
		Demo:      d.Kind,
		Endpoint:  r.endpoint,
		StartedAt: started,
		Steps:     make([]StepResult, 0, len(d.Steps)),
	}

	logger.InfoContext(ctx, "Starting "+d.Kind.Title(),
		"endpoint", r.endpoint,
		"steps", d.StepNames())

	runErr := r.runSteps(ctx, logger, d, report)

	if err := r.client.Close(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to close client", "error", err)
		if runErr == nil {
			runErr = err
		}
	} else {
		logger.InfoContext(ctx, "Client closed")
	}

	report.Duration = Duration(r.now().Sub(started))
	report.Success = runErr == nil

	if runErr != nil {
		report.Error = runErr.Error()
		span.RecordError(runErr)
		span.SetAttributes(observability.ErrorAttributes(runErr, string(types.CodeOf(runErr)))...)
		span.SetStatus(codes.Error, runErr.Error())
		logger.ErrorContext(ctx, "Demo failed", "error", runErr)
		return report, runErr
	}

	logger.InfoContext(ctx, d.Kind.Title()+" completed successfully",
		"duration", time.Duration(report.Duration).String(),
		"rows", report.TotalRows())
	return report, nil
}

func (r *Runner) runSteps(ctx context.Context, logger *slog.Logger, d Demo, report *Report) error {
	if err := r.client.Connect(ctx); err != nil {
		report.Health = types.Unhealthy(err.Error())
		skipAll(report, d.Steps)
		return err
	}

	report.Health = r.client.Health(ctx)
	logger.InfoContext(ctx, "Connected to Neptune",
		"health", report.Health.State.String(),
		"message", report.Health.Message)

	for i, step := range d.Steps {
		if err := ctx.Err(); err != nil {
			skipAll(report, d.Steps[i:])
			return err
		}

		result := r.runStep(ctx, logger, d.Kind, step)
		report.Steps = append(report.Steps, result.StepResult)

		if result.err != nil && !step.Optional {
			skipAll(report, d.Steps[i+1:])
			return types.WrapError(ErrCodeStepFailed, fmt.Sprintf("step %s failed", step.Name), result.err)
		}
	}
	return nil
}

type stepOutcome struct {
	StepResult
	err error
}

func (r *Runner) runStep(ctx context.Context, logger *slog.Logger, kind Kind, step Step) stepOutcome {
	ctx, span := r.tracer.Start(ctx, observability.SpanDemoStep,
		trace.WithAttributes(observability.CombineAttributes(
			observability.StepAttributes(kind.String(), step.Name),
			[]attribute.KeyValue{attribute.String(observability.DemoRunID, r.runID.String())},
		)...))
	defer span.End()

	logger = logger.With("step", step.Name)
	start := r.now()

	rows, err := runSafely(ctx, step, r.client, logger)

	outcome := stepOutcome{
		StepResult: StepResult{
			Name:     step.Name,
			Status:   StepStatusOK,
			Rows:     rows,
			Duration: Duration(r.now().Sub(start)),
		},
		err: err,
	}
	span.SetAttributes(attribute.Int(observability.DBRowCount, rows))

	if err != nil {
		outcome.Error = err.Error()
		span.RecordError(err)
		if step.Optional {
			outcome.Status = StepStatusWarning
			logger.WarnContext(ctx, "Optional step failed", "error", err)
		} else {
			outcome.Status = StepStatusFailed
			span.SetStatus(codes.Error, err.Error())
			logger.ErrorContext(ctx, "Step failed", "error", err, "code", string(types.CodeOf(err)))
		}
	}
	return outcome
}

// runSafely converts a panicking step into an error.
func runSafely(ctx context.Context, step Step, client graph.GraphClient, logger *slog.Logger) (rows int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.New(fmt.Sprint("panic in step ", step.Name, ": ", rec))
		}
	}()
	return step.Run(ctx, client, logger)
}

func skipAll(report *Report, steps []Step) {
	for _, s := range steps {
		report.Steps = append(report.Steps, StepResult{Name: s.Name, Status: StepStatusSkipped})
	}
}
