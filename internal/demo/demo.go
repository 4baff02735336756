package demo

import (
	"context"
	"log/slog"

	"github.com/monejava/neptune-demo/internal/graph"
)

// StepFunc runs one step against client and returns the number of rows it produced.
type StepFunc func(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error)

// Step is one named stage of a demo.
type Step struct {
	Name string

	// Run performs the step.
	Run StepFunc

	// Optional steps are informational: a failure is logged as a warning and the
	// run continues.
	Optional bool
}

// Demo is a fixed sequence of steps for one access path.
type Demo struct {
	Kind  Kind
	Steps []Step
}

// ForKind returns the demo of kind k.
func ForKind(k Kind) (Demo, error) {
	switch k {
	case KindBolt:
		return BoltDemo(), nil
	case KindDataAPI:
		return DataAPIDemo(), nil
	default:
		_, err := ParseKind(string(k))
		return Demo{}, err
	}
}

// StepNames returns the step names in run order.
func (d Demo) StepNames() []string {
	names := make([]string, 0, len(d.Steps))
	for _, s := range d.Steps {
		names = append(names, s.Name)
	}
	return names
}
