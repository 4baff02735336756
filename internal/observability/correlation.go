package observability

import (
	"github.com/google/uuid"
)

// RunID identifies one process run in logs, spans and the final report.
type RunID string

// NewRunID creates a new random run id.
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// String returns the string representation of the run id.
func (r RunID) String() string {
	return string(r)
}

// IsZero checks if the run id is empty.
func (r RunID) IsZero() bool {
	return r == ""
}
