package demo

import (
	"encoding/json"
	"time"

	"github.com/monejava/neptune-demo/internal/types"
)

// StepStatus is the outcome of one step.
type StepStatus string

const (
	StepStatusOK      StepStatus = "ok"
	StepStatusWarning StepStatus = "warning"
	StepStatusFailed  StepStatus = "failed"
	StepStatusSkipped StepStatus = "skipped"
)

// Duration marshals as a Go duration string.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// StepResult records one step of a run.
type StepResult struct {
	Name     string     `json:"name"`
	Status   StepStatus `json:"status"`
	Rows     int        `json:"rows"`
	Duration Duration   `json:"duration"`
	Error    string     `json:"error,omitempty"`
}

// Report summarizes a demo run.
type Report struct {
	RunID     string             `json:"run_id"`
	Demo      Kind               `json:"demo"`
	Endpoint  string             `json:"endpoint"`
	Health    types.HealthStatus `json:"health"`
	Steps     []StepResult       `json:"steps"`
	StartedAt time.Time          `json:"started_at"`
	Duration  Duration           `json:"duration"`
	Success   bool               `json:"success"`
	Error     string             `json:"error,omitempty"`
}

// Failed returns the first failed step, if any.
func (r *Report) Failed() (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Status == StepStatusFailed {
			return s, true
		}
	}
	return StepResult{}, false
}

// TotalRows is the number of rows returned across all steps.
func (r *Report) TotalRows() int {
	total := 0
	for _, s := range r.Steps {
		total += s.Rows
	}
	return total
}
