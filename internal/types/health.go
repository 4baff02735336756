package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// HealthState is the coarse state of an access path as seen from the client.
type HealthState string

const (
	HealthStateHealthy   HealthState = "healthy"
	HealthStateDegraded  HealthState = "degraded"
	HealthStateUnhealthy HealthState = "unhealthy"
)

func (s HealthState) String() string {
	return string(s)
}

// IsValid reports whether s is one of the three known states.
func (s HealthState) IsValid() bool {
	return s == HealthStateHealthy || s == HealthStateDegraded || s == HealthStateUnhealthy
}

// UnmarshalJSON rejects unknown states.
func (s *HealthState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if state := HealthState(raw); state.IsValid() {
		*s = state
		return nil
	}
	return fmt.Errorf("invalid health state: %s", raw)
}

// HealthStatus is the result of one connectivity or engine-status check.
type HealthStatus struct {
	State     HealthState `json:"state"`
	Message   string      `json:"message,omitempty"`
	CheckedAt time.Time   `json:"checked_at"`
}

// NewHealthStatus stamps state and message with the current time.
func NewHealthStatus(state HealthState, message string) HealthStatus {
	return HealthStatus{State: state, Message: message, CheckedAt: time.Now()}
}

// Shorthands for NewHealthStatus.
func Healthy(message string) HealthStatus   { return NewHealthStatus(HealthStateHealthy, message) }
func Degraded(message string) HealthStatus  { return NewHealthStatus(HealthStateDegraded, message) }
func Unhealthy(message string) HealthStatus { return NewHealthStatus(HealthStateUnhealthy, message) }

func (h HealthStatus) IsHealthy() bool {
	return h.State == HealthStateHealthy
}
