package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthState_IsValid(t *testing.T) {
	tests := []struct {
		state HealthState
		want  bool
	}{
		{HealthStateHealthy, true},
		{HealthStateDegraded, true},
		{HealthStateUnhealthy, true},
		{HealthState("unknown"), false},
		{HealthState(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.IsValid())
		})
	}
}

func TestHealthState_UnmarshalJSON(t *testing.T) {
	var s HealthState
	require.NoError(t, json.Unmarshal([]byte(`"degraded"`), &s))
	assert.Equal(t, HealthStateDegraded, s)

	assert.Error(t, json.Unmarshal([]byte(`"sleeping"`), &s))
}

func TestHealthStatus_Constructors(t *testing.T) {
	before := time.Now()

	h := Healthy("ok")
	assert.True(t, h.IsHealthy())
	assert.Equal(t, "ok", h.Message)
	assert.False(t, h.CheckedAt.Before(before))

	assert.Equal(t, HealthStateDegraded, Degraded("slow").State)
	assert.False(t, Unhealthy("down").IsHealthy())
}

func TestHealthStatus_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Unhealthy("connectivity check failed"))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"state":"unhealthy"`)
	assert.Contains(t, string(data), `"message":"connectivity check failed"`)
}
