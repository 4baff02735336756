package observability

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()

	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a.String())
	require.NoError(t, err)
}

func TestRunID_IsZero(t *testing.T) {
	assert.True(t, RunID("").IsZero())
	assert.False(t, RunID("run-1").IsZero())
}
