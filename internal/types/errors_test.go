package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DemoError
		want string
	}{
		{
			name: "without cause",
			err:  NewError(CONFIG_LOAD_FAILED, "cannot read file"),
			want: "[CONFIG_LOAD_FAILED] cannot read file",
		},
		{
			name: "with cause",
			err:  WrapError(SIGNING_FAILED, "sign request", errors.New("no credentials")),
			want: "[SIGNING_FAILED] sign request: no credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDemoError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", WrapError(CREDENTIAL_UNAVAILABLE, "resolve", errors.New("boom")))

	assert.True(t, errors.Is(err, NewError(CREDENTIAL_UNAVAILABLE, "")))
	assert.False(t, errors.Is(err, NewError(CONFIG_LOAD_FAILED, "")))
}

func TestDemoError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapError(CONFIG_PARSE_FAILED, "parse", cause)

	require.ErrorIs(t, err, cause)
	assert.Nil(t, NewError(CONFIG_PARSE_FAILED, "parse").Unwrap())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CONFIG_VALIDATION_FAILED, CodeOf(fmt.Errorf("wrapped: %w", NewError(CONFIG_VALIDATION_FAILED, "bad"))))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestCodes(t *testing.T) {
	inner := NewError(CONFIG_VALIDATION_FAILED, "bad port")
	middle := fmt.Errorf("loading: %w", WrapError(CONFIG_LOAD_FAILED, "load", inner))
	outer := WrapError(SIGNING_FAILED, "sign", middle)

	assert.Equal(t, []ErrorCode{SIGNING_FAILED, CONFIG_LOAD_FAILED, CONFIG_VALIDATION_FAILED}, Codes(outer))
	assert.Empty(t, Codes(errors.New("plain")))
	assert.Empty(t, Codes(nil))
}
