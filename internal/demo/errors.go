package demo

import "github.com/monejava/neptune-demo/internal/types"

// Demo error codes
const (
	ErrCodeInvalidKind  types.ErrorCode = "DEMO_INVALID_KIND"
	ErrCodeStepFailed   types.ErrorCode = "DEMO_STEP_FAILED"
	ErrCodeUnsupported  types.ErrorCode = "DEMO_UNSUPPORTED_CLIENT"
	ErrCodeRowDecoding  types.ErrorCode = "DEMO_ROW_DECODING"
	ErrCodeClientCreate types.ErrorCode = "DEMO_CLIENT_CREATE_FAILED"
)
