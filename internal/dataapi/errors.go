package dataapi

import "github.com/monejava/neptune-demo/internal/types"

// Data API error codes
const (
	ErrCodeInvalidConfig      types.ErrorCode = "DATAAPI_INVALID_CONFIG"
	ErrCodeClientClosed       types.ErrorCode = "DATAAPI_CLIENT_CLOSED"
	ErrCodeRequestFailed      types.ErrorCode = "DATAAPI_REQUEST_FAILED"
	ErrCodeResultParsing      types.ErrorCode = "DATAAPI_RESULT_PARSING"
	ErrCodeEngineStatusFailed types.ErrorCode = "DATAAPI_ENGINE_STATUS_FAILED"
)
