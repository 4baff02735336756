package sigv4

import "github.com/monejava/neptune-demo/internal/types"

// Signing error codes
const (
	ErrCodeInvalidSigner types.ErrorCode = "SIGV4_INVALID_SIGNER"
)
