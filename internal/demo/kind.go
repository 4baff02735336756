package demo

import (
	"fmt"
	"strings"

	"github.com/monejava/neptune-demo/internal/types"
)

// Kind selects the access path a demo uses.
type Kind string

const (
	// KindBolt runs the demo over the Bolt protocol.
	KindBolt Kind = "bolt"

	// KindDataAPI runs the demo over the Neptune Data API.
	KindDataAPI Kind = "data-api"

	// legacyBolt is accepted as an alias of KindBolt.
	legacyBolt = "neo4j"
)

// Kinds lists the valid demo kinds.
func Kinds() []Kind {
	return []Kind{KindBolt, KindDataAPI}
}

// ParseKind parses a demo kind, case-insensitively. "neo4j" is accepted for KindBolt.
func ParseKind(s string) (Kind, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case string(KindBolt), legacyBolt:
		return KindBolt, nil
	case string(KindDataAPI):
		return KindDataAPI, nil
	default:
		return "", types.NewError(ErrCodeInvalidKind, fmt.Sprintf("invalid demo type '%s'", name))
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Title is the human-readable demo name.
func (k Kind) Title() string {
	switch k {
	case KindBolt:
		return "Neptune Bolt Demo"
	case KindDataAPI:
		return "Neptune Data API Demo"
	default:
		return "Neptune Demo"
	}
}

// Description says which protocol the demo uses.
func (k Kind) Description() string {
	switch k {
	case KindBolt:
		return "Run Neptune demo using Bolt driver with Bolt protocol"
	case KindDataAPI:
		return "Run Neptune demo using AWS SDK Neptune Data API (REST)"
	default:
		return ""
	}
}
