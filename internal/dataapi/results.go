package dataapi

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/neptunedata/document"

	"github.com/monejava/neptune-demo/internal/graph"
	"github.com/monejava/neptune-demo/internal/types"
)

// decodeResults converts the results document of an openCypher response into a
// QueryResult. The document is either an array of row objects or an object whose
// "results" member is that array.
func decodeResults(doc document.Interface) (graph.QueryResult, []byte, error) {
	result := graph.QueryResult{
		Records: []map[string]any{},
		Columns: []string{},
	}
	if doc == nil {
		return result, nil, nil
	}

	raw, err := doc.MarshalSmithyDocument()
	if err != nil {
		return result, nil, types.WrapError(ErrCodeResultParsing, "failed to read results document", err)
	}

	var value any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return result, raw, types.WrapError(ErrCodeResultParsing, "failed to decode results document", err)
	}

	rows, ok := value.([]any)
	if !ok {
		obj, isObj := value.(map[string]any)
		if !isObj {
			return result, raw, types.NewError(ErrCodeResultParsing, "results document is neither an array nor an object")
		}
		if rows, ok = obj["results"].([]any); !ok {
			if obj["results"] != nil {
				return result, raw, types.NewError(ErrCodeResultParsing, "results member is not an array")
			}
			rows = nil
		}
	}

	columns := map[string]struct{}{}
	for _, row := range rows {
		record, ok := row.(map[string]any)
		if !ok {
			return result, raw, types.NewError(ErrCodeResultParsing, "result row is not an object")
		}
		normalized := normalize(record).(map[string]any)
		for key := range normalized {
			columns[key] = struct{}{}
		}
		result.Records = append(result.Records, normalized)
	}

	for key := range columns {
		result.Columns = append(result.Columns, key)
	}
	sort.Strings(result.Columns)

	return result, raw, nil
}

// normalize replaces json.Number values with int64 when integral and float64 otherwise.
func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	default:
		return v
	}
}
