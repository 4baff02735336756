package observability

import (
	"net/url"

	"go.opentelemetry.io/otel/attribute"
)

// Attribute keys recorded on demo spans
const (
	// DBSystem identifies the database product.
	DBSystem = "db.system"

	// DBStatement is the OpenCypher text of a query.
	DBStatement = "db.statement"

	// DBOperation is "read" or "write".
	DBOperation = "db.operation"

	// DBRowCount is the number of rows returned by a query.
	DBRowCount = "db.response.returned_rows"

	// NeptuneAccessPath is the access path a query used: "bolt" or "data-api".
	NeptuneAccessPath = "neptune.access_path"

	// NeptuneEndpoint is the cluster URI, without user info.
	NeptuneEndpoint = "neptune.endpoint"

	// NeptuneIAMAuth reports whether requests are SigV4 signed.
	NeptuneIAMAuth = "neptune.iam_auth"

	// DemoName is the demo being run.
	DemoName = "demo.name"

	// DemoStep is the name of a demo step.
	DemoStep = "demo.step"

	// DemoRunID is the correlation id of a run.
	DemoRunID = "demo.run_id"
)

// Span names
const (
	SpanDemoRun      = "demo.run"
	SpanDemoStep     = "demo.step"
	SpanQuery        = "neptune.query"
	SpanExecute      = "neptune.execute"
	SpanConnect      = "neptune.connect"
	SpanEngineStatus = "neptune.engine_status"
)

// DBSystemNeptune is the db.system value for every span.
const DBSystemNeptune = "neptune"

// QueryAttributes describes one OpenCypher statement.
func QueryAttributes(accessPath, operation, statement string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(DBSystem, DBSystemNeptune),
		attribute.String(NeptuneAccessPath, accessPath),
		attribute.String(DBOperation, operation),
		attribute.String(DBStatement, statement),
	}
}

// EndpointAttributes describes the cluster a client talks to.
func EndpointAttributes(accessPath, endpoint string, iamAuth bool) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(DBSystem, DBSystemNeptune),
		attribute.String(NeptuneAccessPath, accessPath),
		attribute.String(NeptuneEndpoint, sanitizeURL(endpoint)),
		attribute.Bool(NeptuneIAMAuth, iamAuth),
	}
}

// StepAttributes describes one step of a demo run.
func StepAttributes(demo, step string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(DemoName, demo),
		attribute.String(DemoStep, step),
	}
}

// ErrorAttributes creates OpenTelemetry attributes for error tracking.
func ErrorAttributes(err error, code string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.Bool("error", true),
		attribute.String("error.message", err.Error()),
	}

	if code != "" {
		attrs = append(attrs, attribute.String("error.code", code))
	}

	return attrs
}

// CombineAttributes merges multiple attribute slices into one.
func CombineAttributes(attrSets ...[]attribute.KeyValue) []attribute.KeyValue {
	var totalLen int
	for _, attrs := range attrSets {
		totalLen += len(attrs)
	}

	combined := make([]attribute.KeyValue, 0, totalLen)
	for _, attrs := range attrSets {
		combined = append(combined, attrs...)
	}

	return combined
}

// sanitizeURL drops user info from a URL. Values that do not parse are returned as is.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = nil
	return u.String()
}
