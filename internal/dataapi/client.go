package dataapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/neptunedata"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/monejava/neptune-demo/internal/graph"
	"github.com/monejava/neptune-demo/internal/observability"
	"github.com/monejava/neptune-demo/internal/types"
)

const (
	// AccessPath is the access path label of the Data API client.
	AccessPath = "data-api"

	tracerName = "github.com/monejava/neptune-demo/internal/dataapi"
)

// API is the subset of the neptunedata client used here.
type API interface {
	ExecuteOpenCypherQuery(ctx context.Context, params *neptunedata.ExecuteOpenCypherQueryInput, optFns ...func(*neptunedata.Options)) (*neptunedata.ExecuteOpenCypherQueryOutput, error)
	GetEngineStatus(ctx context.Context, params *neptunedata.GetEngineStatusInput, optFns ...func(*neptunedata.Options)) (*neptunedata.GetEngineStatusOutput, error)
}

// EngineStatus is the cluster status reported by the Data API.
type EngineStatus struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Role      string `json:"role,omitempty"`
	StartTime string `json:"start_time,omitempty"`
}

// Client implements graph.GraphClient over the Neptune Data API.
type Client struct {
	api      API
	endpoint string
	iamAuth  bool
	tracer   trace.Tracer

	mu        sync.RWMutex
	connected bool
	closeIdle func()
}

// New creates a Data API client for endpoint (https://host:port). When iamAuth is false
// requests are sent unsigned.
func New(cfg aws.Config, endpoint string, iamAuth bool) (*Client, error) {
	if endpoint == "" {
		return nil, types.NewError(ErrCodeInvalidConfig, "endpoint cannot be empty")
	}
	if !strings.HasPrefix(endpoint, "https://") && !strings.HasPrefix(endpoint, "http://") {
		return nil, types.NewError(ErrCodeInvalidConfig, "endpoint must be an http(s) URL: "+endpoint)
	}

	api := neptunedata.NewFromConfig(cfg, func(o *neptunedata.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		if !iamAuth {
			o.Credentials = aws.AnonymousCredentials{}
		}
	})

	c := NewWithAPI(api, endpoint, iamAuth)
	if closer, ok := cfg.HTTPClient.(interface{ CloseIdleConnections() }); ok {
		c.closeIdle = closer.CloseIdleConnections
	}
	return c, nil
}

// NewWithAPI creates a client around an existing API implementation.
func NewWithAPI(api API, endpoint string, iamAuth bool) *Client {
	return &Client{
		api:      api,
		endpoint: endpoint,
		iamAuth:  iamAuth,
		tracer:   otel.Tracer(tracerName),
	}
}

// Endpoint returns the base URI requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Connect marks the client ready. The Data API is stateless, so no request is made.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = true
	return nil
}

// Close releases idle HTTP connections.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closeIdle != nil {
		c.closeIdle()
	}
	c.connected = false
	return nil
}

// Health maps the engine status to a health status: "healthy" is healthy, any other
// status is degraded and a failed request is unhealthy.
func (c *Client) Health(ctx context.Context) types.HealthStatus {
	status, err := c.EngineStatus(ctx)
	if err != nil {
		return types.Unhealthy(fmt.Sprintf("engine status unavailable: %v", err))
	}
	if strings.EqualFold(status.Status, "healthy") {
		return types.Healthy(fmt.Sprintf("Neptune %s is healthy", status.Version))
	}
	return types.Degraded(fmt.Sprintf("Neptune reports status %q", status.Status))
}

// EngineStatus returns the cluster status, engine version and role.
func (c *Client) EngineStatus(ctx context.Context) (EngineStatus, error) {
	ctx, span := c.tracer.Start(ctx, observability.SpanEngineStatus,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(observability.EndpointAttributes(AccessPath, c.endpoint, c.iamAuth)...))
	defer span.End()

	out, err := c.api.GetEngineStatus(ctx, &neptunedata.GetEngineStatusInput{})
	if err != nil {
		recordError(span, err)
		return EngineStatus{}, types.WrapError(ErrCodeEngineStatusFailed, "failed to get engine status", err)
	}

	return EngineStatus{
		Status:    aws.ToString(out.Status),
		Version:   aws.ToString(out.DbEngineVersion),
		Role:      aws.ToString(out.Role),
		StartTime: aws.ToString(out.StartTime),
	}, nil
}

// Query runs a read-only openCypher statement.
func (c *Client) Query(ctx context.Context, cypher string, params map[string]any) (graph.QueryResult, error) {
	return c.run(ctx, "read", cypher, params)
}

// Execute runs an openCypher statement that may modify the graph. The Data API has a
// single endpoint for both, so only the span differs from Query.
func (c *Client) Execute(ctx context.Context, cypher string, params map[string]any) (graph.QueryResult, error) {
	return c.run(ctx, "write", cypher, params)
}

// RawQuery runs a statement and also returns the undecoded results document.
func (c *Client) RawQuery(ctx context.Context, cypher string, params map[string]any) (graph.QueryResult, string, error) {
	return c.execute(ctx, "read", cypher, params)
}

func (c *Client) run(ctx context.Context, operation, cypher string, params map[string]any) (graph.QueryResult, error) {
	result, _, err := c.execute(ctx, operation, cypher, params)
	return result, err
}

func (c *Client) execute(ctx context.Context, operation, cypher string, params map[string]any) (graph.QueryResult, string, error) {
	c.mu.RLock()
	connected := c.connected
	c.mu.RUnlock()
	if !connected {
		return graph.QueryResult{}, "", types.NewError(ErrCodeClientClosed, "client not connected")
	}

	spanName := observability.SpanQuery
	if operation == "write" {
		spanName = observability.SpanExecute
	}
	ctx, span := c.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(observability.QueryAttributes(AccessPath, operation, cypher)...))
	defer span.End()

	input := &neptunedata.ExecuteOpenCypherQueryInput{
		OpenCypherQuery: aws.String(cypher),
	}
	if len(params) > 0 {
		encoded, err := json.Marshal(params)
		if err != nil {
			recordError(span, err)
			return graph.QueryResult{}, "", types.WrapError(ErrCodeRequestFailed, "failed to encode query parameters", err)
		}
		input.Parameters = aws.String(string(encoded))
	}

	startTime := time.Now()
	out, err := c.api.ExecuteOpenCypherQuery(ctx, input)
	if err != nil {
		recordError(span, err)
		return graph.QueryResult{}, "", types.WrapError(ErrCodeRequestFailed,
			fmt.Sprintf("%s query failed", operation), err)
	}

	result, raw, err := decodeResults(out.Results)
	if err != nil {
		recordError(span, err)
		return graph.QueryResult{}, string(raw), err
	}
	result.Summary.ExecutionTime = time.Since(startTime)
	span.SetAttributes(attribute.Int(observability.DBRowCount, len(result.Records)))

	return result, string(raw), nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
