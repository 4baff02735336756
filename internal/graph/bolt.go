package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/monejava/neptune-demo/internal/observability"
	"github.com/monejava/neptune-demo/internal/types"
)

const (
	// AccessPath is the access path label of the Bolt client.
	AccessPath = "bolt"

	tracerName = "github.com/monejava/neptune-demo/internal/graph"
)

// BoltClient implements GraphClient over the Bolt protocol.
type BoltClient struct {
	config GraphClientConfig
	driver neo4j.DriverWithContext
	tracer trace.Tracer
}

// NewBoltClient creates a new Bolt client with the given configuration.
// The client must be connected via Connect() before use.
func NewBoltClient(config GraphClientConfig) (*BoltClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &BoltClient{
		config: config,
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Connect creates the driver and verifies connectivity once. There is no retry:
// a failed check closes the driver and returns the error.
func (c *BoltClient) Connect(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, observability.SpanConnect,
		trace.WithAttributes(attribute.String(observability.DBSystem, observability.DBSystemNeptune),
			attribute.String(observability.NeptuneAccessPath, AccessPath)))
	defer span.End()

	driverConfig := func(config *neo4j.Config) {
		if c.config.MaxConnectionPoolSize > 0 {
			config.MaxConnectionPoolSize = c.config.MaxConnectionPoolSize
		}
		config.ConnectionAcquisitionTimeout = c.config.ConnectionTimeout
		config.SocketConnectTimeout = c.config.ConnectionTimeout
		if c.config.UserAgent != "" {
			config.UserAgent = c.config.UserAgent
		}
	}

	driver, err := neo4j.NewDriverWithContext(c.config.URI, c.config.Auth, driverConfig)
	if err != nil {
		recordError(span, err)
		return types.WrapError(ErrCodeGraphConnectionFailed,
			fmt.Sprintf("failed to create driver for %s", c.config.URI), err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		recordError(span, err)
		return types.WrapError(ErrCodeGraphConnectionFailed,
			fmt.Sprintf("failed to connect to %s", c.config.URI), err)
	}

	c.driver = driver
	return nil
}

// Close releases all resources and closes the database connection.
func (c *BoltClient) Close(ctx context.Context) error {
	if c.driver == nil {
		return nil
	}

	if err := c.driver.Close(ctx); err != nil {
		return types.WrapError(ErrCodeGraphConnectionClosed,
			"failed to close driver", err)
	}

	c.driver = nil
	return nil
}

// Health returns the current health status of the Bolt connection.
func (c *BoltClient) Health(ctx context.Context) types.HealthStatus {
	if c.driver == nil {
		return types.Unhealthy("driver not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.driver.VerifyConnectivity(healthCtx); err != nil {
		return types.Unhealthy(fmt.Sprintf("connectivity check failed: %v", err))
	}

	return types.Healthy("connected to Neptune over Bolt")
}

// Query runs cypher in a managed read transaction.
func (c *BoltClient) Query(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	return c.run(ctx, neo4j.AccessModeRead, cypher, params)
}

// Execute runs cypher in a managed write transaction.
func (c *BoltClient) Execute(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	return c.run(ctx, neo4j.AccessModeWrite, cypher, params)
}

func (c *BoltClient) run(ctx context.Context, mode neo4j.AccessMode, cypher string, params map[string]any) (QueryResult, error) {
	if c.driver == nil {
		return QueryResult{}, types.NewError(ErrCodeGraphConnectionClosed,
			"driver not connected")
	}

	spanName, operation := observability.SpanQuery, "read"
	if mode == neo4j.AccessModeWrite {
		spanName, operation = observability.SpanExecute, "write"
	}
	ctx, span := c.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(observability.QueryAttributes(AccessPath, operation, cypher)...))
	defer span.End()

	startTime := time.Now()

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.config.Database,
		AccessMode:   mode,
	})
	defer session.Close(ctx)

	work := func(tx neo4j.ManagedTransaction) (any, error) {
		neoResult, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		records, err := neoResult.Collect(ctx)
		if err != nil {
			return nil, err
		}

		summary, err := neoResult.Consume(ctx)
		if err != nil {
			return nil, err
		}

		return convertBoltResult(records, summary), nil
	}

	var result any
	var err error
	if mode == neo4j.AccessModeWrite {
		result, err = session.ExecuteWrite(ctx, work)
	} else {
		result, err = session.ExecuteRead(ctx, work)
	}
	if err != nil {
		recordError(span, err)
		return QueryResult{}, types.WrapError(ErrCodeGraphQueryFailed,
			fmt.Sprintf("%s query failed", operation), err)
	}

	queryResult := result.(QueryResult)
	queryResult.Summary.ExecutionTime = time.Since(startTime)
	span.SetAttributes(attribute.Int(observability.DBRowCount, len(queryResult.Records)))

	return queryResult, nil
}

// convertBoltResult converts driver records and summary to a QueryResult.
func convertBoltResult(records []*neo4j.Record, summary neo4j.ResultSummary) QueryResult {
	result := QueryResult{
		Records: make([]map[string]any, 0, len(records)),
		Columns: []string{},
	}

	if len(records) > 0 {
		result.Columns = records[0].Keys
	}

	for _, record := range records {
		result.Records = append(result.Records, record.AsMap())
	}

	if summary != nil && summary.Counters() != nil {
		counters := summary.Counters()
		result.Summary = QuerySummary{
			NodesCreated:         counters.NodesCreated(),
			NodesDeleted:         counters.NodesDeleted(),
			RelationshipsCreated: counters.RelationshipsCreated(),
			RelationshipsDeleted: counters.RelationshipsDeleted(),
			PropertiesSet:        counters.PropertiesSet(),
		}
	}

	return result
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
