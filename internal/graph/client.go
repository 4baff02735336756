package graph

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/auth"

	"github.com/monejava/neptune-demo/internal/types"
)

// GraphClient provides an interface for running OpenCypher against Neptune.
// Both the Bolt driver and the Data API client implement it.
type GraphClient interface {
	// Connect establishes a connection to the graph database.
	// Returns an error if connection fails.
	Connect(ctx context.Context) error

	// Close releases all resources and closes the database connection.
	// Should be called when the client is no longer needed.
	Close(ctx context.Context) error

	// Health returns the current health status of the graph database connection.
	Health(ctx context.Context) types.HealthStatus

	// Query runs a read-only statement with the given parameters.
	Query(ctx context.Context, cypher string, params map[string]any) (QueryResult, error)

	// Execute runs a statement that may modify the graph.
	Execute(ctx context.Context, cypher string, params map[string]any) (QueryResult, error)
}

// QueryResult represents the result of a Cypher query execution.
// It provides access to records, columns, and summary information.
type QueryResult struct {
	// Records contains the result rows as maps of column name to value.
	Records []map[string]any

	// Columns contains the names of the columns in the result set.
	Columns []string

	// Summary contains metadata about the query execution.
	Summary QuerySummary
}

// First returns the first record, or nil when the result is empty.
func (r QueryResult) First() map[string]any {
	if len(r.Records) == 0 {
		return nil
	}
	return r.Records[0]
}

// QuerySummary provides metadata about query execution.
type QuerySummary struct {
	// ExecutionTime is the duration of query execution.
	ExecutionTime time.Duration

	// NodesCreated is the number of nodes created by the query.
	NodesCreated int

	// NodesDeleted is the number of nodes deleted by the query.
	NodesDeleted int

	// RelationshipsCreated is the number of relationships created.
	RelationshipsCreated int

	// RelationshipsDeleted is the number of relationships deleted.
	RelationshipsDeleted int

	// PropertiesSet is the number of properties set.
	PropertiesSet int
}

// GraphClientConfig contains configuration options for the Bolt client.
type GraphClientConfig struct {
	// URI is the Bolt connection URI:
	//   - "bolt://host:port" for unencrypted connections
	//   - "bolt+s://host:port" for TLS verified against the system trust store
	URI string

	// Auth supplies the auth token for every new connection. Use neo4j.NoAuth()
	// when IAM authentication is disabled, or a SigV4 token manager otherwise.
	Auth auth.TokenManager

	// Database name to connect to.
	// Empty string uses the default database.
	Database string

	// MaxConnectionPoolSize limits the number of connections in the pool.
	// Zero or negative values use the driver default.
	MaxConnectionPoolSize int

	// ConnectionTimeout is the maximum time to wait for a connection.
	ConnectionTimeout time.Duration

	// UserAgent is sent to the server on connect.
	UserAgent string
}

// DefaultConfig returns a GraphClientConfig with sensible defaults.
func DefaultConfig() GraphClientConfig {
	return GraphClientConfig{
		URI:                   "bolt+s://localhost:8182",
		MaxConnectionPoolSize: 10,
		ConnectionTimeout:     30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c GraphClientConfig) Validate() error {
	if c.URI == "" {
		return types.NewError(ErrCodeGraphInvalidConfig, "URI cannot be empty")
	}
	if c.Auth == nil {
		return types.NewError(ErrCodeGraphInvalidConfig, "Auth cannot be nil")
	}
	if c.ConnectionTimeout <= 0 {
		return types.NewError(ErrCodeGraphInvalidConfig, "ConnectionTimeout must be positive")
	}
	return nil
}
