package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/monejava/neptune-demo/internal/dataapi"
	"github.com/monejava/neptune-demo/internal/graph"
	"github.com/monejava/neptune-demo/internal/types"
)

// statusReporter is implemented by clients that expose the cluster status.
type statusReporter interface {
	EngineStatus(ctx context.Context) (dataapi.EngineStatus, error)
}

// rawQuerier is implemented by clients that can return the undecoded response.
type rawQuerier interface {
	RawQuery(ctx context.Context, cypher string, params map[string]any) (graph.QueryResult, string, error)
}

// DataAPIDemo returns the Data API demo: cluster status, hello query, five create
// statements, persons and relationships queries, cleanup. The cluster status step
// is informational.
func DataAPIDemo() Demo {
	return Demo{
		Kind: KindDataAPI,
		Steps: []Step{
			{Name: "cluster-status", Run: dataAPIClusterStatus, Optional: true},
			{Name: "test-connection", Run: dataAPITestConnection},
			{Name: "create-sample-data", Run: dataAPICreateSampleData},
			{Name: "query-persons", Run: dataAPIQueryPersons},
			{Name: "query-relationships", Run: dataAPIQueryRelationships},
			{Name: "cleanup", Run: cleanup},
		},
	}
}

func dataAPIClusterStatus(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	reporter, ok := client.(statusReporter)
	if !ok {
		return 0, types.NewError(ErrCodeUnsupported, fmt.Sprintf("%T does not report engine status", client))
	}

	status, err := reporter.EngineStatus(ctx)
	if err != nil {
		return 0, err
	}

	logger.InfoContext(ctx, "Neptune cluster status", "status", status.Status)
	logger.InfoContext(ctx, "Database engine", "version", status.Version, "role", status.Role)
	return 1, nil
}

func dataAPITestConnection(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	result, raw, err := queryRaw(ctx, client, dataAPIHelloQuery)
	if err != nil {
		return 0, err
	}

	logger.InfoContext(ctx, "Connection test successful", "response", raw)
	return len(result.Records), nil
}

func dataAPICreateSampleData(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	for _, statement := range dataAPICreateStatements {
		if _, err := client.Execute(ctx, statement, nil); err != nil {
			logger.ErrorContext(ctx, "Failed to execute query", "query", statement, "error", err)
			return 0, err
		}
		logger.DebugContext(ctx, "Executed query", "query", statement)
	}

	logger.InfoContext(ctx, "Sample data created successfully using Neptune Data API",
		"statements", len(dataAPICreateStatements))
	return 0, nil
}

func dataAPIQueryPersons(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	logger.InfoContext(ctx, "Querying persons in the database")

	result, raw, err := queryRaw(ctx, client, dataAPIPersonsQuery)
	if err != nil {
		return 0, err
	}
	logger.InfoContext(ctx, "Persons query results", "results", raw)

	persons, err := decodeRows(result.Records, Person{Name: unknown})
	if err != nil {
		return 0, err
	}
	for _, p := range persons {
		logger.InfoContext(ctx, fmt.Sprintf("- Name: %s, Age: %d", p.Name, p.Age))
	}
	return len(persons), nil
}

func dataAPIQueryRelationships(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	logger.InfoContext(ctx, "Querying relationships")

	result, raw, err := queryRaw(ctx, client, dataAPIRelationshipsQuery)
	if err != nil {
		return 0, err
	}
	logger.InfoContext(ctx, "Relationships query results", "results", raw)

	rows, err := decodeRows(result.Records, Relationship{Person1: unknown, Relationship: unknown, Person2: unknown})
	if err != nil {
		return 0, err
	}
	for _, r := range rows {
		logger.InfoContext(ctx, fmt.Sprintf("- %s %s %s", r.Person1, r.Relationship, r.Person2))
	}
	return len(rows), nil
}

// queryRaw runs a read query and returns the response as the server sent it when the
// client supports that, or the decoded records re-encoded as JSON otherwise.
func queryRaw(ctx context.Context, client graph.GraphClient, cypher string) (graph.QueryResult, string, error) {
	if rq, ok := client.(rawQuerier); ok {
		return rq.RawQuery(ctx, cypher, nil)
	}

	result, err := client.Query(ctx, cypher, nil)
	if err != nil {
		return graph.QueryResult{}, "", err
	}

	encoded, err := json.Marshal(map[string]any{"results": result.Records})
	if err != nil {
		return result, "", types.WrapError(ErrCodeRowDecoding, "failed to encode results", err)
	}
	return result, string(encoded), nil
}
