package demo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/monejava/neptune-demo/internal/graph"
)

// BoltDemo returns the Bolt demo: hello query, create, find persons, find
// relationships and cleanup.
func BoltDemo() Demo {
	return Demo{
		Kind: KindBolt,
		Steps: []Step{
			{Name: "test-connection", Run: boltTestConnection},
			{Name: "create-sample-data", Run: boltCreateSampleData},
			{Name: "find-persons", Run: boltFindPersons},
			{Name: "find-relationships", Run: boltFindRelationships},
			{Name: "cleanup", Run: cleanup},
		},
	}
}

func boltTestConnection(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	logger.InfoContext(ctx, "Executing test query", "query", boltHelloQuery)

	result, err := client.Query(ctx, boltHelloQuery, nil)
	if err != nil {
		return 0, err
	}

	record := result.First()
	if record == nil {
		logger.WarnContext(ctx, "Query executed but returned no results")
		return 0, nil
	}

	var greeting Greeting
	if err := decodeRow(record, &greeting); err != nil {
		return 0, err
	}
	logger.InfoContext(ctx, "Connection test successful", "message", greeting.Message)
	return len(result.Records), nil
}

func boltCreateSampleData(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	logger.InfoContext(ctx, "Creating sample data")

	result, err := client.Execute(ctx, boltCreateQuery, nil)
	if err != nil {
		return 0, err
	}

	if record := result.First(); record != nil {
		var created CreatedSample
		if err := decodeRow(record, &created); err != nil {
			return 0, err
		}
		logger.InfoContext(ctx, fmt.Sprintf("Created: %s and %s working for %s",
			created.Person1, created.Person2, created.Company),
			"nodes_created", result.Summary.NodesCreated,
			"relationships_created", result.Summary.RelationshipsCreated)
	}
	return len(result.Records), nil
}

func boltFindPersons(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	logger.InfoContext(ctx, "Finding all persons")

	result, err := client.Query(ctx, boltPersonsQuery, nil)
	if err != nil {
		return 0, err
	}

	persons, err := decodeRows(result.Records, Person{})
	if err != nil {
		return 0, err
	}
	for _, p := range persons {
		logger.InfoContext(ctx, fmt.Sprintf("Person: %s (age: %d)", p.Name, p.Age))
	}
	return len(persons), nil
}

func boltFindRelationships(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	logger.InfoContext(ctx, "Finding relationships")

	result, err := client.Query(ctx, boltRelationshipsQuery, nil)
	if err != nil {
		return 0, err
	}

	rows, err := decodeRows(result.Records, Employment{})
	if err != nil {
		return 0, err
	}
	for _, r := range rows {
		logger.InfoContext(ctx, fmt.Sprintf("%s %s %s", r.Person, r.Relationship, r.Company))
	}
	return len(rows), nil
}

// cleanup is shared by both demos. It deletes Person and Company nodes only.
func cleanup(ctx context.Context, client graph.GraphClient, logger *slog.Logger) (int, error) {
	logger.InfoContext(ctx, "Cleaning up test data")

	result, err := client.Execute(ctx, cleanupQuery, nil)
	if err != nil {
		return 0, err
	}

	logger.InfoContext(ctx, "Test data cleaned up successfully",
		"nodes_deleted", result.Summary.NodesDeleted,
		"relationships_deleted", result.Summary.RelationshipsDeleted)
	return 0, nil
}
