//go:build integration
// +build integration

package demo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/monejava/neptune-demo/internal/graph"
)

// setupBoltServer starts a Neo4j container, which speaks the Bolt and openCypher
// subset the demo uses, and returns a Bolt client for it.
func setupBoltServer(t *testing.T, ctx context.Context) *graph.BoltClient {
	t.Helper()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		t.Skip("Docker not available, skipping integration test")
	}
	if err := provider.Health(ctx); err != nil {
		t.Skip("Docker not running, skipping integration test")
	}

	req := testcontainers.ContainerRequest{
		Image:        "neo4j:5",
		ExposedPorts: []string{"7687/tcp"},
		Env: map[string]string{
			"NEO4J_AUTH": "none",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("7687/tcp"),
			wait.ForLog("Started."),
		).WithDeadline(120 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "Failed to start Neo4j container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "7687")
	require.NoError(t, err)

	cfg := graph.DefaultConfig()
	cfg.URI = fmt.Sprintf("bolt://%s:%s", host, port.Port())
	cfg.Auth = neo4j.NoAuth()

	client, err := graph.NewBoltClient(cfg)
	require.NoError(t, err)
	return client
}

func TestIntegration_BoltDemo(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := setupBoltServer(t, ctx)
	logger, buf := newTestLogger()

	report, err := NewRunner(client, logger, WithEndpoint("bolt")).Run(ctx, BoltDemo())
	require.NoError(t, err, buf.String())

	assert.True(t, report.Success)
	assert.True(t, report.Health.IsHealthy())

	msgs := parseLog(t, buf).messages()
	assert.Contains(t, msgs, "Created: Alice and Bob working for TechCorp")
	assert.Contains(t, msgs, "Person: Alice (age: 30)")
	assert.Contains(t, msgs, "Person: Bob (age: 25)")
	assert.Contains(t, msgs, "Bob WORKS_FOR TechCorp")

	// The runner closed the client; reconnect to check the cleanup.
	require.NoError(t, client.Connect(ctx))
	defer client.Close(ctx)

	result, err := client.Query(ctx, "MATCH (n) WHERE n:Person OR n:Company RETURN count(n) as remaining", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.First()["remaining"])
}
