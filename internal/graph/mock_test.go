package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monejava/neptune-demo/internal/types"
)

var _ GraphClient = (*MockGraphClient)(nil)
var _ GraphClient = (*BoltClient)(nil)

func TestMockGraphClient_Lifecycle(t *testing.T) {
	ctx := context.Background()
	mock := NewMockGraphClient()

	assert.False(t, mock.Health(ctx).IsHealthy())

	require.NoError(t, mock.Connect(ctx))
	assert.True(t, mock.IsConnected())
	assert.True(t, mock.Health(ctx).IsHealthy())

	require.NoError(t, mock.Close(ctx))
	assert.False(t, mock.IsConnected())

	assert.Equal(t, []string{"Health", "Connect", "Health", "Close"}, mock.Methods())
}

func TestMockGraphClient_ResultsFIFO(t *testing.T) {
	ctx := context.Background()
	mock := NewMockGraphClient()
	require.NoError(t, mock.Connect(ctx))

	mock.AddQueryResult(QueryResult{Records: []map[string]any{{"n": 1}}})
	mock.AddQueryResult(QueryResult{Records: []map[string]any{{"n": 2}}})

	first, err := mock.Execute(ctx, "CREATE (n)", nil)
	require.NoError(t, err)
	second, err := mock.Query(ctx, "MATCH (n) RETURN n", map[string]any{"x": 1})
	require.NoError(t, err)
	third, err := mock.Query(ctx, "MATCH (n) RETURN n", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, first.First()["n"])
	assert.Equal(t, 2, second.First()["n"])
	assert.Empty(t, third.Records)

	queries := mock.GetCallsByMethod("Query")
	require.Len(t, queries, 2)
	assert.Equal(t, "MATCH (n) RETURN n", queries[0].Cypher())
	assert.Equal(t, map[string]any{"x": 1}, queries[0].Args[1])
}

func TestMockGraphClient_Errors(t *testing.T) {
	ctx := context.Background()
	mock := NewMockGraphClient()

	_, err := mock.Query(ctx, "RETURN 1", nil)
	assert.Equal(t, ErrCodeGraphConnectionClosed, types.CodeOf(err))

	mock.SetConnectError(errors.New("refused"))
	assert.EqualError(t, mock.Connect(ctx), "refused")

	mock.SetConnectError(nil)
	require.NoError(t, mock.Connect(ctx))

	boom := errors.New("boom")
	mock.FailOn("DETACH DELETE", boom)
	_, err = mock.Execute(ctx, "MATCH (n) DETACH DELETE n", nil)
	assert.ErrorIs(t, err, boom)

	_, err = mock.Execute(ctx, "CREATE (n)", nil)
	assert.NoError(t, err)

	mock.SetQueryError(boom)
	_, err = mock.Query(ctx, "RETURN 1", nil)
	assert.ErrorIs(t, err, boom)

	mock.SetCloseError(boom)
	assert.ErrorIs(t, mock.Close(ctx), boom)
	assert.Equal(t, 7, mock.CallCount())
}
