package dataapi

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/neptunedata"
	"github.com/aws/aws-sdk-go-v2/service/neptunedata/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/monejava/neptune-demo/internal/graph"
	"github.com/monejava/neptune-demo/internal/types"
)

var _ graph.GraphClient = (*Client)(nil)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ExecuteOpenCypherQuery(ctx context.Context, params *neptunedata.ExecuteOpenCypherQueryInput, optFns ...func(*neptunedata.Options)) (*neptunedata.ExecuteOpenCypherQueryOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*neptunedata.ExecuteOpenCypherQueryOutput)
	return out, args.Error(1)
}

func (m *mockAPI) GetEngineStatus(ctx context.Context, params *neptunedata.GetEngineStatusInput, optFns ...func(*neptunedata.Options)) (*neptunedata.GetEngineStatusOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*neptunedata.GetEngineStatusOutput)
	return out, args.Error(1)
}

func queryOutput(v any) *neptunedata.ExecuteOpenCypherQueryOutput {
	return &neptunedata.ExecuteOpenCypherQueryOutput{Results: document.NewLazyDocument(v)}
}

func hasQuery(cypher string) any {
	return mock.MatchedBy(func(in *neptunedata.ExecuteOpenCypherQueryInput) bool {
		return aws.ToString(in.OpenCypherQuery) == cypher
	})
}

func connectedClient(t *testing.T, api API) *Client {
	t.Helper()
	c := NewWithAPI(api, "https://cluster:8182", false)
	require.NoError(t, c.Connect(context.Background()))
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New(aws.Config{Region: "us-east-1"}, "", false)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidConfig, types.CodeOf(err))

	_, err = New(aws.Config{Region: "us-east-1"}, "cluster:8182", false)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidConfig, types.CodeOf(err))

	c, err := New(aws.Config{Region: "us-east-1"}, "https://cluster:8182", false)
	require.NoError(t, err)
	assert.Equal(t, "https://cluster:8182", c.Endpoint())
}

func TestClient_QueryBeforeConnect(t *testing.T) {
	c := NewWithAPI(&mockAPI{}, "https://cluster:8182", false)

	_, err := c.Query(context.Background(), "RETURN 1", nil)
	require.Error(t, err)
	assert.Equal(t, ErrCodeClientClosed, types.CodeOf(err))
}

func TestClient_QueryArrayResults(t *testing.T) {
	api := &mockAPI{}
	api.On("ExecuteOpenCypherQuery", mock.Anything, hasQuery("MATCH (p:Person) RETURN p.name as name, p.age as age")).
		Return(queryOutput([]any{
			map[string]any{"name": "Alice", "age": 30},
			map[string]any{"name": "Bob", "age": 25.5},
		}), nil)

	c := connectedClient(t, api)
	result, err := c.Query(context.Background(), "MATCH (p:Person) RETURN p.name as name, p.age as age", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"age", "name"}, result.Columns)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "Alice", result.Records[0]["name"])
	assert.Equal(t, int64(30), result.Records[0]["age"])
	assert.Equal(t, 25.5, result.Records[1]["age"])
	api.AssertExpectations(t)
}

func TestClient_QueryObjectResults(t *testing.T) {
	api := &mockAPI{}
	api.On("ExecuteOpenCypherQuery", mock.Anything, mock.Anything).
		Return(queryOutput(map[string]any{
			"results": []any{map[string]any{"message": "Hello Neptune!"}},
		}), nil)

	c := connectedClient(t, api)
	result, raw, err := c.RawQuery(context.Background(), "RETURN 'Hello Neptune!' as message", nil)
	require.NoError(t, err)

	assert.Equal(t, "Hello Neptune!", result.First()["message"])
	assert.Contains(t, raw, "Hello Neptune!")
}

func TestClient_ExecuteEncodesParameters(t *testing.T) {
	api := &mockAPI{}
	api.On("ExecuteOpenCypherQuery", mock.Anything, mock.MatchedBy(func(in *neptunedata.ExecuteOpenCypherQueryInput) bool {
		return aws.ToString(in.Parameters) == `{"name":"Alice"}`
	})).Return(queryOutput([]any{}), nil)

	c := connectedClient(t, api)
	result, err := c.Execute(context.Background(), "CREATE (p:Person {name: $name})", map[string]any{"name": "Alice"})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	api.AssertExpectations(t)
}

func TestClient_QueryWithoutParametersSendsNone(t *testing.T) {
	api := &mockAPI{}
	api.On("ExecuteOpenCypherQuery", mock.Anything, mock.MatchedBy(func(in *neptunedata.ExecuteOpenCypherQueryInput) bool {
		return in.Parameters == nil
	})).Return(&neptunedata.ExecuteOpenCypherQueryOutput{}, nil)

	c := connectedClient(t, api)
	result, err := c.Query(context.Background(), "RETURN 1", map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	api.AssertExpectations(t)
}

func TestClient_QueryFailures(t *testing.T) {
	tests := []struct {
		name string
		out  *neptunedata.ExecuteOpenCypherQueryOutput
		err  error
		code types.ErrorCode
	}{
		{name: "request error", err: errors.New("AccessDeniedException"), code: ErrCodeRequestFailed},
		{name: "scalar document", out: queryOutput("oops"), code: ErrCodeResultParsing},
		{name: "results not array", out: queryOutput(map[string]any{"results": "oops"}), code: ErrCodeResultParsing},
		{name: "row not object", out: queryOutput([]any{1, 2}), code: ErrCodeResultParsing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAPI{}
			api.On("ExecuteOpenCypherQuery", mock.Anything, mock.Anything).Return(tt.out, tt.err)

			c := connectedClient(t, api)
			_, err := c.Query(context.Background(), "MATCH (n) RETURN n", nil)
			require.Error(t, err)
			assert.Equal(t, tt.code, types.CodeOf(err))
		})
	}
}

func TestClient_EngineStatusAndHealth(t *testing.T) {
	tests := []struct {
		name  string
		out   *neptunedata.GetEngineStatusOutput
		err   error
		state types.HealthState
	}{
		{
			name:  "healthy",
			out:   &neptunedata.GetEngineStatusOutput{Status: aws.String("healthy"), DbEngineVersion: aws.String("1.3.2.0"), Role: aws.String("writer")},
			state: types.HealthStateHealthy,
		},
		{
			name:  "recovering",
			out:   &neptunedata.GetEngineStatusOutput{Status: aws.String("recovery"), DbEngineVersion: aws.String("1.3.2.0")},
			state: types.HealthStateDegraded,
		},
		{
			name:  "request failed",
			err:   errors.New("connection refused"),
			state: types.HealthStateUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAPI{}
			api.On("GetEngineStatus", mock.Anything, mock.Anything).Return(tt.out, tt.err)

			c := connectedClient(t, api)
			assert.Equal(t, tt.state, c.Health(context.Background()).State)
		})
	}
}

func TestClient_EngineStatus(t *testing.T) {
	api := &mockAPI{}
	api.On("GetEngineStatus", mock.Anything, mock.Anything).Return(&neptunedata.GetEngineStatusOutput{
		Status:          aws.String("healthy"),
		DbEngineVersion: aws.String("1.3.2.0"),
		Role:            aws.String("writer"),
	}, nil)

	c := connectedClient(t, api)
	status, err := c.EngineStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, EngineStatus{Status: "healthy", Version: "1.3.2.0", Role: "writer"}, status)
}

func TestClient_Close(t *testing.T) {
	closed := 0
	c := connectedClient(t, &mockAPI{})
	c.closeIdle = func() { closed++ }

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, closed)

	_, err := c.Query(context.Background(), "RETURN 1", nil)
	assert.Equal(t, ErrCodeClientClosed, types.CodeOf(err))
}
