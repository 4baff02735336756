package graph

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/monejava/neptune-demo/internal/types"
)

// MockCall represents a recorded method call on the mock graph client.
type MockCall struct {
	Method    string
	Args      []interface{}
	Timestamp time.Time
}

// Cypher returns the statement of a Query or Execute call, or "".
func (c MockCall) Cypher() string {
	if len(c.Args) == 0 {
		return ""
	}
	cypher, _ := c.Args[0].(string)
	return cypher
}

// MockGraphClient is a mock implementation of GraphClient for testing.
// It provides configurable responses and tracks all method calls for verification.
type MockGraphClient struct {
	mu sync.RWMutex

	// State
	connected    bool
	healthStatus types.HealthStatus
	calls        []MockCall

	// Configurable responses
	results      []QueryResult
	queryError   error
	connectError error
	closeError   error
	failOn       map[string]error
}

// NewMockGraphClient creates a new mock graph client for testing.
func NewMockGraphClient() *MockGraphClient {
	return &MockGraphClient{
		healthStatus: types.NewHealthStatus(types.HealthStateHealthy, "mock graph client"),
		calls:        make([]MockCall, 0),
		results:      make([]QueryResult, 0),
		failOn:       make(map[string]error),
	}
}

func (m *MockGraphClient) record(method string, args ...interface{}) {
	m.calls = append(m.calls, MockCall{
		Method:    method,
		Args:      args,
		Timestamp: time.Now(),
	})
}

// Connect records the call and simulates connection.
func (m *MockGraphClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Connect")

	if m.connectError != nil {
		return m.connectError
	}

	m.connected = true
	return nil
}

// Close records the call and simulates disconnection.
func (m *MockGraphClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Close")

	if m.closeError != nil {
		return m.closeError
	}

	m.connected = false
	return nil
}

// Health records the call and returns the configured health status.
func (m *MockGraphClient) Health(ctx context.Context) types.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Health")

	if !m.connected {
		return types.Unhealthy("not connected")
	}

	return m.healthStatus
}

// Query records the call and returns the next configured result.
func (m *MockGraphClient) Query(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	return m.run("Query", cypher, params)
}

// Execute records the call and returns the next configured result.
func (m *MockGraphClient) Execute(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	return m.run("Execute", cypher, params)
}

func (m *MockGraphClient) run(method, cypher string, params map[string]any) (QueryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(method, cypher, params)

	if !m.connected {
		return QueryResult{}, types.NewError(ErrCodeGraphConnectionClosed,
			"not connected")
	}

	for fragment, err := range m.failOn {
		if strings.Contains(cypher, fragment) {
			return QueryResult{}, err
		}
	}

	if m.queryError != nil {
		return QueryResult{}, m.queryError
	}

	// Results are consumed in FIFO order across Query and Execute.
	if len(m.results) > 0 {
		result := m.results[0]
		m.results = m.results[1:]
		return result, nil
	}

	return QueryResult{
		Records: []map[string]any{},
		Columns: []string{},
	}, nil
}

// SetQueryResults configures what Query() and Execute() return (FIFO queue).
func (m *MockGraphClient) SetQueryResults(results []QueryResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = results
}

// AddQueryResult adds a single query result to the queue.
func (m *MockGraphClient) AddQueryResult(result QueryResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}

// SetHealthStatus configures what Health() should return.
func (m *MockGraphClient) SetHealthStatus(status types.HealthStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.healthStatus = status
}

// SetConnectError configures Connect() to return an error.
func (m *MockGraphClient) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectError = err
}

// SetCloseError configures Close() to return an error.
func (m *MockGraphClient) SetCloseError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeError = err
}

// SetQueryError configures every Query() and Execute() call to return an error.
func (m *MockGraphClient) SetQueryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryError = err
}

// FailOn makes statements containing fragment return err.
func (m *MockGraphClient) FailOn(fragment string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOn[fragment] = err
}

// GetCalls returns all recorded method calls.
func (m *MockGraphClient) GetCalls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// GetCallsByMethod returns all calls to a specific method.
func (m *MockGraphClient) GetCallsByMethod(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, 0)
	for _, call := range m.calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// Methods returns the method names of all recorded calls, in order.
func (m *MockGraphClient) Methods() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	methods := make([]string, 0, len(m.calls))
	for _, call := range m.calls {
		methods = append(methods, call.Method)
	}
	return methods
}

// CallCount returns the total number of method calls.
func (m *MockGraphClient) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}

// IsConnected returns whether the mock is in connected state.
func (m *MockGraphClient) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}
