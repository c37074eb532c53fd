// Package testutil provides testing utilities for the Place client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// LevelFunc computes the level the mock returns for a wire-convention pixel.
// Note the arguments are in the *remote* convention: the mock decodes the
// request payload as-is, so tests exercising the axis swap see swapped values
// here.
type LevelFunc func(wireX, wireY int) int

// MockPlace is a configurable mock Place GraphQL server for testing.
type MockPlace struct {
	server *httptest.Server
	mu     sync.RWMutex

	levelFn  LevelFunc
	failures map[string]int // remaining failures per wire pixel "x,y"

	// Tracking
	RequestCount      int
	LastRequestHeader http.Header
	LastRequestHost   string
}

// NewMockPlace creates a mock server whose pixel levels come from levelFn.
func NewMockPlace(levelFn LevelFunc) *MockPlace {
	mock := &MockPlace{
		levelFn:  levelFn,
		failures: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(mock.handle))
	return mock
}

// URL returns the mock server URL.
func (m *MockPlace) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockPlace) Close() {
	m.server.Close()
}

// FailTimes makes the next n requests for a wire pixel return HTTP 500
// before the mock starts answering normally.
func (m *MockPlace) FailTimes(wireX, wireY, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[pixelKey(wireX, wireY)] = n
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockPlace) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// mockQuery mirrors the getPixelLevel request body.
type mockQuery struct {
	OperationName string `json:"operationName"`
	Variables     struct {
		Pixel struct {
			X int `json:"x"`
			Y int `json:"y"`
		} `json:"pixel"`
	} `json:"variables"`
}

func (m *MockPlace) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.RequestCount++
	m.LastRequestHeader = r.Header.Clone()
	m.LastRequestHost = r.Host
	m.mu.Unlock()

	var q mockQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, `{"error": "bad request body"}`, http.StatusBadRequest)
		return
	}
	if q.OperationName != "getPixelLevel" {
		http.Error(w, `{"error": "unknown operation"}`, http.StatusBadRequest)
		return
	}

	wireX, wireY := q.Variables.Pixel.X, q.Variables.Pixel.Y

	m.mu.Lock()
	key := pixelKey(wireX, wireY)
	if m.failures[key] > 0 {
		m.failures[key]--
		m.mu.Unlock()
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	levelFn := m.levelFn
	m.mu.Unlock()

	level := 0
	if levelFn != nil {
		level = levelFn(wireX, wireY)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"data":{"getPixelLevel":{"x":%d,"y":%d,"level":%d,"coloredBy":null,"upgradedBy":null,"__typename":"Pixel"}}}`,
		wireX, wireY, level)
}

func pixelKey(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}
