package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters with cumulative request latency.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	requestTotals map[string]time.Duration
	errorCount    map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		requestTotals: make(map[string]time.Duration),
		errorCount:    make(map[string]int64),
	}
}

// RecordRequest counts the request and accumulates its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.requestTotals[key] += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RequestStats returns the request count and cumulative latency recorded for
// a path/method/status combination.
func (m *Metrics) RequestStats(path, method string, status int) (int64, time.Duration) {
	if m == nil {
		return 0, 0
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCount[key], m.requestTotals[key]
}

// ErrorCount returns the number of errors recorded for a path/method/code
// combination.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	if m == nil {
		return 0
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errorCount[key]
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
