package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

// TestMetricsInitialization tests that all metrics are properly initialized
func TestMetricsInitialization(t *testing.T) {
	m := getTestMetrics()

	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal should not be nil")
	}
	if m.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration should not be nil")
	}
	if m.DBQueryDuration == nil {
		t.Error("DBQueryDuration should not be nil")
	}
	if m.DBQueryErrors == nil {
		t.Error("DBQueryErrors should not be nil")
	}
	if m.ExternalAPIRequestsTotal == nil {
		t.Error("ExternalAPIRequestsTotal should not be nil")
	}
	if m.ProjectsTotal == nil {
		t.Error("ProjectsTotal should not be nil")
	}
	if m.OpenRejectionsTotal == nil {
		t.Error("OpenRejectionsTotal should not be nil")
	}
	if m.ProjectCreatedTotal == nil {
		t.Error("ProjectCreatedTotal should not be nil")
	}
	if m.TasksGeneratedTotal == nil {
		t.Error("TasksGeneratedTotal should not be nil")
	}
	if m.ChecklistGeneratedTotal == nil {
		t.Error("ChecklistGeneratedTotal should not be nil")
	}
	if m.RejectionAnalyzedTotal == nil {
		t.Error("RejectionAnalyzedTotal should not be nil")
	}
	if m.FilesUploadedTotal == nil {
		t.Error("FilesUploadedTotal should not be nil")
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	m := getTestMetrics()

	m.RecordHTTPRequest("GET", "/api/projects", 200, 10*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/projects", 500, 20*time.Millisecond)

	counter, err := m.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "/api/projects", "2xx")
	if err != nil {
		t.Fatalf("Failed to get counter: %v", err)
	}
	if getCounterValue(t, counter) != 1 {
		t.Error("Expected one 2xx GET request recorded")
	}

	counter, err = m.HTTPRequestsTotal.GetMetricWithLabelValues("POST", "/api/projects", "5xx")
	if err != nil {
		t.Fatalf("Failed to get counter: %v", err)
	}
	if getCounterValue(t, counter) != 1 {
		t.Error("Expected one 5xx POST request recorded")
	}
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
		{100, "unknown"},
	}

	for _, tt := range tests {
		if got := categorizeStatus(tt.code); got != tt.expected {
			t.Errorf("categorizeStatus(%d) = %s, want %s", tt.code, got, tt.expected)
		}
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/metrics", true},
		{"/health", true},
		{"/ready", true},
		{"/api/projects", false},
		{"/api/projects/abc/tasks", false},
	}

	for _, tt := range tests {
		if got := ShouldSkipEndpoint(tt.path); got != tt.expected {
			t.Errorf("ShouldSkipEndpoint(%s) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestRecordDBQueryError(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("SELECT", "tasks", 5*time.Millisecond, errors.New("boom"))
	m.RecordDBQuery("select", "tasks", 5*time.Millisecond, nil)

	counter, err := m.DBQueryErrors.GetMetricWithLabelValues("select", "tasks")
	if err != nil {
		t.Fatalf("Failed to get counter: %v", err)
	}
	if getCounterValue(t, counter) != 1 {
		t.Error("Expected exactly one db query error recorded")
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	got := normalizeEndpoint("/api/projects/123e4567-e89b-12d3-a456-426614174000/tasks")
	want := "/api/projects/{id}/tasks"
	if got != want {
		t.Errorf("normalizeEndpoint = %s, want %s", got, want)
	}
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		err        error
		expected   string
	}{
		{"not found", 404, nil, "not_found"},
		{"rate limited", 429, nil, "too_many_requests"},
		{"server error", 500, nil, "internal_server_error"},
		{"timeout error", 0, errors.New("context deadline exceeded"), "timeout"},
		{"refused", 0, errors.New("dial tcp: connection refused"), "connection_refused"},
		{"unknown network", 0, errors.New("something odd"), "network_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getErrorType(tt.statusCode, tt.err); got != tt.expected {
				t.Errorf("getErrorType = %s, want %s", got, tt.expected)
			}
		})
	}
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}
