package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/ssargent/tdswire/pkg/codec"
)

func newTestRouter(t *testing.T, config ServerConfig) (http.Handler, *Metrics) {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	server := NewServer(codec.NewDecoder(codec.DecoderConfig{}), config, metrics, zerolog.Nop())
	return server.Router(reg), metrics
}

func TestNewServer(t *testing.T) {
	server := NewServer(nil, ServerConfig{Port: 8080, APIKey: "secret-key"}, nil, zerolog.Nop())
	if server == nil {
		t.Fatal("Expected server to be created")
	}
	if server.decoder == nil {
		t.Error("Expected a default decoder")
	}
	if server.config.MaxValueSize != 8000 {
		t.Errorf("Expected default max value size 8000, got %d", server.config.MaxValueSize)
	}
	if server.config.APIKey != "secret-key" {
		t.Errorf("Expected API key to be 'secret-key', got '%s'", server.config.APIKey)
	}
}

func TestRouter_APIKey(t *testing.T) {
	tests := []struct {
		name           string
		configKey      string
		requestKey     string
		path           string
		expectedStatus int
	}{
		{"no key configured", "", "", "/api/v1/health", http.StatusOK},
		{"valid key", "test-key", "test-key", "/api/v1/health", http.StatusOK},
		{"missing key", "test-key", "", "/api/v1/health", http.StatusUnauthorized},
		{"wrong key", "test-key", "nope", "/api/v1/types", http.StatusUnauthorized},
		{"metrics unprotected", "test-key", "", "/metrics", http.StatusOK},
		{"swagger unprotected", "test-key", "", "/swagger/doc.json", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, ServerConfig{APIKey: tt.configKey})

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.requestKey != "" {
				req.Header.Set("X-API-Key", tt.requestKey)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("Expected X-Request-ID header")
			}
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	router, metrics := newTestRouter(t, ServerConfig{APIKey: "k"})

	for _, body := range []string{
		`{"type":"guid","hex":"000102030405060708090a0b0c0d0e0f"}`,
		`{"type":"dto","hex":"0001"}`,
	} {
		req := httptest.NewRequest("POST", "/api/v1/decode", strings.NewReader(body))
		req.Header.Set("X-API-Key", "k")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	if got := testutil.ToFloat64(metrics.codecOperationsTotal.WithLabelValues("guid", "decode", "success")); got != 1 {
		t.Errorf("Expected 1 successful guid decode, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.codecOperationsTotal.WithLabelValues("datetimeoffset", "decode", "error")); got != 1 {
		t.Errorf("Expected 1 failed datetimeoffset decode, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.httpRequestsTotal.WithLabelValues("POST", "/api/v1/decode", "422")); got != 1 {
		t.Errorf("Expected 1 request with status 422, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.authRequestsTotal.WithLabelValues(statusSuccess)); got != 2 {
		t.Errorf("Expected 2 authenticated requests, got %v", got)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(w.Body.String(), "tdswire_codec_operations_total") {
		t.Error("Expected codec metrics in /metrics output")
	}
}

func TestRouter_SwaggerDoc(t *testing.T) {
	router, _ := newTestRouter(t, ServerConfig{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/doc.json", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Expected valid JSON swagger doc: %v", err)
	}
	paths, ok := doc["paths"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected paths in swagger doc")
	}
	for _, p := range []string{"/health", "/types", "/decode", "/encode"} {
		if _, ok := paths[p]; !ok {
			t.Errorf("Expected path %s in swagger doc", p)
		}
	}
}

func TestMetrics_ZeroValueIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordHealthCheck(true)
	m.RecordCodecOperation("guid", "decode", true, 16)

	empty := &Metrics{}
	called := false
	h := empty.InstrumentHandler("GET", "/x", func(w http.ResponseWriter, r *http.Request) { called = true })
	h(httptest.NewRecorder(), httptest.NewRequest("GET", "/x", nil))
	if !called {
		t.Error("Expected wrapped handler to run")
	}
}

func TestServer_ListenAndServe_Shutdown(t *testing.T) {
	server := NewServer(nil, ServerConfig{Bind: "127.0.0.1", Port: 0}, &Metrics{}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Server did not shut down")
	}
}
