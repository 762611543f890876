// internal/providers/ollama/provider_test.go
package ollama

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mwiater/chainsight/internal/appconfig"
)

func testConfig(url string) *appconfig.Config {
	return &appconfig.Config{
		TimeoutSeconds: 5,
		Generate: appconfig.Host{
			Name:  "test",
			URL:   url,
			Model: "test-model",
		},
	}
}

// TestGenerate verifies that a successful generate call posts the expected
// payload and returns the trimmed response text.
func TestGenerate(t *testing.T) {
	t.Parallel()

	var capturedBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		capturedBody = body
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"test-model","response":"  Keep two weeks of stock.  ","done":true}`))
	}))
	defer server.Close()

	provider := New(testConfig(server.URL))
	got, err := provider.Generate(context.Background(), "What is the safety stock policy?")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "Keep two weeks of stock." {
		t.Fatalf("unexpected response: %q", got)
	}

	var payload map[string]any
	if err := json.Unmarshal(capturedBody, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload["model"] != "test-model" {
		t.Fatalf("unexpected model in payload: %v", payload["model"])
	}
	if stream, ok := payload["stream"].(bool); !ok || stream {
		t.Fatalf("expected stream=false, got %v", payload["stream"])
	}
}

// TestGenerateErrors verifies that HTTP failures, empty output, and a
// canceled context all surface as errors.
func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	t.Run("non-200 status", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer server.Close()

		provider := New(testConfig(server.URL))
		if _, err := provider.Generate(context.Background(), "q"); err == nil {
			t.Fatal("expected error for non-200 status")
		}
	})

	t.Run("empty response", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"model":"test-model","response":"   ","done":true}`))
		}))
		defer server.Close()

		provider := New(testConfig(server.URL))
		if _, err := provider.Generate(context.Background(), "q"); err == nil {
			t.Fatal("expected error for empty response text")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"response":"late"}`))
		}))
		defer server.Close()

		provider := New(testConfig(server.URL))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := provider.Generate(ctx, "q"); err == nil {
			t.Fatal("expected error for canceled context")
		}
	})

	t.Run("missing host config", func(t *testing.T) {
		t.Parallel()
		provider := New(&appconfig.Config{TimeoutSeconds: 1})
		_, err := provider.Generate(context.Background(), "q")
		if err == nil || !strings.Contains(err.Error(), "host URL is empty") {
			t.Fatalf("expected host URL error, got: %v", err)
		}
	})
}
