// internal/providers/ollama/provider.go
// Package ollama implements providers.Generator against Ollama-compatible HTTP endpoints.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwiater/chainsight/internal/appconfig"
	"github.com/mwiater/chainsight/internal/logging"
)

// Provider issues non-streaming /api/generate requests to a single host.
type Provider struct {
	client  *http.Client
	host    appconfig.Host
	timeout time.Duration
}

// New constructs a Provider for the configured generate host.
func New(cfg *appconfig.Config) *Provider {
	timeout := cfg.GenerateTimeout()
	return &Provider{
		client: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{ForceAttemptHTTP2: false},
		},
		host:    cfg.Generate,
		timeout: timeout,
	}
}

// generateResponse is the subset of the /api/generate reply we consume.
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generate sends the prompt to the host and returns the generated text.
// An empty response body is reported as an error so callers can fall
// back to template mode.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(p.host.URL) == "" {
		return "", fmt.Errorf("ollama: generate host URL is empty")
	}
	if strings.TrimSpace(p.host.Model) == "" {
		return "", fmt.Errorf("ollama: generate model is empty")
	}

	payload := map[string]any{
		"model":  p.host.Model,
		"prompt": prompt,
		"stream": false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal generate request: %w", err)
	}
	logging.LogRequest("CHAINSIGHT->LLM", p.host.Name, p.host.Model, body)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host.URL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: generate request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read generate response: %w", err)
	}
	logging.LogRequest("LLM->CHAINSIGHT", p.host.Name, p.host.Model, respBody)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: /api/generate returned %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("ollama: parse generate response: %w", err)
	}

	text := strings.TrimSpace(parsed.Response)
	if text == "" {
		return "", fmt.Errorf("ollama: generate response was empty")
	}
	return text, nil
}
