package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

// OllamaGenerator generates completions through a local Ollama server.
// A single instance is shared by all requests.
type OllamaGenerator struct {
	client *api.Client
	model  string
}

// NewOllamaGenerator creates a generator for the given model. The host may be
// empty, in which case the OLLAMA_HOST environment default is used.
func NewOllamaGenerator(host, model string) (*OllamaGenerator, error) {
	hostURL := envconfig.Host()
	if host != "" {
		parsed, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("parse ollama host: %w", err)
		}
		hostURL = parsed
	}
	return &OllamaGenerator{
		client: api.NewClient(hostURL, http.DefaultClient),
		model:  model,
	}, nil
}

// Generate runs one completion and returns the accumulated response text.
// Low temperature keeps answers grounded in the provided context.
func (o *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := api.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Options: map[string]interface{}{
			"temperature": 0.1,
			"num_predict": 1024,
		},
	}
	var response strings.Builder
	err := o.client.Generate(ctx, &req, func(resp api.GenerateResponse) error {
		_, err := response.WriteString(resp.Response)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return response.String(), nil
}

// Close is a no-op; the underlying HTTP client has no resources to release.
func (o *OllamaGenerator) Close() error {
	return nil
}
