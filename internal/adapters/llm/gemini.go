package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.5-flash"

	temperature     = 0.7
	topP            = 0.9
	maxOutputTokens = 1200
)

// modelsClient is the slice of the genai SDK we use, so tests can stub it.
type modelsClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements domain.CompletionClient against the Gemini API,
// with the Google Search tool enabled on every request.
type GeminiClient struct {
	models    modelsClient
	modelName string
	config    *genai.GenerateContentConfig
}

// NewGeminiClient creates a Gemini-backed completion client.
// The API key comes from configuration; an empty key is an error so the
// caller can degrade to an unconfigured chat service instead of crashing.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{
		models:    client.Models,
		modelName: modelName,
		config:    generationConfig(),
	}, nil
}

// generationConfig is fixed for every request: web-search augmentation on,
// the sampling parameters the product was tuned with, and a hard output cap.
func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		Temperature:     genai.Ptr(float32(temperature)),
		TopP:            genai.Ptr(float32(topP)),
		MaxOutputTokens: maxOutputTokens,
	}
}

// ModelName returns the configured model identifier.
func (c *GeminiClient) ModelName() string {
	return c.modelName
}

// Complete implements domain.CompletionClient.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	res, err := c.models.GenerateContent(ctx, c.modelName, contents, c.config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return extractText(res), nil
}

// extractText normalizes the provider's response shapes into plain text:
// the direct text accessor first, then a walk over the candidate's content
// parts, then a string rendering of the raw response as a last resort.
func extractText(res *genai.GenerateContentResponse) string {
	if res == nil {
		return ""
	}

	if text := res.Text(); text != "" {
		return strings.TrimSpace(text)
	}

	if len(res.Candidates) > 0 && res.Candidates[0] != nil && res.Candidates[0].Content != nil {
		var b strings.Builder
		for _, part := range res.Candidates[0].Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			b.WriteString(part.Text)
		}
		if b.Len() > 0 {
			return strings.TrimSpace(b.String())
		}
	}

	return strings.TrimSpace(fmt.Sprintf("%v", res))
}
