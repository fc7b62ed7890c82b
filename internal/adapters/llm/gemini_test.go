package llm

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

type stubModels struct {
	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig

	resp *genai.GenerateContentResponse
	err  error
}

func (s *stubModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.gotModel = model
	s.gotContents = contents
	s.gotConfig = config
	return s.resp, s.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}

func newStubClient(stub *stubModels) *GeminiClient {
	return &GeminiClient{
		models:    stub,
		modelName: "gemini-2.5-flash",
		config:    generationConfig(),
	}
}

func TestCompleteSendsFixedGenerationConfig(t *testing.T) {
	stub := &stubModels{resp: textResponse("ok")}
	client := newStubClient(stub)

	got, err := client.Complete(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "ok" {
		t.Fatalf("expected %q, got %q", "ok", got)
	}

	if stub.gotModel != "gemini-2.5-flash" {
		t.Errorf("wrong model: %s", stub.gotModel)
	}
	if len(stub.gotContents) != 1 || stub.gotContents[0].Parts[0].Text != "prompt text" {
		t.Errorf("prompt not forwarded as a single user content: %+v", stub.gotContents)
	}

	cfg := stub.gotConfig
	if cfg.Temperature == nil || *cfg.Temperature != 0.7 {
		t.Errorf("temperature not 0.7: %v", cfg.Temperature)
	}
	if cfg.TopP == nil || *cfg.TopP != 0.9 {
		t.Errorf("topP not 0.9: %v", cfg.TopP)
	}
	if cfg.MaxOutputTokens != 1200 {
		t.Errorf("max output tokens not 1200: %d", cfg.MaxOutputTokens)
	}
	if len(cfg.Tools) != 1 || cfg.Tools[0].GoogleSearch == nil {
		t.Errorf("google search tool not enabled: %+v", cfg.Tools)
	}
}

func TestCompletePropagatesProviderError(t *testing.T) {
	stub := &stubModels{err: errors.New("429 quota")}
	client := newStubClient(stub)

	_, err := client.Complete(context.Background(), "p")
	if err == nil || !errors.Is(err, stub.err) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestExtractText(t *testing.T) {
	if got := extractText(textResponse("  direct  ")); got != "direct" {
		t.Errorf("direct form: got %q", got)
	}

	fragments := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "part one "},
						{Text: "part two"},
					},
				},
			},
		},
	}
	if got := extractText(fragments); got != "part one part two" {
		t.Errorf("fragment list: got %q", got)
	}

	// Shapeless response still yields some string rather than panicking.
	if got := extractText(&genai.GenerateContentResponse{}); got == "" {
		t.Errorf("last-resort conversion returned empty text")
	}

	if got := extractText(nil); got != "" {
		t.Errorf("nil response: got %q", got)
	}
}
