package llm

import "context"

// MockClient returns a canned reply. Handy for local dev without an API key.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	return "As-salamu alaykum bhai! I am running in mock mode, so I cannot reach Gemini right now. Ask me again once the API key is configured.", nil
}
