package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexaur/nexaur-api/internal/domain"
	"github.com/nexaur/nexaur-api/internal/observability"
	"go.uber.org/zap"
)

// Lister provides the listing snapshot used as chat context.
type Lister interface {
	List(ctx context.Context) ([]*domain.Listing, error)
}

type Service struct {
	listings Lister
	model    domain.CompletionClient
}

// NewService builds a chat service. A nil model is allowed: every Reply
// then fails with ErrModelNotReady so the transport can answer 503.
func NewService(listings Lister, model domain.CompletionClient) *Service {
	return &Service{
		listings: listings,
		model:    model,
	}
}

// Ready reports whether a completion client is configured.
func (s *Service) Ready() bool {
	return s.model != nil
}

// Reply builds a prompt from the current listings and the caller's history,
// asks the model to continue the conversation, and returns its trimmed text.
// A store failure does not fail the chat; the prompt just carries a
// no-properties note instead of real context.
func (s *Service) Reply(ctx context.Context, history []domain.ChatMessage) (string, error) {
	if s.model == nil {
		return "", domain.ErrModelNotReady
	}

	log := observability.FromContext(ctx)

	listings, err := s.listings.List(ctx)
	if err != nil {
		log.Warn("listing context unavailable, continuing without it", zap.Error(err))
		listings = nil
	}

	prompt := BuildPrompt(listings, history)

	text, err := s.model.Complete(ctx, prompt)
	if err != nil {
		log.Error("completion failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	log.Info("reply generated", zap.Int("context_listings", len(listings)))
	return strings.TrimSpace(text), nil
}
