package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nexaur/nexaur-api/internal/domain"
)

// ListingStore keeps listings in process memory. Used for local dev
// without a database and as the store double in tests.
type ListingStore struct {
	mu       sync.RWMutex
	listings []*domain.Listing
}

func NewListingStore() *ListingStore {
	return &ListingStore{}
}

func (s *ListingStore) Insert(ctx context.Context, listing *domain.Listing) (domain.ListingID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := domain.ListingID(uuid.NewString())
	stored := *listing
	stored.ID = id
	s.listings = append(s.listings, &stored)
	return id, nil
}

func (s *ListingStore) FindAll(ctx context.Context) ([]*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		copied := *l
		out = append(out, &copied)
	}
	return out, nil
}
