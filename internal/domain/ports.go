package domain

import "context"

// ListingStore defines listing persistence against the document store.
type ListingStore interface {
	Insert(ctx context.Context, listing *Listing) (ListingID, error)
	FindAll(ctx context.Context) ([]*Listing, error)
}

// CompletionClient defines how the core application talks to a
// text-generation service. Implementations normalize whatever response
// shape the provider returns into a single string.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
