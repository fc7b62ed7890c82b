package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStoreUnavailable wraps any failure to reach the document store.
	ErrStoreUnavailable = errors.New("property store unavailable")

	// ErrModelNotReady is returned when the completion client was never
	// configured (e.g. missing API key). No network call is attempted.
	ErrModelNotReady = errors.New("model not initialized yet")

	// ErrUpstream wraps a failed call to the completion provider.
	ErrUpstream = errors.New("upstream generation error")
)

// ValidationError reports the listing fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid listing input: %s", strings.Join(e.Fields, ", "))
}
