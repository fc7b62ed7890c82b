package listing

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nexaur/nexaur-api/internal/domain"
	"github.com/nexaur/nexaur-api/internal/observability"
	"go.uber.org/zap"
)

type Service struct {
	store domain.ListingStore
	now   func() time.Time
}

func NewService(store domain.ListingStore) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// List returns every stored listing. Order is whatever the store yields.
func (s *Service) List(ctx context.Context) ([]*domain.Listing, error) {
	listings, err := s.store.FindAll(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("failed to fetch listings", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return listings, nil
}

// Create validates the input, stamps status and timestamps, and inserts.
// Nothing is written when validation fails.
func (s *Service) Create(ctx context.Context, in domain.ListingInput) (*domain.Listing, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	now := s.now()
	l := &domain.Listing{
		CompanyName:     in.CompanyName,
		PropertyName:    in.PropertyName,
		Location:        in.Location,
		PhotoURL:        in.PhotoURL,
		ProjectType:     in.ProjectType,
		PresentStatus:   in.PresentStatus,
		TotalApartments: in.TotalApartments,
		ApartmentSize:   in.ApartmentSize,
		NumFloors:       in.NumFloors,
		LandSize:        in.LandSize,
		Status:          domain.StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.store.Insert(ctx, l)
	if err != nil {
		observability.FromContext(ctx).Error("failed to insert listing", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	l.ID = id

	observability.FromContext(ctx).Info("listing created",
		zap.String("property_id", string(id)),
		zap.String("property_name", l.PropertyName),
	)
	return l, nil
}

func validate(in domain.ListingInput) error {
	var bad []string

	text := []struct {
		name  string
		value string
	}{
		{"companyName", in.CompanyName},
		{"propertyName", in.PropertyName},
		{"location", in.Location},
		{"photoUrl", in.PhotoURL},
		{"projectType", in.ProjectType},
		{"presentStatus", in.PresentStatus},
	}
	for _, f := range text {
		if strings.TrimSpace(f.value) == "" {
			bad = append(bad, f.name)
		}
	}

	numeric := []struct {
		name  string
		value float64
	}{
		{"totalApartments", in.TotalApartments},
		{"apartmentSize", in.ApartmentSize},
		{"numFloors", in.NumFloors},
		{"landSize", in.LandSize},
	}
	for _, f := range numeric {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			bad = append(bad, f.name)
		}
	}

	if len(bad) > 0 {
		return &domain.ValidationError{Fields: bad}
	}
	return nil
}
