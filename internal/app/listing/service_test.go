package listing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexaur/nexaur-api/internal/adapters/storage/memory"
	"github.com/nexaur/nexaur-api/internal/app/listing"
	"github.com/nexaur/nexaur-api/internal/domain"
)

func validInput() domain.ListingInput {
	return domain.ListingInput{
		CompanyName:     "X",
		PropertyName:    "Y",
		Location:        "Dhaka",
		PhotoURL:        "u",
		ProjectType:     "Residential",
		PresentStatus:   "Under Construction",
		TotalApartments: 10,
		ApartmentSize:   1200,
		NumFloors:       5,
		LandSize:        3,
	}
}

func TestCreateStampsDefaults(t *testing.T) {
	ctx := context.Background()
	svc := listing.NewService(memory.NewListingStore())

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusActive, created.Status)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, "UTC", created.CreatedAt.Location().String())
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc := listing.NewService(memory.NewListingStore())

	seen := map[domain.ListingID]bool{}
	for i := 0; i < 5; i++ {
		created, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		require.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*domain.ListingInput)
		wantFields []string
	}{
		{
			name:       "missing property name",
			mutate:     func(in *domain.ListingInput) { in.PropertyName = "" },
			wantFields: []string{"propertyName"},
		},
		{
			name:       "blank location",
			mutate:     func(in *domain.ListingInput) { in.Location = "   " },
			wantFields: []string{"location"},
		},
		{
			name:       "negative land size",
			mutate:     func(in *domain.ListingInput) { in.LandSize = -1 },
			wantFields: []string{"landSize"},
		},
		{
			name: "multiple offenders",
			mutate: func(in *domain.ListingInput) {
				in.CompanyName = ""
				in.NumFloors = -2
			},
			wantFields: []string{"companyName", "numFloors"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewListingStore()
			svc := listing.NewService(store)

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(ctx, in)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ElementsMatch(t, tt.wantFields, verr.Fields)

			// No write reaches the store on validation failure.
			stored, err := store.FindAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestListReturnsAllCreated(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		ctx := context.Background()
		svc := listing.NewService(memory.NewListingStore())

		for i := 0; i < n; i++ {
			_, err := svc.Create(ctx, validInput())
			require.NoError(t, err)
		}

		listings, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, listings, n)
	}
}

type failingStore struct{}

func (failingStore) Insert(ctx context.Context, l *domain.Listing) (domain.ListingID, error) {
	return "", errors.New("connection refused")
}

func (failingStore) FindAll(ctx context.Context) ([]*domain.Listing, error) {
	return nil, errors.New("connection refused")
}

func TestStoreFailuresSurfaceAsUnavailable(t *testing.T) {
	ctx := context.Background()
	svc := listing.NewService(failingStore{})

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.Create(ctx, validInput())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
