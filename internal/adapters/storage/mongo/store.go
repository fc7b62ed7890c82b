package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nexaur/nexaur-api/internal/domain"
)

const connectTimeout = 5 * time.Second

type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewStore connects to MongoDB and pings it before returning.
// Connection establishment is bounded by a short timeout; individual
// queries inherit the caller's context.
func NewStore(ctx context.Context, uri, database, collection string) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongodb uri is required")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &Store{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// listingDoc mirrors the wire field names used by the original collection.
type listingDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CompanyName     string             `bson:"companyName"`
	PropertyName    string             `bson:"propertyName"`
	Location        string             `bson:"location"`
	PhotoURL        string             `bson:"photoUrl"`
	ProjectType     string             `bson:"projectType"`
	PresentStatus   string             `bson:"presentStatus"`
	TotalApartments float64            `bson:"totalApartments"`
	ApartmentSize   float64            `bson:"apartmentSize"`
	NumFloors       float64            `bson:"numFloors"`
	LandSize        float64            `bson:"landSize"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func toDoc(l *domain.Listing) listingDoc {
	return listingDoc{
		CompanyName:     l.CompanyName,
		PropertyName:    l.PropertyName,
		Location:        l.Location,
		PhotoURL:        l.PhotoURL,
		ProjectType:     l.ProjectType,
		PresentStatus:   l.PresentStatus,
		TotalApartments: l.TotalApartments,
		ApartmentSize:   l.ApartmentSize,
		NumFloors:       l.NumFloors,
		LandSize:        l.LandSize,
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func toListing(d listingDoc) *domain.Listing {
	return &domain.Listing{
		ID:              domain.ListingID(d.ID.Hex()),
		CompanyName:     d.CompanyName,
		PropertyName:    d.PropertyName,
		Location:        d.Location,
		PhotoURL:        d.PhotoURL,
		ProjectType:     d.ProjectType,
		PresentStatus:   d.PresentStatus,
		TotalApartments: d.TotalApartments,
		ApartmentSize:   d.ApartmentSize,
		NumFloors:       d.NumFloors,
		LandSize:        d.LandSize,
		Status:          domain.ListingStatus(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// Insert stores a new listing and returns the id Mongo assigned to it.
func (s *Store) Insert(ctx context.Context, listing *domain.Listing) (domain.ListingID, error) {
	res, err := s.collection.InsertOne(ctx, toDoc(listing))
	if err != nil {
		return "", fmt.Errorf("mongo InsertOne: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("mongo InsertOne: unexpected inserted id type %T", res.InsertedID)
	}
	return domain.ListingID(oid.Hex()), nil
}

// FindAll returns every listing in the collection, in store order.
func (s *Store) FindAll(ctx context.Context) ([]*domain.Listing, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo Find: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []*domain.Listing
	for cursor.Next(ctx) {
		var doc listingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo decode: %w", err)
		}
		listings = append(listings, toListing(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}

	return listings, nil
}
