package domain

// Listing is a property record offered for fractional investment.
type Listing struct {
	ID              ListingID
	CompanyName     string
	PropertyName    string
	Location        string
	PhotoURL        string
	ProjectType     string
	PresentStatus   string
	TotalApartments float64
	ApartmentSize   float64
	NumFloors       float64
	LandSize        float64
	Status          ListingStatus
	CreatedAt       Timestamp
	UpdatedAt       Timestamp
}

// ListingInput is the caller-supplied form for a new listing.
// The id, status and timestamps are assigned by the service, never by the caller.
type ListingInput struct {
	CompanyName     string
	PropertyName    string
	Location        string
	PhotoURL        string
	ProjectType     string
	PresentStatus   string
	TotalApartments float64
	ApartmentSize   float64
	NumFloors       float64
	LandSize        float64
}

// ChatMessage is one turn of caller-supplied conversation history.
type ChatMessage struct {
	Role    Role
	Content string
}
