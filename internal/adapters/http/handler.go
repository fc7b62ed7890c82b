package httpadapter

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nexaur/nexaur-api/internal/app/chat"
	"github.com/nexaur/nexaur-api/internal/app/listing"
	"github.com/nexaur/nexaur-api/internal/domain"
)

type Server struct {
	listings  *listing.Service
	chat      *chat.Service
	modelName string
}

// NewServer wires the API routes onto an Echo engine. The engine is also
// an http.Handler, so the same instance serves the local dev server and
// the serverless transport adapter.
func NewServer(listings *listing.Service, chatSvc *chat.Service, modelName string) *echo.Echo {
	s := &Server{
		listings:  listings,
		chat:      chatSvc,
		modelName: modelName,
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))
	e.Use(requestContext())

	e.GET("/", s.handleRoot)
	e.GET("/health", s.handleHealth)
	e.GET("/properties", s.handleListProperties)
	e.POST("/host", s.handleHostProperty)
	e.POST("/chat", s.handleChat)

	return e
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type listingResponse struct {
	ID              string    `json:"_id"`
	CompanyName     string    `json:"companyName"`
	PropertyName    string    `json:"propertyName"`
	Location        string    `json:"location"`
	PhotoURL        string    `json:"photoUrl"`
	ProjectType     string    `json:"projectType"`
	PresentStatus   string    `json:"presentStatus"`
	TotalApartments float64   `json:"totalApartments"`
	ApartmentSize   float64   `json:"apartmentSize"`
	NumFloors       float64   `json:"numFloors"`
	LandSize        float64   `json:"landSize"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type listPropertiesResponse struct {
	Success    bool              `json:"success"`
	Count      int               `json:"count"`
	Properties []listingResponse `json:"properties"`
}

// Numeric fields are pointers so an absent field is distinguishable from a
// literal zero; absence surfaces as an invalid value during validation.
type hostRequest struct {
	CompanyName     string   `json:"companyName"`
	PropertyName    string   `json:"propertyName"`
	Location        string   `json:"location"`
	PhotoURL        string   `json:"photoUrl"`
	ProjectType     string   `json:"projectType"`
	PresentStatus   string   `json:"presentStatus"`
	TotalApartments *float64 `json:"totalApartments"`
	ApartmentSize   *float64 `json:"apartmentSize"`
	NumFloors       *float64 `json:"numFloors"`
	LandSize        *float64 `json:"landSize"`
}

type hostResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	PropertyID string      `json:"property_id"`
	Data       hostRequest `json:"data"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
	// Accepted for wire compatibility with older clients; unused.
	MaxLength int `json:"max_length,omitempty"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Finance Real Estate Chatbot API",
		"status":  "running",
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":       "healthy",
		"model_loaded": s.chat.Ready(),
		"model":        s.modelName,
		"tools":        []string{"Google Search"},
	})
}

func (s *Server) handleListProperties(c echo.Context) error {
	listings, err := s.listings.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}

	props := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		props = append(props, toListingResponse(l))
	}

	return c.JSON(http.StatusOK, listPropertiesResponse{
		Success:    true,
		Count:      len(props),
		Properties: props,
	})
}

func (s *Server) handleHostProperty(c echo.Context) error {
	var req hostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid JSON body"})
	}

	created, err := s.listings.Create(c.Request().Context(), domain.ListingInput{
		CompanyName:     req.CompanyName,
		PropertyName:    req.PropertyName,
		Location:        req.Location,
		PhotoURL:        req.PhotoURL,
		ProjectType:     req.ProjectType,
		PresentStatus:   req.PresentStatus,
		TotalApartments: numOrNaN(req.TotalApartments),
		ApartmentSize:   numOrNaN(req.ApartmentSize),
		NumFloors:       numOrNaN(req.NumFloors),
		LandSize:        numOrNaN(req.LandSize),
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, hostResponse{
		Success:    true,
		Message:    "Property added successfully",
		PropertyID: string(created.ID),
		Data:       req,
	})
}

func (s *Server) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid JSON body"})
	}

	history := make([]domain.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, domain.ChatMessage{
			Role:    domain.Role(m.Role),
			Content: m.Content,
		})
	}

	text, err := s.chat.Reply(c.Request().Context(), history)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, chatResponse{Response: text})
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func numOrNaN(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func toListingResponse(l *domain.Listing) listingResponse {
	return listingResponse{
		ID:              string(l.ID),
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

// errorJSON maps service-level failures to status codes. Every error body
// carries the underlying cause as a plain text detail.
func errorJSON(c echo.Context, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"detail": verr.Error()})
	case errors.Is(err, domain.ErrModelNotReady):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"detail": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"detail": err.Error()})
	}
}
