package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	httpadapter "github.com/nexaur/nexaur-api/internal/adapters/http"
	"github.com/nexaur/nexaur-api/internal/adapters/llm"
	"github.com/nexaur/nexaur-api/internal/adapters/storage/memory"
	mongostore "github.com/nexaur/nexaur-api/internal/adapters/storage/mongo"
	"github.com/nexaur/nexaur-api/internal/app/chat"
	"github.com/nexaur/nexaur-api/internal/app/listing"
	"github.com/nexaur/nexaur-api/internal/config"
	"github.com/nexaur/nexaur-api/internal/domain"
	"github.com/nexaur/nexaur-api/internal/observability"
)

// App holds the fully wired application. Both entrypoints (local server
// and serverless handler) build it exactly once at startup.
type App struct {
	Config *config.Config
	Server *echo.Echo
}

// NewApp loads configuration and constructs every client and service.
// Dependencies are injected explicitly; nothing reads ambient globals.
func NewApp(ctx context.Context) (*App, error) {
	cfg := config.Load()
	log := observability.Init(cfg.Environment)

	var store domain.ListingStore
	switch cfg.StorageBackend {
	case "memory":
		log.Info("using in-memory listing store")
		store = memory.NewListingStore()
	default:
		ms, err := mongostore.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, fmt.Errorf("initializing mongo store: %w", err)
		}
		log.Info("connected to mongodb",
			zap.String("database", cfg.MongoDatabase),
			zap.String("collection", cfg.MongoCollection),
		)
		store = ms
	}

	var model domain.CompletionClient
	switch {
	case cfg.UseMockModel:
		log.Info("using mock completion client")
		model = llm.NewMockClient()
	case cfg.GeminiAPIKey == "":
		// Chat answers 503 until a key is provided; everything else works.
		log.Warn("GEMINI_API_KEY not set, chat endpoint disabled")
	default:
		gc, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini client: %w", err)
		}
		log.Info("gemini client ready", zap.String("model", gc.ModelName()))
		model = gc
	}

	listingSvc := listing.NewService(store)
	chatSvc := chat.NewService(listingSvc, model)

	return &App{
		Config: cfg,
		Server: httpadapter.NewServer(listingSvc, chatSvc, cfg.ModelName),
	}, nil
}
