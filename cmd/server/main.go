package main

import (
	"fmt"
	"log"
	"os"

	"github.com/skinlens/backend/config"
	httpDelivery "github.com/skinlens/backend/internal/delivery/http"
	"github.com/skinlens/backend/internal/infrastructure/cache"
	"github.com/skinlens/backend/internal/infrastructure/catalog"
	"github.com/skinlens/backend/internal/infrastructure/tfidf"
	"github.com/skinlens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting SkinLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Catalog and similarity model are loaded once; failures here are
	// fatal, never handled per-request.
	store, err := catalog.Load(cfg.Data.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d products from %s", store.Size(), cfg.Data.CatalogPath)

	model, err := tfidf.Load(cfg.Data.ModelPath)
	if err != nil {
		log.Fatalf("Failed to load similarity model: %v", err)
	}
	log.Printf("Similarity model loaded: %d terms from %s", model.Vectorizer.Dims(), cfg.Data.ModelPath)

	// Pick the scoring strategy. The two strategies are interchangeable
	// but never mixed within one process.
	var scorer usecase.Scorer
	switch cfg.Scoring.Strategy {
	case config.StrategyClassifier:
		if !model.HasClassifier() {
			log.Fatalf("Scoring strategy %q requires classifier weights in the model export", cfg.Scoring.Strategy)
		}
		scorer = usecase.NewClassifierScorer(model.Vectorizer, model.Classifier)
	default:
		scorer = usecase.NewEmbeddingScorer(model.Vectorizer)
	}
	log.Printf("Scoring strategy: %s", cfg.Scoring.Strategy)

	memoryCache := cache.NewMemoryCache()
	log.Printf("Result cache TTL: %s", cfg.Cache.TTL)

	// Initialize usecase layer
	recommendations := usecase.NewRecommendationService(
		store,
		scorer,
		memoryCache,
		usecase.RecommendationConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Scoring.EnableDebugLogging || cfg.Server.Environment == "development",
		},
	)
	routines := usecase.NewRoutineService(store)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendations, routines, cfg.Scoring.TopN, cfg.Scoring.RoutinePerStep)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
