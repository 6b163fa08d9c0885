package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/config"
	"github.com/TECH-MENTORING-EU/FoodRescue/internal/db"
	"github.com/TECH-MENTORING-EU/FoodRescue/internal/logging"
	"github.com/TECH-MENTORING-EU/FoodRescue/internal/store"
	"github.com/TECH-MENTORING-EU/FoodRescue/internal/testdata"
	"github.com/TECH-MENTORING-EU/FoodRescue/internal/vision"
	claudevision "github.com/TECH-MENTORING-EU/FoodRescue/internal/vision/claude"
	ollamavision "github.com/TECH-MENTORING-EU/FoodRescue/internal/vision/ollama"
	"github.com/TECH-MENTORING-EU/FoodRescue/internal/web"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	factory, err := db.NewFactory(cfg.DBPath)
	if err != nil {
		logger.Error("fatal configuration error", "error", err)
		return
	}

	if err := factory.Migrate(); err != nil {
		logger.Error("failed to migrate database", "error", err)
		return
	}

	donations := store.NewDonationStore(factory)
	analyses := store.NewAnalysisStore()
	reservations := store.NewReservationStore()

	if err := seedDonations(context.Background(), donations, cfg.SeedCount, logger); err != nil {
		logger.Error("failed to seed donations", "error", err)
		return
	}

	analyzer := newAnalyzer(cfg, logger)
	if analyzer == nil {
		return
	}

	server := web.NewServer(donations, analyses, reservations, analyzer, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

// seedDonations fills an empty donation catalog with synthetic records so
// a fresh install has something to show. Generator ids are discarded by
// Create; the database assigns real identity.
func seedDonations(ctx context.Context, donations *store.DonationStore, count int, logger *slog.Logger) error {
	existing, err := donations.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	batch, err := testdata.NewGenerator().Generate(count)
	if err != nil {
		return err
	}

	for _, d := range batch {
		if _, err := donations.Create(ctx, d); err != nil {
			return err
		}
	}

	logger.Info("seeded donation catalog", "count", len(batch))
	return nil
}

func newAnalyzer(cfg *config.Config, logger *slog.Logger) vision.Analyzer {
	switch cfg.VisionBackend {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Error("CLAUDE_API_KEY is required when VISION_BACKEND=claude")
			return nil
		}
		logger.Info("using Claude vision backend")
		return claudevision.NewClaudeAnalyzer(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	default:
		logger.Info("using Ollama vision backend", "model", cfg.OllamaModel)
		return ollamavision.NewOllamaAnalyzer(cfg.OllamaHost, cfg.OllamaModel)
	}
}
