package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oliviagunda/Resume-Processor/internal/config"
	"github.com/oliviagunda/Resume-Processor/internal/logger"
	"github.com/oliviagunda/Resume-Processor/internal/repositories"
	"github.com/oliviagunda/Resume-Processor/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.App.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.WithField("error", err.Error()).Error("Invalid configuration")
		return 1
	}
	log.Info("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.WithField("error", err.Error()).Error("❌ Failed to initialize database")
		return 1
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			log.WithField("error", err.Error()).Warn("Failed to close database")
		}
	}()

	// Initialize repositories
	seekerRepo := repositories.NewJobSeekerRepository(db)
	log.Info("✅ Repositories initialized successfully")

	// Initialize services
	vocabulary := services.NewSkillVocabulary()
	if cfg.App.SkillsFile != "" {
		if err := vocabulary.LoadExtraSkills(cfg.App.SkillsFile); err != nil {
			log.WithField("error", err.Error()).Error("❌ Failed to load skills file")
			return 1
		}
		log.WithField("skills", vocabulary.Size()).Info("Custom skill vocabulary loaded")
	}

	resumeDir := services.NewResumeDirService(cfg.App.ResumeFolder)
	pdfParser := services.NewPDFParserService()
	extractor := services.NewFieldExtractorService(vocabulary)
	processor := services.NewProcessorService(
		resumeDir,
		pdfParser,
		extractor,
		seekerRepo,
		log,
		cfg.App.ArchiveProcessed,
	)
	log.Info("✅ Services initialized successfully")

	// SIGINT/SIGTERM stop the batch between files.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := processor.ProcessFolder(ctx)
	if err != nil {
		log.WithField("error", err.Error()).Error("❌ Resume batch aborted")
		return 1
	}

	if summary.Failed > 0 {
		return 1
	}
	return 0
}
