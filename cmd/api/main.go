package main

import (
	"log"

	"github.com/joho/godotenv"

	"astrogen/adapters/ephemeris"
	"astrogen/adapters/excel"
	"astrogen/adapters/memstore"
	"astrogen/adapters/postgres"
	"astrogen/adapters/rng"
	"astrogen/app"
	"astrogen/internal"
	"astrogen/internal/analysis"
	"astrogen/internal/astro"
	"astrogen/internal/config"
	genx "astrogen/internal/genetics"
	"astrogen/internal/methods"
	"astrogen/internal/testkit"
	"astrogen/ports"
	"astrogen/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	refTables := genx.DefaultReferenceTables()
	if cfg.Tables.AnnotationWorkbook != "" {
		loader := excel.NewAnnotationLoader(cfg.Tables.AnnotationWorkbook)
		refTables, err = loader.Load(refTables)
		if err != nil {
			log.Fatalf("annotation workbook error: %v", err)
		}
		logger.Info("loaded annotation overrides from %s", cfg.Tables.AnnotationWorkbook)
	}

	var variantStore ports.VariantStore
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatalf("database error: %v", err)
		}
		defer db.Close()
		variantStore = postgres.NewVariantRepository(db)
		logger.Info("variant store: postgres")
	} else {
		store := memstore.NewVariantStore()
		store.Put(testkit.DemoSampleID, testkit.SyntheticVariants())
		variantStore = store
		logger.Warn("DATABASE_URL not set, using in-memory variant store seeded with sample %s", testkit.DemoSampleID)
	}

	streams := rng.NewSeeded(cfg.Analysis.Seed)
	analyzer, err := analysis.NewAnalyzer(cfg.Analysis, astro.DefaultDignityTables(), refTables, methods.DefaultRulershipTables(), streams, logger)
	if err != nil {
		log.Fatalf("analyzer error: %v", err)
	}

	service := app.NewAnalysisService(ephemeris.NewAnalytic(), variantStore, analyzer)
	httpApp := ui.NewApp(service, logger)

	if err := httpApp.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
