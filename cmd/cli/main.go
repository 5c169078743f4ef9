package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"astrogen/adapters/ephemeris"
	"astrogen/adapters/memstore"
	"astrogen/app"
	"astrogen/domain/correlation"
	"astrogen/internal"
	"astrogen/internal/analysis"
	"astrogen/internal/testkit"
	"astrogen/ui"
)

func main() {
	_ = godotenv.Load()

	var (
		birth    = flag.String("birth", "1990-06-15T14:30:00Z", "birth time, RFC 3339 UTC")
		lat      = flag.Float64("lat", 40.7128, "birth latitude")
		lon      = flag.Float64("lon", -74.0060, "birth longitude")
		fast     = flag.Bool("fast", true, "use reduced resampling iterations")
		markdown = flag.Bool("markdown", false, "print the full markdown report")
	)
	flag.Parse()

	birthTime, err := time.Parse(time.RFC3339, *birth)
	if err != nil {
		log.Fatalf("invalid -birth: %v", err)
	}

	cfg := correlation.DefaultConfig()
	if *fast {
		cfg = correlation.FastConfig()
	}

	logger := internal.NewDefaultLogger()
	analyzer, err := analysis.NewDefaultAnalyzer(cfg, logger)
	if err != nil {
		log.Fatalf("analyzer error: %v", err)
	}

	store := memstore.NewVariantStore()
	store.Put(testkit.DemoSampleID, testkit.SyntheticVariants())

	service := app.NewAnalysisService(ephemeris.NewAnalytic(), store, analyzer)

	result, err := service.RunComprehensive(context.Background(), app.AnalysisRequest{
		BirthTime: birthTime,
		Latitude:  *lat,
		Longitude: *lon,
		SampleID:  testkit.DemoSampleID,
	})
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	if *markdown {
		fmt.Fprintln(os.Stdout, ui.RenderReportMarkdown(result))
		return
	}

	fmt.Printf("Run %s\n", result.RunID)
	fmt.Printf("Overall score:      %+.3f\n", result.OverallScore)
	fmt.Printf("Overall confidence: %.1f%%\n\n", result.OverallConfidence*100)
	for name, r := range result.PerMethod {
		fmt.Printf("  %-10s %s r=%+.3f  CI=[%+.3f, %+.3f]  p=%.4f  adj=%.4f  n=%d\n",
			name, r.Kind, r.Coefficient, r.CILow, r.CIHigh, r.PValue, r.AdjustedPValue, r.NObservations)
	}
	for _, skip := range result.Skipped {
		fmt.Printf("  %-10s skipped (%s)\n", skip.Method, skip.Code)
	}
	fmt.Printf("\n%s\n", result.Interpretation)
}
