package config

import (
	"os"
	"strconv"

	"astrogen/domain/correlation"
	"astrogen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Analysis correlation.Config
	Tables   TableConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// TableConfig holds paths to reference table overrides
type TableConfig struct {
	// AnnotationWorkbook optionally overrides the built-in variant
	// annotation and PRS weight tables from an .xlsx workbook.
	AnnotationWorkbook string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Analysis: loadAnalysisConfig(),
		Tables: TableConfig{
			AnnotationWorkbook: getEnvOrDefault("ANNOTATION_WORKBOOK", ""),
		},
	}

	if err := config.Analysis.Validate(); err != nil {
		return nil, errors.Wrap(err, "analysis configuration invalid")
	}

	return config, nil
}

func loadAnalysisConfig() correlation.Config {
	cfg := correlation.DefaultConfig()
	if getEnvBoolOrDefault("FAST_MODE", false) {
		cfg = correlation.FastConfig()
	}

	cfg.BootstrapIterations = getEnvIntOrDefault("BOOTSTRAP_ITERATIONS", cfg.BootstrapIterations)
	cfg.PermutationIterations = getEnvIntOrDefault("PERMUTATION_ITERATIONS", cfg.PermutationIterations)
	cfg.MinObservations = getEnvIntOrDefault("MIN_OBSERVATIONS", cfg.MinObservations)
	cfg.OrbTolerance = getEnvFloatOrDefault("ORB_TOLERANCE", cfg.OrbTolerance)
	cfg.Seed = int64(getEnvIntOrDefault("ANALYSIS_SEED", int(cfg.Seed)))
	cfg.Workers = getEnvIntOrDefault("ANALYSIS_WORKERS", cfg.Workers)

	switch getEnvOrDefault("CORRECTION_METHOD", string(cfg.Correction)) {
	case "fdr", "FDR":
		cfg.Correction = correlation.CorrectionFDR
	case "bonferroni", "BONFERRONI":
		cfg.Correction = correlation.CorrectionBonferroni
	case "none", "NONE":
		cfg.Correction = correlation.CorrectionNone
	}

	return cfg
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
