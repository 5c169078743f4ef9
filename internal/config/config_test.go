package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrogen/domain/correlation"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10000, cfg.Analysis.BootstrapIterations)
	assert.Equal(t, correlation.CorrectionFDR, cfg.Analysis.Correction)
	assert.Empty(t, cfg.Tables.AnnotationWorkbook)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FAST_MODE", "true")
	t.Setenv("MIN_OBSERVATIONS", "5")
	t.Setenv("ORB_TOLERANCE", "6.5")
	t.Setenv("CORRECTION_METHOD", "bonferroni")
	t.Setenv("ANALYSIS_SEED", "1234")
	t.Setenv("ANNOTATION_WORKBOOK", "/data/tables.xlsx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 1000, cfg.Analysis.BootstrapIterations, "fast mode preset")
	assert.Equal(t, 5, cfg.Analysis.MinObservations)
	assert.Equal(t, 6.5, cfg.Analysis.OrbTolerance)
	assert.Equal(t, correlation.CorrectionBonferroni, cfg.Analysis.Correction)
	assert.Equal(t, int64(1234), cfg.Analysis.Seed)
	assert.Equal(t, "/data/tables.xlsx", cfg.Tables.AnnotationWorkbook)
}

func TestLoadRejectsInvalidAnalysisSettings(t *testing.T) {
	t.Setenv("MIN_OBSERVATIONS", "1")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("BOOTSTRAP_ITERATIONS", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Analysis.BootstrapIterations)
}
