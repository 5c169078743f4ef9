package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"astrogen/domain/genetics"
	genx "astrogen/internal/genetics"
)

func writeWorkbook(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	build(f)

	path := filepath.Join(t.TempDir(), "tables.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func setRow(t *testing.T, f *excelize.File, sheet string, row int, values []any) {
	t.Helper()
	cell, err := excelize.CoordinatesToCellName(1, row)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(sheet, cell, &values))
}

func TestLoadMergesAnnotationsOverBase(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet(annotationSheet)
		require.NoError(t, err)
		setRow(t, f, annotationSheet, 1, []any{"rs_id", "gene", "pathway", "effect_size"})
		setRow(t, f, annotationSheet, 2, []any{"rs1800795", "IL6", "inflammation", "1.4"})
		setRow(t, f, annotationSheet, 3, []any{"rs0000001", "NEWGENE", "metabolic", "0.3"})
	})

	base := genx.DefaultReferenceTables()
	merged, err := NewAnnotationLoader(path).Load(base)
	require.NoError(t, err)

	// Overridden entry takes the workbook effect size.
	assert.Equal(t, 1.4, merged.Annotations["rs1800795"].EffectSize)
	// New entry appears alongside the base set.
	assert.Equal(t, genetics.Metabolic, merged.Annotations["rs0000001"].Pathway)
	// Untouched base entries survive.
	assert.Equal(t, "TNF", merged.Annotations["rs361525"].Gene)
	// Weights and references stay the base tables when their sheets are absent.
	assert.Equal(t, base.PRSWeights, merged.PRSWeights)
	assert.Equal(t, base.References, merged.References)
}

func TestLoadWeightsAndReferences(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet(weightSheet)
		require.NoError(t, err)
		setRow(t, f, weightSheet, 1, []any{"trait", "rs_id", "weight"})
		setRow(t, f, weightSheet, 2, []any{"night_vision", "rs42", "0.5"})
		setRow(t, f, weightSheet, 3, []any{"night_vision", "rs43", "-0.2"})

		_, err = f.NewSheet(referenceSheet)
		require.NoError(t, err)
		setRow(t, f, referenceSheet, 1, []any{"trait", "mean", "std_dev"})
		setRow(t, f, referenceSheet, 2, []any{"night_vision", "0.1", "0.9"})
	})

	merged, err := NewAnnotationLoader(path).Load(genx.DefaultReferenceTables())
	require.NoError(t, err)

	require.Contains(t, merged.PRSWeights, "night_vision")
	assert.Equal(t, 0.5, merged.PRSWeights["night_vision"]["rs42"])
	assert.Equal(t, -0.2, merged.PRSWeights["night_vision"]["rs43"])
	assert.Equal(t, genx.PopulationReference{Mean: 0.1, StdDev: 0.9}, merged.References["night_vision"])

	// Base traits are untouched.
	assert.Contains(t, merged.PRSWeights, "athletic_performance")
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet(annotationSheet)
		require.NoError(t, err)
		setRow(t, f, annotationSheet, 1, []any{"rs_id", "gene", "pathway", "effect_size"})
		setRow(t, f, annotationSheet, 2, []any{"rs1", "GENE", "metabolic", "not-a-number"})
	})

	_, err := NewAnnotationLoader(path).Load(genx.DefaultReferenceTables())
	assert.ErrorContains(t, err, "invalid effect size")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewAnnotationLoader("/nonexistent/tables.xlsx").Load(genx.DefaultReferenceTables())
	assert.ErrorContains(t, err, "failed to open workbook")
}

func TestLoadSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet(annotationSheet)
		require.NoError(t, err)
		setRow(t, f, annotationSheet, 1, []any{"rs_id", "gene", "pathway", "effect_size"})
		setRow(t, f, annotationSheet, 2, []any{"", "GENE", "metabolic", "0.4"})
		setRow(t, f, annotationSheet, 3, []any{"rs77", "GENE", "metabolic", "0.4"})
	})

	merged, err := NewAnnotationLoader(path).Load(genx.ReferenceTables{})
	require.NoError(t, err)

	assert.NotContains(t, merged.Annotations, "")
	assert.Contains(t, merged.Annotations, "rs77")
}
