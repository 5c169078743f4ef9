package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"astrogen/domain/genetics"
	genx "astrogen/internal/genetics"
)

// Sheet names the loader looks for. Annotations is required; the other two
// are optional overrides.
const (
	annotationSheet = "Annotations"
	weightSheet     = "PRSWeights"
	referenceSheet  = "References"
)

// AnnotationLoader reads reference tables from a workbook, letting
// deployments override the built-in variant annotations without a rebuild.
type AnnotationLoader struct {
	filePath string
}

func NewAnnotationLoader(filePath string) *AnnotationLoader {
	return &AnnotationLoader{filePath: filePath}
}

// Load reads the workbook and merges it over the given base tables.
// Workbook rows replace built-in entries with the same key; everything
// else in the base survives.
func (l *AnnotationLoader) Load(base genx.ReferenceTables) (genx.ReferenceTables, error) {
	f, err := excelize.OpenFile(l.filePath)
	if err != nil {
		return genx.ReferenceTables{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	merged := base

	annotations, err := l.readAnnotations(f)
	if err != nil {
		return genx.ReferenceTables{}, err
	}
	if len(annotations) > 0 {
		merged.Annotations = mergeMaps(base.Annotations, annotations)
	}

	weights, err := l.readWeights(f)
	if err != nil {
		return genx.ReferenceTables{}, err
	}
	if len(weights) > 0 {
		merged.PRSWeights = mergeWeights(base.PRSWeights, weights)
	}

	references, err := l.readReferences(f)
	if err != nil {
		return genx.ReferenceTables{}, err
	}
	if len(references) > 0 {
		merged.References = mergeMaps(base.References, references)
	}

	return merged, nil
}

// readAnnotations parses rows of (rs_id, gene, pathway, effect_size).
func (l *AnnotationLoader) readAnnotations(f *excelize.File) (map[string]genx.VariantAnnotation, error) {
	rows, err := f.GetRows(annotationSheet)
	if err != nil {
		// Missing sheet means nothing to override.
		return nil, nil
	}

	annotations := make(map[string]genx.VariantAnnotation)
	for i, row := range rows {
		if i == 0 || len(row) < 4 {
			continue
		}
		rsID := strings.TrimSpace(row[0])
		if rsID == "" {
			continue
		}
		effectSize, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid effect size %q: %w", i+1, row[3], err)
		}
		annotations[rsID] = genx.VariantAnnotation{
			Gene:       strings.TrimSpace(row[1]),
			Pathway:    genetics.Pathway(strings.TrimSpace(row[2])),
			EffectSize: effectSize,
		}
	}
	return annotations, nil
}

// readWeights parses rows of (trait, rs_id, weight).
func (l *AnnotationLoader) readWeights(f *excelize.File) (map[string]map[string]float64, error) {
	rows, err := f.GetRows(weightSheet)
	if err != nil {
		return nil, nil
	}

	weights := make(map[string]map[string]float64)
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		trait := strings.TrimSpace(row[0])
		rsID := strings.TrimSpace(row[1])
		if trait == "" || rsID == "" {
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid weight %q: %w", i+1, row[2], err)
		}
		if weights[trait] == nil {
			weights[trait] = make(map[string]float64)
		}
		weights[trait][rsID] = weight
	}
	return weights, nil
}

// readReferences parses rows of (trait, mean, std_dev).
func (l *AnnotationLoader) readReferences(f *excelize.File) (map[string]genx.PopulationReference, error) {
	rows, err := f.GetRows(referenceSheet)
	if err != nil {
		return nil, nil
	}

	references := make(map[string]genx.PopulationReference)
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		trait := strings.TrimSpace(row[0])
		if trait == "" {
			continue
		}
		mean, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid mean %q: %w", i+1, row[1], err)
		}
		stdDev, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid std dev %q: %w", i+1, row[2], err)
		}
		references[trait] = genx.PopulationReference{Mean: mean, StdDev: stdDev}
	}
	return references, nil
}

func mergeMaps[V any](base, override map[string]V) map[string]V {
	merged := make(map[string]V, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

func mergeWeights(base, override map[string]map[string]float64) map[string]map[string]float64 {
	merged := make(map[string]map[string]float64, len(base)+len(override))
	for trait, table := range base {
		merged[trait] = table
	}
	for trait, table := range override {
		merged[trait] = table
	}
	return merged
}
