package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"astrogen/domain/correlation"
)

// RenderReportMarkdown builds the analysis report as markdown.
func RenderReportMarkdown(result *correlation.ComprehensiveResult) string {
	var b strings.Builder

	b.WriteString("# Astro-Genetic Correlation Report\n\n")
	fmt.Fprintf(&b, "Run `%s`, computed %s.\n\n", result.RunID, result.ComputedAt.Time().Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "**Overall score:** %.3f  \n", result.OverallScore)
	fmt.Fprintf(&b, "**Confidence:** %.1f%%\n\n", result.OverallConfidence*100)

	if result.Interpretation != "" {
		b.WriteString(result.Interpretation)
		b.WriteString("\n\n")
	}

	b.WriteString("## Per-Method Results\n\n")
	b.WriteString("| Method | Kind | r | 95% CI | p | adj. p | n |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, r := range sortedResults(result.PerMethod) {
		fmt.Fprintf(&b, "| %s | %s | %.3f | [%.3f, %.3f] | %.4f | %.4f | %d |\n",
			r.Method, r.Kind, r.Coefficient, r.CILow, r.CIHigh, r.PValue, r.AdjustedPValue, r.NObservations)
	}

	if len(result.Skipped) > 0 {
		b.WriteString("\n## Skipped Methods\n\n")
		for _, f := range result.Skipped {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", f.Method, f.Code, f.Reason)
		}
	}

	var warnings []string
	for _, r := range sortedResults(result.PerMethod) {
		warnings = append(warnings, r.Warnings...)
	}
	if len(warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	b.WriteString("\n## Recommendations\n\n")
	for _, rec := range Recommendations(result) {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

// Recommendations derives follow-up guidance from a run: where the signal
// is strongest, whether the evidence cleared adjusted significance, and
// what would firm up a weak or partial result.
func Recommendations(result *correlation.ComprehensiveResult) []string {
	results := sortedResults(result.PerMethod)
	if len(results) == 0 {
		return []string{"No method produced a usable correlation; supply more genetic variants and rerun."}
	}

	best := results[0]
	significant := 0
	for _, r := range results {
		if math.Abs(r.Coefficient) > math.Abs(best.Coefficient) {
			best = r
		}
		if r.AdjustedPValue < 0.05 {
			significant++
		}
	}

	var recs []string
	recs = append(recs, fmt.Sprintf("The %s method showed the strongest signal (r=%.3f); focus further analysis there.", best.Method, best.Coefficient))

	if float64(significant) < float64(len(results))/2 {
		recs = append(recs, "Fewer than half the methods reached adjusted significance; a larger observation set would sharpen the estimates.")
	}

	switch strongest := math.Abs(best.Coefficient); {
	case strongest > 0.5:
		recs = append(recs, "Strong correlations detected; results warrant replication on an independent sample.")
	case strongest > 0.3:
		recs = append(recs, "Moderate correlations suggest a potential relationship; additional data would strengthen the analysis.")
	default:
		recs = append(recs, "Weak correlations observed; consider alternative methods or different genetic markers.")
	}

	if n := len(result.Skipped); n > 0 {
		recs = append(recs, fmt.Sprintf("%d of %d configured methods were skipped for missing data; more variants or chart points would bring them into the run.", n, n+len(results)))
	}

	return recs
}

// RenderReportHTML renders the markdown report to HTML.
func RenderReportHTML(result *correlation.ComprehensiveResult) []byte {
	md := RenderReportMarkdown(result)
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func sortedResults(perMethod map[correlation.MethodName]correlation.CorrelationResult) []correlation.CorrelationResult {
	results := make([]correlation.CorrelationResult, 0, len(perMethod))
	for _, r := range perMethod {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Method < results[j].Method })
	return results
}
