package report

import (
	"fmt"
	"strings"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
)

// Enrichment renders ranked enrichment terms as a numbered list. The
// header counts the full term sequence; only the first topN terms are
// enumerated, in the order the enrichment service ranked them.
func Enrichment(database string, geneCount int, terms []domain.EnrichmentTerm, topN int) string {
	lines := []string{
		fmt.Sprintf("Enrichr result for %s", database),
		fmt.Sprintf("Database: %s", database),
		fmt.Sprintf("Gene count: %d", geneCount),
		fmt.Sprintf("Enriched term count: %d", len(terms)),
		fmt.Sprintf("Top %d terms:", topN),
	}

	for i, term := range Truncate(terms, topN) {
		lines = append(lines,
			fmt.Sprintf("%d. **%s**", i+1, term.Name),
			fmt.Sprintf("   - P-value: %.2e", term.PValue),
			fmt.Sprintf("   - gene: %s", strings.Join(term.Genes, ", ")),
		)
	}

	return strings.Join(lines, "\n")
}

// Truncate bounds a ranked term sequence to its first topN entries
// without re-sorting.
func Truncate(terms []domain.EnrichmentTerm, topN int) []domain.EnrichmentTerm {
	if topN < 0 {
		topN = 0
	}
	if len(terms) > topN {
		return terms[:topN]
	}
	return terms
}

// FileHeader renders the file-metadata block prepended to enrichment
// reports produced from a gene file.
func FileHeader(file, geneColumn string, geneCount int) string {
	var b strings.Builder
	b.WriteString("## File Information\n")
	fmt.Fprintf(&b, "- File: %s\n", file)
	fmt.Fprintf(&b, "- Gene column: %s\n", geneColumn)
	fmt.Fprintf(&b, "- Genes found: %d\n\n", geneCount)
	return b.String()
}

// Databases renders the supported enrichment database catalogue.
func Databases() string {
	lines := []string{"Supported databases:"}
	for _, db := range domain.SupportedDatabases() {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", db.ID, db.Description))
	}
	return strings.Join(lines, "\n")
}

// EnrichmentWithPlot renders an enrichment report that references a
// saved plot. termCount is the size of the full ranked result; terms
// holds the truncated sequence that was plotted.
func EnrichmentWithPlot(database string, geneCount, termCount int, terms []domain.EnrichmentTerm, topN int, plotPath string) string {
	lines := []string{
		"Enrichment Analysis Results",
		fmt.Sprintf("Database: %s", database),
		fmt.Sprintf("Input genes: %d", geneCount),
		fmt.Sprintf("Enriched terms: %d", termCount),
		fmt.Sprintf("Plot saved to: %s", plotPath),
		fmt.Sprintf("\nTop %d Enriched Terms:\n", topN),
	}

	for i, term := range terms {
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, term.Name),
			fmt.Sprintf("P-value: %.2e", term.PValue),
			fmt.Sprintf("Genes: %s", strings.Join(term.Genes, ", ")),
		)
	}

	return strings.Join(lines, "\n")
}

// Score renders an interaction score with its confidence band.
func Score(score float64) string {
	return fmt.Sprintf("%.3f (%s)", score, domain.ConfidenceFor(score).Label())
}

// Interaction renders the evidence breakdown for one interaction edge.
// Channel lines appear in canonical order and only when the channel
// contributed a positive score. The gene names echo the caller's
// query, not the service's preferred names.
func Interaction(geneA, geneB string, edge *domain.InteractionEdge) string {
	lines := []string{
		fmt.Sprintf("## Interaction: %s ↔ %s", geneA, geneB),
		"",
		fmt.Sprintf("### Combined Score: %s", Score(edge.Score)),
		"",
		"### Evidence Channels:",
	}

	for _, ch := range edge.Channels() {
		if ch.Value > 0 {
			lines = append(lines, fmt.Sprintf("- **%s**: %.3f", ch.Label, ch.Value))
		}
	}

	lines = append(lines, "", "### Interpretation")

	conf := domain.ConfidenceFor(edge.Score)
	if conf == domain.ConfidenceLow {
		lines = append(lines, "These genes have a **weak** or poorly characterized interaction.")
	} else {
		lines = append(lines, fmt.Sprintf("These genes have a **%s** interaction with %s.", conf.Strength(), conf.Label()))
	}

	return strings.Join(lines, "\n")
}

// Partners renders a ranked partner list. The heading counts the
// partners actually returned, which may be fewer than requested.
func Partners(gene string, partners []domain.PartnerRecord) string {
	lines := []string{
		fmt.Sprintf("## Top %d Interaction Partners for %s", len(partners), strings.ToUpper(gene)),
		"",
	}

	for i, p := range partners {
		lines = append(lines, fmt.Sprintf("%d. **%s** - %s", i+1, p.Name, Score(p.Score)))
	}

	return strings.Join(lines, "\n")
}

// Annotation renders functional annotation records as a numbered list
// of enriched categories.
func Annotation(geneCount int, annotations []domain.FunctionalAnnotation) string {
	lines := []string{
		"## Functional Annotation",
		"",
		fmt.Sprintf("Gene count: %d", geneCount),
		fmt.Sprintf("Annotation count: %d", len(annotations)),
		"",
	}

	for i, a := range annotations {
		lines = append(lines, fmt.Sprintf("%d. **%s** (%s)", i+1, a.Term, a.Category))
		if a.Description != "" {
			lines = append(lines, fmt.Sprintf("   - %s", a.Description))
		}
		if len(a.Genes) > 0 {
			lines = append(lines, fmt.Sprintf("   - Genes: %s", strings.Join(a.Genes, ", ")))
		}
	}

	return strings.Join(lines, "\n")
}
