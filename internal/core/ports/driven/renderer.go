// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "github.com/bioscope-labs/pathway-agent/internal/core/domain"

// NoTermsMessage is what RenderBarChart returns instead of a path when
// it is given nothing to plot.
const NoTermsMessage = "No terms to plot"

// ChartRenderer draws enrichment results as images on disk.
type ChartRenderer interface {
	// RenderBarChart writes a horizontal significance bar chart for the
	// given terms and returns the absolute path of the written image.
	//
	// outputPath may be empty, in which case the renderer picks a
	// default location in the working directory. An empty terms slice
	// returns NoTermsMessage and writes no file.
	RenderBarChart(terms []domain.EnrichmentTerm, title, outputPath string) (string, error)
}
