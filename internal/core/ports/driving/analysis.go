package driving

import "context"

// AnalysisService provides gene-set enrichment reporting to external
// actors.
//
// Report methods fail soft: when a remote service call does not work
// out, they return a descriptive one-line report and a nil error, so a
// conversational caller always has text to show. Non-nil errors are
// reserved for local failures (unreadable files, unwritable plot
// paths, cancelled contexts).
type AnalysisService interface {
	// Greet returns a greeting naming the gene. It exists as a
	// liveness probe for tool-calling clients.
	Greet(geneName string) string

	// ListDatabases renders the catalogue of supported gene-set
	// libraries.
	ListDatabases() string

	// Enrich submits the genes for enrichment against the named
	// library and renders the top terms.
	Enrich(ctx context.Context, genes []string, database string, topN int) (string, error)

	// EnrichFile extracts a gene list from a tabular file and runs
	// Enrich on it, prefixing the report with file metadata.
	EnrichFile(ctx context.Context, path, database, geneColumn, sheet string, topN int) (string, error)

	// EnrichWithPlot runs an enrichment and renders the top terms as a
	// bar-chart image beside the textual report.
	EnrichWithPlot(ctx context.Context, genes []string, database string, topN int, outputPath string) (string, error)
}
