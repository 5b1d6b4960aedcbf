package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driven"
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driving"
	"github.com/bioscope-labs/pathway-agent/internal/logger"
	"github.com/bioscope-labs/pathway-agent/internal/report"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService orchestrates gene-set enrichment: normalise the
// input genes, submit them to the enrichment service, fetch ranked
// terms and render report text (plus a bar chart when asked).
type AnalysisService struct {
	enrichment driven.EnrichmentClient
	files      driven.GeneFileReader
	charts     driven.ChartRenderer
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(
	enrichment driven.EnrichmentClient,
	files driven.GeneFileReader,
	charts driven.ChartRenderer,
) *AnalysisService {
	return &AnalysisService{
		enrichment: enrichment,
		files:      files,
		charts:     charts,
	}
}

// Greet returns a greeting naming the gene.
func (s *AnalysisService) Greet(geneName string) string {
	return fmt.Sprintf("Hello! You asked about gene: %s", geneName)
}

// ListDatabases renders the supported gene-set library catalogue.
func (s *AnalysisService) ListDatabases() string {
	return report.Databases()
}

// Enrich submits the genes against the named library and renders the
// top terms. Remote failures come back as report text, not errors.
func (s *AnalysisService) Enrich(ctx context.Context, genes []string, database string, topN int) (string, error) {
	if database == "" {
		database = domain.DefaultDatabase
	}
	if topN <= 0 {
		topN = domain.DefaultTopTerms
	}

	geneSet := domain.NormalizeGenes(genes)
	if geneSet.Empty() {
		return "Error: No genes provided for enrichment analysis", nil
	}

	// A short run ID ties the submit and fetch log lines together.
	runID := uuid.NewString()[:8]
	logger.Section("Enrichment Analysis")
	logger.Debug("run %s: submitting %d genes to Enrichr", runID, len(geneSet))

	submission, err := s.enrichment.SubmitGeneList(ctx, geneSet)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Warn("run %s: submission failed: %v", runID, err)
		return "Error: Failed to submit the gene list to Enrichr", nil
	}

	logger.Debug("run %s: submitted as list %d, fetching %s", runID, submission.UserListID, database)

	result, err := s.enrichment.Enrichment(ctx, submission.UserListID, database)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Warn("run %s: enrichment fetch failed: %v", runID, err)
		return "Error: Failed to get the enrichment results from Enrichr", nil
	}

	terms, ok := result[database]
	if !ok {
		logger.Warn("run %s: response carries no %s terms", runID, database)
		return "Error: Failed to get the enrichment results from Enrichr", nil
	}

	logger.Info("run %s: received %d enriched terms", runID, len(terms))

	return report.Enrichment(database, len(geneSet), terms, topN), nil
}

// EnrichFile extracts a gene list from a tabular file and runs Enrich
// on it. Extraction problems are the one place analysis returns hard
// errors: the caller decides how to phrase a local file failure.
func (s *AnalysisService) EnrichFile(ctx context.Context, path, database, geneColumn, sheet string, topN int) (string, error) {
	logger.Section("Gene File Analysis")
	logger.Debug("Reading %s (column=%q, sheet=%q)", path, geneColumn, sheet)

	extraction, err := s.files.Extract(path, geneColumn, sheet)
	if err != nil {
		logger.Warn("Extraction failed: %v", err)
		return "", fmt.Errorf("reading gene file: %w", err)
	}

	logger.Debug("Extracted %d genes from column %q (%d rows)",
		len(extraction.Genes), extraction.GeneColumn, extraction.TotalRows)

	if extraction.Genes.Empty() {
		return "Error: No genes found in the file", nil
	}

	body, err := s.Enrich(ctx, extraction.Genes, database, topN)
	if err != nil {
		return "", err
	}

	header := report.FileHeader(extraction.File, extraction.GeneColumn, len(extraction.Genes))
	return header + body, nil
}

// EnrichWithPlot runs an enrichment and renders the top terms as a bar
// chart beside the textual report. Plot rendering failures are local
// and therefore hard errors.
func (s *AnalysisService) EnrichWithPlot(ctx context.Context, genes []string, database string, topN int, outputPath string) (string, error) {
	if database == "" {
		database = domain.DefaultDatabase
	}
	if topN <= 0 {
		topN = domain.DefaultTopTerms
	}

	geneSet := domain.NormalizeGenes(genes)
	if geneSet.Empty() {
		return "Error: No genes provided for enrichment analysis", nil
	}

	runID := uuid.NewString()[:8]
	logger.Section("Enrichment Analysis with Plot")
	logger.Debug("run %s: submitting %d genes to Enrichr", runID, len(geneSet))

	submission, err := s.enrichment.SubmitGeneList(ctx, geneSet)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Warn("run %s: submission failed: %v", runID, err)
		return "Error: Failed to submit gene list", nil
	}

	result, err := s.enrichment.Enrichment(ctx, submission.UserListID, database)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Warn("run %s: enrichment fetch failed: %v", runID, err)
		return fmt.Sprintf("Error: Failed to get enrichment results for %s", database), nil
	}

	terms, ok := result[database]
	if !ok {
		logger.Warn("run %s: response carries no %s terms", runID, database)
		return fmt.Sprintf("Error: Failed to get enrichment results for %s", database), nil
	}

	top := report.Truncate(terms, topN)

	title := fmt.Sprintf("Enrichment Analysis - %s", database)
	plotPath, err := s.charts.RenderBarChart(top, title, outputPath)
	if err != nil {
		logger.Warn("run %s: plot rendering failed: %v", runID, err)
		return "", fmt.Errorf("rendering plot: %w", err)
	}

	logger.Info("run %s: %d terms plotted to %s", runID, len(top), plotPath)

	return report.EnrichmentWithPlot(database, len(geneSet), len(terms), top, topN, plotPath), nil
}
