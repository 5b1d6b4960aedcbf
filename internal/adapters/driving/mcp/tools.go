package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HelloInput is the input schema for the hello_pathway tool.
type HelloInput struct {
	GeneName string `json:"gene_name" jsonschema:"the gene symbol to greet"`
}

// EnrichmentInput is the input schema for the perform_enrichment tool.
type EnrichmentInput struct {
	GeneList []string `json:"gene_list" jsonschema:"list of gene symbols"`
	Database string   `json:"database,omitempty" jsonschema:"gene-set library to enrich against (default KEGG_2021_Human)"`
	TopN     int      `json:"top_n,omitempty" jsonschema:"number of top terms to report (default 10)"`
}

// ListDatabasesInput is the input schema for the list_databases tool.
type ListDatabasesInput struct{}

// AnalyzeFileInput is the input schema for the analyze_gene_file tool.
type AnalyzeFileInput struct {
	FilePath   string `json:"file_path" jsonschema:"path to the gene file (CSV, TSV or Excel)"`
	Database   string `json:"database,omitempty" jsonschema:"gene-set library to enrich against (default KEGG_2021_Human)"`
	GeneColumn string `json:"gene_column,omitempty" jsonschema:"gene column name, empty for auto-detection"`
	Sheet      string `json:"sheet,omitempty" jsonschema:"workbook sheet name, empty for the first sheet"`
	TopN       int    `json:"top_n,omitempty" jsonschema:"number of top terms to report (default 10)"`
}

// EnrichmentPlotInput is the input schema for the enrichment_with_plot tool.
type EnrichmentPlotInput struct {
	GeneList   []string `json:"gene_list" jsonschema:"list of gene symbols"`
	Database   string   `json:"database,omitempty" jsonschema:"gene-set library to enrich against (default KEGG_2021_Human)"`
	TopN       int      `json:"top_n,omitempty" jsonschema:"number of top terms to report and plot (default 10)"`
	OutputPath string   `json:"output_path,omitempty" jsonschema:"where to save the plot, empty for the current directory"`
}

// MechanismInput is the input schema for the explain_mechanism tool.
type MechanismInput struct {
	GeneA   string `json:"gene_a" jsonschema:"first gene symbol (e.g. TP53)"`
	GeneB   string `json:"gene_b" jsonschema:"second gene symbol (e.g. MDM2)"`
	Species int    `json:"species,omitempty" jsonschema:"NCBI taxonomy ID (default 9606 for human)"`
}

// PartnersInput is the input schema for the get_gene_partners tool.
type PartnersInput struct {
	Gene    string `json:"gene" jsonschema:"gene symbol (e.g. TP53)"`
	Species int    `json:"species,omitempty" jsonschema:"NCBI taxonomy ID (default 9606 for human)"`
	Limit   int    `json:"limit,omitempty" jsonschema:"number of partners to return (default 10, max 50)"`
}

// AnnotateInput is the input schema for the annotate_genes tool.
type AnnotateInput struct {
	GeneList []string `json:"gene_list" jsonschema:"list of gene symbols"`
	Species  int      `json:"species,omitempty" jsonschema:"NCBI taxonomy ID (default 9606 for human)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hello_pathway",
		Description: "Return a greeting message for the given gene name",
	}, s.handleHello)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "perform_enrichment",
		Description: "Perform pathway enrichment analysis on a list of genes",
	}, s.handleEnrichment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_databases",
		Description: "List all supported databases for enrichment analysis",
	}, s.handleListDatabases)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_gene_file",
		Description: "Analyze a gene file and perform pathway enrichment analysis",
	}, s.handleAnalyzeFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "enrichment_with_plot",
		Description: "Perform pathway enrichment analysis and generate a visualization plot",
	}, s.handleEnrichmentPlot)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "explain_mechanism",
		Description: "Explain the potential interaction mechanism between two genes",
	}, s.handleMechanism)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_gene_partners",
		Description: "Get the top interaction partners for a gene",
	}, s.handlePartners)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "annotate_genes",
		Description: "Get enriched functional annotation for a list of genes",
	}, s.handleAnnotate)
}

// textResult wraps plain report text for the MCP transport.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// handleHello handles the hello_pathway tool invocation.
func (s *Server) handleHello(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input HelloInput,
) (*mcp.CallToolResult, any, error) {
	return textResult(s.ports.Analysis.Greet(input.GeneName)), nil, nil
}

// handleEnrichment handles the perform_enrichment tool invocation.
func (s *Server) handleEnrichment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EnrichmentInput,
) (*mcp.CallToolResult, any, error) {
	text, err := s.ports.Analysis.Enrich(ctx, input.GeneList, input.Database, input.TopN)
	if err != nil {
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

// handleListDatabases handles the list_databases tool invocation.
func (s *Server) handleListDatabases(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListDatabasesInput,
) (*mcp.CallToolResult, any, error) {
	return textResult(s.ports.Analysis.ListDatabases()), nil, nil
}

// handleAnalyzeFile handles the analyze_gene_file tool invocation.
// Local file problems come back as text, not protocol errors, so the
// conversation can continue.
func (s *Server) handleAnalyzeFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeFileInput,
) (*mcp.CallToolResult, any, error) {
	text, err := s.ports.Analysis.EnrichFile(ctx, input.FilePath, input.Database, input.GeneColumn, input.Sheet, input.TopN)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, err
		}
		return textResult(fmt.Sprintf("Error reading file: %s", err)), nil, nil
	}
	return textResult(text), nil, nil
}

// handleEnrichmentPlot handles the enrichment_with_plot tool invocation.
func (s *Server) handleEnrichmentPlot(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EnrichmentPlotInput,
) (*mcp.CallToolResult, any, error) {
	text, err := s.ports.Analysis.EnrichWithPlot(ctx, input.GeneList, input.Database, input.TopN, input.OutputPath)
	if err != nil {
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

// handleMechanism handles the explain_mechanism tool invocation.
func (s *Server) handleMechanism(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MechanismInput,
) (*mcp.CallToolResult, any, error) {
	text, err := s.ports.Interaction.ExplainMechanism(ctx, input.GeneA, input.GeneB, input.Species)
	if err != nil {
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

// handlePartners handles the get_gene_partners tool invocation.
func (s *Server) handlePartners(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PartnersInput,
) (*mcp.CallToolResult, any, error) {
	text, err := s.ports.Interaction.GenePartners(ctx, input.Gene, input.Species, input.Limit)
	if err != nil {
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

// handleAnnotate handles the annotate_genes tool invocation.
func (s *Server) handleAnnotate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnnotateInput,
) (*mcp.CallToolResult, any, error) {
	text, err := s.ports.Interaction.AnnotateGenes(ctx, input.GeneList, input.Species)
	if err != nil {
		return nil, nil, err
	}
	return textResult(text), nil, nil
}
