package mcp

import (
	"context"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	text string
	err  error

	gotGenes    []string
	gotDatabase string
	gotTopN     int
	gotPath     string
	gotColumn   string
	gotSheet    string
	gotOutput   string
}

func (m *mockAnalysisService) Greet(geneName string) string {
	return "Hello! You asked about gene: " + geneName
}

func (m *mockAnalysisService) ListDatabases() string {
	return m.text
}

func (m *mockAnalysisService) Enrich(
	_ context.Context,
	genes []string,
	database string,
	topN int,
) (string, error) {
	m.gotGenes = genes
	m.gotDatabase = database
	m.gotTopN = topN
	return m.text, m.err
}

func (m *mockAnalysisService) EnrichFile(
	_ context.Context,
	path, database, geneColumn, sheet string,
	topN int,
) (string, error) {
	m.gotPath = path
	m.gotDatabase = database
	m.gotColumn = geneColumn
	m.gotSheet = sheet
	m.gotTopN = topN
	return m.text, m.err
}

func (m *mockAnalysisService) EnrichWithPlot(
	_ context.Context,
	genes []string,
	database string,
	topN int,
	outputPath string,
) (string, error) {
	m.gotGenes = genes
	m.gotDatabase = database
	m.gotTopN = topN
	m.gotOutput = outputPath
	return m.text, m.err
}

// mockInteractionService is a mock implementation of driving.InteractionService.
type mockInteractionService struct {
	text string
	err  error

	gotGeneA   string
	gotGeneB   string
	gotGene    string
	gotGenes   []string
	gotSpecies int
	gotLimit   int
}

func (m *mockInteractionService) ExplainMechanism(
	_ context.Context,
	geneA, geneB string,
	species int,
) (string, error) {
	m.gotGeneA = geneA
	m.gotGeneB = geneB
	m.gotSpecies = species
	return m.text, m.err
}

func (m *mockInteractionService) GenePartners(
	_ context.Context,
	gene string,
	species, limit int,
) (string, error) {
	m.gotGene = gene
	m.gotSpecies = species
	m.gotLimit = limit
	return m.text, m.err
}

func (m *mockInteractionService) AnnotateGenes(
	_ context.Context,
	genes []string,
	species int,
) (string, error) {
	m.gotGenes = genes
	m.gotSpecies = species
	return m.text, m.err
}
