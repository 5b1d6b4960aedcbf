package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichCmd_Use(t *testing.T) {
	assert.Equal(t, "enrich [genes...]", enrichCmd.Use)
}

func TestEnrichCmd_Short(t *testing.T) {
	assert.Equal(t, "Run enrichment analysis on a gene list", enrichCmd.Short)
}

func TestEnrichCmd_RequiresGenes(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"enrich"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestEnrichCmd_ExecutesWithGenes(t *testing.T) {
	analysis := &mockAnalysisService{text: "Enrichr result for KEGG_2021_Human"}
	cleanup := setupTestServices(analysis, &mockInteractionService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"enrich", "TP53", "MDM2"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Enrichr result for KEGG_2021_Human")
	assert.Equal(t, []string{"TP53", "MDM2"}, analysis.gotGenes)
}

func TestEnrichCmd_SplitsCommaSeparatedGenes(t *testing.T) {
	analysis := &mockAnalysisService{text: "ok"}
	cleanup := setupTestServices(analysis, &mockInteractionService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"enrich", "TP53,MDM2,CDKN1A"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"TP53", "MDM2", "CDKN1A"}, analysis.gotGenes)
}

func TestEnrichCmd_DatabaseFlag(t *testing.T) {
	analysis := &mockAnalysisService{text: "ok"}
	cleanup := setupTestServices(analysis, &mockInteractionService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"enrich", "--database", "MSigDB_Hallmark_2020", "TP53"})
	defer func() {
		rootCmd.SetArgs(nil)
		enrichDatabase = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "MSigDB_Hallmark_2020", analysis.gotDatabase)
}

func TestEnrichCmd_TopFlag(t *testing.T) {
	analysis := &mockAnalysisService{text: "ok"}
	cleanup := setupTestServices(analysis, &mockInteractionService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"enrich", "-n", "5", "TP53"})
	defer func() {
		rootCmd.SetArgs(nil)
		enrichTop = 0
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 5, analysis.gotTopN)
}

func TestEnrichCmd_PlotFlag(t *testing.T) {
	analysis := &mockAnalysisService{text: "Plot saved to: out.png"}
	cleanup := setupTestServices(analysis, &mockInteractionService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"enrich", "--plot", "--output", "out.png", "TP53"})
	defer func() {
		rootCmd.SetArgs(nil)
		enrichPlot = false
		enrichOutput = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 1, analysis.plotCalls)
	assert.Equal(t, "out.png", analysis.gotOutput)
	assert.Contains(t, buf.String(), "Plot saved to: out.png")
}

func TestEnrichCmd_ErrorsWithoutService(t *testing.T) {
	cleanup := setupTestServices(nil, nil)
	defer cleanup()

	err := runEnrich(enrichCmd, []string{"TP53"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
