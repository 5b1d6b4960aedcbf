package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_Use(t *testing.T) {
	assert.Equal(t, "analyze [file]", analyzeCmd.Use)
}

func TestAnalyzeCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"analyze"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAnalyzeCmd_ExecutesWithFile(t *testing.T) {
	analysis := &mockAnalysisService{text: "## File Information\n- File: genes.csv"}
	cleanup := setupTestServices(analysis, &mockInteractionService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"analyze", "genes.csv"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "## File Information")
	assert.Equal(t, "genes.csv", analysis.gotPath)
}

func TestAnalyzeCmd_ColumnAndSheetFlags(t *testing.T) {
	analysis := &mockAnalysisService{text: "ok"}
	cleanup := setupTestServices(analysis, &mockInteractionService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"analyze", "--column", "symbol", "--sheet", "Validation", "genes.xlsx"})
	defer func() {
		rootCmd.SetArgs(nil)
		analyzeColumn = ""
		analyzeSheet = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "symbol", analysis.gotColumn)
	assert.Equal(t, "Validation", analysis.gotSheet)
}

func TestAnalyzeCmd_ReportsFileErrors(t *testing.T) {
	analysis := &mockAnalysisService{err: errors.New("reading gene file: file not found")}
	cleanup := setupTestServices(analysis, &mockInteractionService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"analyze", "missing.csv"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "analyzing missing.csv")
	assert.Contains(t, err.Error(), "file not found")
}
