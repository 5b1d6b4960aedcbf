package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	analyzeDatabase string
	analyzeColumn   string
	analyzeSheet    string
	analyzeTop      int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run enrichment analysis on a gene file",
	Long: `Extracts a gene list from a CSV, TSV or Excel file and runs enrichment
analysis on it.

The gene column is auto-detected from common header names (gene,
gene_symbol, symbol, and friends) unless --column names one. For Excel
workbooks, --sheet selects a sheet other than the first.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeDatabase, "database", "d", "",
		"gene-set library (default KEGG_2021_Human)")
	analyzeCmd.Flags().StringVarP(&analyzeColumn, "column", "c", "",
		"gene column name (auto-detected when empty)")
	analyzeCmd.Flags().StringVarP(&analyzeSheet, "sheet", "s", "",
		"workbook sheet (first sheet when empty)")
	analyzeCmd.Flags().IntVarP(&analyzeTop, "top", "n", 0,
		"number of top terms to report (default 10)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	database := databaseOrDefault(analyzeDatabase)

	text, err := analysisService.EnrichFile(cmd.Context(), args[0], database, analyzeColumn, analyzeSheet, analyzeTop)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", args[0], err)
	}

	cmd.Println(text)
	return nil
}
