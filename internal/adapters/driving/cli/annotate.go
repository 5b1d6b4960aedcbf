package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var annotateSpecies int

var annotateCmd = &cobra.Command{
	Use:   "annotate [genes...]",
	Short: "Report enriched functional annotation for a gene set",
	Long: `Queries the STRING database for functional categories (GO terms, KEGG
pathways, and others) that are enriched in the given gene set.

Genes can be given as separate arguments or comma-separated.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().IntVar(&annotateSpecies, "species", 0,
		"NCBI taxonomy ID (default 9606, human)")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if interactionService == nil {
		return errors.New("interaction service not configured")
	}

	text, err := interactionService.AnnotateGenes(cmd.Context(), splitGeneArgs(args), speciesOrDefault(annotateSpecies))
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	cmd.Println(text)
	return nil
}
