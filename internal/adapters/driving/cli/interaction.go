package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var interactionSpecies int

var interactionCmd = &cobra.Command{
	Use:   "interaction [gene-a] [gene-b]",
	Short: "Explain the interaction between two genes",
	Long: `Queries the STRING database for interaction evidence between two genes
and reports the combined confidence score, the evidence channels that
contribute to it, and a qualitative interpretation.

  pathway-agent interaction TP53 MDM2`,
	Args: cobra.ExactArgs(2),
	RunE: runInteraction,
}

func init() {
	interactionCmd.Flags().IntVar(&interactionSpecies, "species", 0,
		"NCBI taxonomy ID (default 9606, human)")
	rootCmd.AddCommand(interactionCmd)
}

func runInteraction(cmd *cobra.Command, args []string) error {
	if interactionService == nil {
		return errors.New("interaction service not configured")
	}

	text, err := interactionService.ExplainMechanism(cmd.Context(), args[0], args[1], speciesOrDefault(interactionSpecies))
	if err != nil {
		return fmt.Errorf("interaction lookup failed: %w", err)
	}

	cmd.Println(text)
	return nil
}
