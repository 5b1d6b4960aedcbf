package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	partnersSpecies int
	partnersLimit   int
)

var partnersCmd = &cobra.Command{
	Use:   "partners [gene]",
	Short: "List the top interaction partners for a gene",
	Long: `Queries the STRING database for the proteins that interact with the
given gene, ranked by combined confidence score.`,
	Args: cobra.ExactArgs(1),
	RunE: runPartners,
}

func init() {
	partnersCmd.Flags().IntVar(&partnersSpecies, "species", 0,
		"NCBI taxonomy ID (default 9606, human)")
	partnersCmd.Flags().IntVarP(&partnersLimit, "limit", "n", 0,
		"number of partners to list (default 10, max 50)")
	rootCmd.AddCommand(partnersCmd)
}

func runPartners(cmd *cobra.Command, args []string) error {
	if interactionService == nil {
		return errors.New("interaction service not configured")
	}

	text, err := interactionService.GenePartners(cmd.Context(), args[0], speciesOrDefault(partnersSpecies), partnersLimit)
	if err != nil {
		return fmt.Errorf("partner lookup failed: %w", err)
	}

	cmd.Println(text)
	return nil
}
