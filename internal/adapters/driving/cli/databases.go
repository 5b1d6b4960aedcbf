package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List supported gene-set libraries",
	RunE:  runDatabases,
}

func init() {
	rootCmd.AddCommand(databasesCmd)
}

func runDatabases(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	cmd.Println(analysisService.ListDatabases())
	return nil
}
