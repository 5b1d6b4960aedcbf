package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/bioscope-labs/pathway-agent/internal/watch"
)

var (
	watchDatabase string
	watchColumn   string
	watchSheet    string
	watchTop      int
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-run file analysis whenever the file changes",
	Long: `Watches a gene file and re-runs enrichment analysis every time it is
saved. Useful while curating a gene list in a spreadsheet editor.

Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchDatabase, "database", "d", "",
		"gene-set library (default KEGG_2021_Human)")
	watchCmd.Flags().StringVarP(&watchColumn, "column", "c", "",
		"gene column name (auto-detected when empty)")
	watchCmd.Flags().StringVarP(&watchSheet, "sheet", "s", "",
		"workbook sheet (first sheet when empty)")
	watchCmd.Flags().IntVarP(&watchTop, "top", "n", 0,
		"number of top terms to report (default 10)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0,
		"quiet period before re-analysing (default 500ms)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	path := args[0]
	database := databaseOrDefault(watchDatabase)
	ctx := cmd.Context()

	analyze := func() {
		text, err := analysisService.EnrichFile(ctx, path, database, watchColumn, watchSheet, watchTop)
		if err != nil {
			cmd.PrintErrf("analyzing %s: %v\n", path, err)
			return
		}
		cmd.Println(text)
	}

	analyze()
	cmd.Printf("Watching %s for changes...\n", path)

	watcher := watch.New(path, watchDebounce, func(string) {
		cmd.Printf("\n%s changed, re-analysing...\n\n", path)
		analyze()
	})

	if err := watcher.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
