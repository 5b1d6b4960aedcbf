package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	enrichDatabase string
	enrichTop      int
	enrichPlot     bool
	enrichOutput   string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich [genes...]",
	Short: "Run enrichment analysis on a gene list",
	Long: `Submits the given gene symbols to Enrichr and reports the enriched
terms found in the chosen gene-set library.

Genes can be given as separate arguments or comma-separated:

  pathway-agent enrich TP53 MDM2 CDKN1A
  pathway-agent enrich TP53,MDM2,CDKN1A --database GO_Biological_Process_2021

Use --plot to also render the top terms as a bar chart.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().StringVarP(&enrichDatabase, "database", "d", "",
		"gene-set library (default KEGG_2021_Human)")
	enrichCmd.Flags().IntVarP(&enrichTop, "top", "n", 0,
		"number of top terms to report (default 10)")
	enrichCmd.Flags().BoolVar(&enrichPlot, "plot", false,
		"render the top terms as a bar chart")
	enrichCmd.Flags().StringVarP(&enrichOutput, "output", "o", "",
		"plot output path (default enrichment_plot.png)")
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	genes := splitGeneArgs(args)
	database := databaseOrDefault(enrichDatabase)

	var (
		text string
		err  error
	)
	if enrichPlot {
		output := enrichOutput
		if output == "" {
			output = appConfig.Plot.OutputPath
		}
		text, err = analysisService.EnrichWithPlot(cmd.Context(), genes, database, enrichTop, output)
	} else {
		text, err = analysisService.Enrich(cmd.Context(), genes, database, enrichTop)
	}
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	cmd.Println(text)
	return nil
}

// splitGeneArgs accepts both space- and comma-separated gene symbols.
func splitGeneArgs(args []string) []string {
	genes := make([]string, 0, len(args))
	for _, arg := range args {
		for _, gene := range strings.Split(arg, ",") {
			if gene = strings.TrimSpace(gene); gene != "" {
				genes = append(genes, gene)
			}
		}
	}
	return genes
}
