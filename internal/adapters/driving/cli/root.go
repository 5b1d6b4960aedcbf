// Package cli implements the pathway-agent command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bioscope-labs/pathway-agent/internal/chart"
	"github.com/bioscope-labs/pathway-agent/internal/config"
	"github.com/bioscope-labs/pathway-agent/internal/connectors"
	"github.com/bioscope-labs/pathway-agent/internal/connectors/enrichr"
	"github.com/bioscope-labs/pathway-agent/internal/connectors/stringdb"
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driving"
	"github.com/bioscope-labs/pathway-agent/internal/core/services"
	"github.com/bioscope-labs/pathway-agent/internal/logger"
	"github.com/bioscope-labs/pathway-agent/internal/tabular"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgPath     string
	verboseFlag bool
)

// appConfig is the loaded configuration shared by all commands.
var appConfig config.Config

// Services shared by all commands. Wired from configuration by
// initServices before a command runs; tests inject mocks instead.
var (
	analysisService    driving.AnalysisService
	interactionService driving.InteractionService
)

var rootCmd = &cobra.Command{
	Use:   "pathway-agent",
	Short: "Gene pathway enrichment and interaction analysis",
	Long: `pathway-agent analyses gene lists using the Enrichr and STRING
web services.

It performs gene-set enrichment against curated pathway libraries,
explains protein-protein interactions, and renders bar charts of the
most significant terms. Reports are Markdown-flavoured text, designed
to read well in terminals and AI assistant conversations alike.

Run 'pathway-agent mcp serve' to expose the same analyses to AI
assistants over the Model Context Protocol.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"config file (default ~/.pathway-agent/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"log analysis progress to stderr")
}

// initServices wires connectors and services from configuration. The
// first command to run triggers wiring; services injected beforehand
// are left alone.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if analysisService != nil && interactionService != nil {
		return nil
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig = cfg

	enrichrClient := enrichr.NewClient(enrichr.Config{
		BaseURL:       cfg.Enrichr.BaseURL,
		SubmitTimeout: cfg.Enrichr.SubmitTimeout(),
		FetchTimeout:  cfg.Enrichr.FetchTimeout(),
		RateLimit: connectors.RateLimitConfig{
			RequestsPerSecond: cfg.Enrichr.RequestsPerSecond,
		},
	})

	stringClient := stringdb.NewClient(stringdb.Config{
		BaseURL:        cfg.StringDB.BaseURL,
		Timeout:        cfg.StringDB.Timeout(),
		CallerIdentity: cfg.StringDB.CallerIdentity,
		RateLimit: connectors.RateLimitConfig{
			RequestsPerSecond: cfg.StringDB.RequestsPerSecond,
		},
	})

	analysisService = services.NewAnalysisService(enrichrClient, tabular.NewReader(), chart.New())
	interactionService = services.NewInteractionService(stringClient)

	return nil
}

// databaseOrDefault falls back to the configured default library.
func databaseOrDefault(database string) string {
	if database != "" {
		return database
	}
	return appConfig.DefaultDatabase
}

// speciesOrDefault falls back to the configured default species.
func speciesOrDefault(species int) int {
	if species != 0 {
		return species
	}
	return appConfig.DefaultSpecies
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
