package mcp

import (
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analysis provides gene-set enrichment reporting.
	Analysis driving.AnalysisService

	// Interaction provides protein-interaction reporting.
	Interaction driving.InteractionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	if p.Interaction == nil {
		return ErrMissingInteractionService
	}
	return nil
}
