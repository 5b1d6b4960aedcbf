package services

import (
	"context"
	"fmt"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driven"
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driving"
	"github.com/bioscope-labs/pathway-agent/internal/logger"
	"github.com/bioscope-labs/pathway-agent/internal/report"
)

// Ensure InteractionService implements the interface.
var _ driving.InteractionService = (*InteractionService)(nil)

// InteractionService orchestrates protein-interaction lookups against
// the STRING service. A failed remote call and a legitimately empty
// result read the same to the caller: both produce a not-found
// sentence, with the underlying cause logged.
type InteractionService struct {
	interactions driven.InteractionClient
}

// NewInteractionService creates a new interaction service.
func NewInteractionService(interactions driven.InteractionClient) *InteractionService {
	return &InteractionService{interactions: interactions}
}

// ExplainMechanism reports the interaction evidence between two genes.
func (s *InteractionService) ExplainMechanism(ctx context.Context, geneA, geneB string, species int) (string, error) {
	if species <= 0 {
		species = domain.DefaultSpecies
	}

	logger.Section("Interaction Lookup")
	logger.Debug("Querying %s-%s interaction (species %d)", geneA, geneB, species)

	edges, err := s.interactions.Network(ctx, geneA, geneB, species)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Warn("Network lookup failed: %v", err)
	}
	if len(edges) == 0 {
		return fmt.Sprintf("No interaction data found between %s and %s", geneA, geneB), nil
	}

	edge := domain.FindEdge(edges, geneA, geneB)
	if edge == nil {
		logger.Debug("None of the %d edges connects the query pair directly", len(edges))
		return fmt.Sprintf("No direct interaction found between %s and %s", geneA, geneB), nil
	}

	logger.Info("Combined score %.3f for %s-%s", edge.Score, geneA, geneB)

	return report.Interaction(geneA, geneB, edge), nil
}

// GenePartners reports the top-scored interaction partners of a gene.
func (s *InteractionService) GenePartners(ctx context.Context, gene string, species, limit int) (string, error) {
	if species <= 0 {
		species = domain.DefaultSpecies
	}
	limit = domain.ClampPartnerLimit(limit)

	logger.Section("Partner Lookup")
	logger.Debug("Querying partners of %s (species %d, limit %d)", gene, species, limit)

	partners, err := s.interactions.InteractionPartners(ctx, gene, species, limit)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Warn("Partner lookup failed: %v", err)
	}
	if len(partners) == 0 {
		return fmt.Sprintf("No interaction partners found for %s", gene), nil
	}

	logger.Info("Found %d partners for %s", len(partners), gene)

	return report.Partners(gene, partners), nil
}

// AnnotateGenes reports enriched functional categories for a gene set.
func (s *InteractionService) AnnotateGenes(ctx context.Context, genes []string, species int) (string, error) {
	if species <= 0 {
		species = domain.DefaultSpecies
	}

	geneSet := domain.NormalizeGenes(genes)
	if geneSet.Empty() {
		return "Error: No genes provided for annotation", nil
	}

	logger.Section("Functional Annotation")
	logger.Debug("Annotating %d genes (species %d)", len(geneSet), species)

	annotations, err := s.interactions.FunctionalAnnotation(ctx, geneSet, species)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Warn("Annotation lookup failed: %v", err)
	}
	if len(annotations) == 0 {
		return "No functional annotation found for the given genes", nil
	}

	logger.Info("Found %d annotation records", len(annotations))

	return report.Annotation(len(geneSet), annotations), nil
}
