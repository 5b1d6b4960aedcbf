// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import (
	"context"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
)

// InteractionClient talks to a protein-protein interaction service.
//
// Implementations may include:
//   - STRING (string-db.org)
//   - Mirrors exposing the same REST surface
type InteractionClient interface {
	// Network returns the scored interaction edges among the named
	// genes for the given NCBI taxon.
	Network(ctx context.Context, geneA, geneB string, species int) ([]domain.InteractionEdge, error)

	// InteractionPartners returns up to limit known partners of the
	// named gene, ranked by combined score.
	InteractionPartners(ctx context.Context, gene string, species, limit int) ([]domain.PartnerRecord, error)

	// FunctionalAnnotation returns enriched functional categories for
	// the gene set.
	FunctionalAnnotation(ctx context.Context, genes domain.GeneSet, species int) ([]domain.FunctionalAnnotation, error)
}
