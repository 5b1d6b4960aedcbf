// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import (
	"context"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
)

// EnrichmentClient talks to a gene-set enrichment service.
//
// Implementations may include:
//   - Enrichr (maayanlab.cloud)
//   - Self-hosted Enrichr instances
type EnrichmentClient interface {
	// SubmitGeneList uploads a gene list and returns the submission
	// handle used for follow-up enrichment queries.
	SubmitGeneList(ctx context.Context, genes domain.GeneSet) (*domain.EnrichmentSubmission, error)

	// Enrichment fetches enrichment results for a previously submitted
	// list against the named gene-set library.
	Enrichment(ctx context.Context, userListID int, database string) (domain.EnrichmentResult, error)
}
