package driving

import "context"

// InteractionService provides protein-protein interaction reporting to
// external actors.
//
// Report methods fail soft the same way AnalysisService does: remote
// failures and empty results both come back as descriptive text with a
// nil error.
type InteractionService interface {
	// ExplainMechanism reports the interaction evidence between two
	// genes, channel by channel, with a qualitative interpretation.
	ExplainMechanism(ctx context.Context, geneA, geneB string, species int) (string, error)

	// GenePartners reports the top-scored interaction partners of a
	// gene.
	GenePartners(ctx context.Context, gene string, species, limit int) (string, error)

	// AnnotateGenes reports enriched functional categories for a gene
	// set.
	AnnotateGenes(ctx context.Context, genes []string, species int) (string, error)
}
