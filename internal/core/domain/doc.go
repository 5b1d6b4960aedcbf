// Package domain defines the core business entities for the pathway agent.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - GeneSet: A normalized, ordered list of gene symbols
//   - EnrichmentTerm: A single enriched term returned by an enrichment run
//   - InteractionEdge: A scored protein-protein interaction
//   - Confidence: A qualitative band derived from an interaction score
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
