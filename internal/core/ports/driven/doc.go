// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - EnrichmentClient: Submits gene lists and fetches enrichment results
//   - InteractionClient: Queries protein-protein interaction data
//   - GeneFileReader: Extracts gene lists from tabular files
//   - ChartRenderer: Renders enrichment results as bar-chart images
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
