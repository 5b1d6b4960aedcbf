// Package connectors provides clients for the public REST services the
// pathway agent depends on. Each subpackage knows how to talk to one
// service (Enrichr for gene-set enrichment, STRING for protein-protein
// interactions).
//
// This package itself holds the infrastructure the clients share:
// token-bucket rate limiting and the common API error type. The
// subpackages implement the driven ports consumed by core services.
package connectors
