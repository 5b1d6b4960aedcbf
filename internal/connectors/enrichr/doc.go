// Package enrichr implements the enrichment client against the Enrichr
// REST API (maayanlab.cloud/Enrichr).
//
// Enrichr is a two-step service: a gene list is first uploaded with a
// multipart POST to /addList, which yields a numeric user list ID; the
// ID is then handed to GET /enrich together with a gene-set library
// name. Results come back as a map from library name to positional
// term arrays, which decode into [domain.EnrichmentTerm] values.
//
// # Rate Limiting
//
// Enrichr is shared public infrastructure without authentication, so
// the client throttles itself with a token bucket and backs off when
// the service answers 429.
package enrichr
