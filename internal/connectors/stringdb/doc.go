// Package stringdb implements the interaction client against the
// STRING REST API (string-db.org).
//
// STRING exposes one GET endpoint per query kind under /api/{format}/.
// The client always asks for the json format and identifies itself via
// the caller_identity parameter, as the STRING usage guidelines
// request. Multiple protein identifiers travel in a single parameter
// separated by carriage returns.
//
// # Rate Limiting
//
// STRING is shared public infrastructure without authentication, so
// the client throttles itself with a token bucket and backs off when
// the service answers 429.
package stringdb
