// Package report renders enrichment and interaction results as
// Markdown-flavoured text.
//
// Every function here is pure: no I/O, no clock, no randomness. The
// same inputs always produce byte-identical output, which keeps the
// caller-facing text stable across MCP, CLI and TUI surfaces.
package report
