// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the pathway agent. It lets tool-calling AI clients run
// enrichment and interaction analyses over stdio or HTTP.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")

// ErrMissingInteractionService is returned when the interaction service is not provided.
var ErrMissingInteractionService = errors.New("mcp: interaction service is required")
