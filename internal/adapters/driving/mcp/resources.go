package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
)

// databasesURI is the resource URI for the gene-set library catalogue.
const databasesURI = "pathway://databases"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         databasesURI,
		Name:        "databases",
		Description: "Supported gene-set libraries for enrichment analysis",
		MIMEType:    "application/json",
	}, s.handleDatabasesResource)
}

// handleDatabasesResource serves the library catalogue as JSON.
func (s *Server) handleDatabasesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(domain.SupportedDatabases(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling database catalogue: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
