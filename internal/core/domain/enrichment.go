package domain

import (
	"encoding/json"
	"fmt"
)

// DefaultDatabase is the gene-set library used when a caller does not
// pick one explicitly.
const DefaultDatabase = "KEGG_2021_Human"

// DefaultTopTerms is the number of enriched terms shown in reports when
// a caller does not override it.
const DefaultTopTerms = 10

// EnrichmentSubmission identifies an uploaded gene list on the
// enrichment service. The UserListID is the handle for follow-up
// enrichment queries; the ShortID addresses the list in the service's
// web UI.
type EnrichmentSubmission struct {
	UserListID int    `json:"userListId"`
	ShortID    string `json:"shortId"`
}

// EnrichmentTerm is one enriched term from a gene-set library.
//
// The enrichment service returns each term as a positional JSON array
// rather than an object:
//
//	[rank, name, p-value, z-score, combined score, genes,
//	 adjusted p-value, legacy p-value, legacy adjusted p-value]
//
// UnmarshalJSON decodes that layout into named fields so nothing else
// in the codebase indexes into raw arrays.
type EnrichmentTerm struct {
	Rank            int
	Name            string
	PValue          float64
	ZScore          float64
	CombinedScore   float64
	Genes           []string
	AdjustedPValue  float64
	LegacyPValue    float64
	LegacyAdjPValue float64
}

// UnmarshalJSON decodes the positional array layout described on
// EnrichmentTerm. Trailing fields may be absent in older library
// snapshots; the first six are required.
func (t *EnrichmentTerm) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("enrichment term is not an array: %w", err)
	}

	positions := []struct {
		name string
		dst  any
	}{
		{"rank", &t.Rank},
		{"name", &t.Name},
		{"p-value", &t.PValue},
		{"z-score", &t.ZScore},
		{"combined score", &t.CombinedScore},
		{"genes", &t.Genes},
		{"adjusted p-value", &t.AdjustedPValue},
		{"legacy p-value", &t.LegacyPValue},
		{"legacy adjusted p-value", &t.LegacyAdjPValue},
	}

	const required = 6
	if len(fields) < required {
		return fmt.Errorf("enrichment term has %d fields, want at least %d", len(fields), required)
	}

	for i, pos := range positions {
		if i >= len(fields) {
			break
		}
		if err := json.Unmarshal(fields[i], pos.dst); err != nil {
			return fmt.Errorf("enrichment term field %d (%s): %w", i, pos.name, err)
		}
	}
	return nil
}

// EnrichmentResult maps a gene-set library name to the enriched terms
// found in it, ordered by rank as the service returned them.
type EnrichmentResult map[string][]EnrichmentTerm

// Database identifies a supported gene-set library.
type Database struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// supportedDatabases is the static catalogue of libraries the agent
// advertises. Order is presentation order.
var supportedDatabases = []Database{
	{ID: "KEGG_2021_Human", Description: "KEGG_2021_Human"},
	{ID: "GO_Biological_Process_2021", Description: "GO_Biological_Process_2021"},
	{ID: "GO_Cellular_Component_2021", Description: "GO_Cellular_Component_2021"},
	{ID: "GO_Molecular_Function_2021", Description: "GO_Molecular_Function_2021"},
	{ID: "MSigDB_Hallmark_2020", Description: "MSigDB Hallmark"},
}

// SupportedDatabases returns the catalogue of advertised gene-set
// libraries. The slice is a copy; callers may modify it freely.
func SupportedDatabases() []Database {
	dbs := make([]Database, len(supportedDatabases))
	copy(dbs, supportedDatabases)
	return dbs
}
