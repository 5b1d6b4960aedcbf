package domain

import "strings"

// missingValue is the spreadsheet placeholder some exports write into
// empty cells. It is never a gene symbol.
const missingValue = "NAN"

// GeneSet is an ordered list of upper-case gene symbols.
//
// Order is preserved from the input and duplicates are kept; remote
// enrichment services deduplicate on their side, and callers that care
// about counts want the submitted list as-is.
type GeneSet []string

// NormalizeGenes canonicalises raw gene identifiers into a GeneSet.
//
// Each entry is trimmed of surrounding whitespace and upper-cased.
// Entries that are empty after trimming, or that read "NaN" in any
// casing, are dropped. The relative order of surviving entries is
// preserved.
func NormalizeGenes(raw []string) GeneSet {
	genes := make(GeneSet, 0, len(raw))
	for _, entry := range raw {
		symbol := strings.ToUpper(strings.TrimSpace(entry))
		if symbol == "" || symbol == missingValue {
			continue
		}
		genes = append(genes, symbol)
	}
	return genes
}

// Empty reports whether the set contains no genes.
func (g GeneSet) Empty() bool {
	return len(g) == 0
}
