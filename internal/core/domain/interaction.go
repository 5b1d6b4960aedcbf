package domain

import "strings"

// DefaultSpecies is the NCBI taxonomy identifier assumed when a caller
// does not name one. 9606 is Homo sapiens.
const DefaultSpecies = 9606

// DefaultPartnerLimit is the number of interaction partners fetched
// when a caller does not override it.
const DefaultPartnerLimit = 10

// MaxPartnerLimit caps partner queries. The interaction service ranks
// partners by score, so anything past the first fifty is noise.
const MaxPartnerLimit = 50

// ClampPartnerLimit normalises a requested partner count into the
// supported range. Zero and negative values fall back to the default.
func ClampPartnerLimit(limit int) int {
	if limit <= 0 {
		return DefaultPartnerLimit
	}
	if limit > MaxPartnerLimit {
		return MaxPartnerLimit
	}
	return limit
}

// InteractionEdge is a scored functional association between two
// proteins. Score is the combined confidence in [0,1]; the seven
// channel scores record the evidence types that contributed to it.
type InteractionEdge struct {
	StringIDA    string  `json:"stringId_A"`
	StringIDB    string  `json:"stringId_B"`
	NameA        string  `json:"preferredName_A"`
	NameB        string  `json:"preferredName_B"`
	TaxonID      int     `json:"ncbiTaxonId"`
	Score        float64 `json:"score"`
	Neighborhood float64 `json:"nscore"`
	Fusion       float64 `json:"fscore"`
	Phylogenetic float64 `json:"pscore"`
	Coexpression float64 `json:"ascore"`
	Experimental float64 `json:"escore"`
	Curated      float64 `json:"dscore"`
	TextMining   float64 `json:"tscore"`
}

// ChannelScore is one evidence channel of an interaction edge, paired
// with its human-readable label for reports.
type ChannelScore struct {
	Code  string
	Label string
	Value float64
}

// Channels returns the edge's evidence channels in their canonical
// presentation order.
func (e InteractionEdge) Channels() []ChannelScore {
	return []ChannelScore{
		{Code: "nscore", Label: "Gene Neighborhood", Value: e.Neighborhood},
		{Code: "fscore", Label: "Gene Fusion", Value: e.Fusion},
		{Code: "pscore", Label: "Phylogenetic Profiles", Value: e.Phylogenetic},
		{Code: "ascore", Label: "Co-expression", Value: e.Coexpression},
		{Code: "escore", Label: "Experimental", Value: e.Experimental},
		{Code: "dscore", Label: "Database", Value: e.Curated},
		{Code: "tscore", Label: "Text Mining", Value: e.TextMining},
	}
}

// Matches reports whether the edge connects the two named genes, in
// either orientation. Comparison is case-insensitive on the preferred
// protein names.
func (e InteractionEdge) Matches(geneA, geneB string) bool {
	a := strings.ToUpper(strings.TrimSpace(geneA))
	b := strings.ToUpper(strings.TrimSpace(geneB))
	nameA := strings.ToUpper(e.NameA)
	nameB := strings.ToUpper(e.NameB)
	return (nameA == a && nameB == b) || (nameA == b && nameB == a)
}

// FindEdge returns the first edge connecting the two named genes, or
// nil when no edge matches.
func FindEdge(edges []InteractionEdge, geneA, geneB string) *InteractionEdge {
	for i := range edges {
		if edges[i].Matches(geneA, geneB) {
			return &edges[i]
		}
	}
	return nil
}

// PartnerRecord is one ranked interaction partner of a query protein.
type PartnerRecord struct {
	Name  string
	Score float64
}

// FunctionalAnnotation is one enriched functional category for a set
// of input proteins.
type FunctionalAnnotation struct {
	Category    string
	Term        string
	Description string
	GeneCount   int
	Genes       []string
}

// Confidence is the qualitative band of an interaction score.
type Confidence int

// Confidence bands, ordered weakest to strongest. Band boundaries are
// inclusive lower bounds on the combined score.
const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
	ConfidenceHighest
)

// ConfidenceFor bands a combined interaction score.
func ConfidenceFor(score float64) Confidence {
	switch {
	case score >= 0.9:
		return ConfidenceHighest
	case score >= 0.7:
		return ConfidenceHigh
	case score >= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Label returns the band's confidence wording for score annotations.
func (c Confidence) Label() string {
	switch c {
	case ConfidenceHighest:
		return "highest confidence"
	case ConfidenceHigh:
		return "high confidence"
	case ConfidenceMedium:
		return "medium confidence"
	default:
		return "low confidence"
	}
}

// Strength returns the band's interaction-strength wording for
// interpretation sentences.
func (c Confidence) Strength() string {
	switch c {
	case ConfidenceHighest:
		return "very strong"
	case ConfidenceHigh:
		return "strong"
	case ConfidenceMedium:
		return "moderate"
	default:
		return "weak"
	}
}
