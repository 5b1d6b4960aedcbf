package stringdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bioscope-labs/pathway-agent/internal/connectors"
	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.InteractionClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL        = "https://string-db.org/api"
	DefaultTimeout        = 30 * time.Second
	DefaultCallerIdentity = "pathway-mcp-agent"
)

// identifierSeparator joins multiple protein identifiers in one query
// parameter. STRING expects a carriage return between identifiers,
// which url.Values encodes as %0D.
const identifierSeparator = "\r"

// maxErrorBody caps how much of an error response is kept for messages.
const maxErrorBody = 2048

// Config holds configuration for the STRING client.
type Config struct {
	// BaseURL is the STRING API base URL (default: https://string-db.org/api).
	BaseURL string

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// CallerIdentity is sent with every request so the STRING operators
	// can attribute traffic (default: pathway-mcp-agent).
	CallerIdentity string

	// RateLimit throttles outgoing requests. Zero values fall back to
	// connectors.DefaultRateLimit.
	RateLimit connectors.RateLimitConfig

	// HTTPClient overrides the transport. Useful for testing.
	HTTPClient *http.Client
}

// Client talks to the STRING REST API.
type Client struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	caller  string
	limiter *connectors.RateLimiter
}

// NewClient creates a new STRING client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CallerIdentity == "" {
		cfg.CallerIdentity = DefaultCallerIdentity
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	return &Client{
		client:  cfg.HTTPClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		caller:  cfg.CallerIdentity,
		limiter: connectors.NewRateLimiter(cfg.RateLimit),
	}
}

// Network returns the scored interaction edges between the two named
// genes for the given NCBI taxon.
func (c *Client) Network(ctx context.Context, geneA, geneB string, species int) ([]domain.InteractionEdge, error) {
	params := url.Values{}
	params.Set("identifiers", geneA+identifierSeparator+geneB)
	params.Set("species", strconv.Itoa(species))
	params.Set("caller_identity", c.caller)

	var edges []domain.InteractionEdge
	if err := c.getJSON(ctx, "network", params, &edges); err != nil {
		return nil, err
	}
	return edges, nil
}

// partnerRecord is the wire shape of one interaction_partners row.
type partnerRecord struct {
	StringIDB string  `json:"stringId_B"`
	NameB     string  `json:"preferredName_B"`
	Score     float64 `json:"score"`
}

// name picks a display name, falling back to the raw STRING identifier
// for proteins without a preferred symbol.
func (p partnerRecord) name() string {
	if p.NameB != "" {
		return p.NameB
	}
	if p.StringIDB != "" {
		return p.StringIDB
	}
	return "Unknown"
}

// InteractionPartners returns up to limit known partners of the named
// gene, ranked by combined score.
func (c *Client) InteractionPartners(ctx context.Context, gene string, species, limit int) ([]domain.PartnerRecord, error) {
	params := url.Values{}
	params.Set("identifiers", gene)
	params.Set("species", strconv.Itoa(species))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("caller_identity", c.caller)

	var raw []partnerRecord
	if err := c.getJSON(ctx, "interaction_partners", params, &raw); err != nil {
		return nil, err
	}

	partners := make([]domain.PartnerRecord, 0, len(raw))
	for _, p := range raw {
		partners = append(partners, domain.PartnerRecord{Name: p.name(), Score: p.Score})
	}
	return partners, nil
}

// annotationRecord is the wire shape of one functional_annotation row.
// preferredNames arrives as a comma-joined string, not an array.
type annotationRecord struct {
	Category       string `json:"category"`
	Term           string `json:"term"`
	Description    string `json:"description"`
	NumberOfGenes  int    `json:"number_of_genes"`
	PreferredNames string `json:"preferredNames"`
}

// FunctionalAnnotation returns enriched functional categories for the
// gene set.
func (c *Client) FunctionalAnnotation(ctx context.Context, genes domain.GeneSet, species int) ([]domain.FunctionalAnnotation, error) {
	if genes.Empty() {
		return nil, ErrEmptyGeneSet
	}

	params := url.Values{}
	params.Set("identifiers", strings.Join(genes, identifierSeparator))
	params.Set("species", strconv.Itoa(species))
	params.Set("caller_identity", c.caller)

	var raw []annotationRecord
	if err := c.getJSON(ctx, "functional_annotation", params, &raw); err != nil {
		return nil, err
	}

	annotations := make([]domain.FunctionalAnnotation, 0, len(raw))
	for _, a := range raw {
		annotations = append(annotations, domain.FunctionalAnnotation{
			Category:    a.Category,
			Term:        a.Term,
			Description: a.Description,
			GeneCount:   a.NumberOfGenes,
			Genes:       splitNames(a.PreferredNames),
		})
	}
	return annotations, nil
}

// splitNames breaks STRING's comma-joined protein name lists apart.
func splitNames(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// getJSON performs a GET against /json/{endpoint} and decodes the
// response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := c.baseURL + "/json/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, reqURL); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkStatus converts non-2xx responses into APIError values and feeds
// 429 backoff hints to the rate limiter.
func (c *Client) checkStatus(resp *http.Response, reqURL string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if readErr != nil {
		body = []byte("failed to read response body")
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		c.limiter.RecordRateLimitError(retryAfter)
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
		URL:        reqURL,
	}
}
