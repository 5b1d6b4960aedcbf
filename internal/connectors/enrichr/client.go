package enrichr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
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
var _ driven.EnrichmentClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL       = "https://maayanlab.cloud/Enrichr"
	DefaultSubmitTimeout = 30 * time.Second
	DefaultFetchTimeout  = 60 * time.Second
)

// maxErrorBody caps how much of an error response is kept for messages.
const maxErrorBody = 2048

// Config holds configuration for the Enrichr client.
type Config struct {
	// BaseURL is the Enrichr API base URL (default: https://maayanlab.cloud/Enrichr).
	BaseURL string

	// SubmitTimeout bounds gene list uploads (default: 30s).
	SubmitTimeout time.Duration

	// FetchTimeout bounds enrichment queries, which the service
	// computes on demand and can take a while (default: 60s).
	FetchTimeout time.Duration

	// RateLimit throttles outgoing requests. Zero values fall back to
	// connectors.DefaultRateLimit.
	RateLimit connectors.RateLimitConfig

	// HTTPClient overrides the transport. Useful for testing.
	HTTPClient *http.Client
}

// Client talks to the Enrichr REST API.
type Client struct {
	client        *http.Client
	baseURL       string
	submitTimeout time.Duration
	fetchTimeout  time.Duration
	limiter       *connectors.RateLimiter
}

// NewClient creates a new Enrichr client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SubmitTimeout == 0 {
		cfg.SubmitTimeout = DefaultSubmitTimeout
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	return &Client{
		client:        cfg.HTTPClient,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		submitTimeout: cfg.SubmitTimeout,
		fetchTimeout:  cfg.FetchTimeout,
		limiter:       connectors.NewRateLimiter(cfg.RateLimit),
	}
}

// SubmitGeneList uploads a gene list and returns the submission handle.
//
// The list goes up as a multipart form with a single "list" field
// holding one gene symbol per line, which is the layout the /addList
// endpoint expects.
func (c *Client) SubmitGeneList(ctx context.Context, genes domain.GeneSet) (*domain.EnrichmentSubmission, error) {
	if genes.Empty() {
		return nil, ErrEmptyGeneList
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	field, err := writer.CreateFormField("list")
	if err != nil {
		return nil, fmt.Errorf("create form field: %w", err)
	}
	if _, err := field.Write([]byte(strings.Join(genes, "\n"))); err != nil {
		return nil, fmt.Errorf("write gene list: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	reqURL := c.baseURL + "/addList"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, reqURL); err != nil {
		return nil, err
	}

	var sub domain.EnrichmentSubmission
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if sub.UserListID == 0 {
		return nil, ErrMissingListID
	}

	return &sub, nil
}

// Enrichment fetches enrichment results for an uploaded gene list
// against the named gene-set library.
func (c *Client) Enrichment(ctx context.Context, userListID int, database string) (domain.EnrichmentResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("userListId", strconv.Itoa(userListID))
	params.Set("backgroundType", database)
	reqURL := c.baseURL + "/enrich?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, reqURL); err != nil {
		return nil, err
	}

	var result domain.EnrichmentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return result, nil
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
