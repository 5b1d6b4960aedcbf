package enrichr

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bioscope-labs/pathway-agent/internal/connectors"
	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driven"
)

// testConfig points a client at a test server with throttling loosened.
func testConfig(srv *httptest.Server) Config {
	return Config{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		RateLimit:  connectors.RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 100},
	}
}

func TestNewClient(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		client := NewClient(Config{})

		require.NotNil(t, client)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, DefaultSubmitTimeout, client.submitTimeout)
		assert.Equal(t, DefaultFetchTimeout, client.fetchTimeout)
		assert.NotNil(t, client.client)
		assert.NotNil(t, client.limiter)
	})

	t.Run("trims trailing slash from base URL", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "https://example.org/Enrichr/"})

		assert.Equal(t, "https://example.org/Enrichr", client.baseURL)
	})

	t.Run("implements EnrichmentClient interface", func(t *testing.T) {
		var _ driven.EnrichmentClient = NewClient(Config{})
	})
}

func TestClient_SubmitGeneList(t *testing.T) {
	t.Run("uploads newline-joined genes as multipart form", func(t *testing.T) {
		var gotPath, gotList string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotList = r.FormValue("list")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"userListId": 66955877, "shortId": "28dd5f3e"}`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		sub, err := client.SubmitGeneList(context.Background(), domain.GeneSet{"TP53", "MDM2", "EGFR"})

		require.NoError(t, err)
		assert.Equal(t, "/addList", gotPath)
		assert.Equal(t, "TP53\nMDM2\nEGFR", gotList)
		assert.Equal(t, 66955877, sub.UserListID)
		assert.Equal(t, "28dd5f3e", sub.ShortID)
	})

	t.Run("rejects empty gene list locally", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("server should not be called for an empty list")
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		sub, err := client.SubmitGeneList(context.Background(), domain.GeneSet{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyGeneList)
		assert.Nil(t, sub)
	})

	t.Run("wraps non-2xx responses in APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		_, err := client.SubmitGeneList(context.Background(), domain.GeneSet{"TP53"})

		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "service unavailable")
		assert.Contains(t, apiErr.URL, "/addList")
	})

	t.Run("rejects acknowledgement without list ID", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"shortId": "28dd5f3e"}`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		_, err := client.SubmitGeneList(context.Background(), domain.GeneSet{"TP53"})

		assert.ErrorIs(t, err, ErrMissingListID)
	})

	t.Run("propagates context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"userListId": 1}`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewClient(testConfig(srv))
		_, err := client.SubmitGeneList(ctx, domain.GeneSet{"TP53"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestClient_Enrichment(t *testing.T) {
	t.Run("queries the enrich endpoint with list ID and library", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/enrich", r.URL.Path)
			assert.Equal(t, "66955877", r.URL.Query().Get("userListId"))
			assert.Equal(t, "KEGG_2021_Human", r.URL.Query().Get("backgroundType"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"KEGG_2021_Human": [
					[1, "p53 signaling pathway", 1.2e-7, -1.85, 29.4, ["TP53", "MDM2"], 3.4e-6, 2.1e-5, 4.4e-4]
				]
			}`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		result, err := client.Enrichment(context.Background(), 66955877, "KEGG_2021_Human")

		require.NoError(t, err)
		terms, ok := result["KEGG_2021_Human"]
		require.True(t, ok)
		require.Len(t, terms, 1)
		assert.Equal(t, "p53 signaling pathway", terms[0].Name)
		assert.Equal(t, []string{"TP53", "MDM2"}, terms[0].Genes)
	})

	t.Run("wraps non-2xx responses in APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		_, err := client.Enrichment(context.Background(), 1, "KEGG_2021_Human")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.False(t, IsRateLimited(err))
	})

	t.Run("backs off after a 429 response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "30")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		_, err := client.Enrichment(context.Background(), 1, "KEGG_2021_Human")

		require.Error(t, err)
		assert.True(t, IsRateLimited(err))
		assert.False(t, client.limiter.Allow(), "429 should start a backoff window")
	})

	t.Run("rejects malformed result payloads", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"KEGG_2021_Human": [[1, "only-two"]]}`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		_, err := client.Enrichment(context.Background(), 1, "KEGG_2021_Human")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})
}
