package stringdb

import (
	"context"
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
		assert.Equal(t, DefaultTimeout, client.timeout)
		assert.Equal(t, DefaultCallerIdentity, client.caller)
	})

	t.Run("implements InteractionClient interface", func(t *testing.T) {
		var _ driven.InteractionClient = NewClient(Config{})
	})
}

func TestClient_Network(t *testing.T) {
	t.Run("joins identifiers with a carriage return", func(t *testing.T) {
		var gotQuery map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/json/network", r.URL.Path)
			gotQuery = map[string]string{
				"identifiers":     r.URL.Query().Get("identifiers"),
				"species":         r.URL.Query().Get("species"),
				"caller_identity": r.URL.Query().Get("caller_identity"),
			}
			_, _ = w.Write([]byte(`[{
				"stringId_A": "9606.ENSP00000269305",
				"stringId_B": "9606.ENSP00000258149",
				"preferredName_A": "TP53",
				"preferredName_B": "MDM2",
				"ncbiTaxonId": 9606,
				"score": 0.999,
				"nscore": 0, "fscore": 0, "pscore": 0,
				"ascore": 0.062, "escore": 0.922, "dscore": 0.9, "tscore": 0.997
			}]`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		edges, err := client.Network(context.Background(), "TP53", "MDM2", 9606)

		require.NoError(t, err)
		assert.Equal(t, "TP53\rMDM2", gotQuery["identifiers"])
		assert.Equal(t, "9606", gotQuery["species"])
		assert.Equal(t, DefaultCallerIdentity, gotQuery["caller_identity"])

		require.Len(t, edges, 1)
		assert.Equal(t, "TP53", edges[0].NameA)
		assert.Equal(t, "MDM2", edges[0].NameB)
		assert.InDelta(t, 0.999, edges[0].Score, 1e-9)
		assert.InDelta(t, 0.922, edges[0].Experimental, 1e-9)
	})

	t.Run("returns empty slice for unconnected proteins", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		edges, err := client.Network(context.Background(), "TP53", "RANDOMGENE", 9606)

		require.NoError(t, err)
		assert.Empty(t, edges)
	})

	t.Run("wraps non-2xx responses in APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid identifiers", http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		_, err := client.Network(context.Background(), "", "", 9606)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Contains(t, apiErr.URL, "/json/network")
	})
}

func TestClient_InteractionPartners(t *testing.T) {
	t.Run("passes the limit through and resolves names", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/json/interaction_partners", r.URL.Path)
			assert.Equal(t, "TP53", r.URL.Query().Get("identifiers"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[
				{"stringId_B": "9606.ENSP00000258149", "preferredName_B": "MDM2", "score": 0.999},
				{"stringId_B": "9606.ENSP00000347979", "preferredName_B": "", "score": 0.982},
				{"stringId_B": "", "preferredName_B": "", "score": 0.5}
			]`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		partners, err := client.InteractionPartners(context.Background(), "TP53", 9606, 5)

		require.NoError(t, err)
		require.Len(t, partners, 3)
		assert.Equal(t, "MDM2", partners[0].Name)
		assert.Equal(t, "9606.ENSP00000347979", partners[1].Name, "should fall back to the STRING identifier")
		assert.Equal(t, "Unknown", partners[2].Name)
		assert.InDelta(t, 0.999, partners[0].Score, 1e-9)
	})

	t.Run("backs off after a 429 response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		_, err := client.InteractionPartners(context.Background(), "TP53", 9606, 10)

		require.Error(t, err)
		assert.True(t, IsRateLimited(err))
		assert.False(t, client.limiter.Allow(), "429 should start a backoff window")
	})
}

func TestClient_FunctionalAnnotation(t *testing.T) {
	t.Run("decodes annotation rows and splits preferred names", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/json/functional_annotation", r.URL.Path)
			assert.Equal(t, "TP53\rMDM2", r.URL.Query().Get("identifiers"))
			_, _ = w.Write([]byte(`[{
				"category": "Process",
				"term": "GO:0006974",
				"description": "Cellular response to DNA damage stimulus",
				"number_of_genes": 2,
				"preferredNames": "TP53,MDM2"
			}]`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		annotations, err := client.FunctionalAnnotation(context.Background(), domain.GeneSet{"TP53", "MDM2"}, 9606)

		require.NoError(t, err)
		require.Len(t, annotations, 1)
		assert.Equal(t, "Process", annotations[0].Category)
		assert.Equal(t, "GO:0006974", annotations[0].Term)
		assert.Equal(t, 2, annotations[0].GeneCount)
		assert.Equal(t, []string{"TP53", "MDM2"}, annotations[0].Genes)
	})

	t.Run("rejects empty gene sets locally", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("server should not be called for an empty set")
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv))
		_, err := client.FunctionalAnnotation(context.Background(), domain.GeneSet{}, 9606)

		assert.ErrorIs(t, err, ErrEmptyGeneSet)
	})
}

func TestSplitNames(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		want   []string
	}{
		{"two names", "TP53,MDM2", []string{"TP53", "MDM2"}},
		{"single name", "TP53", []string{"TP53"}},
		{"padded names", " TP53 , MDM2 ", []string{"TP53", "MDM2"}},
		{"empty string", "", nil},
		{"stray commas", ",TP53,,MDM2,", []string{"TP53", "MDM2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitNames(tt.joined))
		})
	}
}
