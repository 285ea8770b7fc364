package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epaperhq/newsrank/pkg/config"
	"github.com/epaperhq/newsrank/pkg/domain"
)

func testItems() []domain.Item {
	return []domain.Item{
		{Title: "Budget passes after long debate", Source: "Reuters",
			Body: "The budget passed late on Tuesday. Opposition members walked out."},
		{Title: "Monsoon arrives early", Source: "BBC News",
			Body: "Heavy rain reached the coast two weeks ahead of schedule."},
		{Title: "Cup final goes to penalties", Source: "AP"},
	}
}

func llmResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"role": "assistant", "content": content}},
		},
	}
}

func TestSummarizer_LLM(t *testing.T) {
	t.Run("model digest returned", func(t *testing.T) {
		var prompt string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Messages []struct {
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			prompt = req.Messages[len(req.Messages)-1].Content
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(llmResponse("A busy day: the budget passed and the monsoon arrived early.")))
		}))
		defer srv.Close()

		s := New(config.SummaryConfig{Endpoint: srv.URL + "/v1", APIKey: "test-key", Model: "test-model", TopItems: 5})
		digest, err := s.Summarize(context.Background(), "world", testItems())
		require.NoError(t, err)
		assert.Equal(t, "A busy day: the budget passed and the monsoon arrived early.", digest)
		assert.Contains(t, prompt, "world section:")
		assert.Contains(t, prompt, "1. Budget passes after long debate (Reuters)")
		assert.Contains(t, prompt, "The budget passed late on Tuesday.")
	})

	t.Run("model failure falls back to extractive", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		s := New(config.SummaryConfig{Endpoint: srv.URL + "/v1", APIKey: "test-key", Model: "test-model", TopItems: 5})
		digest, err := s.Summarize(context.Background(), "world", testItems())
		require.NoError(t, err)
		assert.Contains(t, digest, "The budget passed late on Tuesday.")
		assert.Contains(t, digest, "Heavy rain reached the coast two weeks ahead of schedule.")
	})

	t.Run("top items respected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Messages []struct {
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			prompt := req.Messages[len(req.Messages)-1].Content
			assert.NotContains(t, prompt, "Cup final")
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(llmResponse("short digest")))
		}))
		defer srv.Close()

		s := New(config.SummaryConfig{Endpoint: srv.URL + "/v1", APIKey: "test-key", Model: "test-model", TopItems: 2})
		digest, err := s.Summarize(context.Background(), "world", testItems())
		require.NoError(t, err)
		assert.Equal(t, "short digest", digest)
	})
}

func TestSummarizer_Fallback(t *testing.T) {
	t.Run("extractive from bodies without endpoint", func(t *testing.T) {
		s := New(config.SummaryConfig{TopItems: 5})
		digest, err := s.Summarize(context.Background(), "world", testItems())
		require.NoError(t, err)
		assert.Equal(t,
			"The budget passed late on Tuesday. Heavy rain reached the coast two weeks ahead of schedule.",
			digest)
	})

	t.Run("headline bullets when no bodies", func(t *testing.T) {
		items := []domain.Item{
			{Title: "Budget passes", Source: "Reuters"},
			{Title: "Monsoon arrives", Source: "BBC News"},
		}
		s := New(config.SummaryConfig{TopItems: 5})
		digest, err := s.Summarize(context.Background(), "world", items)
		require.NoError(t, err)
		assert.Equal(t, "- Budget passes (Reuters)\n- Monsoon arrives (BBC News)", digest)
	})

	t.Run("empty items yield empty digest", func(t *testing.T) {
		s := New(config.SummaryConfig{TopItems: 5})
		digest, err := s.Summarize(context.Background(), "world", nil)
		require.NoError(t, err)
		assert.Empty(t, digest)
	})
}

func TestLeadSentences(t *testing.T) {
	t.Run("takes the requested sentence count", func(t *testing.T) {
		text := "First sentence. Second sentence. Third sentence."
		assert.Equal(t, "First sentence.", leadSentences(text, 1))
		assert.Equal(t, "First sentence. Second sentence.", leadSentences(text, 2))
	})

	t.Run("whole text when shorter", func(t *testing.T) {
		assert.Equal(t, "No terminator here", leadSentences("No terminator here", 2))
	})

	t.Run("unterminated text capped at a word boundary", func(t *testing.T) {
		long := strings.Repeat("word ", 100)
		lead := leadSentences(long, 1)
		assert.LessOrEqual(t, len(lead), leadCap+3)
		assert.True(t, strings.HasSuffix(lead, "..."))
	})

	t.Run("empty body", func(t *testing.T) {
		assert.Empty(t, leadSentences("   ", 1))
	})
}
