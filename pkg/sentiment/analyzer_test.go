package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epaperhq/newsrank/pkg/config"
)

func TestAnalyzer_Lexicon(t *testing.T) {
	a := NewAnalyzer(config.SentimentConfig{}) // no endpoint, lexicon fallback
	ctx := context.Background()

	t.Run("positive", func(t *testing.T) {
		s, err := a.Analyze(ctx, "Markets rally as profits surge", "")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "positive", s.Label)
		assert.Greater(t, s.Magnitude, 0.0)
		assert.LessOrEqual(t, s.Magnitude, 1.0)
	})

	t.Run("negative", func(t *testing.T) {
		s, err := a.Analyze(ctx, "Shares crash after fraud probe", "")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "negative", s.Label)
	})

	t.Run("neutral reads as nil", func(t *testing.T) {
		s, err := a.Analyze(ctx, "Quarterly report published", "")
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("mixed signals cancel out", func(t *testing.T) {
		s, err := a.Analyze(ctx, "Profit booked after earlier loss", "")
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("magnitude grows with margin but caps at one", func(t *testing.T) {
		weak, err := a.Analyze(ctx, "Profits surge", "")
		require.NoError(t, err)
		strong, err := a.Analyze(ctx, "Record high profit growth beats upgrade as markets surge and rally", "")
		require.NoError(t, err)

		require.NotNil(t, weak)
		require.NotNil(t, strong)
		assert.Greater(t, strong.Magnitude, weak.Magnitude)
		assert.LessOrEqual(t, strong.Magnitude, 1.0)
	})
}

// llmResponse builds a chat completion body with the given content
func llmResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"role": "assistant", "content": content}},
		},
	}
}

func TestAnalyzer_LLM(t *testing.T) {
	newServer := func(t *testing.T, content string) *httptest.Server {
		t.Helper()
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(llmResponse(content)))
		}))
	}

	newAnalyzer := func(srv *httptest.Server) *Analyzer {
		return NewAnalyzer(config.SentimentConfig{
			Endpoint: srv.URL + "/v1",
			APIKey:   "test-key",
			Model:    "test-model",
		})
	}

	t.Run("labeled response", func(t *testing.T) {
		srv := newServer(t, `{"label": "positive", "magnitude": 0.7}`)
		defer srv.Close()

		s, err := newAnalyzer(srv).Analyze(context.Background(), "Sensex surges", "")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "positive", s.Label)
		assert.InDelta(t, 0.7, s.Magnitude, 0.001)
	})

	t.Run("fenced json tolerated", func(t *testing.T) {
		srv := newServer(t, "```json\n{\"label\": \"negative\", \"magnitude\": 0.5}\n```")
		defer srv.Close()

		s, err := newAnalyzer(srv).Analyze(context.Background(), "Shares slump", "")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "negative", s.Label)
	})

	t.Run("neutral label yields nil without error", func(t *testing.T) {
		srv := newServer(t, `{"label": "neutral", "magnitude": 0.1}`)
		defer srv.Close()

		s, err := newAnalyzer(srv).Analyze(context.Background(), "Report published", "")
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("garbage response errors", func(t *testing.T) {
		srv := newServer(t, "sorry, I cannot help with that")
		defer srv.Close()

		_, err := newAnalyzer(srv).Analyze(context.Background(), "Sensex surges", "")
		require.Error(t, err)
	})

	t.Run("server failure errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newAnalyzer(srv).Analyze(context.Background(), "Sensex surges", "")
		require.Error(t, err)
	})
}
