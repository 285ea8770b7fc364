package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/epaperhq/newsrank/pkg/config"
	"github.com/epaperhq/newsrank/pkg/domain"
)

// Analyzer labels finance items with sentiment. When an OpenAI-compatible
// endpoint is configured it asks the model; otherwise it falls back to a
// small lexicon, so the engine works fully offline.
type Analyzer struct {
	client *openai.Client // nil when no endpoint configured
	cfg    config.SentimentConfig
}

const systemPrompt = `You label financial news sentiment.
Respond with a single JSON object: {"label": "positive"|"negative"|"neutral", "magnitude": 0.0-1.0}.
No other text.`

// NewAnalyzer creates a sentiment analyzer from configuration
func NewAnalyzer(cfg config.SentimentConfig) *Analyzer {
	a := &Analyzer{cfg: cfg}
	if cfg.Endpoint != "" && cfg.Model != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		clientConfig.BaseURL = cfg.Endpoint
		a.client = openai.NewClientWithConfig(clientConfig)
	}
	return a
}

// Analyze returns a sentiment label for the given headline, or nil when the
// text reads neutral
func (a *Analyzer) Analyze(ctx context.Context, title, description string) (*domain.Sentiment, error) {
	if a.client == nil {
		return lexiconSentiment(title + " " + description), nil
	}
	return a.analyzeLLM(ctx, title, description)
}

// analyzeLLM asks the configured model for a sentiment label
func (a *Analyzer) analyzeLLM(ctx context.Context, title, description string) (*domain.Sentiment, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		Temperature: 0,
		MaxTokens:   50,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: title + "\n\n" + description},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sentiment request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	var parsed struct {
		Label     string  `json:"label"`
		Magnitude float64 `json:"magnitude"`
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.Trim(content, "` \n")
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parse sentiment response: %w", err)
	}

	if parsed.Label != "positive" && parsed.Label != "negative" {
		return nil, nil // neutral carries no boost
	}
	return &domain.Sentiment{Label: parsed.Label, Magnitude: parsed.Magnitude}, nil
}

// small lexicons for the offline fallback
var positiveWords = []string{"surge", "rally", "gain", "record high", "profit", "beats", "upgrade", "growth"}
var negativeWords = []string{"crash", "plunge", "loss", "slump", "downgrade", "fraud", "default", "layoff"}

// lexiconSentiment counts lexicon hits; ties and misses read as neutral
func lexiconSentiment(text string) *domain.Sentiment {
	lower := strings.ToLower(text)

	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return &domain.Sentiment{Label: "positive", Magnitude: magnitude(pos - neg)}
	case neg > pos:
		return &domain.Sentiment{Label: "negative", Magnitude: magnitude(neg - pos)}
	}
	return nil
}

// magnitude maps a hit margin onto (0, 1]
func magnitude(margin int) float64 {
	m := 0.4 + 0.2*float64(margin)
	if m > 1 {
		m = 1
	}
	return m
}
