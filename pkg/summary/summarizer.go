package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/epaperhq/newsrank/pkg/config"
	"github.com/epaperhq/newsrank/pkg/domain"
)

// Summarizer builds a short digest of a ranked section. With an
// OpenAI-compatible endpoint configured it asks the model; a model failure
// degrades to extractive lead sentences from enriched bodies, and when no
// bodies exist the digest falls back to headline bullets. A non-empty item
// list always yields a digest.
type Summarizer struct {
	client *openai.Client // nil when no endpoint configured
	cfg    config.SummaryConfig
}

const digestPrompt = `You write compact news digests.
Given numbered headlines with optional article leads, respond with a single plain-text paragraph of at most four sentences covering the main developments. No preamble, no markdown.`

// New creates a summarizer from configuration
func New(cfg config.SummaryConfig) *Summarizer {
	s := &Summarizer{cfg: cfg}
	if cfg.Endpoint != "" && cfg.Model != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		clientConfig.BaseURL = cfg.Endpoint
		s.client = openai.NewClientWithConfig(clientConfig)
	}
	return s
}

// Summarize returns a digest of the top ranked items for a section. Items
// past the configured top-N are ignored. An empty item list yields an empty
// digest without error.
func (s *Summarizer) Summarize(ctx context.Context, section string, items []domain.Item) (string, error) {
	top := items
	n := s.cfg.TopItems
	if n <= 0 {
		n = 5
	}
	if len(top) > n {
		top = top[:n]
	}
	if len(top) == 0 {
		return "", nil
	}

	if s.client != nil {
		digest, err := s.summarizeLLM(ctx, section, top)
		if err == nil && digest != "" {
			return digest, nil
		}
		if err != nil {
			lgr.Printf("[WARN] model digest for section %s failed, falling back: %v", section, err)
		}
	}

	if digest := extractive(top); digest != "" {
		return digest, nil
	}
	return bullets(top), nil
}

// summarizeLLM asks the configured model for a digest paragraph
func (s *Summarizer) summarizeLLM(ctx context.Context, section string, items []domain.Item) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s section:\n", section)
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, item.Title, item.Source)
		if lead := leadSentences(item.Body, 2); lead != "" {
			fmt.Fprintf(&b, "   %s\n", lead)
		}
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Temperature: 0.2,
		MaxTokens:   250,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: digestPrompt},
			{Role: openai.ChatMessageRoleUser, Content: b.String()},
		},
	})
	if err != nil {
		return "", fmt.Errorf("digest request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return strings.Trim(strings.TrimSpace(resp.Choices[0].Message.Content), "` \n"), nil
}

// extractive joins the lead sentence of each enriched body
func extractive(items []domain.Item) string {
	var parts []string
	for _, item := range items {
		if lead := leadSentences(item.Body, 1); lead != "" {
			parts = append(parts, lead)
		}
	}
	return strings.Join(parts, " ")
}

// bullets renders a headline-only digest, the lowest degradation tier
func bullets(items []domain.Item) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s)\n", item.Title, item.Source)
	}
	return strings.TrimRight(b.String(), "\n")
}

// leadCap bounds a lead taken from a body with no sentence terminator
const leadCap = 280

// leadSentences returns up to n sentences from the start of text
func leadSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	count := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
			if count == n {
				return strings.TrimSpace(text[:i+1])
			}
		}
	}

	if len(text) > leadCap {
		cut := strings.LastIndex(text[:leadCap], " ")
		if cut <= 0 {
			cut = leadCap
		}
		return text[:cut] + "..."
	}
	return text
}
