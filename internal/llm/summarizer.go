// Package llm generates an optional natural-language summary of a finished
// pipeline report using an OpenAI-compatible API. The summary is presentation
// only: it runs after all stages and never affects a score, flag or
// classification.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/quocbao2303/duui-pipeline-test/internal/model"
)

// Config holds summarizer settings.
type Config struct {
	Model     string
	APIKey    string
	BaseURL   string // Custom endpoint (e.g. a local OpenAI-compatible server)
	Timeout   int    // seconds
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// Summarizer wraps an OpenAI-compatible chat client.
type Summarizer struct {
	client *openai.Client
	config Config
}

// NewSummarizer creates a summarizer. The API key is required.
func NewSummarizer(config Config) (*Summarizer, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Summarize generates a short prose summary of the three stage outcomes.
func (s *Summarizer) Summarize(ctx context.Context, report *model.Report) (*model.LLMSummary, error) {
	chatModel := s.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	maxTokens := s.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}

	timeout := time.Duration(s.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You summarize text-analysis pipeline results. Describe only the scores given to you; never re-judge the text yourself.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(report),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	return &model.LLMSummary{
		Enabled:   true,
		Model:     resp.Model,
		SummaryMD: strings.TrimSpace(resp.Choices[0].Message.Content),
	}, nil
}

// BuildPrompt condenses the stage outcomes into a compact prompt.
func BuildPrompt(report *model.Report) string {
	var sb strings.Builder
	sb.WriteString("Summarize this analysis pipeline run in 3-4 sentences.\n\n")

	switch report.Sentiment.Status {
	case model.StatusOK:
		for _, s := range report.Sentiment.Sentences {
			fmt.Fprintf(&sb, "Sentiment: pos=%.4f neu=%.4f neg=%.4f\n", s.Pos, s.Neu, s.Neg)
		}
	default:
		sb.WriteString("Sentiment: no output\n")
	}

	switch report.Hate.Status {
	case model.StatusOK:
		for i, h := range report.Hate.Hate {
			nonHate := 0.0
			if i < len(report.Hate.NonHate) {
				nonHate = report.Hate.NonHate[i]
			}
			fmt.Fprintf(&sb, "Hate speech: hate=%.4f non_hate=%.4f\n", h, nonHate)
		}
	default:
		sb.WriteString("Hate speech: no output\n")
	}

	switch report.FactCheck.Status {
	case model.StatusOK, model.StatusDemo:
		if report.FactCheck.IsDemo {
			sb.WriteString("Fact check used locally synthesized fallback scores.\n")
		}
		for i, c := range report.FactCheck.Consistency {
			if i < len(report.Pairs) {
				fmt.Fprintf(&sb, "Claim %q vs fact %q: consistency=%.4f\n", report.Pairs[i].Claim, report.Pairs[i].Fact, c)
			}
		}
	default:
		sb.WriteString("Fact check: no output\n")
	}

	return sb.String()
}
