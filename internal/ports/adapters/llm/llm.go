package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const requestTimeout = 90 * time.Second

// Adapter talks to any OpenAI-compatible chat-completions endpoint
// (OpenAI itself or OpenRouter via a custom base URL).
type Adapter struct {
	client openai.Client
	model  string
}

func New(apiKey, model, baseURL string) *Adapter {
	if model == "" {
		model = "gpt-4o-mini"
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Adapter{client: openai.NewClient(opts...), model: model}
}

func (a *Adapter) IdentifyGenre(ctx context.Context, sample string) (string, error) {
	out, err := a.complete(ctx, completion{
		system:      "You are an AI trained to identify video genres.",
		user:        fmt.Sprintf("Identify the genre of this video based on the following text: '%s'. Answer with a short genre label only.", sample),
		temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("identify genre: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(out)), nil
}

func (a *Adapter) ImportanceNarrative(ctx context.Context, genre, transcript string) (string, error) {
	out, err := a.complete(ctx, completion{
		system:      fmt.Sprintf("You are selecting important moments for a %s video highlight reel.", genre),
		user:        fmt.Sprintf("Analyze the transcript and extract as many important moments as possible, focusing on detailed, granular segments for a %s video. Text: '%s'", genre, transcript),
		maxTokens:   500,
		temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("importance narrative: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(out)), nil
}

type completion struct {
	system      string
	user        string
	maxTokens   int64
	temperature float64
}

func (a *Adapter) complete(ctx context.Context, c completion) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.system),
			openai.UserMessage(c.user),
		},
		Model:       shared.ChatModel(a.model),
		Temperature: openai.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(c.maxTokens)
	}

	resp, err := a.client.Chat.Completions.New(reqCtx, params)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("llm timeout after %s (model=%s)", requestTimeout, a.model)
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm returned no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("llm returned empty content")
	}
	return content, nil
}
