package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ---------------------------------------------------------------------------
// AI rate estimator – fallback when the scrape is unavailable
// ---------------------------------------------------------------------------

// AIRateEstimator asks an LLM for the current benchmark 30-year FHA rate.
// It is strictly a fallback: the composite provider only reaches it when the
// scraper fails or its breaker is open.
type AIRateEstimator struct {
	client *openai.Client
	model  string
}

// NewAIRateEstimator creates an estimator using the given API key.
func NewAIRateEstimator(apiKey string) *AIRateEstimator {
	return &AIRateEstimator{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

// CurrentRate implements port.RateProvider.
func (e *AIRateEstimator) CurrentRate(ctx context.Context) (float64, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     e.model,
		MaxTokens: 10,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a mortgage rate reference. Answer with a single number: " +
					"the current average 30-year fixed FHA interest rate in the United States, " +
					"as an annual percentage. No symbols, no words, just the number.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "What is the current 30-year fixed FHA rate?",
			},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("ai rate lookup: %w", err)
	}
	if len(resp.Choices) == 0 {
		return 0, fmt.Errorf("ai rate lookup: empty response")
	}

	return parseRateAnswer(resp.Choices[0].Message.Content)
}

// parseRateAnswer extracts a plausible annual percentage from the model's
// answer, tolerating a stray percent sign or trailing prose.
func parseRateAnswer(answer string) (float64, error) {
	fields := strings.Fields(strings.ReplaceAll(answer, "%", " "))
	for _, f := range fields {
		r, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			continue
		}
		if r >= 1 && r <= 20 {
			return r, nil
		}
	}
	return 0, fmt.Errorf("ai rate lookup: unparseable answer %q", answer)
}
