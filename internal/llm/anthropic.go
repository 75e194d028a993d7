package llm

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/enrich-cli/pkg/anthropic"
)

const defaultAnthropicModel = "claude-haiku-4-5-20251001"

// Anthropic sends the prompt as a single user message to the Messages API.
type Anthropic struct {
	model     string
	maxTokens int64
	client    anthropic.Client
}

// NewAnthropic builds an Anthropic provider.
func NewAnthropic(apiKey, model string, maxTokens int64) (*Anthropic, error) {
	if apiKey == "" {
		return nil, eris.New("llm: anthropic api key required")
	}
	return newAnthropic(anthropic.NewClient(apiKey), model, maxTokens), nil
}

func newAnthropic(client anthropic.Client, model string, maxTokens int64) *Anthropic {
	if model == "" {
		model = defaultAnthropicModel
	}
	return &Anthropic{model: model, maxTokens: maxTokens, client: client}
}

// Generate returns the concatenated text blocks of the reply.
func (a *Anthropic) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", eris.Wrap(err, "llm: anthropic message")
	}
	resp.Usage.LogCost(a.model, "extract")
	return strings.TrimSpace(resp.Text()), nil
}
