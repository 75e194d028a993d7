package llm

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rotisserie/eris"
)

const defaultOpenAIModel = "gpt-4.1-2025-04-14"

// OpenAI issues chat-completion requests with a single user message.
type OpenAI struct {
	model  openai.ChatModel
	client *openai.Client
}

// NewOpenAI builds an OpenAI provider. baseURL may be empty to use the SDK default.
func NewOpenAI(apiKey, model, baseURL string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, eris.New("llm: openai api key required")
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	cli := openai.NewClient(opts...)
	return &OpenAI{
		model:  openai.ChatModel(model),
		client: &cli,
	}, nil
}

// Generate returns the first choice's content.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "llm: openai chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", eris.New("llm: openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
