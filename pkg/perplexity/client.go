// Package perplexity answers single prompts with Perplexity's Sonar models.
// The API speaks the OpenAI chat completions wire format, so requests go
// through openai-go pointed at the Perplexity base URL.
package perplexity

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://api.perplexity.ai"
	defaultModel   = "sonar"
)

// Client completes one prompt at a time.
type Client interface {
	Complete(ctx context.Context, prompt string) (*Completion, error)
}

// Completion is the answer to a single prompt, with surrounding whitespace
// removed.
type Completion struct {
	Text      string
	Model     string
	Citations []string
	Usage     Usage
}

// Usage reports token consumption.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
}

// Option configures the client.
type Option func(*sdkClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *sdkClient) {
		c.baseURL = url
	}
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *sdkClient) {
		c.model = model
	}
}

// WithMaxTokens caps the completion length. Zero leaves the API default.
func WithMaxTokens(n int64) Option {
	return func(c *sdkClient) {
		c.maxTokens = n
	}
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *sdkClient) {
		c.httpClient = hc
	}
}

type sdkClient struct {
	baseURL    string
	model      string
	maxTokens  int64
	httpClient *http.Client
	client     openai.Client
}

// NewClient creates a Perplexity client. Requests are attempted once.
func NewClient(apiKey string, opts ...Option) Client {
	c := &sdkClient{
		baseURL: defaultBaseURL,
		model:   defaultModel,
	}
	for _, o := range opts {
		o(c)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(c.baseURL),
		option.WithMaxRetries(0),
	}
	if c.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(c.httpClient))
	}
	c.client = openai.NewClient(reqOpts...)
	return c
}

func (c *sdkClient) Complete(ctx context.Context, prompt string) (*Completion, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, eris.New("perplexity: empty prompt")
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(c.maxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, eris.Wrap(err, "perplexity: chat completion")
	}
	if len(resp.Choices) == 0 {
		return nil, eris.New("perplexity: no choices returned")
	}

	return &Completion{
		Text:      strings.TrimSpace(resp.Choices[0].Message.Content),
		Model:     resp.Model,
		Citations: citations(resp.RawJSON()),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// citations pulls Perplexity's top-level citations array, which is not part
// of the OpenAI response schema.
func citations(raw string) []string {
	var body struct {
		Citations []string `json:"citations"`
	}
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil
	}
	return body.Citations
}
