package llm

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/pkg/perplexity"
)

// Perplexity answers the prompt with a Sonar model through pkg/perplexity.
type Perplexity struct {
	client perplexity.Client
}

// NewPerplexity builds a Perplexity provider. Empty model or baseURL keep the
// client defaults.
func NewPerplexity(apiKey, model, baseURL string) (*Perplexity, error) {
	if apiKey == "" {
		return nil, eris.New("llm: perplexity api key required")
	}
	var opts []perplexity.Option
	if model != "" {
		opts = append(opts, perplexity.WithModel(model))
	}
	if baseURL != "" {
		opts = append(opts, perplexity.WithBaseURL(baseURL))
	}
	return newPerplexity(perplexity.NewClient(apiKey, opts...)), nil
}

func newPerplexity(client perplexity.Client) *Perplexity {
	return &Perplexity{client: client}
}

// Generate returns the completion text; citations are logged, not returned.
func (p *Perplexity) Generate(ctx context.Context, prompt string) (string, error) {
	c, err := p.client.Complete(ctx, prompt)
	if err != nil {
		return "", eris.Wrap(err, "llm: perplexity complete")
	}
	zap.L().Debug("llm: perplexity completion",
		zap.String("model", c.Model),
		zap.Strings("citations", c.Citations),
		zap.Int64("completion_tokens", c.Usage.CompletionTokens),
	)
	return c.Text, nil
}
