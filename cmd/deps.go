package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/config"
	"github.com/sells-group/enrich-cli/internal/enrich"
	"github.com/sells-group/enrich-cli/internal/llm"
	"github.com/sells-group/enrich-cli/pkg/tavily"
)

// enrichEnv holds the clients shared by the enrich and serve commands.
type enrichEnv struct {
	Searcher enrich.Searcher
	Provider llm.Provider
	// ProviderName is the llm.provider value the Provider was built from.
	ProviderName string
}

// initEnv validates cfg for mode and builds the search client and the
// configured language-model provider.
func initEnv(ctx context.Context, c *config.Config, mode string) (*enrichEnv, error) {
	if err := c.Validate(mode); err != nil {
		return nil, err
	}

	searcher := tavily.NewClient(c.Tavily.Key, tavily.WithBaseURL(c.Tavily.BaseURL))

	provider, err := llm.New(ctx, c.LLM)
	if err != nil {
		return nil, eris.Wrap(err, "init llm provider")
	}

	zap.L().Info("enrichment clients initialized",
		zap.String("llm_provider", c.LLM.Provider),
		zap.String("tavily_base_url", c.Tavily.BaseURL),
	)

	return &enrichEnv{
		Searcher:     searcher,
		Provider:     provider,
		ProviderName: c.LLM.Provider,
	}, nil
}
