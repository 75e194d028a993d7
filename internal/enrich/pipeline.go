package enrich

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/llm"
	"github.com/sells-group/enrich-cli/internal/metrics"
)

// Pipeline runs search then extraction for one cell at a time. It holds no
// per-cell state and is safe for concurrent use.
type Pipeline struct {
	searcher Searcher
	provider llm.Provider
}

// New creates a Pipeline over a search client and a language-model provider.
func New(searcher Searcher, provider llm.Provider) (*Pipeline, error) {
	if searcher == nil {
		return nil, eris.New("enrich: searcher is required")
	}
	if provider == nil {
		return nil, eris.New("enrich: llm provider is required")
	}
	return &Pipeline{searcher: searcher, provider: provider}, nil
}

// Run executes search and then extraction on c. A search error aborts the run
// and leaves c.Answer nil; extraction errors are absorbed into NotFound.
func (p *Pipeline) Run(ctx context.Context, c *Context) error {
	log := zap.L().With(
		zap.String("run_id", c.RunID),
		zap.String("column", c.ColumnName),
		zap.String("target", c.TargetValue),
	)

	start := time.Now()
	err := p.search(ctx, c, log)
	metrics.StepDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StepsTotal.WithLabelValues("search", metrics.OutcomeError).Inc()
		return err
	}
	metrics.StepsTotal.WithLabelValues("search", metrics.OutcomeOK).Inc()

	start = time.Now()
	ok := p.extract(ctx, c, log)
	metrics.StepDuration.WithLabelValues("extract").Observe(time.Since(start).Seconds())
	if ok {
		metrics.StepsTotal.WithLabelValues("extract", metrics.OutcomeOK).Inc()
	} else {
		metrics.StepsTotal.WithLabelValues("extract", metrics.OutcomeFallback).Inc()
	}

	return nil
}
