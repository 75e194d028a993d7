package enrich

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/llm"
	"github.com/sells-group/enrich-cli/internal/metrics"
)

// Outcome is the result of Cell. Exactly one of Context and Error is set.
type Outcome struct {
	Context *Context `json:"context,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Failed reports whether the outer ErrorSentinel was returned.
func (o Outcome) Failed() bool {
	return o.Context == nil
}

// Value returns the answer, or the sentinel when the run failed.
func (o Outcome) Value() string {
	if o.Failed() {
		return o.Error
	}
	if a, ok := o.Context.AnswerText(); ok {
		return a
	}
	return NotFound
}

// Cell enriches one cell end to end. Any failure of the pipeline as a whole,
// including a failed search, comes back as ErrorSentinel rather than an error.
func Cell(
	ctx context.Context,
	columnName, targetValue string,
	contextValues map[string]string,
	searcher Searcher,
	provider llm.Provider,
) (out Outcome) {
	log := zap.L().With(zap.String("target", targetValue), zap.String("column", columnName))
	log.Info("enrich: starting cell enrichment")

	metrics.CellsActive.Inc()
	defer metrics.CellsActive.Dec()

	defer func() {
		if r := recover(); r != nil {
			log.Error("enrich: cell enrichment panicked", zap.Error(eris.Errorf("panic: %v", r)))
			out = Outcome{Error: ErrorSentinel}
		}
		if out.Failed() {
			metrics.CellsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		} else {
			metrics.CellsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
		}
	}()

	p, err := New(searcher, provider)
	if err != nil {
		log.Error("enrich: cell enrichment failed", zap.Error(err))
		return Outcome{Error: ErrorSentinel}
	}

	c := NewContext(columnName, targetValue, contextValues)
	if err := p.Run(ctx, c); err != nil {
		log.Error("enrich: cell enrichment failed", zap.String("run_id", c.RunID), zap.Error(err))
		return Outcome{Error: ErrorSentinel}
	}

	log.Info("enrich: completed cell enrichment", zap.String("run_id", c.RunID))
	return Outcome{Context: c}
}
