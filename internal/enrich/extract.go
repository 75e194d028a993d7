package enrich

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// extract asks the provider for the answer and stores it in c.Answer. It never
// fails: any error, or a panic in the provider, is logged and the answer
// becomes NotFound.
func (p *Pipeline) extract(ctx context.Context, c *Context, log *zap.Logger) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("enrich: extraction panicked", zap.Error(eris.Errorf("panic: %v", r)))
			c.setAnswer(NotFound)
			ok = false
		}
	}()

	content, err := CollectContent(c.SearchResult)
	if err != nil {
		log.Error("enrich: extraction failed", zap.Error(err))
		c.setAnswer(NotFound)
		return false
	}
	log.Debug("enrich: extraction content", zap.String("content", content))

	prompt := BuildPrompt(c.ColumnName, c.TargetValue, content)
	log.Info("enrich: extracting answer")

	answer, err := p.provider.Generate(ctx, prompt)
	if err != nil {
		log.Error("enrich: extraction failed", zap.Error(err))
		c.setAnswer(NotFound)
		return false
	}

	log.Info("enrich: extracted answer",
		zap.String("prompt", prompt),
		zap.String("answer", answer),
	)
	c.setAnswer(answer)
	return true
}
