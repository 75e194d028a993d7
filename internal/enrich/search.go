package enrich

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/offload"
	"github.com/sells-group/enrich-cli/pkg/tavily"
)

// maxSearchResults caps the number of Tavily hits fed to extraction.
const maxSearchResults = 5

// Searcher runs a web search. tavily.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, req tavily.SearchRequest) (*tavily.SearchResponse, error)
}

// searchRequest returns the request issued for a cell.
func searchRequest(columnName, targetValue string) tavily.SearchRequest {
	return tavily.SearchRequest{
		Query:             BuildQuery(columnName, targetValue),
		SearchDepth:       tavily.DepthAdvanced,
		AutoParameters:    true,
		MaxResults:        maxSearchResults,
		IncludeRawContent: true,
	}
}

// search runs the web search for c and stores the response in c.SearchResult.
// Errors are logged and returned; there is no fallback.
func (p *Pipeline) search(ctx context.Context, c *Context, log *zap.Logger) error {
	req := searchRequest(c.ColumnName, c.TargetValue)
	log.Info("enrich: searching tavily", zap.String("query", req.Query))

	result, err := offload.Do(ctx, func() (*tavily.SearchResponse, error) {
		return p.searcher.Search(ctx, req)
	})
	if err != nil {
		log.Error("enrich: search failed", zap.String("query", req.Query), zap.Error(err))
		return eris.Wrap(err, "enrich: search")
	}
	if result == nil {
		log.Error("enrich: search failed", zap.String("query", req.Query))
		return eris.New("enrich: empty search response")
	}

	log.Info("enrich: tavily search result",
		zap.ByteString("auto_parameters", result.AutoParameters),
		zap.Int("results", len(result.Results)),
		zap.Any("search_result", result),
	)

	c.SearchResult = result
	return nil
}
