package enrich

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/samber/lo"

	"github.com/sells-group/enrich-cli/pkg/tavily"
)

// contentSeparator joins the raw page content of consecutive results.
const contentSeparator = "\n\n---\n\n"

const extractPrompt = `Extract the %s of %s from this search result:

%s


Rules:
1. Provide ONLY the direct answer - no explanations
2. Be concise
3. If not found, respond "Information not found"
4. No citations or references
Direct Answer:`

// BuildQuery returns the search query for a cell, e.g. "CEO of Amazon?".
func BuildQuery(columnName, targetValue string) string {
	return fmt.Sprintf("%s of %s?", columnName, targetValue)
}

// CollectContent joins the raw content of every result that carries one, in
// result order. Results without raw content are skipped; an empty string
// still counts as content.
func CollectContent(result *tavily.SearchResponse) (string, error) {
	if result == nil {
		return "", eris.New("enrich: no search result")
	}
	contents := lo.FilterMap(result.Results, func(r tavily.Result, _ int) (string, bool) {
		if r.RawContent == nil {
			return "", false
		}
		return *r.RawContent, true
	})
	return strings.Join(contents, contentSeparator), nil
}

// BuildPrompt renders the extraction prompt.
func BuildPrompt(columnName, targetValue, content string) string {
	return fmt.Sprintf(extractPrompt, columnName, targetValue, content)
}
