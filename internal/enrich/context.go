// Package enrich answers a single spreadsheet cell, such as "CEO" of
// "Amazon", by running a web search and asking a language model to pull
// the direct answer out of the returned pages.
package enrich

import (
	"github.com/google/uuid"

	"github.com/sells-group/enrich-cli/pkg/tavily"
)

// Sentinel values substituted for a real answer on failure.
const (
	// NotFound is the answer when extraction fails or the model finds nothing.
	NotFound = "Information not found"
	// ErrorSentinel is returned by Cell when the pipeline itself fails.
	ErrorSentinel = "Error during enrichment"
)

// Context is the state threaded through the pipeline for one cell. SearchResult
// is written only by the search step and Answer only by the extraction step.
type Context struct {
	RunID         string                 `json:"run_id"`
	ColumnName    string                 `json:"column_name"`
	TargetValue   string                 `json:"target_value"`
	ContextValues map[string]string      `json:"context_values,omitempty"`
	SearchResult  *tavily.SearchResponse `json:"search_result,omitempty"`
	Answer        *string                `json:"answer"`
}

// NewContext creates a fresh context with no search result and no answer.
func NewContext(columnName, targetValue string, contextValues map[string]string) *Context {
	return &Context{
		RunID:         uuid.New().String(),
		ColumnName:    columnName,
		TargetValue:   targetValue,
		ContextValues: contextValues,
	}
}

// AnswerText returns the answer and whether the extraction step set one.
func (c *Context) AnswerText() (string, bool) {
	if c.Answer == nil {
		return "", false
	}
	return *c.Answer, true
}

func (c *Context) setAnswer(s string) {
	c.Answer = &s
}
