package enrich

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/enrich-cli/pkg/tavily"
)

// --- Searcher Mock ---

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, req tavily.SearchRequest) (*tavily.SearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tavily.SearchResponse), args.Error(1)
}

// --- Provider Mock ---

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func strPtr(s string) *string { return &s }
