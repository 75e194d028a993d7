package llm

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"google.golang.org/genai"

	"github.com/sells-group/enrich-cli/internal/offload"
)

const defaultGeminiModel = "gemini-1.5-flash"

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini calls the Gemini generateContent endpoint. The call blocks for the
// whole generation, so it runs on its own goroutine through offload.Do.
type Gemini struct {
	model  string
	models contentGenerator
}

// NewGemini builds a Gemini provider against the Gemini API backend.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, eris.New("llm: gemini api key required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, eris.Wrap(err, "llm: create gemini client")
	}
	return newGemini(client.Models, model), nil
}

func newGemini(models contentGenerator, model string) *Gemini {
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{model: model, models: models}
}

// Generate returns the concatenated text of the first candidate.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := offload.Do(ctx, func() (*genai.GenerateContentResponse, error) {
		return g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	})
	if err != nil {
		return "", eris.Wrap(err, "llm: gemini generate content")
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", eris.New("llm: gemini returned no candidates")
	}
	return strings.TrimSpace(resp.Text()), nil
}
