// Package llm abstracts the language-model backends used to extract answers.
// Every backend satisfies Provider; which one is active is decided once, by
// configuration, when the composition root calls New.
package llm

import (
	"context"
	"slices"

	"github.com/rotisserie/eris"

	"github.com/sells-group/enrich-cli/internal/config"
)

// Provider names accepted in llm.provider.
const (
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
	ProviderPerplexity = "perplexity"
)

// Provider generates a completion for a single prompt. Implementations return
// the completion with surrounding whitespace removed and never retry.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Names lists the supported provider names in a stable order.
func Names() []string {
	return []string{ProviderOpenAI, ProviderGemini, ProviderAnthropic, ProviderPerplexity}
}

// Supported reports whether name is a known provider.
func Supported(name string) bool {
	return slices.Contains(Names(), name)
}

// New builds the provider selected by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAI(cfg.OpenAI.Key, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
	case ProviderGemini:
		return NewGemini(ctx, cfg.Gemini.Key, cfg.Gemini.Model)
	case ProviderAnthropic:
		return NewAnthropic(cfg.Anthropic.Key, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
	case ProviderPerplexity:
		return NewPerplexity(cfg.Perplexity.Key, cfg.Perplexity.Model, cfg.Perplexity.BaseURL)
	default:
		return nil, eris.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
