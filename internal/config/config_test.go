package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// chdirTemp switches into an empty directory so no config.yaml or .env is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	for _, names := range vendorEnv {
		for _, n := range names {
			t.Setenv(n, "")
		}
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "https://api.tavily.com", cfg.Tavily.BaseURL)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4.1-2025-04-14", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Gemini.Model)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.LLM.Anthropic.Model)
	assert.Equal(t, int64(256), cfg.LLM.Anthropic.MaxTokens)
	assert.Equal(t, "sonar", cfg.LLM.Perplexity.Model)
	assert.Empty(t, cfg.Tavily.Key)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
  format: console
server:
  port: 9090
llm:
  provider: openai
  openai:
    model: gpt-4o-mini
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.Model)
	// Defaults still apply for unset values
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Gemini.Model)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
llm:
  provider: openai
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("ENRICH_LLM_PROVIDER", "anthropic")
	t.Setenv("ENRICH_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadVendorKeys(t *testing.T) {
	chdirTemp(t)

	t.Setenv("TAVILY_API_KEY", "tvly-abc")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("PERPLEXITY_API_KEY", "pplx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tvly-abc", cfg.Tavily.Key)
	assert.Equal(t, "sk-openai", cfg.LLM.OpenAI.Key)
	assert.Equal(t, "g-key", cfg.LLM.Gemini.Key)
	assert.Equal(t, "sk-ant", cfg.LLM.Anthropic.Key)
	assert.Equal(t, "pplx", cfg.LLM.Perplexity.Key)
}

func TestLoadPrefixedKeyWinsOverVendorName(t *testing.T) {
	chdirTemp(t)

	t.Setenv("ENRICH_TAVILY_KEY", "tvly-prefixed")
	t.Setenv("TAVILY_API_KEY", "tvly-vendor")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tvly-prefixed", cfg.Tavily.Key)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	os.Unsetenv("TAVILY_API_KEY")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TAVILY_API_KEY=tvly-from-dotenv\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("TAVILY_API_KEY") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tvly-from-dotenv", cfg.Tavily.Key)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.Tavily.Key = "tvly-key"
	cfg.LLM.Provider = "gemini"
	cfg.LLM.Gemini.Key = "g-key"
	cfg.Server.Port = 8000
	return cfg
}

func TestValidate_AllPresent(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate("enrich"))
	assert.NoError(t, cfg.Validate("serve"))
}

func TestValidate_MissingKeys(t *testing.T) {
	cfg := &Config{}
	cfg.LLM.Provider = "openai"

	err := cfg.Validate("enrich")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tavily.key is required")
	assert.Contains(t, err.Error(), "llm.openai.key is required")
}

func TestValidate_UnsupportedProvider(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.Provider = "llama"

	err := cfg.Validate("enrich")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `llm.provider "llama" is not supported`)
}

func TestValidate_ServePort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0

	assert.NoError(t, cfg.Validate("enrich"))
	err := cfg.Validate("serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidate_UnknownMode(t *testing.T) {
	err := validConfig().Validate("batch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
