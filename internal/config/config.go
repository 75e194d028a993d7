package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Tavily TavilyConfig `yaml:"tavily" mapstructure:"tavily"`
	LLM    LLMConfig    `yaml:"llm" mapstructure:"llm"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// TavilyConfig holds Tavily search API settings.
type TavilyConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// LLMConfig selects the language-model backend and carries the settings
// for every supported provider.
type LLMConfig struct {
	Provider   string           `yaml:"provider" mapstructure:"provider"`
	OpenAI     OpenAIConfig     `yaml:"openai" mapstructure:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini" mapstructure:"gemini"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Perplexity PerplexityConfig `yaml:"perplexity" mapstructure:"perplexity"`
}

// OpenAIConfig holds OpenAI API settings.
type OpenAIConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	Model   string `yaml:"model" mapstructure:"model"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// GeminiConfig holds Google Gemini API settings.
type GeminiConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// PerplexityConfig holds Perplexity API settings.
type PerplexityConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Model   string `yaml:"model" mapstructure:"model"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// vendorEnv maps config keys to the vendor's conventional variable names,
// checked in addition to the ENRICH_ prefixed form.
var vendorEnv = map[string][]string{
	"tavily.key":         {"TAVILY_API_KEY"},
	"llm.openai.key":     {"OPENAI_API_KEY"},
	"llm.gemini.key":     {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	"llm.anthropic.key":  {"ANTHROPIC_API_KEY"},
	"llm.perplexity.key": {"PERPLEXITY_API_KEY"},
}

// Load reads configuration from .env, the config file and the environment.
func Load() (*Config, error) {
	// .env is optional; variables already set in the process win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, eris.Wrap(err, "config: load .env")
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ENRICH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range vendorEnv {
		envs := append([]string{"ENRICH_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, names...)
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, eris.Wrapf(err, "config: bind env %s", key)
		}
	}

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.cors_origins", []string{"http://localhost:5173"})
	v.SetDefault("tavily.base_url", "https://api.tavily.com")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.openai.model", "gpt-4.1-2025-04-14")
	v.SetDefault("llm.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.gemini.model", "gemini-1.5-flash")
	v.SetDefault("llm.anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("llm.anthropic.max_tokens", 256)
	v.SetDefault("llm.perplexity.base_url", "https://api.perplexity.ai")
	v.SetDefault("llm.perplexity.model", "sonar")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the settings needed by mode are present. Modes are
// "enrich" (single cell from the CLI) and "serve" (HTTP API).
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "enrich", "serve":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Tavily.Key == "" {
		problems = append(problems, "tavily.key is required")
	}
	if key, ok := c.LLM.activeKey(); !ok {
		problems = append(problems, fmt.Sprintf("llm.provider %q is not supported", c.LLM.Provider))
	} else if key == "" {
		problems = append(problems, fmt.Sprintf("llm.%s.key is required", c.LLM.Provider))
	}

	if mode == "serve" && c.Server.Port <= 0 {
		problems = append(problems, "server.port must be > 0")
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (l LLMConfig) activeKey() (string, bool) {
	switch l.Provider {
	case "openai":
		return l.OpenAI.Key, true
	case "gemini":
		return l.Gemini.Key, true
	case "anthropic":
		return l.Anthropic.Key, true
	case "perplexity":
		return l.Perplexity.Key, true
	default:
		return "", false
	}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
