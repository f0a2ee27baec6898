package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LLM provider identifiers accepted in LLM_PROVIDER.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderArk       = "ark"
)

// Default model per provider when LLM_MODEL is unset.
const (
	DefaultAnthropicModel = "claude-3-5-sonnet-20241022"
	DefaultOpenAIModel    = "gpt-4o-mini"
)

// Config aggregates all settings for the service.
type Config struct {
	Server ServerConfig
	AI     AIConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the upstream language model.
type AIConfig struct {
	Provider    string
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutSecs int

	AnthropicAPIKey string
	OpenAIAPIKey    string

	ArkAPIKey    string
	ArkAccessKey string
	ArkSecretKey string
	ArkBaseURL   string
	ArkRegion    string
}

func loadAIConfig() (AIConfig, error) {
	cfg := AIConfig{
		Provider:        strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderAnthropic)),
		Model:           strings.TrimSpace(os.Getenv("LLM_MODEL")),
		Temperature:     0.7,
		MaxTokens:       4096,
		TimeoutSecs:     60,
		AnthropicAPIKey: strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		ArkAPIKey:       strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		ArkAccessKey:    strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		ArkSecretKey:    strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		ArkBaseURL:      getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		ArkRegion:       getEnvOrDefault("ARK_REGION", "cn-beijing"),
	}

	temperature, err := parseOptionalFloatEnv("LLM_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}
	if temperature != nil {
		cfg.Temperature = *temperature
	}

	maxTokens, err := parseOptionalIntEnv("LLM_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}
	if maxTokens != nil {
		cfg.MaxTokens = *maxTokens
	}

	timeout, err := parseOptionalIntEnv("LLM_TIMEOUT")
	if err != nil {
		return AIConfig{}, err
	}
	if timeout != nil {
		cfg.TimeoutSecs = *timeout
	}

	if cfg.Model == "" {
		switch cfg.Provider {
		case ProviderAnthropic:
			cfg.Model = DefaultAnthropicModel
		case ProviderOpenAI:
			cfg.Model = DefaultOpenAIModel
		}
	}

	if err := cfg.validate(); err != nil {
		return AIConfig{}, err
	}

	return cfg, nil
}

// validate ensures the selected provider has the credentials it needs. The
// process refuses to start without them rather than failing on the first
// chat turn.
func (c AIConfig) validate() error {
	switch c.Provider {
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("missing ANTHROPIC_API_KEY environment variable")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("missing OPENAI_API_KEY environment variable")
		}
	case ProviderArk:
		if c.Model == "" {
			return fmt.Errorf("missing LLM_MODEL for ark provider")
		}
		if c.ArkAPIKey == "" && (c.ArkAccessKey == "" || c.ArkSecretKey == "") {
			return fmt.Errorf("missing ark credentials: provide ARK_API_KEY or ARK_ACCESS_KEY + ARK_SECRET_KEY")
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER: %q", c.Provider)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
