package config

import (
	"strings"
	"testing"
)

// clearLLMEnv pins every variable Load reads so ambient environment cannot
// leak into tests.
func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT",
		"LLM_PROVIDER", "LLM_MODEL", "LLM_TEMPERATURE", "LLM_MAX_TOKENS", "LLM_TIMEOUT",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY",
		"ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "ARK_BASE_URL", "ARK_REGION",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("default addr = %s, want :8080", cfg.Server.Addr)
	}
	if cfg.AI.Provider != ProviderAnthropic {
		t.Fatalf("default provider = %s, want anthropic", cfg.AI.Provider)
	}
	if cfg.AI.Model != DefaultAnthropicModel {
		t.Fatalf("default model = %s, want %s", cfg.AI.Model, DefaultAnthropicModel)
	}
	if cfg.AI.Temperature != 0.7 {
		t.Fatalf("default temperature = %v, want 0.7", cfg.AI.Temperature)
	}
	if cfg.AI.MaxTokens != 4096 {
		t.Fatalf("default max tokens = %d, want 4096", cfg.AI.MaxTokens)
	}
	if cfg.AI.TimeoutSecs != 60 {
		t.Fatalf("default timeout = %d, want 60", cfg.AI.TimeoutSecs)
	}
}

func TestLoadPortVariants(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	t.Setenv("PORT", "9090")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %s, want :9090", cfg.Server.Addr)
	}

	t.Setenv("PORT", "127.0.0.1:9090")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Fatalf("addr = %s, want passthrough", cfg.Server.Addr)
	}

	t.Setenv("PORT", "bad port")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT with whitespace")
	}
}

func TestLoadMissingAnthropicKey(t *testing.T) {
	clearLLMEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when ANTHROPIC_API_KEY is unset")
	}
	if !strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
		t.Fatalf("error must name the missing variable: %v", err)
	}
}

func TestLoadOpenAIProvider(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("LLM_PROVIDER", "openai")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when OPENAI_API_KEY is unset")
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Model != DefaultOpenAIModel {
		t.Fatalf("model = %s, want %s", cfg.AI.Model, DefaultOpenAIModel)
	}
}

func TestLoadArkProvider(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("LLM_PROVIDER", "ark")

	// Ark has no default model; it must be configured explicitly.
	t.Setenv("ARK_API_KEY", "ark-key")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when LLM_MODEL is unset for ark")
	}

	t.Setenv("LLM_MODEL", "doubao-pro")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Model != "doubao-pro" {
		t.Fatalf("model = %s, want doubao-pro", cfg.AI.Model)
	}
	if cfg.AI.ArkRegion != "cn-beijing" {
		t.Fatalf("region = %s, want default cn-beijing", cfg.AI.ArkRegion)
	}
}

func TestLoadUnsupportedProvider(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("LLM_PROVIDER", "carrier-pigeon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("LLM_MODEL", "claude-3-opus-20240229")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_MAX_TOKENS", "1024")
	t.Setenv("LLM_TIMEOUT", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Model != "claude-3-opus-20240229" {
		t.Fatalf("model override not applied: %s", cfg.AI.Model)
	}
	if cfg.AI.Temperature != 0.2 {
		t.Fatalf("temperature override not applied: %v", cfg.AI.Temperature)
	}
	if cfg.AI.MaxTokens != 1024 {
		t.Fatalf("max tokens override not applied: %d", cfg.AI.MaxTokens)
	}
	if cfg.AI.TimeoutSecs != 15 {
		t.Fatalf("timeout override not applied: %d", cfg.AI.TimeoutSecs)
	}
}

func TestLoadInvalidTemperature(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("LLM_TEMPERATURE", "warm")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric temperature")
	}
}
