package ai

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/asrlabs/advisor/backend/internal/config"
	"github.com/asrlabs/advisor/backend/internal/model/chat"
)

// Provider is the capability the relay needs from an upstream model: turn a
// full transcript into one reply. Implementations make exactly one API call
// per invocation; there is no retry layer.
type Provider interface {
	// Generate produces the assistant reply for the given transcript. The
	// transcript arrives in conversation order and may start with a system
	// message.
	Generate(ctx context.Context, transcript []chat.Message) (string, error)

	// Name identifies the provider for logging.
	Name() string
}

// Service wraps the configured provider with the per-call timeout. It is
// the single boundary between conversation state and the upstream API.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService selects and constructs the provider named in the configuration.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	var (
		provider Provider
		err      error
	)

	switch cfg.Provider {
	case config.ProviderAnthropic:
		provider = newAnthropicProvider(cfg)
	case config.ProviderOpenAI:
		provider = newOpenAIProvider(cfg)
	case config.ProviderArk:
		provider, err = newArkProvider(ctx, cfg)
	default:
		err = fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create llm provider: %w", err)
	}

	return NewServiceWithProvider(provider, time.Duration(cfg.TimeoutSecs)*time.Second), nil
}

// NewServiceWithProvider wires an already-built provider; used by tests and
// by callers that manage provider construction themselves.
func NewServiceWithProvider(provider Provider, timeout time.Duration) *Service {
	return &Service{provider: provider, timeout: timeout}
}

// GenerateReply runs a single upstream call bounded by the configured
// timeout. Any failure, including timeout, is returned to the caller; no
// retries, no fallback.
func (s *Service) GenerateReply(ctx context.Context, transcript []chat.Message) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.provider.Generate(ctx, transcript)
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.provider.Name(), err)
	}

	log.Printf("[ai] %s replied, transcript=%d messages, reply=%d bytes",
		s.provider.Name(), len(transcript), len(reply))
	return reply, nil
}
