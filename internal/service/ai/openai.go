package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/asrlabs/advisor/backend/internal/config"
	"github.com/asrlabs/advisor/backend/internal/model/chat"
)

// openaiProvider drives the OpenAI Chat Completions API.
type openaiProvider struct {
	client openai.Client
	cfg    config.AIConfig
}

func newOpenAIProvider(cfg config.AIConfig) *openaiProvider {
	return &openaiProvider{
		client: openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey)),
		cfg:    cfg,
	}
}

func (p *openaiProvider) Name() string { return "openai" }

func (p *openaiProvider) Generate(ctx context.Context, transcript []chat.Message) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(transcript))
	for _, msg := range transcript {
		switch msg.Role {
		case chat.RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case chat.RoleUser:
			messages = append(messages, openai.UserMessage(msg.Content))
		case chat.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.cfg.Model),
		Messages:    messages,
		Temperature: openai.Float(p.cfg.Temperature),
		MaxTokens:   openai.Int(int64(p.cfg.MaxTokens)),
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion from model %s", p.cfg.Model)
	}

	return completion.Choices[0].Message.Content, nil
}
