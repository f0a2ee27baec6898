package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/asrlabs/advisor/backend/internal/config"
	"github.com/asrlabs/advisor/backend/internal/model/chat"
)

// arkProvider drives a Volcengine Ark endpoint through the eino chat model
// abstraction.
type arkProvider struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
}

func newArkProvider(ctx context.Context, cfg config.AIConfig) (*arkProvider, error) {
	temperature := float32(cfg.Temperature)
	maxTokens := cfg.MaxTokens

	chatModel, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL:     cfg.ArkBaseURL,
		Region:      cfg.ArkRegion,
		APIKey:      cfg.ArkAPIKey,
		AccessKey:   cfg.ArkAccessKey,
		SecretKey:   cfg.ArkSecretKey,
		Model:       cfg.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ark chat model: %w", err)
	}

	return &arkProvider{chatModel: chatModel, cfg: cfg}, nil
}

func (p *arkProvider) Name() string { return "ark" }

func (p *arkProvider) Generate(ctx context.Context, transcript []chat.Message) (string, error) {
	messages := make([]*schema.Message, 0, len(transcript))
	for _, msg := range transcript {
		switch msg.Role {
		case chat.RoleSystem:
			messages = append(messages, schema.SystemMessage(msg.Content))
		case chat.RoleUser:
			messages = append(messages, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(msg.Content, nil))
		}
	}

	response, err := p.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", err
	}

	return response.Content, nil
}
