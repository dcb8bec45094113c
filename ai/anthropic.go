package ai

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultAnthropicModel = anthropic.ModelClaude3_5HaikuLatest

type AnthropicServiceProvider struct {
	model   string
	options []option.RequestOption
	client  *anthropic.Client
}

func (self *AnthropicServiceProvider) Prepare(apiKey string) error {
	if apiKey == "" {
		return ErrFailedPreparation
	}

	options := append([]option.RequestOption{option.WithAPIKey(apiKey)}, self.options...)
	self.client = anthropic.NewClient(options...)
	return nil
}

func (p *AnthropicServiceProvider) Complete(ctx context.Context, prompt string, params Sampling) (string, error) {
	if p.client == nil {
		return "", ErrNotPrepared
	}

	msg := anthropic.MessageNewParams{
		Model:       anthropic.F(p.modelName()),
		MaxTokens:   anthropic.Int(int64(params.MaxTokens)),
		Temperature: anthropic.F(float64(params.Temperature)),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		}),
	}

	resp, err := p.client.Messages.New(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Content[0].Text, nil
}

func (self *AnthropicServiceProvider) modelName() anthropic.Model {
	if self.model == "" {
		return DefaultAnthropicModel
	}
	return anthropic.Model(self.model)
}

func (self *AnthropicServiceProvider) String() string {
	return fmt.Sprintf("anthropic-%s", self.modelName())
}
