package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const DefaultOpenAiModel = openai.GPT3Dot5TurboInstruct

// OpenAiServiceProvider talks to the text completions endpoint.
type OpenAiServiceProvider struct {
	model   string
	baseURL string
	client  *openai.Client
}

func (self *OpenAiServiceProvider) Prepare(apiKey string) error {
	if apiKey == "" {
		return ErrFailedPreparation
	}

	config := openai.DefaultConfig(apiKey)
	if self.baseURL != "" {
		config.BaseURL = self.baseURL
	}
	self.client = openai.NewClientWithConfig(config)
	return nil
}

func (self *OpenAiServiceProvider) Complete(ctx context.Context, prompt string, params Sampling) (string, error) {
	if self.client == nil {
		return "", ErrNotPrepared
	}

	request := openai.CompletionRequest{
		Model:       self.modelName(),
		Prompt:      prompt,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	}

	response, err := self.client.CreateCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return response.Choices[0].Text, nil
}

func (self *OpenAiServiceProvider) modelName() string {
	if self.model == "" {
		return DefaultOpenAiModel
	}
	return self.model
}

func (self *OpenAiServiceProvider) String() string {
	return fmt.Sprintf("openai-%s", self.modelName())
}
