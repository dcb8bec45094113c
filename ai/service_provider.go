package ai

import (
	"context"
	"errors"
	"fmt"
)

// Completer turns a prompt into completion text.
type Completer interface {
	Complete(ctx context.Context, prompt string, params Sampling) (string, error)
}

type AiServiceProvider interface {
	Completer
	Prepare(apiKey string) error
	String() string
}

// Sampling fixes how long and how varied a completion may be.
type Sampling struct {
	Temperature float32
	MaxTokens   int
}

var (
	PlanSampling       = Sampling{Temperature: 0.5, MaxTokens: 2000}
	DirectionsSampling = Sampling{Temperature: 0.5, MaxTokens: 150}
)

var (
	ErrFailedPreparation = errors.New("provider has failed to prepare")
	ErrNotPrepared       = errors.New("client not initialized, call Prepare() first")
	ErrEmptyCompletion   = errors.New("received empty completion")
)

type AiServiceType string

const (
	OpenAiServiceType    AiServiceType = "openai"
	AnthropicServiceType AiServiceType = "anthropic"
)

// NewAiServiceProvider returns an unprepared provider. An empty model selects the provider default.
func NewAiServiceProvider(serviceType AiServiceType, model string) (AiServiceProvider, error) {
	switch serviceType {
	case OpenAiServiceType:
		return &OpenAiServiceProvider{model: model}, nil
	case AnthropicServiceType:
		return &AnthropicServiceProvider{model: model}, nil
	}

	return nil, fmt.Errorf("unknown service type %q", serviceType)
}
