package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
)

const defaultOpenAIChatModel = "gpt-4o-mini"

// OpenAIConfig holds configuration for the OpenAILLM adapter
type OpenAIConfig struct {
	APIKey    string // Required
	BaseURL   string // Optional, for OpenAI compatible gateways
	Model     string // Optional, defaults to gpt-4o-mini
	MaxTokens int    // Optional
}

// OpenAILLM implements the LargeLanguageModel interface using the chat
// completions API
type OpenAILLM struct {
	client    *openai.Client
	logger    *zap.Logger
	model     string
	maxTokens int
}

var _ repositories.LargeLanguageModel = (*OpenAILLM)(nil)

// NewOpenAILLM creates a new OpenAI chat completion adapter
func NewOpenAILLM(config OpenAIConfig, logger *zap.Logger) (*OpenAILLM, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	model := config.Model
	if model == "" {
		model = defaultOpenAIChatModel
	}

	return &OpenAILLM{
		client:    openai.NewClientWithConfig(clientConfig),
		logger:    logger,
		model:     model,
		maxTokens: config.MaxTokens,
	}, nil
}

// Generate sends the prompt as a single user message.
func (o *OpenAILLM) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: o.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		o.logger.Warn("OpenAI returned no choices", zap.String("model", o.model))
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
