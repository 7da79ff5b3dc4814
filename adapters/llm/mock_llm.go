package llm

import (
	"context"

	"github.com/IamSagAr28/meditrack-health-app/domain/repositories"
)

// MockLLM answers every prompt without calling an external API
type MockLLM struct{}

// NewMockLLM creates a new mock completion provider
func NewMockLLM() repositories.LargeLanguageModel {
	return &MockLLM{}
}

// Generate implements repositories.LargeLanguageModel
func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "Understood. (mock) You asked: \"" + prompt + "\"", nil
}
