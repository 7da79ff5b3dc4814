package repositories

import "context"

// LargeLanguageModel abstracts any text completion provider
type LargeLanguageModel interface {
	// Generate takes a user prompt and returns the model's reply
	Generate(ctx context.Context, prompt string) (string, error)
}
