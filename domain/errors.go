package domain

import "errors"

var (
	// ErrNotConfigured is returned when the provider behind an operation has
	// no credential configured.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrEmptyResponse is returned when an upstream service answers without
	// usable text.
	ErrEmptyResponse = errors.New("empty response from upstream service")

	// ErrEmptyAudio is returned for uploads without a name or content.
	ErrEmptyAudio = errors.New("empty audio file")
)
