// Package models is the registry of supported embedding models. It maps a
// model name to its settings through a closed, compile-time table: adding
// support for a new model means adding a table entry, nothing else.
package models

import (
	"fmt"
	"sort"
	"strings"
)

// Supported model names.
const (
	TextEmbedding3Small = "text-embedding-3-small"
	TextEmbedding3Large = "text-embedding-3-large"
	TextEmbeddingAda002 = "text-embedding-ada-002"
)

// Settings describes an embedding model.
type Settings struct {
	// Name is the provider-side model identifier.
	Name string

	// Dimension is the length of the vectors the model produces.
	Dimension int

	// MaxInputTokens is the largest input the model accepts.
	MaxInputTokens int
}

// NotSupportedError is returned when a model name is outside the
// registry.
type NotSupportedError struct {
	// Name is the rejected model name.
	Name string
}

// Error implements the error interface.
func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s is not a supported model: choose from %s",
		e.Name, strings.Join(Available(), ", "))
}

var supported = map[string]Settings{
	TextEmbedding3Small: {
		Name:           TextEmbedding3Small,
		Dimension:      1536,
		MaxInputTokens: 8191,
	},
	TextEmbedding3Large: {
		Name:           TextEmbedding3Large,
		Dimension:      3072,
		MaxInputTokens: 8191,
	},
	TextEmbeddingAda002: {
		Name:           TextEmbeddingAda002,
		Dimension:      1536,
		MaxInputTokens: 8191,
	},
}

// Available returns the names of all supported models, sorted.
func Available() []string {
	names := make([]string, 0, len(supported))
	for name := range supported {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get looks up the settings for a model name. It returns a
// *NotSupportedError for names outside the registry.
func Get(name string) (Settings, error) {
	settings, ok := supported[name]
	if !ok {
		return Settings{}, &NotSupportedError{Name: name}
	}
	return settings, nil
}
