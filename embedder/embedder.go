// Package embedder generates vector embeddings for text chunks.
package embedder

import "context"

// Embedder generates embeddings for text.
type Embedder interface {
	// Embed generates an embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts, preserving
	// order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the length of the produced vectors.
	Dimension() int

	// Model returns the model name in use.
	Model() string
}
