package embedder

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tsawler/segmenta/models"
)

// batchConcurrency limits parallel API calls during batch embedding.
const batchConcurrency = 10

// OpenAI generates embeddings through the OpenAI API.
type OpenAI struct {
	client   *openai.Client
	settings models.Settings
}

// NewOpenAI creates an OpenAI embedder for a model from the registry. The
// API key is read from the OPENAI_API_KEY environment variable.
func NewOpenAI(modelName string) (*OpenAI, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}
	return NewOpenAIWithClient(openai.NewClient(key), modelName)
}

// NewOpenAIWithClient creates an OpenAI embedder with an existing client.
// Useful for custom base URLs and for testing.
func NewOpenAIWithClient(client *openai.Client, modelName string) (*OpenAI, error) {
	settings, err := models.Get(modelName)
	if err != nil {
		return nil, err
	}
	return &OpenAI{
		client:   client,
		settings: settings,
	}, nil
}

// Embed generates an L2-normalized embedding for a single text.
func (e *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, errors.New("cannot embed empty text")
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(e.settings.Name),
		Input: []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("no embedding data returned from API")
	}

	vector := make([]float32, len(resp.Data[0].Embedding))
	copy(vector, resp.Data[0].Embedding)
	l2normalize(vector)
	return vector, nil
}

// EmbedBatch generates embeddings for multiple texts with bounded
// concurrency, preserving input order.
func (e *OpenAI) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	errs := make(chan error, len(texts))
	sem := make(chan struct{}, batchConcurrency)

	for i := range texts {
		sem <- struct{}{}
		go func(idx int) {
			defer func() { <-sem }()

			vector, err := e.Embed(ctx, texts[idx])
			if err != nil {
				errs <- fmt.Errorf("embedding text %d: %w", idx, err)
				return
			}
			vectors[idx] = vector
			errs <- nil
		}(i)
	}

	for range texts {
		if err := <-errs; err != nil {
			return nil, err
		}
	}
	return vectors, nil
}

// Dimension returns the embedding dimension for the configured model.
func (e *OpenAI) Dimension() int {
	return e.settings.Dimension
}

// Model returns the configured model name.
func (e *OpenAI) Model() string {
	return e.settings.Name
}

// l2normalize scales a vector to unit length, in place. Cosine similarity
// over normalized vectors reduces to a dot product.
func l2normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	inv := float32(1.0 / math.Sqrt(sum))
	for i := range v {
		v[i] *= inv
	}
}
