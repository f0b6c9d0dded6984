// Package config loads configuration for the segmenta command-line tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/segmenta/models"
	"github.com/tsawler/segmenta/splitter"
)

// QdrantConfig locates the Qdrant instance and collection.
type QdrantConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Collection string `yaml:"collection"`
}

// Config holds settings for the indexing and query tools.
type Config struct {
	Qdrant QdrantConfig `yaml:"qdrant"`

	// Model is the embedding model name, validated against the models
	// registry.
	Model string `yaml:"model"`

	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
}

// Default returns the default tool configuration.
func Default() Config {
	splitDefaults := splitter.DefaultConfig()
	return Config{
		Qdrant: QdrantConfig{
			Host:       "localhost",
			Port:       6334,
			Collection: "segmenta_chunks",
		},
		Model:        models.TextEmbedding3Small,
		ChunkSize:    splitDefaults.ChunkSize,
		ChunkOverlap: splitDefaults.ChunkOverlap,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := models.Get(c.Model); err != nil {
		return err
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be greater than zero, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap > c.ChunkSize {
		return fmt.Errorf("chunk_overlap must be between 0 and chunk_size, got %d", c.ChunkOverlap)
	}
	if c.Qdrant.Host == "" {
		return fmt.Errorf("qdrant host is required")
	}
	if c.Qdrant.Port <= 0 {
		return fmt.Errorf("qdrant port must be positive, got %d", c.Qdrant.Port)
	}
	if c.Qdrant.Collection == "" {
		return fmt.Errorf("qdrant collection is required")
	}
	return nil
}
