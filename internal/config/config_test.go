package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/segmenta/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Model != models.TextEmbedding3Small {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Qdrant.Port != 6334 {
		t.Errorf("Qdrant.Port = %d", cfg.Qdrant.Port)
	}
	if cfg.ChunkSize != 1000 || cfg.ChunkOverlap != 50 {
		t.Errorf("chunk defaults = %d/%d", cfg.ChunkSize, cfg.ChunkOverlap)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
qdrant:
  host: qdrant.internal
  collection: docs
model: text-embedding-3-large
chunk_size: 400
chunk_overlap: 40
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Qdrant.Host != "qdrant.internal" {
		t.Errorf("Host = %q", cfg.Qdrant.Host)
	}
	if cfg.Qdrant.Collection != "docs" {
		t.Errorf("Collection = %q", cfg.Qdrant.Collection)
	}
	if cfg.Model != models.TextEmbedding3Large {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.ChunkSize != 400 || cfg.ChunkOverlap != 40 {
		t.Errorf("chunk settings = %d/%d", cfg.ChunkSize, cfg.ChunkOverlap)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown model", "model: not-a-model\n"},
		{"overlap exceeds size", "chunk_size: 10\nchunk_overlap: 20\n"},
		{"zero chunk size", "chunk_size: 0\n"},
		{"bad yaml", "qdrant: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
