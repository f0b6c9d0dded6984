// Command index chunks text files, embeds the chunks, and upserts them
// into a Qdrant collection.
//
// Usage:
//
//	index [-config config.yaml] file [file ...]
//
// The OpenAI API key is read from the OPENAI_API_KEY environment
// variable. A .env file in the working directory is loaded if present.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tsawler/segmenta"
	"github.com/tsawler/segmenta/embedder"
	"github.com/tsawler/segmenta/internal/config"
	"github.com/tsawler/segmenta/vectorstore"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: index [-config config.yaml] file [file ...]")
		os.Exit(2)
	}

	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), logger, *configPath, flag.Args()); err != nil {
		logger.Fatal("indexing failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, configPath string, files []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	emb, err := embedder.NewOpenAI(cfg.Model)
	if err != nil {
		return err
	}

	store, err := vectorstore.New(cfg.Qdrant.Host, cfg.Qdrant.Port, cfg.Qdrant.Collection, emb.Dimension())
	if err != nil {
		return err
	}
	if err := store.EnsureCollection(ctx); err != nil {
		return err
	}

	for _, path := range files {
		if err := indexFile(ctx, logger, cfg, emb, store, path); err != nil {
			return fmt.Errorf("indexing %s: %w", path, err)
		}
	}
	return nil
}

func indexFile(ctx context.Context, logger *zap.Logger, cfg config.Config, emb embedder.Embedder, store *vectorstore.Store, path string) error {
	docs, warnings, err := segmenta.FromFile(path).
		ChunkSize(cfg.ChunkSize).
		ChunkOverlap(cfg.ChunkOverlap).
		AddStartIndex().
		Documents()
	if err != nil {
		return err
	}
	if len(warnings) > 0 {
		logger.Warn("oversized chunks",
			zap.String("file", path),
			zap.String("details", segmenta.FormatWarnings(warnings)))
	}
	if len(docs) == 0 {
		logger.Info("no content to index", zap.String("file", path))
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.PageContent
	}

	vectors, err := emb.EmbedBatch(ctx, texts)
	if err != nil {
		return err
	}
	if err := store.Upsert(ctx, docs, vectors); err != nil {
		return err
	}

	logger.Info("indexed file",
		zap.String("file", path),
		zap.Int("chunks", len(docs)))
	return nil
}
