// Command query embeds a search string and prints the closest chunks
// from a Qdrant collection built by the index command.
//
// Usage:
//
//	query [-config config.yaml] [-k 5] "search text"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tsawler/segmenta/embedder"
	"github.com/tsawler/segmenta/internal/config"
	"github.com/tsawler/segmenta/vectorstore"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	limit := flag.Uint64("k", 5, "number of results to return")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, `usage: query [-config config.yaml] [-k 5] "search text"`)
		os.Exit(2)
	}

	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), logger, *configPath, flag.Arg(0), *limit); err != nil {
		logger.Fatal("query failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, configPath, query string, limit uint64) error {
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

	vector, err := emb.Embed(ctx, query)
	if err != nil {
		return err
	}

	results, err := store.Search(ctx, vector, limit)
	if err != nil {
		return err
	}

	logger.Info("search complete",
		zap.String("query", query),
		zap.Int("results", len(results)))

	for i, res := range results {
		fmt.Printf("== result %d (score %.4f) ==\n", i+1, res.Score)
		fmt.Println(strings.TrimSpace(res.Document.PageContent))
		if len(res.Document.Metadata) > 0 {
			fmt.Println("-- metadata --")
			for key, value := range res.Document.Metadata {
				fmt.Printf("%s: %v\n", key, value)
			}
		}
		fmt.Println()
	}
	return nil
}
