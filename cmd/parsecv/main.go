package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"cv-parser/internal/common"
	"cv-parser/internal/extract"
	"cv-parser/internal/llm/openai"
	"cv-parser/internal/pipeline"
)

// One-shot CLI: parse a single resume file and print the artifact path.
// Logs go to stderr as JSON; the parsed JSON goes to stdout.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: parsecv <resume-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	extractor := extract.NewExtractor(extract.Config{
		Antiword: cfg.Extract.AntiwordBin,
	}, logger)

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	proc := pipeline.NewProcessor(logger, pipeline.Config{
		OutputDir: cfg.Extract.OutputDir,
	}, extractor, client)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout*2)
	defer cancel()

	res, err := proc.ParseFile(ctx, path)
	if err != nil {
		logger.Error("parse failed", "path", path, "error", err)
		os.Exit(1)
	}

	fmt.Println(string(res.RawJSON))
	logger.Info("saved structured JSON", "artifact", res.ArtifactPath)
}
