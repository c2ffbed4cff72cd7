package main

import (
	"log/slog"
	"os"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"cv-parser/internal/app"
	"cv-parser/internal/common"
	"cv-parser/internal/export"
	"cv-parser/internal/extract"
	"cv-parser/internal/llm/openai"
	"cv-parser/internal/pipeline"
)

func main() {
	opts := slogcolor.DefaultOptions
	opts.Level = slog.LevelInfo
	opts.MsgColor = color.New(color.FgMagenta)
	opts.SrcFileMode = slogcolor.Nop
	logger := slog.New(slogcolor.NewHandler(os.Stderr, opts))
	slog.SetDefault(logger)

	// .env is optional; real env vars win either way.
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env")
	}

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

	a := app.NewApp(cfg, proc, export.NewService(logger), logger)
	if err := a.Run(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
