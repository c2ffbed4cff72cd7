package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cv-parser/internal/common"
	"cv-parser/internal/extract"
	"cv-parser/internal/llm"
)

// Result is what one parse run produces: the decoded fields, the validated
// raw JSON exactly as the model returned it, and the artifact written to disk.
type Result struct {
	Fields       llm.CVFields
	RawJSON      []byte
	ArtifactPath string
}

type Config struct {
	OutputDir string
}

// Processor coordinates text extraction then LLM parse and writes the
// JSON artifact. One invocation per upload; no shared state.
type Processor struct {
	logger *slog.Logger
	text   extract.TextExtractor
	cv     llm.CVExtractor
	cfg    Config
}

func NewProcessor(logger *slog.Logger, cfg Config, text extract.TextExtractor, cv llm.CVExtractor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./outputs"
	}
	return &Processor{logger: logger, text: text, cv: cv, cfg: cfg}
}

// ParseFile runs extraction on path, sends the text to the LLM, and writes
// <stem>_parsed.json into the output directory.
func (p *Processor) ParseFile(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	textRes, err := p.text.Extract(ctx, path)
	if err != nil {
		p.logger.Error("pipeline.extract.failed", "path", path, "err", err)
		return Result{}, err
	}
	p.logger.Info("pipeline.extract.ok",
		"path", path,
		"format", textRes.Format,
		"text_len", len(textRes.Text),
	)

	fields, raw, err := p.cv.ExtractCV(ctx, llm.ExtractRequest{
		ResumeText:   textRes.Text,
		FilenameHint: filepath.Base(path),
	})
	if err != nil {
		p.logger.Error("pipeline.llm.failed", "path", path, "err", err)
		return Result{}, err
	}

	artifact, err := p.writeArtifact(path, raw)
	if err != nil {
		p.logger.Error("pipeline.artifact.failed", "path", path, "err", err)
		return Result{}, err
	}

	p.logger.Info("pipeline.ok",
		"path", path,
		"artifact", artifact,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Fields: fields, RawJSON: raw, ArtifactPath: artifact}, nil
}

// writeArtifact pretty-prints the validated model output and saves it as
// UTF-8 JSON next to the other run outputs. The content is the model's
// JSON byte-for-byte, only reindented.
func (p *Processor) writeArtifact(srcPath string, raw []byte) (string, error) {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return "", common.WrapError(err, "create output dir")
	}

	out := filepath.Join(p.cfg.OutputDir, ArtifactName(srcPath))

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", common.WrapError(err, "indent artifact json")
	}
	buf.WriteByte('\n')

	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", common.WrapError(err, "write artifact")
	}
	return out, nil
}

// ArtifactName returns the artifact filename a source file maps to.
func ArtifactName(srcName string) string {
	stem := strings.TrimSuffix(filepath.Base(srcName), filepath.Ext(srcName))
	return fmt.Sprintf("%s_parsed.json", stem)
}
