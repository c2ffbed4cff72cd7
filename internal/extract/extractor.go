package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"cv-parser/constants"
	"cv-parser/internal/common"
)

type Config struct {
	Antiword string // binary name or absolute path; if empty -> "antiword"
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Antiword == "" {
		cfg.Antiword = "antiword"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	var res TextExtractionResult
	var err error
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = e.extractPDF(path)
	case constants.DOCX:
		res, err = e.extractDOCX(path)
	case constants.DOC:
		res, err = e.extractDOC(ctx, path)
	case constants.TXT:
		res, err = e.extractTXT(path)
	default:
		e.logger.Error("unsupported extension", "extension", ext)
		return TextExtractionResult{}, fmt.Errorf("%w: %q (supported: %s)",
			common.ErrUnsupportedFormat, ext, strings.Join(constants.SupportedExtensions(), ", "))
	}
	if err != nil {
		return res, err
	}

	if strings.TrimSpace(res.Text) == "" {
		e.logger.Error("extraction produced no text", "path", path, "format", res.Format)
		return res, fmt.Errorf("%w: no text extracted (consider OCR for scanned PDFs)", common.ErrExtraction)
	}

	res.Duration = time.Since(start)
	e.logger.Info("extract.ok",
		"path", path,
		"format", res.Format,
		"pages", res.Pages,
		"text_len", len(res.Text),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
