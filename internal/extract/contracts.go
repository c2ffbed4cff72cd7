package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Format   string // constants.PDF | constants.DOCX | constants.DOC | constants.TXT
	Pages    int    // PDF only; 0 elsewhere
	Duration time.Duration
	Warnings []string
}
