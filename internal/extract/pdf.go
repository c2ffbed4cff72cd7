package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"cv-parser/constants"
	"cv-parser/internal/common"
)

func (e *Extractor) extractPDF(path string) (TextExtractionResult, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return TextExtractionResult{Format: constants.PDF}, fmt.Errorf("%w: open pdf: %v", common.ErrExtraction, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("pdf close error", "path", path, "error", cerr)
		}
	}()

	rd, err := r.GetPlainText()
	if err != nil {
		return TextExtractionResult{Format: constants.PDF}, fmt.Errorf("%w: read pdf text: %v", common.ErrExtraction, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rd); err != nil {
		return TextExtractionResult{Format: constants.PDF}, fmt.Errorf("%w: read pdf text: %v", common.ErrExtraction, err)
	}

	return TextExtractionResult{
		Text:   buf.String(),
		Format: constants.PDF,
		Pages:  r.NumPage(),
	}, nil
}
