package extract

import (
	"context"
	"fmt"

	"cv-parser/constants"
	"cv-parser/internal/common"
)

// extractDOC shells out to antiword for legacy .doc files.
// antiword -m UTF-8 <path> writes plain text to stdout.
func (e *Extractor) extractDOC(ctx context.Context, path string) (TextExtractionResult, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Antiword, "-m", "UTF-8", path)
	if err != nil {
		return TextExtractionResult{
			Format:   constants.DOC,
			Warnings: []string{string(errb)},
		}, fmt.Errorf("%w: antiword: %v", common.ErrExtraction, err)
	}

	res := TextExtractionResult{
		Text:   string(out),
		Format: constants.DOC,
	}
	if len(errb) > 0 {
		res.Warnings = []string{string(errb)}
	}
	return res, nil
}
