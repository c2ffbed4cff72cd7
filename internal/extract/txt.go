package extract

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"cv-parser/constants"
	"cv-parser/internal/common"
)

// extractTXT reads a plain-text file, trying common encodings:
// UTF-8, then UTF-16 (BOM-detected), then Windows-1252 which is a
// superset of Latin-1 and covers the usual suspects.
func (e *Extractor) extractTXT(path string) (TextExtractionResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{Format: constants.TXT}, fmt.Errorf("%w: read txt: %v", common.ErrExtraction, err)
	}

	text, enc := decodeText(raw)
	res := TextExtractionResult{
		Text:   text,
		Format: constants.TXT,
	}
	if enc != "utf-8" {
		res.Warnings = []string{"decoded as " + enc}
	}
	return res, nil
}

func decodeText(raw []byte) (string, string) {
	if hasUTF16BOM(raw) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if out, err := dec.Bytes(raw); err == nil {
			return string(out), "utf-16"
		}
	}
	if utf8.Valid(raw) {
		return string(raw), "utf-8"
	}
	// Windows-1252 decoding cannot fail: undefined bytes become U+FFFD.
	out, _ := charmap.Windows1252.NewDecoder().Bytes(raw)
	return string(out), "windows-1252"
}

func hasUTF16BOM(b []byte) bool {
	return bytes.HasPrefix(b, []byte{0xFF, 0xFE}) || bytes.HasPrefix(b, []byte{0xFE, 0xFF})
}
