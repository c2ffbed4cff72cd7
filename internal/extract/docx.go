package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"strings"

	"cv-parser/constants"
	"cv-parser/internal/common"
)

var reXMLTags = regexp.MustCompile(`<[^>]+>`)

// extractDOCX reads word/document.xml straight out of the OOXML zip.
// Table cell text lives in w:p runs like everything else, so paragraph
// handling covers tables too.
func (e *Extractor) extractDOCX(path string) (TextExtractionResult, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return TextExtractionResult{Format: constants.DOCX}, fmt.Errorf("%w: open docx: %v", common.ErrExtraction, err)
	}
	defer func() {
		if cerr := zr.Close(); cerr != nil {
			e.logger.Warn("docx close error", "path", path, "error", cerr)
		}
	}()

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return TextExtractionResult{Format: constants.DOCX}, fmt.Errorf("%w: open document.xml: %v", common.ErrExtraction, err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return TextExtractionResult{Format: constants.DOCX}, fmt.Errorf("%w: read document.xml: %v", common.ErrExtraction, err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return TextExtractionResult{Format: constants.DOCX}, fmt.Errorf("%w: no document.xml found in docx", common.ErrExtraction)
	}

	text := string(docXML)
	// Paragraph and cell boundaries become line/tab breaks before tags are stripped.
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = strings.ReplaceAll(text, "<w:br/>", "\n")
	text = reXMLTags.ReplaceAllString(text, "")
	text = unescapeXMLEntities(text)

	return TextExtractionResult{
		Text:   text,
		Format: constants.DOCX,
	}, nil
}

var xmlEntityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

func unescapeXMLEntities(s string) string {
	return xmlEntityReplacer.Replace(s)
}
