package constants

import "strings"

// Canonical source formats for uploaded resumes.
const (
	PDF  = "PDF"
	DOCX = "DOCX"
	DOC  = "DOC"
	TXT  = "TXT"
)

// FileTypes holds the allowed file types for an upload.
var FileTypes = []string{PDF, DOCX, DOC, TXT}

// AllowedExtensions holds the default allowed file extensions for resume uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"doc":  {},
	"txt":  {},
}

// SupportedExtensions lists the accepted upload extensions, dot-prefixed,
// in FileTypes order. Used for user-facing error messages.
func SupportedExtensions() []string {
	exts := make([]string, len(FileTypes))
	for i, ft := range FileTypes {
		exts[i] = "." + strings.ToLower(ft)
	}
	return exts
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its canonical format,
// returning "" for anything unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	case "doc":
		return DOC
	case "txt":
		return TXT
	default:
		return ""
	}
}
