package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-parser/constants"
	"cv-parser/internal/common"
	"cv-parser/internal/extract"
	"cv-parser/internal/llm"
)

type stubTextExtractor struct {
	text string
	err  error

	gotPath string
}

func (s *stubTextExtractor) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	s.gotPath = path
	if s.err != nil {
		return extract.TextExtractionResult{}, s.err
	}
	return extract.TextExtractionResult{Text: s.text, Format: constants.TXT}, nil
}

type stubCVExtractor struct {
	fields llm.CVFields
	raw    []byte
	err    error

	gotReq llm.ExtractRequest
}

func (s *stubCVExtractor) ExtractCV(_ context.Context, req llm.ExtractRequest) (llm.CVFields, []byte, error) {
	s.gotReq = req
	if s.err != nil {
		return llm.CVFields{}, nil, s.err
	}
	return s.fields, s.raw, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// The end-to-end happy path: extracted text goes to the LLM verbatim, the
// model's JSON lands in the artifact untouched apart from indentation.
func TestParseFile_EndToEnd(t *testing.T) {
	const resume = "John Doe, Software Engineer, 5 years experience in Python"
	raw := []byte(`{"name": "John Doe", "title": "Software Engineer", "years_experience": 5}`)

	text := &stubTextExtractor{text: resume}
	cv := &stubCVExtractor{fields: llm.CVFields{Name: "John Doe"}, raw: raw}

	outDir := t.TempDir()
	p := NewProcessor(testLogger(), Config{OutputDir: outDir}, text, cv)

	src := filepath.Join(t.TempDir(), "john_doe.txt")
	require.NoError(t, os.WriteFile(src, []byte(resume), 0o644))

	res, err := p.ParseFile(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, resume, cv.gotReq.ResumeText, "extracted text must reach the LLM verbatim")
	assert.Equal(t, "john_doe.txt", cv.gotReq.FilenameHint)
	assert.Equal(t, raw, res.RawJSON)
	assert.Equal(t, "John Doe", res.Fields.Name)

	wantArtifact := filepath.Join(outDir, "john_doe_parsed.json")
	assert.Equal(t, wantArtifact, res.ArtifactPath)

	got, err := os.ReadFile(wantArtifact)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(got))
}

func TestParseFile_ExtractionErrorShortCircuits(t *testing.T) {
	text := &stubTextExtractor{err: common.ErrExtraction}
	cv := &stubCVExtractor{}
	p := NewProcessor(testLogger(), Config{OutputDir: t.TempDir()}, text, cv)

	_, err := p.ParseFile(context.Background(), "whatever.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtraction)
	assert.Empty(t, cv.gotReq.ResumeText, "LLM must not be called when extraction fails")
}

func TestParseFile_LLMErrorSurfacedAsIs(t *testing.T) {
	wrapped := errors.Join(common.ErrSchemaMismatch)
	text := &stubTextExtractor{text: "some resume text"}
	cv := &stubCVExtractor{err: wrapped}
	outDir := t.TempDir()
	p := NewProcessor(testLogger(), Config{OutputDir: outDir}, text, cv)

	_, err := p.ParseFile(context.Background(), "resume.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSchemaMismatch)

	// No artifact on failure.
	entries, rerr := os.ReadDir(outDir)
	require.NoError(t, rerr)
	assert.Empty(t, entries)
}

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "resume_parsed.json", ArtifactName("resume.pdf"))
	assert.Equal(t, "john_doe_parsed.json", ArtifactName("/tmp/uploads/john_doe.docx"))
}
