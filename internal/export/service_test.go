package export

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cv-parser/internal/llm"
)

func strPtr(s string) *string { return &s }

func TestBuildWorkbook(t *testing.T) {
	svc := NewService(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cv := llm.CVFields{
		Name:     "John Doe",
		Email:    strPtr("john@example.com"),
		Summary:  strPtr("Software engineer."),
		Skills:   []string{"Python", "Go"},
		LinkedIn: strPtr("linkedin.com/in/johndoe"),
		Experience: []llm.Experience{
			{
				Position:    "Software Engineer",
				Company:     strPtr("Acme Corp"),
				Duration:    strPtr("5 years"),
				Description: []string{"Built backend services"},
			},
		},
		Education: []llm.Education{
			{
				Degree:      strPtr("BSc"),
				Institution: strPtr("State University"),
				Year:        strPtr("2019"),
				Field:       strPtr("Computer Science"),
			},
		},
		Languages:        []string{"English"},
		DetectedLanguage: "en",
	}

	b, err := svc.BuildWorkbook(cv)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Profile", "Experience", "Education"}, f.GetSheetList())

	name, err := f.GetCellValue("Profile", "B1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", name)

	skills, err := f.GetCellValue("Profile", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Python, Go", skills)

	pos, err := f.GetCellValue("Experience", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", pos)

	company, err := f.GetCellValue("Experience", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", company)

	degree, err := f.GetCellValue("Education", "A2")
	require.NoError(t, err)
	assert.Equal(t, "BSc", degree)
}

func TestBuildWorkbook_NilOptionals(t *testing.T) {
	svc := NewService(nil)

	b, err := svc.BuildWorkbook(llm.CVFields{Name: "Jane", DetectedLanguage: "en"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	email, err := f.GetCellValue("Profile", "B2")
	require.NoError(t, err)
	assert.Empty(t, email)
}
