package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCVDoc = `{
	"name": "John Doe",
	"email": "john@example.com",
	"phone": null,
	"linkedin": "linkedin.com/in/johndoe",
	"summary": "Software engineer with 5 years of Python experience.",
	"skills": ["Python", "Go"],
	"experience": [
		{
			"position": "Software Engineer",
			"company": "Acme Corp",
			"duration": "2019-2024",
			"description": ["Built backend services in Python"]
		}
	],
	"education": [
		{
			"degree": "BSc",
			"institution": "State University",
			"year": "2019",
			"field": "Computer Science"
		}
	],
	"certificates": [],
	"languages": ["English"],
	"detected_language": "en"
}`

func TestValidateCVSchema_Valid(t *testing.T) {
	schema := BuildCVJSONSchema()
	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(validCVDoc)))
}

func TestValidateCVSchema_NullableFields(t *testing.T) {
	schema := BuildCVJSONSchema()
	doc := `{
		"name": "Jane",
		"email": null, "phone": null, "linkedin": null, "summary": null,
		"skills": [], "experience": [], "education": [],
		"certificates": [], "languages": [],
		"detected_language": "en"
	}`
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(doc)))
}

func TestValidateCVSchema_MissingRequiredField(t *testing.T) {
	schema := BuildCVJSONSchema()
	doc := `{"name": "Jane", "detected_language": "en"}`
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(doc)))
}

func TestValidateCVSchema_UnknownField(t *testing.T) {
	schema := BuildCVJSONSchema()
	doc := `{
		"name": "Jane",
		"email": null, "phone": null, "linkedin": null, "summary": null,
		"skills": [], "experience": [], "education": [],
		"certificates": [], "languages": [],
		"detected_language": "en",
		"shoe_size": 42
	}`
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(doc)))
}

func TestValidateCVSchema_NotJSON(t *testing.T) {
	schema := BuildCVJSONSchema()
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte("definitely not json")))
}

func TestBuildUserPrompt(t *testing.T) {
	p := BuildUserPrompt(ExtractRequest{
		ResumeText:   "John Doe, Software Engineer",
		FilenameHint: "john.pdf",
	})
	assert.Contains(t, p, "Filename: john.pdf")
	assert.Contains(t, p, "John Doe, Software Engineer")
	assert.Contains(t, p, "Use null for missing fields.")
}
