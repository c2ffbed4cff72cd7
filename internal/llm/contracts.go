package llm

import "context"

// CVFields is the normalized shape we want from the LLM.
// Nullable schema fields are pointers so null round-trips cleanly.
type CVFields struct {
	Name             string       `json:"name"`
	Email            *string      `json:"email"`
	Phone            *string      `json:"phone"`
	LinkedIn         *string      `json:"linkedin"`
	Summary          *string      `json:"summary"`
	Skills           []string     `json:"skills"`
	Experience       []Experience `json:"experience"`
	Education        []Education  `json:"education"`
	Certificates     []string     `json:"certificates"`
	Languages        []string     `json:"languages"`
	DetectedLanguage string       `json:"detected_language"` // ISO-2, e.g. "en"
}

type Experience struct {
	Position    string   `json:"position"`
	Company     *string  `json:"company"`
	Duration    *string  `json:"duration"`
	Description []string `json:"description"`
}

type Education struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Year        *string `json:"year"`
	Field       *string `json:"field"`
}

type ExtractRequest struct {
	ResumeText   string
	FilenameHint string
}

// CVExtractor is the interface the pipeline depends on.
type CVExtractor interface {
	ExtractCV(ctx context.Context, req ExtractRequest) (CVFields, []byte /*rawJSON*/, error)
}
