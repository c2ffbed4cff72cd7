package llm

import "strings"

// BuildSystemPrompt composes the system message. Kept short: the schema itself
// carries the structural rules.
func BuildSystemPrompt() string {
	return "Extract the resume into a single JSON object that matches the schema exactly; output only valid JSON."
}

// BuildUserPrompt packages the resume text with formatting rules.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		b.WriteString("Filename: ")
		b.WriteString(f)
		b.WriteString("\n\n")
	}
	b.WriteString("Resume:\n\"\"\"")
	b.WriteString(req.ResumeText)
	b.WriteString("\"\"\"\n\n")
	b.WriteString(strings.Join([]string{
		"Rules:",
		"- Detect primary language as ISO-2 (e.g., 'en', 'de', 'tr'); default to 'en' if unclear.",
		"- Normalize LinkedIn as 'linkedin.com/in/<handle>' when present.",
		"- Use null for missing fields.",
		"- Return ONLY valid JSON conforming to the provided schema.",
	}, "\n"))
	return b.String()
}
