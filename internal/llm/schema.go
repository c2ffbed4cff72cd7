package llm

// BuildCVJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the provider as a structured output constraint and also use it
// locally to validate what comes back.
func BuildCVJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":     map[string]any{"type": "string"},
			"email":    nullableString(),
			"phone":    nullableString(),
			"linkedin": nullableString(),
			"summary":  nullableString(),
			"skills":   stringArray(),
			"experience": map[string]any{
				"type":     "array",
				"minItems": 0,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"position":    map[string]any{"type": "string"},
						"company":     nullableString(),
						"duration":    nullableString(),
						"description": stringArray(),
					},
					"required": []string{"position", "company", "duration", "description"},
				},
			},
			"education": map[string]any{
				"type":     "array",
				"minItems": 0,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"degree":      nullableString(),
						"institution": nullableString(),
						"year":        nullableString(),
						"field":       nullableString(),
					},
					"required": []string{"degree", "institution", "year", "field"},
				},
			},
			"certificates":      stringArray(),
			"languages":         stringArray(),
			"detected_language": map[string]any{"type": "string"},
		},
		"required": []string{
			"name",
			"email",
			"phone",
			"linkedin",
			"summary",
			"skills",
			"experience",
			"education",
			"certificates",
			"languages",
			"detected_language",
		},
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func stringArray() map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string"},
		"minItems": 0,
	}
}
