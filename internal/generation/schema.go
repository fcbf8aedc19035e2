package generation

import "github.com/abhisek/quizkid/internal/llm"

// BatchSchema defines the JSON schema for question-batch responses.
// Only the prompt is required at the schema level; the remaining fields are
// checked per item so that a partially bad reply loses individual questions
// instead of the whole batch.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "An array of multiple-choice quiz questions for a child",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt": map[string]any{
					"type":        "string",
					"description": "The question text, short and age-appropriate",
				},
				"options": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "string",
					},
					"description": "Exactly 4 answer choices",
				},
				"correct_index": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"maximum":     3,
					"description": "Zero-based index of the correct option",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "A friendly one-sentence explanation of the answer",
				},
				"topic": map[string]any{
					"type":        "string",
					"description": "The specific topic within the module",
				},
				"difficulty": map[string]any{
					"type":        "string",
					"enum":        []any{"easy", "medium", "hard"},
					"description": "Difficulty of this question",
				},
			},
			"required": []any{"prompt"},
		},
	},
}
