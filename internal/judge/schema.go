package judge

import "github.com/abhisek/docent/internal/llm"

// VerdictSchema constrains the model to a closed-enum outcome plus a
// rationale, so the verdict can be parsed without guessing.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "Evaluation of a learner's answer against a stage's expected answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"outcome": map[string]any{
				"type":        "string",
				"enum":        []any{"correct", "partial", "incorrect"},
				"description": "correct: meets the expected answer; partial: on track but incomplete; incorrect: misses it",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "2-4 sentence explanation addressed to the learner, without revealing the expected answer verbatim",
			},
		},
		"required":             []any{"outcome", "rationale"},
		"additionalProperties": false,
	},
}
