package syllabus

import "github.com/abhisek/docent/internal/llm"

// Schema is the JSON schema the generative model must follow when it
// emits a syllabus. The property names here are the wire contract —
// they match the struct tags in types.go verbatim and appear unchanged
// in generation and revision prompts.
var Schema = &llm.Schema{
	Name:        "teaching-syllabus",
	Description: "A structured multi-stage teaching syllabus derived from a source document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"syllabus_name": map[string]any{
				"type":        "string",
				"description": "Descriptive name reflecting the document's main topic",
			},
			"target_audience": map[string]any{
				"type":        "string",
				"description": "Who this syllabus is written for",
			},
			"syllabus": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"stage_id": map[string]any{
							"type":        "string",
							"description": "Unique, stable identifier for the stage",
						},
						"stage_description": map[string]any{
							"type":        "string",
							"description": "What this stage covers",
						},
						"judge_media_allowed": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
								"enum": []any{"text", "image", "video", "audio"},
							},
							"description": "Media kinds the learner may answer with",
						},
						"target": map[string]any{
							"type":        "string",
							"description": "Learning target for this stage",
						},
						"teaching_knowledge": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Key knowledge points to teach, in order",
						},
						"judge_question": map[string]any{
							"type":        "string",
							"description": "Evaluation question testing the stage target",
						},
						"judge_answer": map[string]any{
							"type":        "string",
							"description": "Expected answer, used as the grading rubric",
						},
					},
					"required": []any{
						"stage_id",
						"stage_description",
						"judge_media_allowed",
						"target",
						"teaching_knowledge",
						"judge_question",
						"judge_answer",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"syllabus_name", "target_audience", "syllabus"},
		"additionalProperties": false,
	},
}
