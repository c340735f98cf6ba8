package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/syllabus"
)

const teachSystemPrompt = `You are an engaging AI tutor teaching from a structured syllabus. You present one stage at a time: explain the stage's knowledge points clearly for the target audience, build toward the stage's learning target, and end by posing the stage's evaluation question. Never reveal the expected answer. For multimedia, use <image>description</image> and <video>description</video> tags inside the text.`

// teachingSchema keeps stage teaching output parseable: one content field.
var teachingSchema = &llm.Schema{
	Name:        "stage-teaching",
	Description: "Teaching content presenting one syllabus stage to the learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": "The full teaching message shown to the learner, ending with the stage's evaluation question",
			},
		},
		"required":             []any{"content"},
		"additionalProperties": false,
	},
}

// TeacherConfig holds teaching generation parameters.
type TeacherConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultTeacherConfig returns the standard teaching configuration.
// Higher temperature than judging: presentation benefits from variety.
func DefaultTeacherConfig() TeacherConfig {
	return TeacherConfig{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Teacher generates the tutor's teaching message for a stage.
type Teacher struct {
	provider llm.Provider
	cfg      TeacherConfig
}

// NewTeacher creates a stage teaching service.
func NewTeacher(provider llm.Provider, cfg TeacherConfig) *Teacher {
	return &Teacher{provider: provider, cfg: cfg}
}

type teachingOutput struct {
	Content string `json:"content"`
}

// Teach produces the teaching message for the given stage.
func (t *Teacher) Teach(ctx context.Context, syl *syllabus.Syllabus, stage syllabus.Stage) (string, error) {
	ctx = llm.WithPurpose(ctx, "teach")

	req := llm.Request{
		System: teachSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTeachUserMessage(syl, stage)},
		},
		Schema:      teachingSchema,
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	}

	resp, err := t.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("stage teaching: %w", err)
	}

	var out teachingOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse teaching response: %w", err)
	}
	return out.Content, nil
}

func buildTeachUserMessage(syl *syllabus.Syllabus, stage syllabus.Stage) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Syllabus: %s\n", syl.Name))
	b.WriteString(fmt.Sprintf("Target audience: %s\n\n", syl.TargetAudience))
	b.WriteString(fmt.Sprintf("Stage %s: %s\n", stage.ID, stage.Description))
	b.WriteString(fmt.Sprintf("Learning target: %s\n", stage.Target))

	b.WriteString("\nKnowledge points to teach, in order:\n")
	for _, k := range stage.TeachingKnowledge {
		b.WriteString(fmt.Sprintf("- %s\n", k))
	}

	b.WriteString(fmt.Sprintf("\nEvaluation question to pose at the end: %s\n", stage.JudgeQuestion))
	b.WriteString("\nTeach this stage now.")

	return b.String()
}
