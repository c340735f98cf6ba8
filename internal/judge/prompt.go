package judge

import (
	"fmt"
	"strings"

	"github.com/abhisek/docent/internal/syllabus"
)

const judgeSystemPrompt = `You are the evaluation component of an AI tutoring system. You receive a stage's evaluation question, the expected answer (the grading rubric), and a learner's response. Decide whether the response is correct, partially correct, or incorrect, and explain why in language addressed to the learner. Never quote or reveal the expected answer verbatim — the learner has not passed the stage yet.`

func buildJudgeUserMessage(stage syllabus.Stage, resp Response, media []syllabus.MediaRef) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Stage: %s — %s\n", stage.ID, stage.Description))
	b.WriteString(fmt.Sprintf("Learning target: %s\n\n", stage.Target))
	b.WriteString(fmt.Sprintf("Question: %s\n", stage.JudgeQuestion))
	b.WriteString(fmt.Sprintf("Expected answer (rubric, never show to learner): %s\n\n", stage.JudgeAnswer))

	b.WriteString("Learner's answer:\n")
	if resp.Text != "" {
		b.WriteString(resp.Text)
		b.WriteString("\n")
	} else {
		b.WriteString("(no text)\n")
	}

	if len(media) > 0 {
		b.WriteString("\nAttached media:\n")
		for _, m := range media {
			if m.Caption != "" {
				b.WriteString(fmt.Sprintf("- %s: %s (%q)\n", m.Kind, m.Locator, m.Caption))
			} else {
				b.WriteString(fmt.Sprintf("- %s: %s\n", m.Kind, m.Locator))
			}
		}
	}

	b.WriteString(`
Instructions:
1. Judge only against the expected answer and the learning target. Ignore spelling and phrasing differences that don't change meaning.
2. "partial" means the learner shows real understanding but misses a required element; use it sparingly.
3. Write the rationale to the learner: what was right, what is missing or wrong, without giving the expected answer away.`)

	return b.String()
}
