package syllabusgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/docent/internal/syllabus"
)

const generateSystemPrompt = `You are an expert educational content creator. You analyze a provided document and produce a comprehensive, well-ordered teaching syllabus grounded strictly in that document's content.`

const mediaTagInstructions = `For content that should include multimedia elements, use tags inside the text:
- images: <image>detailed description of what the image should show</image>
- videos: <video>detailed description of what the video should contain</video>`

func buildGenerateUserMessage() string {
	var b strings.Builder

	b.WriteString(`Create a teaching syllabus from the attached document.

The syllabus needs:
1. A descriptive syllabus_name reflecting the main topic
2. An appropriate target_audience
3. A series of learning stages in a logical teaching progression, where each stage includes:
   - a unique stage_id
   - a clear stage_description
   - judge_media_allowed: the media kinds (text, image, video, audio) a learner may answer the evaluation question with
   - target: the learning target for the stage
   - teaching_knowledge: the key knowledge points, in teaching order
   - judge_question: an evaluation question testing the target
   - judge_answer: the expected answer, used as the grading rubric

`)
	b.WriteString(mediaTagInstructions)
	b.WriteString("\n\nAnalyze the document thoroughly and return a structured JSON object in the required format.")

	return b.String()
}

func buildReviseUserMessage(current *syllabus.Syllabus, instruction string) (string, error) {
	currentJSON, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize current syllabus: %w", err)
	}

	var b strings.Builder

	b.WriteString("Here is the current teaching syllabus in JSON format:\n\n")
	b.Write(currentJSON)
	b.WriteString("\n\nUpdate this syllabus according to these instructions:\n\n")
	b.WriteString(instruction)
	b.WriteString(`

Edit the existing syllabus — do not regenerate it from scratch. Keep stages the instructions don't touch unchanged, including their stage_id values. Return the complete updated syllabus, never a partial document or a diff.

Keep the exact same JSON structure with these fields:
- syllabus_name
- target_audience
- syllabus (an array of stages)
  - each stage must include: stage_id, stage_description, judge_media_allowed, target, teaching_knowledge, judge_question, judge_answer

`)
	b.WriteString(mediaTagInstructions)

	return b.String(), nil
}

// repairInstruction tells the model what was structurally wrong with its
// previous output so the single retry has something to fix.
func repairInstruction(verr *syllabus.ValidationError) string {
	return fmt.Sprintf(
		"\n\nThe previous output was invalid because: %s: %s. Reissue a fully valid syllabus that fixes this while preserving everything else.",
		verr.Path, verr.Reason,
	)
}
