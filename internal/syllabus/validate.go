package syllabus

import (
	"encoding/json"
	"fmt"
)

// ValidationError describes the first structural defect found in a
// candidate syllabus. Path uses the wire key names, e.g.
// "syllabus[2].judge_question".
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// stageStringFields are the required scalar string fields of a stage, in
// check order. stage_id is handled separately because it must be non-empty.
var stageStringFields = []string{
	"stage_description",
	"target",
	"judge_question",
	"judge_answer",
}

// Validate checks that raw is a structurally valid syllabus document and
// decodes it. It is the sole gate between text a model emitted and a
// Syllabus the system trusts; it never repairs, and it reports the first
// violation found with a field path. Pure function.
func Validate(raw json.RawMessage) (*Syllabus, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ValidationError{Path: "$", Reason: fmt.Sprintf("not a JSON object: %v", err)}
	}

	// Top-level keys, present and correctly typed.
	if err := requireString(doc, "syllabus_name"); err != nil {
		return nil, err
	}
	if err := requireString(doc, "target_audience"); err != nil {
		return nil, err
	}
	rawStages, ok := doc["syllabus"]
	if !ok {
		return nil, &ValidationError{Path: "syllabus", Reason: "missing required field"}
	}
	stages, ok := rawStages.([]any)
	if !ok {
		return nil, &ValidationError{Path: "syllabus", Reason: "must be an array of stages"}
	}
	if len(stages) == 0 {
		return nil, &ValidationError{Path: "syllabus", Reason: "must contain at least one stage"}
	}

	// Per-stage required fields and types.
	for i, rawStage := range stages {
		prefix := fmt.Sprintf("syllabus[%d]", i)
		stage, ok := rawStage.(map[string]any)
		if !ok {
			return nil, &ValidationError{Path: prefix, Reason: "stage must be an object"}
		}

		id, ok := stage["stage_id"].(string)
		if !ok {
			return nil, &ValidationError{Path: prefix + ".stage_id", Reason: "missing or not a string"}
		}
		if id == "" {
			return nil, &ValidationError{Path: prefix + ".stage_id", Reason: "must be non-empty"}
		}

		for _, field := range stageStringFields {
			if _, ok := stage[field].(string); !ok {
				return nil, &ValidationError{Path: prefix + "." + field, Reason: "missing or not a string"}
			}
		}

		if err := requireStringArray(stage, "judge_media_allowed", prefix); err != nil {
			return nil, err
		}
		if err := requireStringArray(stage, "teaching_knowledge", prefix); err != nil {
			return nil, err
		}
	}

	// stage_id uniqueness across the sequence.
	seen := make(map[string]int, len(stages))
	for i, rawStage := range stages {
		id := rawStage.(map[string]any)["stage_id"].(string)
		if prev, dup := seen[id]; dup {
			return nil, &ValidationError{
				Path:   fmt.Sprintf("syllabus[%d].stage_id", i),
				Reason: fmt.Sprintf("duplicate stage_id %q (first used by syllabus[%d])", id, prev),
			}
		}
		seen[id] = i
	}

	// judge_media_allowed values drawn from the known media kinds.
	for i, rawStage := range stages {
		media := rawStage.(map[string]any)["judge_media_allowed"].([]any)
		for j, v := range media {
			kind := MediaKind(v.(string))
			if !KnownMediaKind(kind) {
				return nil, &ValidationError{
					Path:   fmt.Sprintf("syllabus[%d].judge_media_allowed[%d]", i, j),
					Reason: fmt.Sprintf("unknown media kind %q (allowed: text, image, video, audio)", kind),
				}
			}
		}
	}

	var s Syllabus
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &ValidationError{Path: "$", Reason: fmt.Sprintf("decode: %v", err)}
	}
	return &s, nil
}

// Check re-validates an already-decoded syllabus. Replace goes through
// this so an in-memory document gets the same gate as model output.
func Check(s *Syllabus) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return &ValidationError{Path: "$", Reason: fmt.Sprintf("serialize: %v", err)}
	}
	_, verr := Validate(raw)
	return verr
}

func requireString(doc map[string]any, key string) *ValidationError {
	if _, ok := doc[key].(string); !ok {
		return &ValidationError{Path: key, Reason: "missing or not a string"}
	}
	return nil
}

func requireStringArray(stage map[string]any, key, prefix string) *ValidationError {
	arr, ok := stage[key].([]any)
	if !ok {
		return &ValidationError{Path: prefix + "." + key, Reason: "missing or not an array"}
	}
	for j, v := range arr {
		if _, ok := v.(string); !ok {
			return &ValidationError{
				Path:   fmt.Sprintf("%s.%s[%d]", prefix, key, j),
				Reason: "must be a string",
			}
		}
	}
	return nil
}
