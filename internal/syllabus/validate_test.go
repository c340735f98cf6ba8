package syllabus

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// validDoc returns a well-formed two-stage syllabus document.
func validDoc() map[string]any {
	return map[string]any{
		"syllabus_name":   "Photosynthesis Basics",
		"target_audience": "high school students",
		"syllabus": []any{
			map[string]any{
				"stage_id":            "light-reactions",
				"stage_description":   "How chloroplasts capture light energy",
				"judge_media_allowed": []any{"text", "image"},
				"target":              "Explain the role of chlorophyll",
				"teaching_knowledge":  []any{"chlorophyll absorbs red and blue light", "ATP and NADPH are produced"},
				"judge_question":      "What does chlorophyll do during the light reactions?",
				"judge_answer":        "It absorbs light energy and transfers excited electrons into the transport chain.",
			},
			map[string]any{
				"stage_id":            "calvin-cycle",
				"stage_description":   "Carbon fixation in the stroma",
				"judge_media_allowed": []any{"text"},
				"target":              "Describe how CO2 becomes sugar",
				"teaching_knowledge":  []any{"RuBisCO fixes CO2", "G3P is the product"},
				"judge_question":      "What enzyme fixes carbon dioxide?",
				"judge_answer":        "RuBisCO",
			},
		},
	}
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal test doc: %v", err)
	}
	return raw
}

func TestValidate_ValidDocument(t *testing.T) {
	syl, err := Validate(mustJSON(t, validDoc()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if syl.Name != "Photosynthesis Basics" {
		t.Errorf("name = %q", syl.Name)
	}
	if syl.TargetAudience != "high school students" {
		t.Errorf("target_audience = %q", syl.TargetAudience)
	}
	if len(syl.Stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(syl.Stages))
	}
	if syl.Stages[0].ID != "light-reactions" {
		t.Errorf("stage 0 id = %q", syl.Stages[0].ID)
	}
	if !syl.Stages[0].AllowsMedia(MediaImage) {
		t.Error("stage 0 should allow image answers")
	}
	if syl.Stages[1].AllowsMedia(MediaImage) {
		t.Error("stage 1 should not allow image answers")
	}
	if len(syl.Stages[1].TeachingKnowledge) != 2 {
		t.Errorf("stage 1 knowledge points = %d", len(syl.Stages[1].TeachingKnowledge))
	}
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(doc map[string]any)
		wantPath string
	}{
		{
			name:     "missing syllabus_name",
			mutate:   func(d map[string]any) { delete(d, "syllabus_name") },
			wantPath: "syllabus_name",
		},
		{
			name:     "syllabus_name wrong type",
			mutate:   func(d map[string]any) { d["syllabus_name"] = 42 },
			wantPath: "syllabus_name",
		},
		{
			name:     "missing target_audience",
			mutate:   func(d map[string]any) { delete(d, "target_audience") },
			wantPath: "target_audience",
		},
		{
			name:     "missing stage array",
			mutate:   func(d map[string]any) { delete(d, "syllabus") },
			wantPath: "syllabus",
		},
		{
			name:     "stage array wrong type",
			mutate:   func(d map[string]any) { d["syllabus"] = "not an array" },
			wantPath: "syllabus",
		},
		{
			name:     "empty stage array",
			mutate:   func(d map[string]any) { d["syllabus"] = []any{} },
			wantPath: "syllabus",
		},
		{
			name: "stage not an object",
			mutate: func(d map[string]any) {
				d["syllabus"] = []any{d["syllabus"].([]any)[0], "bogus"}
			},
			wantPath: "syllabus[1]",
		},
		{
			name: "missing stage_id",
			mutate: func(d map[string]any) {
				delete(stage(d, 1), "stage_id")
			},
			wantPath: "syllabus[1].stage_id",
		},
		{
			name: "empty stage_id",
			mutate: func(d map[string]any) {
				stage(d, 0)["stage_id"] = ""
			},
			wantPath: "syllabus[0].stage_id",
		},
		{
			name: "missing judge_question",
			mutate: func(d map[string]any) {
				delete(stage(d, 1), "judge_question")
			},
			wantPath: "syllabus[1].judge_question",
		},
		{
			name: "judge_answer wrong type",
			mutate: func(d map[string]any) {
				stage(d, 0)["judge_answer"] = []any{"not", "a", "string"}
			},
			wantPath: "syllabus[0].judge_answer",
		},
		{
			name: "judge_media_allowed not an array",
			mutate: func(d map[string]any) {
				stage(d, 0)["judge_media_allowed"] = "text"
			},
			wantPath: "syllabus[0].judge_media_allowed",
		},
		{
			name: "teaching_knowledge element wrong type",
			mutate: func(d map[string]any) {
				stage(d, 1)["teaching_knowledge"] = []any{"fine", 7}
			},
			wantPath: "syllabus[1].teaching_knowledge[1]",
		},
		{
			name: "duplicate stage_id",
			mutate: func(d map[string]any) {
				stage(d, 1)["stage_id"] = "light-reactions"
			},
			wantPath: "syllabus[1].stage_id",
		},
		{
			name: "unknown media kind",
			mutate: func(d map[string]any) {
				stage(d, 0)["judge_media_allowed"] = []any{"text", "hologram"}
			},
			wantPath: "syllabus[0].judge_media_allowed[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.mutate(doc)

			_, err := Validate(mustJSON(t, doc))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", verr.Path, tt.wantPath)
			}
		})
	}
}

func TestValidate_NotAnObject(t *testing.T) {
	for _, raw := range []string{`[1,2,3]`, `"just a string"`, `{broken`} {
		_, err := Validate(json.RawMessage(raw))
		if err == nil {
			t.Fatalf("expected error for %s", raw)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if verr.Path != "$" {
			t.Errorf("path = %q, want $", verr.Path)
		}
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	// Two defects: a missing top-level field and a broken stage.
	// The top-level check runs first and must be the one reported.
	doc := validDoc()
	delete(doc, "target_audience")
	stage(doc, 0)["stage_id"] = ""

	_, err := Validate(mustJSON(t, doc))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Path != "target_audience" {
		t.Errorf("path = %q, want target_audience", verr.Path)
	}
}

func TestValidate_DuplicateMessageNamesFirstUse(t *testing.T) {
	doc := validDoc()
	stage(doc, 1)["stage_id"] = "light-reactions"

	_, err := Validate(mustJSON(t, doc))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !strings.Contains(verr.Reason, "syllabus[0]") {
		t.Errorf("reason %q should reference the first occurrence", verr.Reason)
	}
}

func TestCheck_AcceptsDecodedDocument(t *testing.T) {
	syl, err := Validate(mustJSON(t, validDoc()))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := Check(syl); err != nil {
		t.Fatalf("check should accept a validated document: %v", err)
	}

	syl.Stages[0].ID = ""
	if err := Check(syl); err == nil {
		t.Fatal("check should reject an emptied stage_id")
	}
}

func stage(doc map[string]any, i int) map[string]any {
	return doc["syllabus"].([]any)[i].(map[string]any)
}
