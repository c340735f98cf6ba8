package syllabus

// MediaKind declares a modality a learner may use to answer a stage's
// judge question.
type MediaKind string

const (
	MediaText  MediaKind = "text"
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// knownMediaKinds is the closed set of accepted media kinds. Unknown
// values in a candidate syllabus are rejected, never silently dropped.
var knownMediaKinds = map[MediaKind]bool{
	MediaText:  true,
	MediaImage: true,
	MediaVideo: true,
	MediaAudio: true,
}

// KnownMediaKind reports whether k is an accepted media kind.
func KnownMediaKind(k MediaKind) bool {
	return knownMediaKinds[k]
}

// MediaRef is an opaque reference to learner-supplied media content.
type MediaRef struct {
	Kind    MediaKind `json:"kind"`
	Locator string    `json:"locator"`
	Caption string    `json:"caption,omitempty"`
}

// Stage is one teaching unit: a target, knowledge points, and an
// evaluation question/answer pair. The JSON tags are the wire contract
// with the generative model and must not change.
type Stage struct {
	ID                string      `json:"stage_id"`
	Description       string      `json:"stage_description"`
	JudgeMediaAllowed []MediaKind `json:"judge_media_allowed"`
	Target            string      `json:"target"`
	TeachingKnowledge []string    `json:"teaching_knowledge"`
	JudgeQuestion     string      `json:"judge_question"`
	JudgeAnswer       string      `json:"judge_answer"`
}

// AllowsMedia reports whether the stage accepts answers in the given kind.
func (s Stage) AllowsMedia(kind MediaKind) bool {
	for _, k := range s.JudgeMediaAllowed {
		if k == kind {
			return true
		}
	}
	return false
}

// Syllabus is an ordered teaching plan. Stage order defines teaching
// order; stage IDs are the stable identity across edits.
type Syllabus struct {
	Name           string  `json:"syllabus_name"`
	TargetAudience string  `json:"target_audience"`
	Stages         []Stage `json:"syllabus"`
}

// StageIndex returns the position of the stage with the given ID, or -1.
func (s *Syllabus) StageIndex(stageID string) int {
	for i, st := range s.Stages {
		if st.ID == stageID {
			return i
		}
	}
	return -1
}

// Stage returns the stage with the given ID, or nil.
func (s *Syllabus) Stage(stageID string) *Stage {
	if i := s.StageIndex(stageID); i >= 0 {
		return &s.Stages[i]
	}
	return nil
}

// Clone returns a deep copy. The store hands out clones so callers can
// never mutate the authoritative document in place.
func (s *Syllabus) Clone() *Syllabus {
	out := &Syllabus{
		Name:           s.Name,
		TargetAudience: s.TargetAudience,
		Stages:         make([]Stage, len(s.Stages)),
	}
	for i, st := range s.Stages {
		cp := st
		cp.JudgeMediaAllowed = append([]MediaKind(nil), st.JudgeMediaAllowed...)
		cp.TeachingKnowledge = append([]string(nil), st.TeachingKnowledge...)
		out.Stages[i] = cp
	}
	return out
}
