package session

// NoticeKind labels an informational, non-fatal signal for the
// presentation layer.
type NoticeKind string

const (
	// NoticeStageRealigned: a syllabus replace removed the stage the
	// learner was on, and the navigator reset to the first stage.
	NoticeStageRealigned NoticeKind = "stage_realigned"

	// NoticeMediaRejected: a media reference of a kind the stage does
	// not allow was dropped before judging.
	NoticeMediaRejected NoticeKind = "media_rejected"
)

// Notice is an informational signal emitted alongside a successful
// operation. Notices never indicate failure.
type Notice struct {
	Kind   NoticeKind
	Detail string
}
