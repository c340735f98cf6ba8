package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/docent/internal/judge"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/syllabus"
	"github.com/abhisek/docent/internal/syllabusgen"
)

// Direction selects a relative navigation move.
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

// Options wires a controller's collaborators. Judge and Reviser are
// required for SubmitAnswer and Modify respectively; Teacher and Events
// are optional.
type Options struct {
	Judge   *judge.Service
	Reviser *syllabusgen.Service
	Teacher *Teacher
	Events  store.EventRepo

	// DocumentRef is the source document the syllabus was generated
	// from, forwarded to revision calls so edits stay grounded in it.
	DocumentRef string
}

// Controller owns one learner's session: the syllabus store, the stage
// cursor, the turn history, and the lifecycle state machine
// NotStarted → Active → Ended (terminal). It is a single-writer object:
// callers serialize access, one controller per learner conversation.
type Controller struct {
	sessionID string
	status    Status
	docRef    string

	store   *syllabus.Store
	nav     *Navigator
	history []Turn

	judge   *judge.Service
	reviser *syllabusgen.Service
	teacher *Teacher
	events  store.EventRepo
}

// NewController creates a controller in the NotStarted state.
func NewController(opts Options) *Controller {
	return &Controller{
		sessionID: uuid.New().String(),
		status:    StatusNotStarted,
		docRef:    opts.DocumentRef,
		judge:     opts.Judge,
		reviser:   opts.Reviser,
		teacher:   opts.Teacher,
		events:    opts.Events,
	}
}

// ID returns the session UUID.
func (c *Controller) ID() string { return c.sessionID }

// Status returns the lifecycle state.
func (c *Controller) Status() Status { return c.status }

// History returns a copy of the turn history, oldest first.
func (c *Controller) History() []Turn {
	out := make([]Turn, len(c.history))
	copy(out, c.history)
	return out
}

// Syllabus returns the current authoritative syllabus.
func (c *Controller) Syllabus() (*syllabus.Syllabus, error) {
	if c.store == nil {
		return nil, &ErrInvalidSessionState{Op: "syllabus", State: c.status}
	}
	return c.store.Current()
}

// CurrentStage returns the stage under the cursor.
func (c *Controller) CurrentStage() (syllabus.Stage, error) {
	if err := c.requireActive("currentStage"); err != nil {
		return syllabus.Stage{}, err
	}
	return c.nav.Current(), nil
}

// Revision returns the number of accepted syllabus versions, starting
// at 1 for the initial syllabus. Zero before Start.
func (c *Controller) Revision() int {
	if c.store == nil {
		return 0
	}
	return c.store.Revision()
}

// Progress returns the cursor position and stage count.
func (c *Controller) Progress() (index, total int) {
	if c.nav == nil {
		return 0, 0
	}
	return c.nav.Index(), c.nav.Len()
}

// Start validates syl, makes it authoritative, and activates the session
// at the first stage with an empty history.
func (c *Controller) Start(ctx context.Context, syl *syllabus.Syllabus) error {
	if c.status != StatusNotStarted {
		return &ErrInvalidSessionState{Op: "start", State: c.status}
	}

	st, err := syllabus.NewStore(syl)
	if err != nil {
		return err
	}
	current, err := st.Current()
	if err != nil {
		return err
	}

	c.store = st
	c.nav = NewNavigator(current)
	c.history = nil
	c.status = StatusActive

	c.appendSessionEvent(ctx, "start", current)
	return nil
}

// SubmitResult reports the outcome of one answer submission.
type SubmitResult struct {
	LearnerTurn Turn
	TutorTurn   Turn
	Verdict     judge.Verdict
	Notices     []Notice
	Advanced    bool // cursor moved to the next stage
	Completed   bool // final stage passed; session is now Ended
}

// SubmitAnswer judges the learner's answer against the current stage,
// appends the learner and tutor turns, and advances on a correct
// outcome. Passing the final stage ends the session. A judge failure
// leaves the session exactly as it was — the learner can resubmit;
// nothing ever half-advances.
func (c *Controller) SubmitAnswer(ctx context.Context, text string, refs []syllabus.MediaRef) (*SubmitResult, error) {
	if err := c.requireActive("submitAnswer"); err != nil {
		return nil, err
	}
	if c.judge == nil {
		return nil, fmt.Errorf("no judge configured")
	}

	stage := c.nav.Current()
	verdict, rejected, err := c.judge.Judge(ctx, stage, judge.Response{Text: text, MediaRefs: refs})
	if err != nil {
		return nil, err
	}

	var notices []Notice
	for _, r := range rejected {
		notices = append(notices, Notice{
			Kind:   NoticeMediaRejected,
			Detail: fmt.Sprintf("%s answers are not allowed on stage %s; %s was ignored", r.Kind, stage.ID, r.Locator),
		})
	}

	now := time.Now()
	learnerTurn := Turn{
		Role:          RoleLearner,
		Content:       text,
		MediaRefs:     refs,
		StageIDAtTime: stage.ID,
		At:            now,
	}
	tutorTurn := Turn{
		Role:          RoleTutor,
		Content:       verdict.Rationale,
		StageIDAtTime: stage.ID,
		Verdict:       verdict,
		At:            now,
	}
	c.history = append(c.history, learnerTurn, tutorTurn)

	result := &SubmitResult{
		LearnerTurn: learnerTurn,
		TutorTurn:   tutorTurn,
		Verdict:     *verdict,
		Notices:     notices,
	}

	if verdict.Outcome == judge.OutcomeCorrect {
		if complete := c.nav.Advance(); complete {
			result.Completed = true
			c.status = StatusEnded
			if syl, serr := c.store.Current(); serr == nil {
				c.appendSessionEvent(ctx, "end", syl)
			}
		} else {
			result.Advanced = true
		}
	}

	c.appendTurnEvent(ctx, stage.ID, text, verdict)
	return result, nil
}

// Navigate moves the cursor one stage forward or back and returns the
// stage now under it. It produces no Turn. Forward movement past the
// last stage and backward past the first are no-ops.
func (c *Controller) Navigate(dir Direction) (syllabus.Stage, error) {
	if err := c.requireActive("navigate"); err != nil {
		return syllabus.Stage{}, err
	}
	switch dir {
	case DirectionNext:
		c.nav.Advance()
	case DirectionPrevious:
		c.nav.Retreat()
	default:
		return syllabus.Stage{}, fmt.Errorf("unknown direction %q", dir)
	}
	return c.nav.Current(), nil
}

// JumpTo moves the cursor to the stage with the given ID.
func (c *Controller) JumpTo(stageID string) (syllabus.Stage, error) {
	if err := c.requireActive("jump"); err != nil {
		return syllabus.Stage{}, err
	}
	if err := c.nav.Jump(stageID); err != nil {
		return syllabus.Stage{}, err
	}
	return c.nav.Current(), nil
}

// ModifyResult reports an accepted syllabus modification.
type ModifyResult struct {
	Syllabus *syllabus.Syllabus
	Notices  []Notice
}

// Modify applies a natural-language instruction to the syllabus:
// propose via the reviser, commit via the store, then realign the
// cursor by stage identity. A proposal that fails validation (even
// after its one repair attempt) changes nothing — the prior syllabus
// stays current. A StageRealigned notice is informational, not an error.
func (c *Controller) Modify(ctx context.Context, instruction string) (*ModifyResult, error) {
	if err := c.requireActive("modify"); err != nil {
		return nil, err
	}
	if c.reviser == nil {
		return nil, fmt.Errorf("no reviser configured")
	}

	current, err := c.store.Current()
	if err != nil {
		return nil, err
	}

	proposed, err := c.reviser.Propose(ctx, current, instruction, c.docRef)
	if err != nil {
		return nil, err
	}

	if err := c.store.Replace(proposed); err != nil {
		return nil, err
	}
	committed, err := c.store.Current()
	if err != nil {
		return nil, err
	}

	result := &ModifyResult{Syllabus: committed}
	if realigned := c.nav.Realign(committed); realigned {
		result.Notices = append(result.Notices, Notice{
			Kind:   NoticeStageRealigned,
			Detail: "the stage you were on no longer exists; restarting from the first stage",
		})
	}

	c.appendRevisionEvent(ctx, instruction, committed)
	return result, nil
}

// TeachCurrent asks the tutor model to present the current stage and
// appends the resulting tutor turn. A teaching failure is non-fatal:
// the error is returned and the session remains usable.
func (c *Controller) TeachCurrent(ctx context.Context) (Turn, error) {
	if err := c.requireActive("teach"); err != nil {
		return Turn{}, err
	}
	if c.teacher == nil {
		return Turn{}, fmt.Errorf("no teacher configured")
	}

	syl, err := c.store.Current()
	if err != nil {
		return Turn{}, err
	}
	stage := c.nav.Current()

	content, err := c.teacher.Teach(ctx, syl, stage)
	if err != nil {
		return Turn{}, err
	}

	turn := Turn{
		Role:          RoleTutor,
		Content:       content,
		StageIDAtTime: stage.ID,
		At:            time.Now(),
	}
	c.history = append(c.history, turn)
	return turn, nil
}

// End terminates the session. Ended is terminal; a new controller must
// be created to teach again.
func (c *Controller) End(ctx context.Context) error {
	if err := c.requireActive("end"); err != nil {
		return err
	}
	c.status = StatusEnded
	if syl, err := c.store.Current(); err == nil {
		c.appendSessionEvent(ctx, "end", syl)
	}
	return nil
}

func (c *Controller) requireActive(op string) error {
	if c.status != StatusActive {
		return &ErrInvalidSessionState{Op: op, State: c.status}
	}
	return nil
}

// Event appends are best-effort: persistence problems must never undo
// or block a teaching interaction.

func (c *Controller) appendSessionEvent(ctx context.Context, action string, syl *syllabus.Syllabus) {
	if c.events == nil {
		return
	}
	err := c.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    c.sessionID,
		Action:       action,
		SyllabusName: syl.Name,
		StageCount:   len(syl.Stages),
		TurnCount:    len(c.history),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}
}

func (c *Controller) appendTurnEvent(ctx context.Context, stageID, text string, verdict *judge.Verdict) {
	if c.events == nil {
		return
	}
	err := c.events.AppendTurnEvent(ctx, store.TurnEventData{
		SessionID:     c.sessionID,
		StageID:       stageID,
		LearnerAnswer: text,
		Outcome:       string(verdict.Outcome),
		Rationale:     verdict.Rationale,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log turn event: %v\n", err)
	}
}

func (c *Controller) appendRevisionEvent(ctx context.Context, instruction string, syl *syllabus.Syllabus) {
	if c.events == nil {
		return
	}
	err := c.events.AppendSyllabusRevision(ctx, store.SyllabusRevisionEventData{
		SessionID:   c.sessionID,
		Instruction: instruction,
		DocumentRef: c.docRef,
		Revision:    c.store.Revision(),
		StageCount:  len(syl.Stages),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log syllabus revision event: %v\n", err)
	}
}
