package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/docent/internal/judge"
	"github.com/abhisek/docent/internal/session"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/syllabus"
)

// Model is the root Bubble Tea model: a chat transcript over one
// teaching session. All session behavior lives in the controller; the
// model only translates keys and slash commands into controller calls.
type Model struct {
	ctrl     *session.Controller
	snapRepo store.SnapshotRepo

	input      textinput.Model
	transcript []entry
	pending    []syllabus.MediaRef

	width  int
	height int
	busy   bool
	status string
	done   bool
}

// New creates the chat model for an already started session.
// snapRepo may be nil; syllabus edits are then not persisted.
func New(ctrl *session.Controller, snapRepo store.SnapshotRepo) Model {
	ti := textinput.New()
	ti.Placeholder = "Answer, or /help for commands..."
	ti.Focus()

	return Model{
		ctrl:     ctrl,
		snapRepo: snapRepo,
		input:    ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), m.teachCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case teachReadyMsg:
		return m.handleTeachReady(msg)

	case judgeDoneMsg:
		return m.handleJudgeDone(msg)

	case modifyDoneMsg:
		return m.handleModifyDone(msg)

	case navDoneMsg:
		return m.handleNavDone(msg)

	case sessionEndedMsg:
		m.done = true
		if msg.Completed {
			m.transcript = append(m.transcript, entry{
				role:    session.RoleTutor,
				content: "That was the final stage. Well done, the syllabus is complete!",
			})
		}
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		_ = m.ctrl.End(context.Background())
		return m, tea.Quit
	case "enter":
		if m.busy {
			return m, nil
		}
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m.dispatch(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch routes a submitted line: slash commands drive the session,
// anything else is a learner answer.
func (m Model) dispatch(line string) (tea.Model, tea.Cmd) {
	if !strings.HasPrefix(line, "/") {
		return m.submitAnswer(line)
	}

	fields := strings.Fields(line)
	cmd, rest := fields[0], strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch cmd {
	case "/next":
		return m.startNav(session.DirectionNext)
	case "/back":
		return m.startNav(session.DirectionPrevious)
	case "/goto":
		if rest == "" {
			m.status = "usage: /goto <stage_id>"
			return m, nil
		}
		return m.startJump(rest)
	case "/modify":
		if rest == "" {
			m.status = "usage: /modify <instruction>"
			return m, nil
		}
		return m.startModify(rest)
	case "/attach":
		return m.attachMedia(rest)
	case "/teach":
		m.busy = true
		m.status = "Preparing the stage..."
		return m, m.teachCmd()
	case "/end":
		_ = m.ctrl.End(context.Background())
		return m, func() tea.Msg { return sessionEndedMsg{} }
	case "/help":
		m.transcript = append(m.transcript, entry{notice: true, content: helpText})
		return m, nil
	default:
		m.status = fmt.Sprintf("unknown command %s", cmd)
		return m, nil
	}
}

const helpText = `Commands:
  /next              move to the next stage
  /back              move to the previous stage
  /goto <stage_id>   jump to a stage
  /teach             present the current stage again
  /modify <text>     edit the syllabus in natural language
  /attach <kind> <uri> [caption]   attach media to your next answer
  /end               end the session
Anything else is submitted as your answer.`

func (m Model) submitAnswer(text string) (tea.Model, tea.Cmd) {
	refs := m.pending
	m.pending = nil
	m.busy = true
	m.status = "Judging..."
	m.transcript = append(m.transcript, entry{role: session.RoleLearner, content: text})

	ctrl := m.ctrl
	return m, func() tea.Msg {
		result, err := ctrl.SubmitAnswer(context.Background(), text, refs)
		return judgeDoneMsg{Result: result, Err: err}
	}
}

func (m Model) startNav(dir session.Direction) (tea.Model, tea.Cmd) {
	ctrl := m.ctrl
	return m, func() tea.Msg {
		stage, err := ctrl.Navigate(dir)
		return navDoneMsg{Stage: stage, Err: err}
	}
}

func (m Model) startJump(stageID string) (tea.Model, tea.Cmd) {
	ctrl := m.ctrl
	return m, func() tea.Msg {
		stage, err := ctrl.JumpTo(stageID)
		return navDoneMsg{Stage: stage, Err: err}
	}
}

func (m Model) startModify(instruction string) (tea.Model, tea.Cmd) {
	m.busy = true
	m.status = "Revising the syllabus..."
	ctrl := m.ctrl
	return m, func() tea.Msg {
		result, err := ctrl.Modify(context.Background(), instruction)
		return modifyDoneMsg{Result: result, Err: err}
	}
}

// attachMedia queues a media reference for the next answer:
// /attach image diagrams/cell.png labeled sketch
func (m Model) attachMedia(rest string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(rest)
	if len(parts) < 2 {
		m.status = "usage: /attach <image|video|audio> <uri> [caption]"
		return m, nil
	}
	kind := syllabus.MediaKind(parts[0])
	if !syllabus.KnownMediaKind(kind) || kind == syllabus.MediaText {
		m.status = fmt.Sprintf("unknown media kind %q", parts[0])
		return m, nil
	}
	ref := syllabus.MediaRef{
		Kind:    kind,
		Locator: parts[1],
		Caption: strings.Join(parts[2:], " "),
	}
	m.pending = append(m.pending, ref)
	m.status = fmt.Sprintf("attached %s %s", ref.Kind, ref.Locator)
	return m, nil
}

func (m Model) teachCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		turn, err := ctrl.TeachCurrent(context.Background())
		return teachReadyMsg{Turn: turn, Err: err}
	}
}

func (m Model) handleTeachReady(msg teachReadyMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.status = ""
	if msg.Err != nil {
		m.transcript = append(m.transcript, entry{
			notice:  true,
			content: fmt.Sprintf("The tutor could not present this stage: %v. Answer the stage question or use /teach to retry.", msg.Err),
		})
		return m, nil
	}
	m.transcript = append(m.transcript, entry{role: session.RoleTutor, content: msg.Turn.Content})
	return m, nil
}

func (m Model) handleJudgeDone(msg judgeDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.status = ""

	if msg.Err != nil {
		var unavailable *judge.ErrJudgeUnavailable
		if errors.As(msg.Err, &unavailable) {
			m.transcript = append(m.transcript, entry{
				notice:  true,
				content: "The judge is unavailable right now. Your answer was not evaluated; please try again.",
			})
			return m, nil
		}
		m.transcript = append(m.transcript, entry{notice: true, content: msg.Err.Error()})
		return m, nil
	}

	for _, n := range msg.Result.Notices {
		m.transcript = append(m.transcript, entry{notice: true, content: n.Detail})
	}
	m.transcript = append(m.transcript, entry{
		role:    session.RoleTutor,
		content: msg.Result.Verdict.Rationale,
		badge:   string(msg.Result.Verdict.Outcome),
	})

	if msg.Result.Completed {
		return m, func() tea.Msg { return sessionEndedMsg{Completed: true} }
	}
	if msg.Result.Advanced {
		m.busy = true
		m.status = "Preparing the next stage..."
		return m, m.teachCmd()
	}
	return m, nil
}

func (m Model) handleModifyDone(msg modifyDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.status = ""
	if msg.Err != nil {
		m.transcript = append(m.transcript, entry{
			notice:  true,
			content: fmt.Sprintf("The edit was not applied: %v", msg.Err),
		})
		return m, nil
	}

	for _, n := range msg.Result.Notices {
		m.transcript = append(m.transcript, entry{notice: true, content: n.Detail})
	}
	m.transcript = append(m.transcript, entry{
		notice:  true,
		content: fmt.Sprintf("Syllabus updated: %q now has %d stages.", msg.Result.Syllabus.Name, len(msg.Result.Syllabus.Stages)),
	})

	m.saveSnapshot(msg.Result.Syllabus)

	// Present whatever stage the cursor landed on after the edit.
	m.busy = true
	m.status = "Preparing the stage..."
	return m, m.teachCmd()
}

func (m Model) handleNavDone(msg navDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		var notFound *session.ErrStageNotFound
		if errors.As(msg.Err, &notFound) {
			m.status = fmt.Sprintf("no stage with id %q", notFound.StageID)
			return m, nil
		}
		m.status = msg.Err.Error()
		return m, nil
	}
	m.busy = true
	m.status = fmt.Sprintf("Moving to stage %s...", msg.Stage.ID)
	return m, m.teachCmd()
}

// saveSnapshot persists the edited syllabus, best-effort.
func (m Model) saveSnapshot(syl *syllabus.Syllabus) {
	if m.snapRepo == nil {
		return
	}
	raw, err := json.Marshal(syl)
	if err != nil {
		return
	}
	_ = m.snapRepo.Save(context.Background(), &store.SyllabusSnapshotRecord{
		SessionID:    m.ctrl.ID(),
		SyllabusName: syl.Name,
		Revision:     m.ctrl.Revision(),
		Data:         raw,
	})
}

// Run starts the Bubble Tea program for the given session.
func Run(ctrl *session.Controller, snapRepo store.SnapshotRepo) error {
	p := tea.NewProgram(New(ctrl, snapRepo))
	_, err := p.Run()
	return err
}
