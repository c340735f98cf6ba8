package judge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/syllabus"
)

// Service evaluates learner answers against a stage's rubric.
// The LLM does the semantic comparison; the Service owns the protocol:
// what goes into the request, which media is admissible, and how the
// verdict is parsed.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an answer judge.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// verdictOutput is the raw LLM response before parsing.
type verdictOutput struct {
	Outcome   string `json:"outcome"`
	Rationale string `json:"rationale"`
}

// Judge evaluates resp against stage. Media of kinds the stage does not
// allow is dropped before dispatch and returned as the rejected slice —
// a notice, not a failure; evaluation proceeds text-only in the worst
// case. Any provider failure or unparseable verdict is surfaced as
// *ErrJudgeUnavailable.
func (s *Service) Judge(ctx context.Context, stage syllabus.Stage, resp Response) (*Verdict, []syllabus.MediaRef, error) {
	ctx = llm.WithPurpose(ctx, "judge")

	admitted, rejected := filterMedia(stage, resp.MediaRefs)

	req := llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildJudgeUserMessage(stage, resp, admitted)},
		},
		Schema:      VerdictSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	llmResp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, rejected, &ErrJudgeUnavailable{Err: err}
	}

	var out verdictOutput
	if err := json.Unmarshal(llmResp.Content, &out); err != nil {
		return nil, rejected, &ErrJudgeUnavailable{Err: fmt.Errorf("parse verdict: %w", err)}
	}

	outcome := Outcome(out.Outcome)
	switch outcome {
	case OutcomeCorrect, OutcomePartial, OutcomeIncorrect:
	default:
		return nil, rejected, &ErrJudgeUnavailable{Err: fmt.Errorf("unknown verdict outcome %q", out.Outcome)}
	}

	return &Verdict{Outcome: outcome, Rationale: out.Rationale}, rejected, nil
}

// filterMedia splits refs into those the stage allows and those it doesn't.
func filterMedia(stage syllabus.Stage, refs []syllabus.MediaRef) (admitted, rejected []syllabus.MediaRef) {
	for _, r := range refs {
		if stage.AllowsMedia(r.Kind) {
			admitted = append(admitted, r)
		} else {
			rejected = append(rejected, r)
		}
	}
	return admitted, rejected
}
