package syllabusgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/syllabus"
)

// Service produces and revises syllabuses via the LLM provider.
// Every document the model emits passes through syllabus.Validate before
// it is returned; nothing here commits — callers decide whether a
// proposed syllabus replaces the current one.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a syllabus generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate builds a fresh syllabus from the document at documentRef.
func (s *Service) Generate(ctx context.Context, documentRef string) (*syllabus.Syllabus, error) {
	ctx = llm.WithPurpose(ctx, "syllabus-gen")
	return s.generateValidated(ctx, buildGenerateUserMessage(), documentRef)
}

// Propose applies a natural-language modification instruction to the
// current syllabus and returns the complete new document. It never
// commits; committing via the store is the caller's responsibility, so
// propose and commit stay separately testable.
func (s *Service) Propose(ctx context.Context, current *syllabus.Syllabus, instruction, documentRef string) (*syllabus.Syllabus, error) {
	ctx = llm.WithPurpose(ctx, "syllabus-revise")

	userMsg, err := buildReviseUserMessage(current, instruction)
	if err != nil {
		return nil, err
	}
	return s.generateValidated(ctx, userMsg, documentRef)
}

// generateValidated runs one model call, validates the output, and on a
// structural defect retries exactly once with a repair instruction
// appended. A second defect terminates with ErrInvalidAfterRepair —
// never unbounded retries, to bound latency and cost.
func (s *Service) generateValidated(ctx context.Context, userMsg, documentRef string) (*syllabus.Syllabus, error) {
	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		DocumentRef: documentRef,
		Schema:      syllabus.Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("syllabus generation: %w", err)
	}

	result, verr := validate(resp.Content)
	if verr == nil {
		return result, nil
	}

	// One repair attempt with the validator's finding spelled out.
	repairReq := req
	repairReq.Messages = []llm.Message{
		{Role: llm.RoleUser, Content: userMsg + repairInstruction(verr)},
	}

	resp, err = s.provider.Generate(ctx, repairReq)
	if err != nil {
		return nil, fmt.Errorf("syllabus repair attempt: %w", err)
	}

	result, verr = validate(resp.Content)
	if verr != nil {
		return nil, &ErrInvalidAfterRepair{Path: verr.Path, Reason: verr.Reason}
	}
	return result, nil
}

func validate(raw []byte) (*syllabus.Syllabus, *syllabus.ValidationError) {
	result, err := syllabus.Validate(raw)
	if err == nil {
		return result, nil
	}
	var verr *syllabus.ValidationError
	if errors.As(err, &verr) {
		return nil, verr
	}
	return nil, &syllabus.ValidationError{Path: "$", Reason: err.Error()}
}
