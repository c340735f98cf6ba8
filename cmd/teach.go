package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/judge"
	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/session"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/syllabus"
	"github.com/abhisek/docent/internal/syllabusgen"
	"github.com/abhisek/docent/internal/tui"
)

var teachCmd = &cobra.Command{
	Use:   "teach",
	Short: "Start a teaching session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTeach(cmd)
	},
}

func init() {
	teachCmd.Flags().String("syllabus", "", "Path to a syllabus JSON file")
	teachCmd.Flags().String("document", "", "Source document URI to generate a syllabus from")
}

// runTeach opens the store, resolves a syllabus, and launches the chat TUI.
func runTeach(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	snapRepo := st.SnapshotRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	documentRef, _ := cmd.Flags().GetString("document")
	syllabusPath, _ := cmd.Flags().GetString("syllabus")

	gen := syllabusgen.NewService(provider, syllabusgen.DefaultConfig())

	syl, err := resolveSyllabus(ctx, gen, snapRepo, syllabusPath, documentRef)
	if err != nil {
		return err
	}

	ctrl := session.NewController(session.Options{
		Judge:       judge.NewService(provider, judge.DefaultConfig()),
		Reviser:     gen,
		Teacher:     session.NewTeacher(provider, session.DefaultTeacherConfig()),
		Events:      eventRepo,
		DocumentRef: documentRef,
	})
	if err := ctrl.Start(ctx, syl); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	saveInitialSnapshot(ctx, snapRepo, ctrl, syl)

	return tui.Run(ctrl, snapRepo)
}

// resolveSyllabus picks the teaching material: an explicit JSON file,
// a fresh generation from the source document, or the most recently
// stored syllabus.
func resolveSyllabus(ctx context.Context, gen *syllabusgen.Service, snapRepo store.SnapshotRepo, path, documentRef string) (*syllabus.Syllabus, error) {
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read syllabus file: %w", err)
		}
		syl, err := syllabus.Validate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid syllabus in %s: %w", path, err)
		}
		return syl, nil
	}

	if documentRef != "" {
		fmt.Println("Generating syllabus from", documentRef, "...")
		syl, err := gen.Generate(ctx, documentRef)
		if err != nil {
			return nil, fmt.Errorf("generate syllabus: %w", err)
		}
		return syl, nil
	}

	snap, err := snapRepo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stored syllabus: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("no syllabus available: pass --syllabus <file> or --document <uri>")
	}
	syl, err := syllabus.Validate(snap.Data)
	if err != nil {
		return nil, fmt.Errorf("stored syllabus is invalid: %w", err)
	}
	return syl, nil
}

// saveInitialSnapshot persists the starting syllabus, best-effort.
func saveInitialSnapshot(ctx context.Context, snapRepo store.SnapshotRepo, ctrl *session.Controller, syl *syllabus.Syllabus) {
	raw, err := json.Marshal(syl)
	if err != nil {
		return
	}
	saveErr := snapRepo.Save(ctx, &store.SyllabusSnapshotRecord{
		SessionID:    ctrl.ID(),
		SyllabusName: syl.Name,
		Revision:     ctrl.Revision(),
		Data:         raw,
	})
	if saveErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to store syllabus snapshot: %v\n", saveErr)
	}
}
