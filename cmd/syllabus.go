package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/syllabus"
	"github.com/abhisek/docent/internal/syllabusgen"
)

var syllabusCmd = &cobra.Command{
	Use:   "syllabus",
	Short: "Generate, revise, and inspect syllabi",
}

var syllabusGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a syllabus from a source document",
	RunE: func(cmd *cobra.Command, args []string) error {
		documentRef, _ := cmd.Flags().GetString("document")
		if documentRef == "" {
			return fmt.Errorf("--document is required")
		}
		out, _ := cmd.Flags().GetString("output")

		gen, cleanup, err := openGenerator(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		syl, err := gen.Generate(context.Background(), documentRef)
		if err != nil {
			return fmt.Errorf("generate syllabus: %w", err)
		}

		return writeSyllabus(syl, out)
	},
}

var syllabusReviseCmd = &cobra.Command{
	Use:   "revise <file> <instruction>",
	Short: "Apply a natural-language edit to a syllabus file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, instruction := args[0], args[1]
		documentRef, _ := cmd.Flags().GetString("document")
		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			out = path
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read syllabus file: %w", err)
		}
		current, err := syllabus.Validate(raw)
		if err != nil {
			return fmt.Errorf("invalid syllabus in %s: %w", path, err)
		}

		gen, cleanup, err := openGenerator(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		revised, err := gen.Propose(context.Background(), current, instruction, documentRef)
		if err != nil {
			return fmt.Errorf("revise syllabus: %w", err)
		}

		return writeSyllabus(revised, out)
	},
}

var syllabusValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a syllabus JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read syllabus file: %w", err)
		}
		syl, err := syllabus.Validate(raw)
		if err != nil {
			return err
		}
		fmt.Printf("%s: valid (%d stages)\n", syl.Name, len(syl.Stages))
		return nil
	},
}

var syllabusShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the most recently stored syllabus",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(context.Background())
		if err != nil {
			return fmt.Errorf("load syllabus: %w", err)
		}
		if snap == nil {
			fmt.Println("No syllabus stored yet.")
			return nil
		}

		var pretty map[string]any
		if err := json.Unmarshal(snap.Data, &pretty); err != nil {
			return fmt.Errorf("decode stored syllabus: %w", err)
		}
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("# %s (revision %d, stored %s)\n", snap.SyllabusName, snap.Revision, snap.Timestamp.Local().Format("2006-01-02 15:04"))
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	syllabusGenerateCmd.Flags().String("document", "", "Source document URI")
	syllabusGenerateCmd.Flags().StringP("output", "o", "", "Write syllabus JSON to this file (default stdout)")
	syllabusReviseCmd.Flags().String("document", "", "Source document URI to keep the edit grounded in")
	syllabusReviseCmd.Flags().StringP("output", "o", "", "Write result to this file (default: overwrite input)")

	syllabusCmd.AddCommand(syllabusGenerateCmd)
	syllabusCmd.AddCommand(syllabusReviseCmd)
	syllabusCmd.AddCommand(syllabusValidateCmd)
	syllabusCmd.AddCommand(syllabusShowCmd)
}

// openGenerator builds an LLM-backed syllabus generator with event
// logging wired to the store. The cleanup closes the store.
func openGenerator(cmd *cobra.Command) (*syllabusgen.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(context.Background(), st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	return syllabusgen.NewService(provider, syllabusgen.DefaultConfig()), func() { st.Close() }, nil
}

func writeSyllabus(syl *syllabus.Syllabus, path string) error {
	out, err := json.MarshalIndent(syl, "", "  ")
	if err != nil {
		return fmt.Errorf("encode syllabus: %w", err)
	}
	out = append(out, '\n')

	if path == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (%d stages)\n", path, len(syl.Stages))
	return nil
}
