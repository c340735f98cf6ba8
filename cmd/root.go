package cmd

import (
	"github.com/abhisek/docent/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docent",
	Short: "AI tutor that teaches from a syllabus",
	Long:  "Docent — syllabus-driven AI tutor. Generate a syllabus from a source document, then run staged teaching sessions with answer judging in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTeach(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DOCENT_DB env var)")
	rootCmd.Flags().String("syllabus", "", "Path to a syllabus JSON file")
	rootCmd.Flags().String("document", "", "Source document URI to generate a syllabus from")

	rootCmd.AddCommand(teachCmd)
	rootCmd.AddCommand(syllabusCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DOCENT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
