package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/docent/internal/selfupdate"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("docent", version)

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(5 * time.Second))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil || result == nil {
			return
		}
		if result.UpdateAvailable {
			fmt.Printf("A newer version is available: %s (%s)\n", result.LatestVersion, result.ReleaseURL)
			fmt.Println("Run: docent update")
		}
	},
}
