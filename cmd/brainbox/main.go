package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brainbox-app/brainbox/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "brainbox",
		Short:   "A self-hosted bookmarking service",
		Long:    "Brainbox — save tagged content links and share your brain read-only.",
		Version: fmt.Sprintf("%s (%s, %s)", build.Version, build.Commit, build.Branch),
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
