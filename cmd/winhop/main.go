// Package main is the entry point for the winhop CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "winhop",
		Short:   "winhop — hint-based panel jumping for multi-panel terminal UIs",
		Version: version,
	}

	root.AddCommand(
		demoCmd(),
		keysCmd(),
		initCmd(),
	)

	return root
}
