package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/winhop/winhop/internal/config"
)

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the four-panel demo application",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			renderer, _ := cmd.Flags().GetString("renderer")
			dir, _ := cmd.Flags().GetString("dir")
			return executeDemo(configPath, renderer, dir)
		},
	}
	cmd.Flags().String("config", "", "path to winhop.toml (default: search upward)")
	cmd.Flags().String("renderer", "", `override hint renderer ("overlay" or "statusline")`)
	cmd.Flags().String("dir", "", "directory to browse (default: current directory)")
	return cmd
}

func keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <count>",
		Short: "Print the hint key assignment for a given panel count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil || count < 1 {
				return fmt.Errorf("count must be a positive integer, got %q", args[0])
			}

			current, _ := cmd.Flags().GetInt("current")
			if current < 0 || current > count {
				return fmt.Errorf("--current must be between 0 and %d, got %d", count, current)
			}

			alphabet, _ := cmd.Flags().GetString("alphabet")
			if alphabet == "" {
				configPath, _ := cmd.Flags().GetString("config")
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				alphabet = cfg.Hints.Alphabet
			}

			table, err := formatKeyTable(count, current, alphabet)
			if err != nil {
				return err
			}
			fmt.Print(table)
			return nil
		},
	}
	cmd.Flags().Int("current", 0, "ordinal of the focused panel (0 = none)")
	cmd.Flags().String("alphabet", "", "override the hint alphabet")
	cmd.Flags().String("config", "", "path to winhop.toml (default: search upward)")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create winhop.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}
