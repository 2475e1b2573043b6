package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/pkg/nbtfile"
)

var (
	rmBackup bool
	rmDryRun bool
)

func init() {
	cmd := newRmCmd()
	cmd.Flags().BoolVar(&rmBackup, "backup", false, "Create backup")
	cmd.Flags().BoolVar(&rmDryRun, "dry-run", false, "Validate the change without writing it")
	rootCmd.AddCommand(cmd)
}

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <file> <path>",
		Short: "Remove a tag and everything under it",
		Long: `The rm command deletes the tag at a path.

Example:
  nbtctl rm level.dat Data.Player.Inventory[0]
  nbtctl rm level.dat Data.CustomBossEvents --backup`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(args)
		},
	}
	return cmd
}

func runRm(args []string) error {
	path := args[0]
	tagPath := args[1]

	codecOpts, err := codecOptions()
	if err != nil {
		return err
	}

	printVerbose("Opening file: %s\n", path)

	opts := &nbtfile.OperationOptions{
		Codec:        codecOpts,
		CreateBackup: rmBackup || cfg.Backup,
		DryRun:       rmDryRun,
	}
	if err := nbtfile.Remove(path, tagPath, opts); err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"path":    tagPath,
			"dry_run": rmDryRun,
			"success": true,
		})
	}
	printInfo("✓ Removed %s from %s\n", tagPath, path)
	return nil
}
