package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/pkg/nbtfile"
)

var (
	cpBackup bool
	cpDryRun bool
)

func init() {
	cmd := newCpCmd()
	cmd.Flags().BoolVar(&cpBackup, "backup", false, "Create backup of the destination")
	cmd.Flags().BoolVar(&cpDryRun, "dry-run", false, "Validate the change without writing it")
	rootCmd.AddCommand(cmd)
}

func newCpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cp <src-file> <src-path> <dst-file> <dst-path>",
		Short: "Copy a tag between files or within one file",
		Long: `The cp command deep-copies the tag at src-path into dst-file at
dst-path. A key segment names the copy; an index equal to the list length
appends it.

Example:
  nbtctl cp a.dat Data.Player b.dat Data.Player
  nbtctl cp level.dat Data.Player.Inventory[0] level.dat Data.Player.Inventory[5]`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCp(args)
		},
	}
	return cmd
}

func runCp(args []string) error {
	codecOpts, err := codecOptions()
	if err != nil {
		return err
	}
	opts := &nbtfile.OperationOptions{
		Codec:        codecOpts,
		CreateBackup: cpBackup || cfg.Backup,
		DryRun:       cpDryRun,
	}

	printVerbose("Copying %s:%s to %s:%s\n", args[0], args[1], args[2], args[3])

	if err := nbtfile.CopyTag(args[0], args[1], args[2], args[3], opts); err != nil {
		return fmt.Errorf("failed to copy tag: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"src":     args[0] + ":" + args[1],
			"dst":     args[2] + ":" + args[3],
			"dry_run": cpDryRun,
			"success": true,
		})
	}
	printInfo("✓ Copied %s to %s\n", args[1], args[3])
	return nil
}
