package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/nbt/walker"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
)

var validateLimits string

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateLimits, "limits", "", "Limits preset to use (default, strict, relaxed)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate tree structure and limits",
		Long: `The validate command decodes a file and checks every tag against a
limits preset: nesting depth, string and array lengths, list element
types and duplicate compound keys.

Limits presets:
  default - Limits vanilla servers enforce
  strict  - Conservative limits for untrusted input
  relaxed - Anything the format can express

Example:
  nbtctl validate level.dat
  nbtctl validate level.dat --limits strict
  nbtctl validate level.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	path := args[0]

	preset := validateLimits
	if preset == "" {
		preset = cfg.Limits
	}
	limits, err := limitsPreset(preset)
	if err != nil {
		return err
	}

	printVerbose("Validating file: %s\n", path)

	// Decode relaxed; the preset applies to the validator only.
	codecOpts, err := codecOptions()
	if err != nil {
		return err
	}
	codecOpts.Limits = nbtfile.RelaxedLimits()
	cur, err := nbtfile.Open(path, &nbtfile.OpenOptions{Codec: codecOpts})
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer cur.Close()

	verr := walker.Validate(cur.Root(), limits)
	problems := walker.Problems(verr)

	if jsonOut {
		msgs := make([]string, 0, len(problems))
		for _, p := range problems {
			msgs = append(msgs, p.Error())
		}
		if err := printJSON(map[string]interface{}{
			"file":     path,
			"limits":   preset,
			"valid":    verr == nil,
			"problems": msgs,
		}); err != nil {
			return err
		}
	} else if verr == nil {
		printInfo("✓ %s is valid (%s limits)\n", path, preset)
	} else {
		printInfo("✗ %s has %d problem(s):\n", path, len(problems))
		for _, p := range problems {
			printInfo("  %s\n", p.Error())
		}
	}

	if verr != nil {
		return fmt.Errorf("validation failed")
	}
	return nil
}
