package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
)

var (
	diffPath string
	diffFull bool
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().StringVar(&diffPath, "path", "", "Compare only the subtree at this tag path")
	cmd.Flags().BoolVar(&diffFull, "full", false, "Show unchanged lines too")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare two files and show differences",
		Long: `The diff command renders both trees as SNBT, one tag per line, and
prints the lines that differ. Compression is ignored; compound key order
is not.

Example:
  nbtctl diff before.dat after.dat
  nbtctl diff before.dat after.dat --path Data.Player
  nbtctl diff before.dat after.dat --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

// DiffLine is one line of a line-level diff.
type DiffLine struct {
	Op   string `json:"op"` // "+", "-" or " "
	Text string `json:"text"`
}

// DiffResult summarises a comparison.
type DiffResult struct {
	Equal   bool       `json:"equal"`
	Added   int        `json:"added"`
	Removed int        `json:"removed"`
	Lines   []DiffLine `json:"lines,omitempty"`
}

func runDiff(args []string) error {
	left, err := renderSNBT(args[0], diffPath)
	if err != nil {
		return err
	}
	right, err := renderSNBT(args[1], diffPath)
	if err != nil {
		return err
	}

	result := diffLines(left, right)

	if jsonOut {
		return printJSON(result)
	}
	if result.Equal {
		printInfo("Files are identical\n")
		return nil
	}

	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if useColor() {
		add.EnableColor()
		del.EnableColor()
	} else {
		add.DisableColor()
		del.DisableColor()
	}
	for _, l := range result.Lines {
		switch {
		case l.Op == "+":
			add.Fprintf(os.Stdout, "+ %s\n", l.Text)
		case l.Op == "-":
			del.Fprintf(os.Stdout, "- %s\n", l.Text)
		case diffFull:
			fmt.Fprintf(os.Stdout, "  %s\n", l.Text)
		}
	}
	printInfo("\n%d line(s) added, %d line(s) removed\n", result.Added, result.Removed)
	return nil
}

func renderSNBT(path, tagPath string) (string, error) {
	codecOpts, err := codecOptions()
	if err != nil {
		return "", err
	}
	cur, err := nbtfile.Open(path, &nbtfile.OpenOptions{Codec: codecOpts})
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer cur.Close()

	opts := printer.DefaultOptions()
	opts.Format = printer.FormatSNBT
	var b bytes.Buffer
	if err := printer.New(&b, opts).PrintPath(cur, tagPath); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", path, err)
	}
	return b.String(), nil
}

// diffLines compares two texts line by line.
func diffLines(a, b string) DiffResult {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	result := DiffResult{Equal: true}
	for _, d := range diffs {
		op := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = "+"
		case diffmatchpatch.DiffDelete:
			op = "-"
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			result.Lines = append(result.Lines, DiffLine{Op: op, Text: strings.TrimSuffix(text, "\n")})
			switch op {
			case "+":
				result.Added++
				result.Equal = false
			case "-":
				result.Removed++
				result.Equal = false
			}
		}
	}
	return result
}
