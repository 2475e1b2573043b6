package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
)

var (
	treeFormat   string
	treeDepth    int
	treeMaxItems int
	treeNoTypes  bool
	treeCompact  bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().StringVar(&treeFormat, "format", "", "Output format (text, json, yaml, snbt)")
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum container depth to expand (0 = unlimited)")
	cmd.Flags().IntVar(&treeMaxItems, "max-items", printer.DefaultMaxArrayItems, "Array elements shown in text output (0 = all)")
	cmd.Flags().BoolVar(&treeNoTypes, "no-types", false, "Hide tag types")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Print SNBT on one line")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file> [path]",
		Short: "Print the tag tree",
		Long: `The tree command prints the whole tree, or the subtree at a tag path,
as indented text, JSON, YAML or SNBT.

Example:
  nbtctl tree level.dat
  nbtctl tree level.dat Data.Player --depth 1
  nbtctl tree level.dat Data.Player.Inventory --format snbt --compact`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	path := args[0]
	tagPath := ""
	if len(args) > 1 {
		tagPath = args[1]
	}

	name := treeFormat
	if name == "" {
		name = cfg.Format
	}
	if jsonOut {
		name = string(printer.FormatJSON)
	}
	format, err := printer.ParseFormat(name)
	if err != nil {
		return err
	}

	printVerbose("Opening file: %s\n", path)

	codecOpts, err := codecOptions()
	if err != nil {
		return err
	}
	cur, err := nbtfile.Open(path, &nbtfile.OpenOptions{Codec: codecOpts})
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer cur.Close()

	opts := printer.DefaultOptions()
	opts.Format = format
	opts.MaxDepth = treeDepth
	opts.MaxArrayItems = treeMaxItems
	opts.ShowTypes = !treeNoTypes
	opts.Compact = treeCompact
	opts.Color = useColor()

	if err := printer.New(os.Stdout, opts).PrintPath(cur, tagPath); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}
	return nil
}
