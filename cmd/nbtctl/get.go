package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/joshuapare/nbtkit/pkg/types"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Get a single tag",
		Long: `The get command prints the value of one tag. Scalars print bare;
containers print as compact SNBT.

Example:
  nbtctl get level.dat Data.LevelName
  nbtctl get level.dat Data.Player.Pos --type
  nbtctl get level.dat Data.Player --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := args[0]
	tagPath := args[1]

	printVerbose("Opening file: %s\n", path)

	codecOpts, err := codecOptions()
	if err != nil {
		return err
	}
	cur, err := nbtfile.Get(path, tagPath, &nbtfile.OpenOptions{Codec: codecOpts})
	if err != nil {
		return fmt.Errorf("failed to get tag: %w", err)
	}
	defer cur.Close()

	if jsonOut {
		opts := printer.DefaultOptions()
		opts.Format = printer.FormatJSON
		opts.ShowTypes = true
		return printer.New(os.Stdout, opts).Print(cur.Node())
	}

	value := scalarText(cur.Node())
	if getShowType {
		fmt.Fprintf(os.Stdout, "%s [%s]\n", value, cur.Type())
		return nil
	}
	fmt.Fprintln(os.Stdout, value)
	return nil
}

// scalarText renders strings without quotes and everything else as SNBT.
func scalarText(n *nbt.Node) string {
	if n.Type() == types.TagString {
		return n.Str()
	}
	return printer.SNBT(n)
}
