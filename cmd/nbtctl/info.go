package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Report the format and shape of an NBT file",
		Long: `The info command decodes an NBT file and displays its compression,
root tag, node counts by type and nesting depth.

Example:
  nbtctl info level.dat
  nbtctl info level.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening file: %s\n", path)

	codecOpts, err := codecOptions()
	if err != nil {
		return err
	}
	info, err := nbtfile.Info(path, &nbtfile.OpenOptions{Codec: codecOpts})
	if err != nil {
		return fmt.Errorf("failed to read file info: %w", err)
	}

	if jsonOut {
		byType := make(map[string]uint64)
		for t := types.TagByte; t <= types.TagLongArray; t++ {
			if n := info.Stats.ByType[t]; n > 0 {
				byType[t.String()] = n
			}
		}
		return printJSON(map[string]interface{}{
			"file":           path,
			"size":           info.Size,
			"compression":    info.Compression.String(),
			"byte_order":     info.ByteOrder.String(),
			"root_name":      info.RootName,
			"root_type":      info.RootType.String(),
			"total_nodes":    info.Stats.TotalNodes,
			"max_depth":      info.Stats.MaxDepth,
			"max_children":   info.Stats.MaxChildren,
			"array_elements": info.Stats.ArrayElements,
			"string_bytes":   info.Stats.StringBytes,
			"by_type":        byType,
		})
	}

	printInfo("\nFile Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Size: %s\n", formatSize(info.Size))
	printInfo("  Compression: %s\n", info.Compression)
	printInfo("  Byte order: %s\n", info.ByteOrder)
	printInfo("  Root: %q [%s]\n", info.RootName, info.RootType)
	printInfo("\n%s\n", info.Stats)
	return nil
}

func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
