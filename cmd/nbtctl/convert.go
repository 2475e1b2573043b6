package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/joshuapare/nbtkit/pkg/types"
)

var (
	convertCompression string
	convertByteOrder   string
	convertLevel       int
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertCompression, "compression", "", "Output compression (none, gzip, zlib); default from config, else gzip")
	cmd.Flags().StringVar(&convertByteOrder, "to", "", "Output byte order (big, little); default same as input")
	cmd.Flags().IntVar(&convertLevel, "level", 0, "Compression level (0 = library default)")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode a file with another compression or byte order",
		Long: `The convert command decodes a file and writes it back out with the
chosen compression and byte order.

Example:
  nbtctl convert level.dat level.raw --compression none
  nbtctl convert player.dat bedrock.nbt --compression none --to little`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	from, err := codecOptions()
	if err != nil {
		return err
	}

	to := types.CodecOptions{ByteOrder: from.ByteOrder, CompressionLevel: convertLevel}
	name := convertCompression
	if name == "" {
		name = cfg.Compression
	}
	c, ok := types.ParseCompression(name)
	if !ok {
		return fmt.Errorf("unknown compression %q (must be none, gzip, or zlib)", name)
	}
	to.Compression = c
	switch convertByteOrder {
	case "":
	case "big", "java":
		to.ByteOrder = types.BigEndian
	case "little", "bedrock":
		to.ByteOrder = types.LittleEndian
	default:
		return fmt.Errorf("unknown byte order %q (must be big or little)", convertByteOrder)
	}

	printVerbose("Converting %s -> %s\n", args[0], args[1])

	if err := nbtfile.Convert(args[0], args[1], from, to); err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}

	if to.Compression == types.CompressionAuto {
		to.Compression = types.CompressionGzip
	}
	if jsonOut {
		return printJSON(map[string]interface{}{
			"in":          args[0],
			"out":         args[1],
			"compression": to.Compression.String(),
			"byte_order":  to.ByteOrder.String(),
			"success":     true,
		})
	}
	printInfo("✓ Wrote %s (%s, %s endian)\n", args[1], to.Compression, to.ByteOrder)
	return nil
}
