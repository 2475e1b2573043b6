// Package printer renders tag trees as indented text, JSON, YAML or SNBT
// (Minecraft's stringified tag syntax).
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/nbtkit/nbt"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxArrayItems = 16
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs JSON with compound key order preserved.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML with compound key order preserved.
	FormatYAML Format = "yaml"

	// FormatSNBT outputs stringified NBT as accepted by Minecraft commands.
	FormatSNBT Format = "snbt"
)

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML, FormatSNBT:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json, yaml or snbt)", s)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text and
	// pretty SNBT). Default: 2
	IndentSize int

	// MaxDepth limits how many container levels are expanded in text
	// output (0 = unlimited).
	MaxDepth int

	// MaxArrayItems limits how many array elements text output shows.
	// Set to 0 for no limit. Default: 16
	MaxArrayItems int

	// ShowTypes includes tag type names (text) or wraps each value in a
	// {type, value} object (JSON, YAML).
	// Default: true
	ShowTypes bool

	// Color enables ANSI colour in text output.
	// Default: false
	Color bool

	// Compact prints SNBT on a single line.
	// Default: false
	Compact bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		MaxArrayItems: DefaultMaxArrayItems,
		ShowTypes:     true,
	}
}

// Printer handles formatted output of tag trees.
type Printer struct {
	opts    Options
	writer  io.Writer
	palette palette
}

// New creates a new Printer writing to w.
//
// Example:
//
//	cur, _ := nbt.Load("level.dat", codec.Java())
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintPath(cur, "Data.Player")
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{opts: opts, writer: w, palette: newPalette(opts.Color)}
}

// Print renders the subtree rooted at n.
func (p *Printer) Print(n *nbt.Node) error {
	if n == nil {
		return fmt.Errorf("print: nil node")
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(n)
	case FormatYAML:
		return p.printYAML(n)
	case FormatSNBT:
		return p.printSNBT(n)
	default:
		return p.printText(n)
	}
}

// PrintPath renders the node at path relative to the cursor's current
// position. The cursor itself is not moved.
func (p *Printer) PrintPath(c *nbt.Cursor, path string) error {
	at := c.Clone()
	defer at.Close()
	if err := at.Seek(path); err != nil {
		return fmt.Errorf("find %q: %w", path, err)
	}
	return p.Print(at.Node())
}
