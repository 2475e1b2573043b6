package printer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

type palette struct {
	key, typ, str, num, meta *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		key:  color.New(color.FgCyan, color.Bold),
		typ:  color.New(color.FgYellow),
		str:  color.New(color.FgGreen),
		num:  color.New(color.FgMagenta),
		meta: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.key, p.typ, p.str, p.num, p.meta} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// printText prints n and its descendants one per line:
//
//	Level [Compound] {2 entries}
//	  name [String] = "Steve"
//	  pos [List<Double>] {1 item}
//	    [0] [Double] = 1.5
func (p *Printer) printText(n *nbt.Node) error {
	label := "(root)"
	if k, ok := n.Key(); ok && k != "" {
		label = k
	}
	return p.textNode(n, label, 0)
}

func (p *Printer) textNode(n *nbt.Node, label string, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	line := indent + p.palette.key.Sprint(label)
	if p.opts.ShowTypes {
		line += " " + p.palette.typ.Sprintf("[%s]", typeLabel(n))
	}

	switch n.Type() {
	case types.TagCompound, types.TagList:
		count := n.ChildCount()
		line += " " + p.palette.meta.Sprintf("{%s}", countLabel(count, n.Type()))
		if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth && count > 0 {
			_, err := fmt.Fprintln(p.writer, line+" "+p.palette.meta.Sprint("..."))
			return err
		}
		if _, err := fmt.Fprintln(p.writer, line); err != nil {
			return err
		}
		idx := 0
		for ch := n.FirstChild(); ch != nil; ch = ch.Next() {
			childLabel := fmt.Sprintf("[%d]", idx)
			if k, ok := ch.Key(); ok && n.Type() == types.TagCompound {
				childLabel = k
			}
			if err := p.textNode(ch, childLabel, depth+1); err != nil {
				return err
			}
			idx++
		}
		return nil
	}

	_, err := fmt.Fprintln(p.writer, line+" = "+p.textValue(n))
	return err
}

func countLabel(n int, t types.TagType) string {
	switch {
	case t == types.TagList && n == 1:
		return "1 item"
	case t == types.TagList:
		return fmt.Sprintf("%d items", n)
	case n == 1:
		return "1 entry"
	default:
		return fmt.Sprintf("%d entries", n)
	}
}

func typeLabel(n *nbt.Node) string {
	if n.Type() == types.TagList {
		return fmt.Sprintf("List<%s>", n.ElemType())
	}
	return n.Type().String()
}

func (p *Printer) textValue(n *nbt.Node) string {
	switch n.Type() {
	case types.TagString:
		return p.palette.str.Sprint(quote(n.Str()))
	case types.TagByte, types.TagShort, types.TagInt, types.TagLong:
		return p.palette.num.Sprint(n.Int())
	case types.TagFloat:
		return p.palette.num.Sprint(formatFloat(n.Float(), 32))
	case types.TagDouble:
		return p.palette.num.Sprint(formatFloat(n.Float(), 64))
	case types.TagByteArray:
		vals := make([]string, len(n.Bytes()))
		for i, b := range n.Bytes() {
			vals[i] = fmt.Sprint(int8(b))
		}
		return p.textArray(vals)
	case types.TagIntArray:
		vals := make([]string, len(n.Ints()))
		for i, v := range n.Ints() {
			vals[i] = fmt.Sprint(v)
		}
		return p.textArray(vals)
	case types.TagLongArray:
		vals := make([]string, len(n.Longs()))
		for i, v := range n.Longs() {
			vals[i] = fmt.Sprint(v)
		}
		return p.textArray(vals)
	}
	return p.palette.meta.Sprintf("<%s>", n.Type())
}

func (p *Printer) textArray(vals []string) string {
	limit := p.opts.MaxArrayItems
	if limit <= 0 || limit > len(vals) {
		limit = len(vals)
	}
	out := "[" + p.palette.num.Sprint(strings.Join(vals[:limit], ", "))
	if limit < len(vals) {
		out += p.palette.meta.Sprintf(", ... (%d total)", len(vals))
	}
	return out + "]"
}
