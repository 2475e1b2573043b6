package printer

import (
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// SNBT returns the compact stringified form of n, e.g.
//
//	{name:"Steve",pos:[1.5d,2.0d],seed:[L;1L,2L]}
func SNBT(n *nbt.Node) string {
	var b strings.Builder
	w := snbtWriter{b: &b}
	w.value(n, 0)
	return b.String()
}

func (p *Printer) printSNBT(n *nbt.Node) error {
	var b strings.Builder
	w := snbtWriter{b: &b}
	if !p.opts.Compact {
		w.indent = strings.Repeat(" ", p.opts.IndentSize)
	}
	w.value(n, 0)
	b.WriteByte('\n')
	_, err := p.writer.Write([]byte(b.String()))
	return err
}

// snbtWriter writes compactly when indent is empty and one entry per line
// otherwise.
type snbtWriter struct {
	b      *strings.Builder
	indent string
}

func (w snbtWriter) newline(depth int) {
	if w.indent == "" {
		return
	}
	w.b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		w.b.WriteString(w.indent)
	}
}

func (w snbtWriter) sep() {
	if w.indent == "" {
		w.b.WriteByte(':')
		return
	}
	w.b.WriteString(": ")
}

func (w snbtWriter) value(n *nbt.Node, depth int) {
	b := w.b
	switch n.Type() {
	case types.TagByte:
		b.WriteString(strconv.FormatInt(n.Int(), 10) + "b")
	case types.TagShort:
		b.WriteString(strconv.FormatInt(n.Int(), 10) + "s")
	case types.TagInt:
		b.WriteString(strconv.FormatInt(n.Int(), 10))
	case types.TagLong:
		b.WriteString(strconv.FormatInt(n.Int(), 10) + "L")
	case types.TagFloat:
		b.WriteString(formatFloat(n.Float(), 32) + "f")
	case types.TagDouble:
		b.WriteString(formatFloat(n.Float(), 64) + "d")
	case types.TagString:
		b.WriteString(quote(n.Str()))
	case types.TagByteArray:
		b.WriteString("[B;")
		for i, v := range n.Bytes() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(int8(v))) + "b")
		}
		b.WriteByte(']')
	case types.TagIntArray:
		b.WriteString("[I;")
		for i, v := range n.Ints() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(v)))
		}
		b.WriteByte(']')
	case types.TagLongArray:
		b.WriteString("[L;")
		for i, v := range n.Longs() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(v, 10) + "L")
		}
		b.WriteByte(']')
	case types.TagList:
		w.container(n, depth, '[', ']', false)
	case types.TagCompound:
		w.container(n, depth, '{', '}', true)
	}
}

func (w snbtWriter) container(n *nbt.Node, depth int, opening, closing byte, keyed bool) {
	w.b.WriteByte(opening)
	first := true
	for ch := n.FirstChild(); ch != nil; ch = ch.Next() {
		if !first {
			w.b.WriteByte(',')
		}
		first = false
		w.newline(depth + 1)
		if keyed {
			k, _ := ch.Key()
			w.b.WriteString(snbtKey(k))
			w.sep()
		}
		w.value(ch, depth+1)
	}
	if !first {
		w.newline(depth)
	}
	w.b.WriteByte(closing)
}

// snbtKey leaves keys made of [A-Za-z0-9._+-] bare and quotes the rest.
func snbtKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		bare := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			c == '.' || c == '_' || c == '+' || c == '-'
		if !bare {
			return quote(k)
		}
	}
	return k
}

// quote wraps s in double quotes, escaping backslashes and quotes only.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// formatFloat prints the shortest representation that round-trips,
// always with a decimal point or exponent.
func formatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
