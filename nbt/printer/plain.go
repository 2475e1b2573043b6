package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// field is one compound entry of the plain representation.
type field struct {
	Key   string
	Value any
}

// objectFunc builds an ordered mapping in the target encoding's terms.
type objectFunc func([]field) any

// plain converts n into values the JSON and YAML encoders understand.
// Compounds keep their key order through obj.
func (p *Printer) plain(n *nbt.Node, obj objectFunc) any {
	var v any
	switch n.Type() {
	case types.TagByte, types.TagShort, types.TagInt, types.TagLong:
		v = n.Int()
	case types.TagFloat, types.TagDouble:
		f := n.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			v = formatFloat(f, 64)
		} else {
			v = f
		}
	case types.TagString:
		v = n.Str()
	case types.TagByteArray:
		vals := make([]int8, len(n.Bytes()))
		for i, b := range n.Bytes() {
			vals[i] = int8(b)
		}
		v = vals
	case types.TagIntArray:
		v = n.Ints()
	case types.TagLongArray:
		v = n.Longs()
	case types.TagList:
		items := make([]any, 0, n.ChildCount())
		for ch := n.FirstChild(); ch != nil; ch = ch.Next() {
			items = append(items, p.plain(ch, obj))
		}
		v = items
	case types.TagCompound:
		fields := make([]field, 0, n.ChildCount())
		for ch := n.FirstChild(); ch != nil; ch = ch.Next() {
			k, _ := ch.Key()
			fields = append(fields, field{Key: k, Value: p.plain(ch, obj)})
		}
		v = obj(fields)
	}
	if !p.opts.ShowTypes {
		return v
	}
	return obj([]field{{"type", typeLabel(n)}, {"value", v}})
}

// jsonObject marshals as a JSON object in field order.
type jsonObject []field

func (o jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *Printer) printJSON(n *nbt.Node) error {
	v := p.plain(n, func(fs []field) any { return jsonObject(fs) })
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

func (p *Printer) printYAML(n *nbt.Node) error {
	v := p.plain(n, func(fs []field) any {
		m := make(yaml.MapSlice, len(fs))
		for i, f := range fs {
			m[i] = yaml.MapItem{Key: f.Key, Value: f.Value}
		}
		return m
	})
	data, err := yaml.MarshalWithOptions(v, yaml.Indent(p.opts.IndentSize))
	if err != nil {
		return err
	}
	_, err = p.writer.Write(data)
	return err
}
