package walker

import (
	"fmt"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Stats summarises the shape of a tree.
type Stats struct {
	TotalNodes uint64
	ByType     [types.TagLongArray + 1]uint64

	MaxDepth      int
	MaxChildren   int    // widest container
	ArrayElements uint64 // across ByteArray, IntArray and LongArray
	StringBytes   uint64 // across String payloads and keys
}

// Count walks root and returns its statistics.
func Count(root *nbt.Node) (*Stats, error) {
	stats := &Stats{}
	err := Walk(root, func(r Ref) error {
		stats.add(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Stats) add(r Ref) {
	n := r.Node
	s.TotalNodes++
	if t := n.Type(); int(t) < len(s.ByType) {
		s.ByType[t]++
	}
	if r.Depth > s.MaxDepth {
		s.MaxDepth = r.Depth
	}
	key, _ := n.Key()
	s.StringBytes += uint64(len(key))

	switch n.Type() {
	case types.TagString:
		s.StringBytes += uint64(len(n.Str()))
	case types.TagByteArray:
		s.ArrayElements += uint64(len(n.Bytes()))
	case types.TagIntArray:
		s.ArrayElements += uint64(len(n.Ints()))
	case types.TagLongArray:
		s.ArrayElements += uint64(len(n.Longs()))
	case types.TagList, types.TagCompound:
		if c := n.ChildCount(); c > s.MaxChildren {
			s.MaxChildren = c
		}
	}
}

// Containers returns the number of List and Compound nodes.
func (s *Stats) Containers() uint64 {
	return s.ByType[types.TagList] + s.ByType[types.TagCompound]
}

// String returns a human-readable summary.
func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %d nodes (max depth %d, widest container %d)\n",
		s.TotalNodes, s.MaxDepth, s.MaxChildren)
	b.WriteString("By Type:\n")
	for t := types.TagByte; t <= types.TagLongArray; t++ {
		if s.ByType[t] == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-10s %d\n", t.String()+":", s.ByType[t])
	}
	fmt.Fprintf(&b, "Array elements: %d\nString bytes: %d", s.ArrayElements, s.StringBytes)
	return b.String()
}
