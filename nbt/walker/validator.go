package walker

import (
	"errors"
	"fmt"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Problem is one structural defect found by Validate.
type Problem struct {
	Path string
	Msg  string
}

func (p *Problem) Error() string {
	if p.Path == "" {
		return "<root>: " + p.Msg
	}
	return p.Path + ": " + p.Msg
}

// Validate checks the structural invariants of the tree under root and
// the given limits:
//
//   - sibling links are symmetric and a child chain's head has no prev
//   - no released node is still linked
//   - only real payload types appear
//   - compound children carry unique keys
//   - list children share one tag
//   - depth, list, array and string sizes stay within limits
//
// It returns nil or a joined error of *Problem values (see Problems).
// Zero limit fields select types.DefaultLimits.
func Validate(root *nbt.Node, limits types.Limits) error {
	limits = limits.OrDefault()
	var problems []error
	report := func(r Ref, msg string, args ...any) {
		problems = append(problems, &Problem{Path: r.Path(), Msg: fmt.Sprintf(msg, args...)})
	}

	err := Walk(root, func(r Ref) error {
		n := r.Node
		if n.Released() {
			report(r, "released node still linked")
			return SkipChildren
		}
		if !n.Type().Valid() {
			report(r, "invalid tag %s", n.Type())
		}
		if r.Depth > limits.MaxDepth {
			report(r, "depth %d exceeds %d", r.Depth, limits.MaxDepth)
		}
		key, _ := n.Key()
		if len(key) > limits.MaxStringLen {
			report(r, "key of %d bytes exceeds %d", len(key), limits.MaxStringLen)
		}

		switch n.Type() {
		case types.TagString:
			if len(n.Str()) > limits.MaxStringLen {
				report(r, "string of %d bytes exceeds %d", len(n.Str()), limits.MaxStringLen)
			}
		case types.TagByteArray:
			checkLen(r, report, len(n.Bytes()), limits.MaxArrayLen)
		case types.TagIntArray:
			checkLen(r, report, len(n.Ints()), limits.MaxArrayLen)
		case types.TagLongArray:
			checkLen(r, report, len(n.Longs()), limits.MaxArrayLen)
		case types.TagList:
			if !checkLinks(r, report) {
				return SkipChildren
			}
			checkList(r, report, limits)
		case types.TagCompound:
			if !checkLinks(r, report) {
				return SkipChildren
			}
			checkCompound(r, report)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return errors.Join(problems...)
}

// Problems extracts the *Problem values from an error returned by
// Validate.
func Problems(err error) []*Problem {
	if err == nil {
		return nil
	}
	var out []*Problem
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, Problems(e)...)
		}
		return out
	}
	var p *Problem
	if errors.As(err, &p) {
		out = append(out, p)
	}
	return out
}

type reporter func(r Ref, msg string, args ...any)

func checkLen(r Ref, report reporter, n, limit int) {
	if n > limit {
		report(r, "array of %d elements exceeds %d", n, limit)
	}
}

// checkLinks verifies the child chain of a container and reports whether
// it can be followed. It stops at the first defect since later links
// cannot be trusted.
func checkLinks(r Ref, report reporter) bool {
	head := r.Node.FirstChild()
	if head == nil {
		return true
	}
	if head.Prev() != nil {
		report(r, "first child has a previous sibling")
	}
	seen := make(map[*nbt.Node]struct{})
	for ch := head; ch != nil; ch = ch.Next() {
		if _, loop := seen[ch]; loop {
			report(r, "sibling chain loops")
			return false
		}
		seen[ch] = struct{}{}
		if next := ch.Next(); next != nil && next.Prev() != ch {
			report(r, "broken back link after child %d", len(seen)-1)
		}
	}
	return true
}

func checkList(r Ref, report reporter, limits types.Limits) {
	n := r.Node
	count := 0
	elem := n.ElemType()
	for ch := n.FirstChild(); ch != nil && count <= limits.MaxListLen; ch = ch.Next() {
		if ch.Type() != elem {
			report(r, "element %d is %s in list of %s", count, ch.Type(), elem)
		}
		count++
	}
	if count > limits.MaxListLen {
		report(r, "list longer than %d", limits.MaxListLen)
	}
}

func checkCompound(r Ref, report reporter) {
	seen := make(map[string]struct{})
	idx := 0
	for ch := r.Node.FirstChild(); ch != nil; ch = ch.Next() {
		key, ok := ch.Key()
		if !ok {
			report(r, "child %d has no key", idx)
		} else if _, dup := seen[key]; dup {
			report(r, "duplicate key %q", key)
		} else {
			seen[key] = struct{}{}
		}
		idx++
	}
}
