package walker

import (
	"errors"
	"fmt"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// initialStackCapacity covers the nesting of ordinary game data.
const initialStackCapacity = 64

var (
	// SkipChildren, returned by a visitor for a container, prunes its
	// subtree. Returned for a leaf it has no effect.
	SkipChildren = errors.New("walker: skip children")

	// ErrCycle reports a node reached twice during one traversal.
	ErrCycle = errors.New("walker: node reached twice")
)

// Ref describes the node being visited. It is only valid during the
// visitor call.
type Ref struct {
	Node   *nbt.Node
	Parent *nbt.Node // nil for the root
	Depth  int       // 0 for the root
	Index  int       // position among the parent's children

	segs []nbt.Segment
}

// Path renders the location of the node relative to the walk root.
func (r Ref) Path() string { return nbt.FormatPath(r.segs) }

// Segments returns a copy of the path segments.
func (r Ref) Segments() []nbt.Segment {
	return append([]nbt.Segment(nil), r.segs...)
}

// VisitFunc is called once per node.
type VisitFunc func(Ref) error

// stackEntry is one container whose children are being iterated.
type stackEntry struct {
	node  *nbt.Node
	next  *nbt.Node // next child to visit
	index int       // index of next
}

// Walker carries the reusable traversal state. The zero value is ready
// to use; a Walker must not be used concurrently.
type Walker struct {
	stack   []stackEntry
	segs    []nbt.Segment
	visited map[*nbt.Node]struct{}
}

// Walk visits root and every descendant in depth-first pre-order.
func Walk(root *nbt.Node, fn VisitFunc) error {
	var w Walker
	return w.Walk(root, fn)
}

// Walk is the reusable form of the package-level Walk.
func (w *Walker) Walk(root *nbt.Node, fn VisitFunc) error {
	if root == nil {
		return nil
	}
	if w.stack == nil {
		w.stack = make([]stackEntry, 0, initialStackCapacity)
	}
	w.stack = w.stack[:0]
	w.segs = w.segs[:0]
	w.visited = make(map[*nbt.Node]struct{})

	descend, err := w.visit(fn, Ref{Node: root}, root)
	if err != nil || !descend {
		return err
	}
	w.stack = append(w.stack, stackEntry{node: root, next: root.FirstChild()})

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		child := top.next
		if child == nil {
			w.stack = w.stack[:len(w.stack)-1]
			if len(w.segs) > 0 {
				w.segs = w.segs[:len(w.segs)-1]
			}
			continue
		}
		parent, index := top.node, top.index
		top.next = child.Next()
		top.index++

		w.segs = append(w.segs, nbt.SegmentOf(parent, child))
		ref := Ref{Node: child, Parent: parent, Depth: len(w.stack), Index: index, segs: w.segs}
		descend, err := w.visit(fn, ref, child)
		if err != nil {
			return err
		}
		if descend {
			w.stack = append(w.stack, stackEntry{node: child, next: child.FirstChild()})
			continue
		}
		w.segs = w.segs[:len(w.segs)-1]
	}
	return nil
}

// visit marks n, calls fn and reports whether n's children should be
// walked.
func (w *Walker) visit(fn VisitFunc, ref Ref, n *nbt.Node) (bool, error) {
	if _, seen := w.visited[n]; seen {
		return false, fmt.Errorf("%w at %s", ErrCycle, ref.Path())
	}
	w.visited[n] = struct{}{}

	err := fn(ref)
	if errors.Is(err, SkipChildren) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n.Type().IsContainer(), nil
}

// Find returns the first node in pre-order for which match reports true.
func Find(root *nbt.Node, match func(Ref) bool) (*nbt.Node, string, error) {
	var (
		found *nbt.Node
		path  string
	)
	errStop := errors.New("stop")
	err := Walk(root, func(r Ref) error {
		if match(r) {
			found, path = r.Node, r.Path()
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, "", err
	}
	if found == nil {
		return nil, "", types.Wrap(types.ErrNotFound, "no matching node", nil)
	}
	return found, path, nil
}
