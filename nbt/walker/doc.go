// Package walker traverses tag trees without recursion.
//
// Walk visits every node of a tree in depth-first pre-order using an
// explicit stack, so arbitrarily deep trees cannot exhaust the goroutine
// stack. Visitors may return SkipChildren to prune a container, or any
// other error to stop.
//
// Count and Validate are built on the same traversal:
//
//	stats, err := walker.Count(cur.Root())
//	fmt.Println(stats)
//
//	if err := walker.Validate(cur.Root(), types.DefaultLimits()); err != nil {
//	    for _, p := range walker.Problems(err) {
//	        fmt.Println(p.Path, p.Msg)
//	    }
//	}
//
// Every node is tracked as visited, so a corrupted tree whose links form
// a cycle, or that reaches one node twice, is reported with ErrCycle
// instead of looping forever.
package walker
