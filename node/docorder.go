package node

import "sort"

// Sort reorders nodes into document order in place and returns the same
// slice, using Node.ComparePosition. Reverse axes number predicate
// positions in reverse document order; the evaluator calls Sort to
// restore document order once predicates have been applied.
func Sort(nodes []Node) []Node {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].ComparePosition(nodes[j]) < 0
	})
	return nodes
}

// Identity is the comparable key used to deduplicate node sequences
// (union, //-introduced steps). Two Node values with the same Identity
// key represent the same node. Most adapters can identify a node by
// pointer; this helper normalizes across the two adapters in this
// package.
func Identity(n Node) interface{} {
	switch v := n.(type) {
	case *Element:
		return v
	case *htmlNode:
		return v.n
	default:
		return n
	}
}

// Dedupe removes duplicate nodes (by Identity) from nodes, preserving
// the order of first occurrence. Callers that need document order
// should call Sort afterwards (or before; Dedupe is order-preserving).
func Dedupe(nodes []Node) []Node {
	seen := make(map[interface{}]bool, len(nodes))
	out := nodes[:0:0]
	for _, n := range nodes {
		key := Identity(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

// Union computes the document-order, deduplicated union of two node
// sequences.
func Union(a, b []Node) []Node {
	combined := make([]Node, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return Sort(Dedupe(combined))
}
