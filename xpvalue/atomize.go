package xpvalue

import "github.com/CognitoIQ/go-xpath/xstype"

// Atomize reduces a sequence to a sequence of atomic values: each node
// is replaced by its typed value if it has one, otherwise by its string
// value as xs:untypedAtomic; atomic items pass through unchanged.
// Atomize is idempotent: atomizing an already-atomized sequence is a
// no-op.
func Atomize(seq Sequence) Sequence {
	out := make(Sequence, 0, len(seq))
	for _, it := range seq {
		out = append(out, atomizeItem(it))
	}
	return out
}

func atomizeItem(it Item) Item {
	if !it.IsNode() {
		return it
	}
	n := it.Node
	if typed, ok := n.TypedValue(); ok {
		return ValueItem(NewString(typed))
	}
	return ValueItem(NewUntypedAtomic(n.StringValue()))
}

// AtomizeValues is a convenience wrapper returning plain Values,
// discarding the Item wrapper, for callers (most built-in functions)
// that only ever want atomic values.
func AtomizeValues(seq Sequence) []Value {
	atomized := Atomize(seq)
	out := make([]Value, len(atomized))
	for i, it := range atomized {
		out[i] = it.Value
	}
	return out
}

// ToItemTypeSlice converts a Sequence into xstype.Item descriptors, the
// shape xstype.MatchSequence needs, without xstype depending on this
// package (avoiding an import cycle: xstype is a leaf package).
func ToItemTypeSlice(seq Sequence) []xstype.Item {
	out := make([]xstype.Item, len(seq))
	for i, it := range seq {
		if it.IsNode() {
			ns, local := it.Node.Name()
			out[i] = xstype.Item{IsNode: true, NodeKind: it.Node.Kind(), LocalName: local, Namespace: ns}
		} else {
			out[i] = xstype.Item{Atomic: it.Value.Type}
		}
	}
	return out
}
