package xstype

// Item is the minimal shape sequence-type matching needs to know about a
// single evaluated item: either it is a node (in which case NodeKind,
// LocalName, and Namespace describe it) or it is an atomic value typed
// Atomic. xpvalue.ToItemTypeSlice adapts a Sequence to this shape, so
// this package does not need to depend on the node or xpvalue packages.
type Item struct {
	IsNode    bool
	NodeKind  NodeKind
	LocalName string
	Namespace string
	// Atomic is the dynamic atomic type of a non-node item.
	Atomic *AtomicType
}

// MatchResult is the outcome of matching a candidate sequence against a
// SequenceType.
type MatchResult struct {
	Matches   bool
	Reason    string
	ItemCount int
}

// MatchSequence checks items against a sequence type: an empty-sequence
// check, a cardinality check against the occurrence indicator, and a
// per-item type check.
func MatchSequence(items []Item, st SequenceType) MatchResult {
	n := len(items)
	if st.Empty {
		if n == 0 {
			return MatchResult{Matches: true, ItemCount: n}
		}
		return MatchResult{Reason: "expected empty-sequence()", ItemCount: n}
	}
	min, max := st.Occurrence.MinCardinality(), st.Occurrence.MaxCardinality()
	if n < min || (max >= 0 && n > max) {
		return MatchResult{Reason: "cardinality mismatch", ItemCount: n}
	}
	for _, it := range items {
		if !matchItemType(it, st.Item) {
			return MatchResult{Reason: "item type mismatch: " + st.Item.String(), ItemCount: n}
		}
	}
	return MatchResult{Matches: true, ItemCount: n}
}

func matchItemType(it Item, t ItemType) bool {
	switch {
	case t.Wildcard:
		return true
	case t.Atomic != nil:
		return !it.IsNode && it.Atomic != nil && it.Atomic.IsDerivedFrom(t.Atomic)
	case t.Kind != nil:
		return it.IsNode && t.Kind.Matches(it.NodeKind, it.LocalName, it.Namespace)
	default:
		// empty ItemType zero-value: matches nothing (only reachable
		// for malformed sequence types; MatchSequence never builds one).
		return false
	}
}

// InstanceOf is the public entry point behind "v instance of S".
func InstanceOf(items []Item, st SequenceType) bool {
	return MatchSequence(items, st).Matches
}
