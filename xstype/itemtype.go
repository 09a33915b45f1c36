package xstype

// NodeKind is a closed enumeration of data-model node kinds, mirroring
// the node package's adapter contract (node.Node.Kind).
type NodeKind int

const (
	AnyNodeKind NodeKind = iota
	Element
	Attribute
	Text
	CDataSection
	ProcessingInstruction
	Comment
	Document
	DocumentFragment
	Namespace
)

func (k NodeKind) String() string {
	switch k {
	case Element:
		return "element"
	case Attribute:
		return "attribute"
	case Text:
		return "text"
	case CDataSection:
		return "cdata-section"
	case ProcessingInstruction:
		return "processing-instruction"
	case Comment:
		return "comment"
	case Document:
		return "document-node"
	case DocumentFragment:
		return "document-fragment"
	case Namespace:
		return "namespace"
	default:
		return "node"
	}
}

// KindTest is a predicate on node kind, with optional name and type
// constraints.
type KindTest struct {
	Kind NodeKind
	// Name, if non-empty, restricts the test to nodes whose local name
	// matches (or "*" for any name, the zero value for "any").
	Name string
	// Namespace restricts the namespace of Name; empty means
	// unconstrained.
	Namespace string
	// PITarget restricts processing-instruction() tests to a literal
	// target string; empty means any target.
	PITarget string
	// SchemaType, if non-nil, is the declared schema type a
	// schema-element()/schema-attribute() test additionally requires.
	SchemaType *AtomicType
}

// Matches reports whether a node with the given kind, local name, and
// namespace satisfies the kind test.
func (kt KindTest) Matches(kind NodeKind, localName, namespace string) bool {
	if kt.Kind != AnyNodeKind && kt.Kind != kind {
		return false
	}
	if kt.Kind == ProcessingInstruction && kt.PITarget != "" && kt.PITarget != localName {
		return false
	}
	if kt.Name != "" && kt.Name != "*" && kt.Name != localName {
		return false
	}
	if kt.Namespace != "" && kt.Namespace != namespace {
		return false
	}
	return true
}

// ItemType is a discriminated variant over: an atomic item type, a kind
// test, or the item() wildcard.
type ItemType struct {
	// Atomic is non-nil for an atomic item type.
	Atomic *AtomicType
	// Kind is non-nil for a kind test.
	Kind *KindTest
	// Wildcard is true for the item() item type, matching any
	// non-empty item.
	Wildcard bool
}

// AnyItem is the item() wildcard item type.
var AnyItem = ItemType{Wildcard: true}

// AtomicItem wraps an atomic type as an item type.
func AtomicItem(t *AtomicType) ItemType {
	return ItemType{Atomic: t}
}

// KindItem wraps a kind test as an item type.
func KindItem(kt KindTest) ItemType {
	return ItemType{Kind: &kt}
}

func (it ItemType) String() string {
	switch {
	case it.Wildcard:
		return "item()"
	case it.Atomic != nil:
		return it.Atomic.String()
	case it.Kind != nil:
		return it.Kind.Kind.String() + "()"
	default:
		return "empty-sequence()"
	}
}

// Occurrence is one of the four XPath occurrence indicators.
type Occurrence int

const (
	ExactlyOne Occurrence = iota // (none written)
	ZeroOrOne                    // ?
	ZeroOrMore                   // *
	OneOrMore                    // +
)

func (o Occurrence) String() string {
	switch o {
	case ZeroOrOne:
		return "?"
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	default:
		return ""
	}
}

// MinCardinality returns the minimum number of items allowed.
func (o Occurrence) MinCardinality() int {
	if o == ExactlyOne || o == OneOrMore {
		return 1
	}
	return 0
}

// MaxCardinality returns the maximum number of items allowed, or -1 for
// unbounded.
func (o Occurrence) MaxCardinality() int {
	if o == ZeroOrMore || o == OneOrMore {
		return -1
	}
	return 1
}

// SequenceType is either the distinguished empty-sequence() type, or a
// pair of (item type, occurrence indicator).
type SequenceType struct {
	Empty      bool
	Item       ItemType
	Occurrence Occurrence
}

// EmptySequenceType is the distinguished empty-sequence() sequence type.
var EmptySequenceType = SequenceType{Empty: true}

// NewSequenceType constructs a sequence type from an item type and
// occurrence indicator. empty-sequence() is incompatible with any
// occurrence indicator other than ExactlyOne and must be constructed via
// EmptySequenceType instead; NewSequenceType rejects the combination at
// construction.
func NewSequenceType(item ItemType, occ Occurrence) (SequenceType, bool) {
	if item.Atomic == nil && item.Kind == nil && !item.Wildcard {
		// the zero ItemType denotes empty-sequence(); only ExactlyOne
		// is a coherent occurrence to pair it with, and even then the
		// caller should really be using EmptySequenceType.
		return SequenceType{}, false
	}
	return SequenceType{Item: item, Occurrence: occ}, true
}

func (s SequenceType) String() string {
	if s.Empty {
		return "empty-sequence()"
	}
	return s.Item.String() + s.Occurrence.String()
}
