// Package xpvalue implements typed atomic values, the typed-value and
// atomization machinery, numeric/string promotion, and effective
// boolean value (EBV) computation.
package xpvalue // import "github.com/CognitoIQ/go-xpath/xpvalue"

import (
	"fmt"
	"math"
	"strconv"

	"github.com/CognitoIQ/go-xpath/node"
	"github.com/CognitoIQ/go-xpath/xstype"
)

// Value is a single typed atomic value. Exactly one of the payload
// fields is meaningful, selected by Type's primitive: Num for the
// numeric primitives (xs:integer/decimal/float/double and their
// derived types), Bool for xs:boolean, Str for everything else
// (string-like types, and the lexical form of date/time/duration/QName
// values, which this module treats opaquely as strings since no
// date/time arithmetic is in scope).
type Value struct {
	Type *xstype.AtomicType
	Str  string
	Num  float64
	Bool bool
}

// String formats v for display and for string-context coercion.
func (v Value) String() string {
	switch {
	case v.Type == xstype.XBoolean:
		return strconv.FormatBool(v.Bool)
	case v.Type.IsNumeric():
		return formatNumber(v.Num, v.Type)
	default:
		return v.Str
	}
}

func formatNumber(n float64, t *xstype.AtomicType) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	if math.IsInf(n, 1) {
		return "INF"
	}
	if math.IsInf(n, -1) {
		return "-INF"
	}
	if t.NumericLevel() == 1 /* integer family */ {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// NewString builds an xs:string value.
func NewString(s string) Value { return Value{Type: xstype.XString, Str: s} }

// NewUntypedAtomic builds an xs:untypedAtomic value, the type a node's
// string value atomizes to absent schema information.
func NewUntypedAtomic(s string) Value { return Value{Type: xstype.UntypedAtomic, Str: s} }

// NewBoolean builds an xs:boolean value.
func NewBoolean(b bool) Value { return Value{Type: xstype.XBoolean, Bool: b} }

// NewInteger builds an xs:integer value.
func NewInteger(n int64) Value { return Value{Type: xstype.XInteger, Num: float64(n)} }

// NewDouble builds an xs:double value.
func NewDouble(n float64) Value { return Value{Type: xstype.XDouble, Num: n} }

// NewDecimal builds an xs:decimal value.
func NewDecimal(n float64) Value { return Value{Type: xstype.XDecimal, Num: n} }

// NewFloat builds an xs:float value.
func NewFloat(n float64) Value { return Value{Type: xstype.XFloat, Num: n} }

// NewAnyURI builds an xs:anyURI value.
func NewAnyURI(s string) Value { return Value{Type: xstype.AnyURI, Str: s} }

// NewQName builds an xs:QName value (stored as its lexical "prefix:local"
// or "local" text; no namespace-aware equality is implemented since
// QName comparison beyond casting is out of scope).
func NewQName(s string) Value { return Value{Type: xstype.XQName, Str: s} }

// Item is a single sequence item: either a node (Node != nil) or an
// atomic Value. Exactly one form is meaningful at a time.
type Item struct {
	Node  node.Node
	Value Value
}

// NodeItem wraps a node as a sequence item.
func NodeItem(n node.Node) Item { return Item{Node: n} }

// ValueItem wraps an atomic value as a sequence item.
func ValueItem(v Value) Item { return Item{Value: v} }

// IsNode reports whether the item is a node.
func (it Item) IsNode() bool { return it.Node != nil }

func (it Item) String() string {
	if it.IsNode() {
		return it.Node.StringValue()
	}
	return it.Value.String()
}

// Sequence is an ordered list of items: a length-1 Sequence is
// interchangeable with its single item in every context that requires a
// singleton.
type Sequence []Item

// Singleton wraps a single item as a length-1 Sequence.
func Singleton(it Item) Sequence { return Sequence{it} }

// Empty is the canonical zero-length Sequence.
var Empty = Sequence(nil)

func (s Sequence) String() string {
	if len(s) == 0 {
		return ""
	}
	return fmt.Sprint([]Item(s))
}
