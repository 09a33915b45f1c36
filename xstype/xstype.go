// Package xstype implements the item-type and sequence-type lattice:
// atomic types arranged in a hierarchy rooted at xs:anyAtomicType, node
// kind tests, the item() wildcard, and sequence types (an item type or
// empty-sequence(), paired with an occurrence indicator).
//
// The atomic-type hierarchy is modeled as a flat set of well-known
// *AtomicType values plus an explicit Base link for chain-walking,
// rather than a class tower with language-provided dispatch.
package xstype // import "github.com/CognitoIQ/go-xpath/xstype"

import (
	"github.com/CognitoIQ/go-xpath/xperror"
)

// SchemaNS is the XML Schema namespace URI. Atomic types default to this
// namespace when none is given.
const SchemaNS = "http://www.w3.org/2001/XMLSchema"

// FunctionNS is the standard XPath/XQuery function namespace.
const FunctionNS = "http://www.w3.org/2005/xpath-functions"

// ErrorFunctionNS is the namespace used for the err: prefix.
const ErrorFunctionNS = xperror.ErrorNamespace

// DefaultCollation is the collation URI assumed when a static context
// does not declare one explicitly.
const DefaultCollation = "http://www.w3.org/2005/xpath-functions/collation/codepoint"

// AtomicType describes one node in the atomic-type hierarchy. Every
// non-primitive type chains through Base to a primitive type; the
// Primitive of a primitive type is itself.
type AtomicType struct {
	Name      string
	Namespace string
	// Base is the supertype this type restricts or derives from. nil
	// for xs:anyAtomicType, the hierarchy root.
	Base *AtomicType
	// numericLevel is >0 for numeric types; types at the same level
	// promote freely among each other (the integer-derived family all
	// share level levelInteger). 0 means "not numeric".
	//
	// Validation and casting live in package xpvalue, keyed by this
	// type's pointer identity, so that this package (imported by
	// xpvalue) never needs to know about the Value representation.
	numericLevel int
}

// QName returns the type's qualified name as namespace + local name.
func (t *AtomicType) QName() (namespace, local string) {
	return t.Namespace, t.Name
}

func (t *AtomicType) String() string {
	if t.Namespace == SchemaNS || t.Namespace == "" {
		return "xs:" + t.Name
	}
	return t.Namespace + ":" + t.Name
}

// Primitive walks Base links until it finds the primitive ancestor of t.
// A primitive type's own Primitive is itself.
func (t *AtomicType) Primitive() *AtomicType {
	cur := t
	for cur.Base != nil && cur.Base != AnyAtomicType {
		cur = cur.Base
	}
	return cur
}

// IsDerivedFrom reports whether t is ancestor itself or derives from it,
// by walking the Base chain rather than any language-provided dispatch.
func (t *AtomicType) IsDerivedFrom(ancestor *AtomicType) bool {
	for cur := t; cur != nil; cur = cur.Base {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// numeric promotion levels. Values increase with promotion generality:
// integer <= decimal <= float <= double.
const (
	levelNotNumeric = 0
	levelInteger    = 1
	levelDecimal    = 2
	levelFloat      = 3
	levelDouble     = 4
)

// NumericLevel returns the type's position in the numeric promotion
// lattice, or levelNotNumeric if t is not a numeric type.
func (t *AtomicType) NumericLevel() int {
	return t.numericLevel
}

// IsNumeric reports whether t participates in the numeric promotion
// lattice.
func (t *AtomicType) IsNumeric() bool {
	return t.numericLevel != levelNotNumeric
}

func derive(name string, base *AtomicType) *AtomicType {
	return &AtomicType{Name: name, Namespace: SchemaNS, Base: base}
}

func deriveNumeric(name string, base *AtomicType, level int) *AtomicType {
	t := derive(name, base)
	t.numericLevel = level
	return t
}

// The atomic type hierarchy. Declaration order matters only for
// readability; Base links encode the real hierarchy.
var (
	AnyAtomicType = &AtomicType{Name: "anyAtomicType", Namespace: SchemaNS}

	UntypedAtomic = derive("untypedAtomic", AnyAtomicType)
	XString       = derive("string", AnyAtomicType)
	XBoolean      = derive("boolean", AnyAtomicType)
	AnyURI        = derive("anyURI", AnyAtomicType)
	XQName        = derive("QName", AnyAtomicType)
	Base64Binary  = derive("base64Binary", AnyAtomicType)
	HexBinary     = derive("hexBinary", AnyAtomicType)

	XDecimal = deriveNumeric("decimal", AnyAtomicType, levelDecimal)
	XFloat   = deriveNumeric("float", AnyAtomicType, levelFloat)
	XDouble  = deriveNumeric("double", AnyAtomicType, levelDouble)
	XInteger = deriveNumeric("integer", XDecimal, levelInteger)

	NonPositiveInteger = deriveNumeric("nonPositiveInteger", XInteger, levelInteger)
	NegativeInteger    = deriveNumeric("negativeInteger", NonPositiveInteger, levelInteger)
	XLong              = deriveNumeric("long", XInteger, levelInteger)
	XInt               = deriveNumeric("int", XLong, levelInteger)
	XShort             = deriveNumeric("short", XInt, levelInteger)
	XByte              = deriveNumeric("byte", XShort, levelInteger)
	NonNegativeInteger = deriveNumeric("nonNegativeInteger", XInteger, levelInteger)
	UnsignedLong       = deriveNumeric("unsignedLong", NonNegativeInteger, levelInteger)
	UnsignedInt        = deriveNumeric("unsignedInt", UnsignedLong, levelInteger)
	UnsignedShort      = deriveNumeric("unsignedShort", UnsignedInt, levelInteger)
	UnsignedByte       = deriveNumeric("unsignedByte", UnsignedShort, levelInteger)
	PositiveInteger    = deriveNumeric("positiveInteger", NonNegativeInteger, levelInteger)

	NormalizedString = derive("normalizedString", XString)
	Token_           = derive("token", NormalizedString)
	Language         = derive("language", Token_)
	NMTOKEN          = derive("NMTOKEN", Token_)
	Name_            = derive("Name", Token_)
	NCName           = derive("NCName", Name_)
	ID               = derive("ID", NCName)
	IDREF            = derive("IDREF", NCName)
	ENTITY           = derive("ENTITY", NCName)

	XDate     = derive("date", AnyAtomicType)
	XDateTime = derive("dateTime", AnyAtomicType)
	XTime     = derive("time", AnyAtomicType)
	Duration  = derive("duration", AnyAtomicType)
	YearMonthDuration = derive("yearMonthDuration", Duration)
	DayTimeDuration   = derive("dayTimeDuration", Duration)
	GYear       = derive("gYear", AnyAtomicType)
	GYearMonth  = derive("gYearMonth", AnyAtomicType)
	GMonth      = derive("gMonth", AnyAtomicType)
	GMonthDay   = derive("gMonthDay", AnyAtomicType)
	GDay        = derive("gDay", AnyAtomicType)
)

// byName indexes every registered atomic type by (namespace, local
// name), an O(1) composite-key lookup in the spirit of xsd.schemaIndex.
var byName = map[[2]string]*AtomicType{}

func register(t *AtomicType) {
	byName[[2]string{t.Namespace, t.Name}] = t
}

func init() {
	for _, t := range []*AtomicType{
		AnyAtomicType, UntypedAtomic, XString, XBoolean, AnyURI, XQName,
		Base64Binary, HexBinary, XDecimal, XFloat, XDouble, XInteger,
		NonPositiveInteger, NegativeInteger, XLong, XInt, XShort, XByte,
		NonNegativeInteger, UnsignedLong, UnsignedInt, UnsignedShort,
		UnsignedByte, PositiveInteger, NormalizedString, Token_, Language,
		NMTOKEN, Name_, NCName, ID, IDREF, ENTITY, XDate, XDateTime, XTime,
		Duration, YearMonthDuration, DayTimeDuration, GYear, GYearMonth,
		GMonth, GMonthDay, GDay,
	} {
		register(t)
	}
}

// Lookup finds a registered atomic type by namespace and local name. It
// returns XPST0051 if the type is unknown.
func Lookup(namespace, local string) (*AtomicType, error) {
	if namespace == "" {
		namespace = SchemaNS
	}
	t, ok := byName[[2]string{namespace, local}]
	if !ok {
		return nil, xperror.New(xperror.XPST0051, "unknown atomic type %q in namespace %q", local, namespace)
	}
	return t, nil
}

// CommonNumericType returns the representative type of the higher of
// the two numeric levels.
func CommonNumericType(a, b *AtomicType) (*AtomicType, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return nil, xperror.New(xperror.XPTY0004, "%s is not numeric", pickNonNumeric(a, b))
	}
	level := a.numericLevel
	result := a
	if b.numericLevel > level {
		level = b.numericLevel
		result = b
	}
	switch level {
	case levelInteger:
		return XInteger, nil
	case levelDecimal:
		return XDecimal, nil
	case levelFloat:
		return XFloat, nil
	case levelDouble:
		return XDouble, nil
	}
	return result, nil
}

func pickNonNumeric(a, b *AtomicType) *AtomicType {
	if !a.IsNumeric() {
		return a
	}
	return b
}

// PromoteString reports whether source can be promoted to xs:string
// (xs:anyURI and xs:untypedAtomic both promote to xs:string).
func PromoteString(source *AtomicType) bool {
	return source == AnyURI || source == UntypedAtomic || source.IsDerivedFrom(XString)
}
