// Package ast defines the expression node variants the parser produces
// and the evaluator consumes: a closed set of concrete types rather
// than an open class hierarchy, each carrying only syntactic data and
// no pre-evaluated state.
package ast // import "github.com/CognitoIQ/go-xpath/ast"

import "github.com/CognitoIQ/go-xpath/xstype"

// Expr is the marker interface satisfied by every expression node. It
// carries no methods of its own: dispatch on the concrete type happens
// in package eval via a type switch, matching the closed-variant style
// called for by a small, stable AST.
type Expr interface {
	exprNode()
}

// StringLiteral is a string literal expression.
type StringLiteral struct {
	Value string
}

// NumberLiteral is a numeric literal expression. IsInteger distinguishes
// "1" (xs:integer) from "1.0" (xs:decimal), and IsDouble further flags
// the exponent form ("1.0e0", xs:double) at the lexical level, since the
// lexer/parser never lose that distinction to a plain float64.
type NumberLiteral struct {
	Value     float64
	IsInteger bool
	IsDouble  bool
}

// VarRef is a reference to an in-scope variable, "$name".
type VarRef struct {
	Namespace string
	Local     string
}

// UnaryOp is a prefix sign operator.
type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
)

// UnaryExpr is a signed operand, "+E" or "-E".
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

// BinOp identifies one binary operator across the arithmetic,
// comparison, and logical families; eval dispatches further on Kind.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpIDiv
	OpMod

	OpGeneralEq
	OpGeneralNe
	OpGeneralLt
	OpGeneralLe
	OpGeneralGt
	OpGeneralGe

	OpValueEq
	OpValueNe
	OpValueLt
	OpValueLe
	OpValueGt
	OpValueGe

	OpAnd
	OpOr
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "div"
	case OpIDiv:
		return "idiv"
	case OpMod:
		return "mod"
	case OpGeneralEq:
		return "="
	case OpGeneralNe:
		return "!="
	case OpGeneralLt:
		return "<"
	case OpGeneralLe:
		return "<="
	case OpGeneralGt:
		return ">"
	case OpGeneralGe:
		return ">="
	case OpValueEq:
		return "eq"
	case OpValueNe:
		return "ne"
	case OpValueLt:
		return "lt"
	case OpValueLe:
		return "le"
	case OpValueGt:
		return "gt"
	case OpValueGe:
		return "ge"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "?"
	}
}

// BinaryExpr is a two-operand expression: arithmetic, general or value
// comparison, or logical and/or.
type BinaryExpr struct {
	Op          BinOp
	Left, Right Expr
}

// SequenceExpr is a parenthesized, comma-separated expression list,
// "(E1, E2, ...)", flattened one level when evaluated. The empty
// sequence constructor "()" is a SequenceExpr with no Items.
type SequenceExpr struct {
	Items []Expr
}

// UnionExpr is "E1 | E2" (equivalently "E1 union E2"): the document
// order, identity-deduplicated union of two node sequences.
type UnionExpr struct {
	Left, Right Expr
}

// IntersectExceptOp distinguishes the two 2.0+ node-set set operators.
type IntersectExceptOp int

const (
	OpIntersect IntersectExceptOp = iota
	OpExcept
)

// IntersectExceptExpr is "E1 intersect E2" / "E1 except E2".
type IntersectExceptExpr struct {
	Op          IntersectExceptOp
	Left, Right Expr
}

// RangeExpr is "E1 to E2": an integer sequence, empty if Left > Right.
type RangeExpr struct {
	Left, Right Expr
}

// IfExpr is "if (Cond) then Then else Else".
type IfExpr struct {
	Cond, Then, Else Expr
}

// ForBinding is one "$var in E" clause of a for/let chain.
type ForBinding struct {
	Var   string
	Expr  Expr
	IsLet bool // true for "let $var := E" rather than "for $var in E"
}

// ForExpr is the FLWOR for/let...return expression: Cartesian iteration
// over For bindings, with Let bindings evaluated once and bound
// alongside, then Return evaluated per tuple.
type ForExpr struct {
	Bindings []ForBinding
	Return   Expr
}

// QuantifiedKind distinguishes "some" from "every".
type QuantifiedKind int

const (
	QuantifiedSome QuantifiedKind = iota
	QuantifiedEvery
)

// QuantifiedExpr is "some $v1 in E1, $v2 in E2 satisfies P" or "every ...".
type QuantifiedExpr struct {
	Kind      QuantifiedKind
	Bindings  []ForBinding
	Satisfies Expr
}

// InstanceOfExpr is "E instance of SequenceType".
type InstanceOfExpr struct {
	Operand Expr
	Type    xstype.SequenceType
}

// CastableExpr is "E castable as AtomicType?".
type CastableExpr struct {
	Operand  Expr
	Type     *xstype.AtomicType
	Optional bool
}

// CastExpr is "E cast as AtomicType?".
type CastExpr struct {
	Operand  Expr
	Type     *xstype.AtomicType
	Optional bool
}

// TreatExpr is "E treat as SequenceType".
type TreatExpr struct {
	Operand Expr
	Type    xstype.SequenceType
}

// Axis identifies one of the thirteen XPath axes.
type Axis int

const (
	AxisChild Axis = iota
	AxisDescendant
	AxisDescendantOrSelf
	AxisParent
	AxisAncestor
	AxisAncestorOrSelf
	AxisFollowing
	AxisFollowingSibling
	AxisPreceding
	AxisPrecedingSibling
	AxisAttribute
	AxisSelf
	AxisNamespace
)

// IsReverse reports whether the axis walks against document order,
// requiring predicate positions numbered in reverse.
func (a Axis) IsReverse() bool {
	switch a {
	case AxisParent, AxisAncestor, AxisAncestorOrSelf, AxisPreceding, AxisPrecedingSibling:
		return true
	default:
		return false
	}
}

func (a Axis) String() string {
	switch a {
	case AxisChild:
		return "child"
	case AxisDescendant:
		return "descendant"
	case AxisDescendantOrSelf:
		return "descendant-or-self"
	case AxisParent:
		return "parent"
	case AxisAncestor:
		return "ancestor"
	case AxisAncestorOrSelf:
		return "ancestor-or-self"
	case AxisFollowing:
		return "following"
	case AxisFollowingSibling:
		return "following-sibling"
	case AxisPreceding:
		return "preceding"
	case AxisPrecedingSibling:
		return "preceding-sibling"
	case AxisAttribute:
		return "attribute"
	case AxisSelf:
		return "self"
	case AxisNamespace:
		return "namespace"
	default:
		return "?"
	}
}

// NodeTest is a discriminated variant over the step's node test: a name
// test (with wildcard forms), a kind test, or a processing-instruction
// test with an optional literal target.
type NodeTest struct {
	// Wildcard forms: "*" matches any name; NamePrefix == "*" with
	// NameLocal set means "*:local"; NameLocal == "*" with NamePrefix set
	// means "prefix:*".
	IsNameTest bool
	NamePrefix string
	NameLocal  string

	Kind *xstype.KindTest
}

// Step is one axis/node-test/predicate-list step of a path expression.
type Step struct {
	Axis       Axis
	Test       NodeTest
	Predicates []Expr
}

// PathExpr is a location path: an optional absolute root, a primary
// expression to start from (for a relative path rooted at something
// other than the context item, such as a parenthesized expression), and
// a step chain. Either Root is true (absolute, starting at the document
// root of the context node), or Start is non-nil (e.g. a function call
// or parenthesized expression used as a path's starting point), or
// neither (relative path starting at the context item).
type PathExpr struct {
	Root  bool
	Start Expr
	Steps []Step
}

// FilterExpr applies a predicate list to a primary expression that is
// not itself a path step, e.g. "(1, 2, 3)[. > 1]" or "$seq[1]".
type FilterExpr struct {
	Primary    Expr
	Predicates []Expr
}

// FunctionCall is a call to a built-in or host-registered function.
type FunctionCall struct {
	Namespace string
	Local     string
	Args      []Expr
}

// ContextItemExpr is the lone "." outside of an abbreviated step
// context (e.g. as a predicate operand).
type ContextItemExpr struct{}

func (*StringLiteral) exprNode()       {}
func (*NumberLiteral) exprNode()       {}
func (*VarRef) exprNode()              {}
func (*UnaryExpr) exprNode()           {}
func (*BinaryExpr) exprNode()          {}
func (*SequenceExpr) exprNode()        {}
func (*UnionExpr) exprNode()           {}
func (*IntersectExceptExpr) exprNode() {}
func (*RangeExpr) exprNode()           {}
func (*IfExpr) exprNode()              {}
func (*ForExpr) exprNode()             {}
func (*QuantifiedExpr) exprNode()      {}
func (*InstanceOfExpr) exprNode()      {}
func (*CastableExpr) exprNode()        {}
func (*CastExpr) exprNode()            {}
func (*TreatExpr) exprNode()           {}
func (*PathExpr) exprNode()            {}
func (*FilterExpr) exprNode()          {}
func (*FunctionCall) exprNode()        {}
func (*ContextItemExpr) exprNode()     {}
