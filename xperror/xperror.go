// Package xperror implements the XPath error taxonomy: a closed set of
// W3C-style error codes, partitioned into static, dynamic, and type
// errors. The lexer, parser, evaluator and built-in functions signal
// XPath failures through this package; the document loaders in node and
// the internal helper packages return plain Go errors. There is no
// exception hierarchy and no third-party error-wrapping dependency.
package xperror // import "github.com/CognitoIQ/go-xpath/xperror"

import "fmt"

// ErrorNamespace is the namespace URI carried by every Error value, per
// the XQuery and XPath Functions and Operators error namespace.
const ErrorNamespace = "http://www.w3.org/2005/xqt-errors"

// Kind partitions errors into the three mutually exclusive categories
// the XPath/XQuery error model describes.
type Kind int

const (
	// Static errors (XPST*) are detected before evaluation begins:
	// grammar violations, unresolved names, unsupported axes,
	// function-signature mismatches, unknown atomic types. They are
	// never catchable within an expression.
	Static Kind = iota
	// Dynamic errors (XPDY*, FO* families other than XPTY*) are
	// detected during evaluation: missing context components, division
	// by zero, invalid casts, bad timezones.
	Dynamic
	// Type errors (XPTY*) are a subclass of Dynamic: violations of
	// sequence-type or item-type constraints, mixed node/atomic
	// content, a non-node in a path step.
	Type
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Type:
		return "type"
	default:
		return "unknown"
	}
}

// Code identifies one error in the closed taxonomy. Codes are
// W3C-assigned identifiers such as "XPST0003" or "FORG0001".
type Code string

// The closed set of error codes this module raises, covering the static
// and dynamic error kinds plus the FO* function-and-operator codes the
// evaluator's built-in functions raise.
const (
	XPST0001 Code = "XPST0001" // unknown static error (catch-all)
	XPST0003 Code = "XPST0003" // grammar violation / unparseable expression
	XPST0005 Code = "XPST0005" // static type of expression is empty-sequence() where disallowed
	XPST0008 Code = "XPST0008" // undeclared variable or type reference
	XPST0010 Code = "XPST0010" // unsupported axis (namespace:: when disabled)
	XPST0017 Code = "XPST0017" // function not found, or reserved-name rebinding, or arity mismatch
	XPST0051 Code = "XPST0051" // unknown atomic type in a sequence type
	XPST0080 Code = "XPST0080" // target type of "cast"/"castable" is a disallowed type
	XPST0081 Code = "XPST0081" // unresolvable QName prefix

	XPDY0002 Code = "XPDY0002" // required dynamic-context component is absent
	XPDY0050 Code = "XPDY0050" // treat as: dynamic type does not match required type

	XPTY0004 Code = "XPTY0004" // value's dynamic type doesn't match an operator/function's required type
	XPTY0018 Code = "XPTY0018" // path step result mixes nodes and non-nodes
	XPTY0019 Code = "XPTY0019" // non-last step in a path produces a non-node
	XPTY0020 Code = "XPTY0020" // context item of a step is not a node

	FORG0001 Code = "FORG0001" // invalid value for cast/constructor
	FORG0006 Code = "FORG0006" // invalid argument type (includes EBV of an unsupported sequence)
	FOAR0001 Code = "FOAR0001" // division by zero
	FOCH0002 Code = "FOCH0002" // unsupported collation URI
	FODT0002 Code = "FODT0002" // overflow/underflow in date/time operation
	FOTY0012 Code = "FOTY0012" // element node has no typed value (element-only content, schema-aware)
)

// kindOf reports the taxonomy Kind a Code belongs to, by its prefix.
func kindOf(code Code) Kind {
	switch {
	case len(code) >= 4 && code[:4] == "XPST":
		return Static
	case len(code) >= 4 && code[:4] == "XPTY":
		return Type
	default:
		return Dynamic
	}
}

// Error is the single concrete error type used throughout the module.
// It satisfies the standard error interface.
type Error struct {
	Code    Code
	Message string
	// QName is the qualified name of the error, of the form "err:CODE".
	QName string
	// Namespace is always ErrorNamespace; kept as a field so callers
	// don't need to import this package just to compare against the
	// constant.
	Namespace string
}

// New constructs an Error with the given code and a formatted message.
func New(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
		QName:     "err:" + string(code),
		Namespace: ErrorNamespace,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Kind reports whether this is a static, dynamic, or type error.
func (e *Error) Kind() Kind {
	return kindOf(e.Code)
}

// IsStatic reports whether this error was detected before evaluation.
func (e *Error) IsStatic() bool {
	return e.Kind() == Static
}

// IsDynamic reports whether this error was detected during evaluation.
// Type errors are a subclass of dynamic errors, so IsDynamic is true for
// both Dynamic and Type kinds.
func (e *Error) IsDynamic() bool {
	k := e.Kind()
	return k == Dynamic || k == Type
}

// Is supports errors.Is comparisons against a Code-shaped sentinel
// created with New, by comparing codes only (message text is ignored).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}
