// Package staticctx implements the compile-time static context: the
// schema type/function tables the parser consults for arity and
// reserved-name checks, in-scope collations, default namespaces, and
// the functional-options Option pair a host uses to assemble one,
// mirroring the WithX naming convention used throughout the reference
// corpus's own configuration layers (though, unlike xsdgen.Option,
// nothing here needs to be reverted at runtime, so Option is a plain
// func(*StaticContext) rather than a reversible closure).
package staticctx // import "github.com/CognitoIQ/go-xpath/staticctx"

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/CognitoIQ/go-xpath/internal/ordered"
	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xstype"
)

// Version identifies the XPath grammar/feature-set version in effect.
type Version string

const (
	Version10 Version = "1.0"
	Version20 Version = "2.0"
	Version30 Version = "3.0"
	Version31 Version = "3.1"
)

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	return versionRank[v] >= versionRank[other]
}

var versionRank = map[Version]int{
	Version10: 0,
	Version20: 1,
	Version30: 2,
	Version31: 3,
}

const defaultCollation = "http://www.w3.org/2005/xpath-functions/collation/codepoint"
const htmlASCIICollation = "http://www.w3.org/2005/xpath-functions/collation/html-ascii-case-insensitive"

// FunctionSignature describes one entry of the static function table:
// arity bounds and whether the function may be rebound by a host.
type FunctionSignature struct {
	Namespace string
	Local     string
	MinArgs   int
	MaxArgs   int // -1 means unbounded
	Reserved  bool
}

// StaticContext is the immutable compile-time context consulted by the
// parser (arity, reserved names, type lookups) and read by the
// evaluator (default collation, variable types if provided). It is
// immutable once a parse begins; a Config builds one via Option values
// before that point.
type StaticContext struct {
	Version              Version
	Strict               bool
	EnableNamespaceAxis  bool
	XPath10Compatibility bool
	SchemaAware          bool

	DefaultElementNamespace  string
	DefaultFunctionNamespace string

	functions      map[[2]string]FunctionSignature
	collations     map[string]*collate.Collator
	defaultCollUri string
	variableTypes  map[[2]string]xstype.SequenceType
}

// New builds a StaticContext with the given options applied over
// sensible defaults: XPath 2.0, non-strict, namespace axis disabled,
// 1.0 compatibility off, schema awareness off, default collation the
// Unicode codepoint collation.
func New(opts ...Option) *StaticContext {
	sc := &StaticContext{
		Version:                  Version20,
		DefaultFunctionNamespace: xstype.FunctionNS,
		functions:                make(map[[2]string]FunctionSignature),
		collations:               make(map[string]*collate.Collator),
		defaultCollUri:           defaultCollation,
		variableTypes:            make(map[[2]string]xstype.SequenceType),
	}
	sc.collations[defaultCollation] = collate.New(language.Und)
	sc.collations[htmlASCIICollation] = collate.New(language.Und, collate.IgnoreCase)
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Option customizes a StaticContext during New.
type Option func(*StaticContext)

// WithVersion selects the XPath grammar version.
func WithVersion(v Version) Option {
	return func(sc *StaticContext) { sc.Version = v }
}

// WithStrictMode sets the Strict flag. Neither the parser nor the
// evaluator reads it; unsupported features raise or warn the same way
// whether it is set or not.
func WithStrictMode(strict bool) Option {
	return func(sc *StaticContext) { sc.Strict = strict }
}

// WithNamespaceAxis enables the deprecated namespace:: axis.
func WithNamespaceAxis(enable bool) Option {
	return func(sc *StaticContext) { sc.EnableNamespaceAxis = enable }
}

// WithXPath10Compatibility toggles XPath 1.0 type-coercion rules for
// general comparisons in a higher-version grammar.
func WithXPath10Compatibility(enable bool) Option {
	return func(sc *StaticContext) { sc.XPath10Compatibility = enable }
}

// WithSchemaAware sets the SchemaAware flag. Atomization does not read
// it: element-only content atomizes to its string value, and FOTY0012
// is not raised, whether the flag is set or not.
func WithSchemaAware(aware bool) Option {
	return func(sc *StaticContext) { sc.SchemaAware = aware }
}

// WithDefaultElementNamespace sets the default namespace for element
// name tests that carry no prefix.
func WithDefaultElementNamespace(ns string) Option {
	return func(sc *StaticContext) { sc.DefaultElementNamespace = ns }
}

// WithVariableType declares the static type of an in-scope variable.
func WithVariableType(namespace, local string, t xstype.SequenceType) Option {
	return func(sc *StaticContext) { sc.variableTypes[[2]string{namespace, local}] = t }
}

// WithFunction registers a function signature, as a built-in table
// entry or a host extension. Reserved names registered this way cannot
// later be rebound by RegisterFunction.
func WithFunction(sig FunctionSignature) Option {
	return func(sc *StaticContext) {
		ns := sig.Namespace
		if ns == "" {
			ns = sc.DefaultFunctionNamespace
		}
		sc.functions[[2]string{ns, sig.Local}] = sig
	}
}

// LookupFunction finds a registered function signature by namespace
// (defaulting to the standard function namespace) and local name.
func (sc *StaticContext) LookupFunction(namespace, local string) (FunctionSignature, bool) {
	if namespace == "" {
		namespace = sc.DefaultFunctionNamespace
	}
	sig, ok := sc.functions[[2]string{namespace, local}]
	return sig, ok
}

// RegisterFunction adds a host-extension function signature at
// runtime, rejecting an attempt to rebind a reserved name with
// XPST0017.
func (sc *StaticContext) RegisterFunction(sig FunctionSignature) error {
	ns := sig.Namespace
	if ns == "" {
		ns = sc.DefaultFunctionNamespace
	}
	key := [2]string{ns, sig.Local}
	if existing, ok := sc.functions[key]; ok && existing.Reserved {
		return xperror.New(xperror.XPST0017, "function %q in namespace %q is reserved and cannot be rebound", sig.Local, ns)
	}
	sc.functions[key] = sig
	return nil
}

// VariableType returns the declared static type of a variable, if any.
func (sc *StaticContext) VariableType(namespace, local string) (xstype.SequenceType, bool) {
	t, ok := sc.variableTypes[[2]string{namespace, local}]
	return t, ok
}

// DefaultCollation returns the URI of the in-scope default collation.
func (sc *StaticContext) DefaultCollation() string {
	return sc.defaultCollUri
}

// Collation resolves a collation URI to a *collate.Collator, enforcing
// the invariant that the default collation is always present in the
// in-scope collation list.
func (sc *StaticContext) Collation(uri string) (*collate.Collator, error) {
	if uri == "" {
		uri = sc.defaultCollUri
	}
	c, ok := sc.collations[uri]
	if !ok {
		return nil, xperror.New(xperror.FOCH0002, "unsupported collation %q", uri)
	}
	return c, nil
}

// RegisterCollation adds an additional in-scope collation.
func (sc *StaticContext) RegisterCollation(uri string, c *collate.Collator) {
	sc.collations[uri] = c
}

// CollationURIs lists every in-scope collation URI in deterministic
// (sorted) order, for diagnostic logging and introspection tooling
// that would otherwise see map iteration order vary from call to
// call.
func (sc *StaticContext) CollationURIs() []string {
	uris := make([]string, 0, len(sc.collations))
	ordered.RangeStrings(sc.collations, func(uri string) {
		uris = append(uris, uri)
	})
	return uris
}
