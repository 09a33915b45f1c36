// Package evalctx implements the dynamic evaluation context: the
// per-evaluation state an expression tree is evaluated against,
// distinct from the compile-time staticctx.StaticContext. A context's
// scalar fields are copied by value when a child predicate or step
// context is derived, while its variable/function maps are shared by
// reference, so sibling evaluations never see each other's mutations.
package evalctx // import "github.com/CognitoIQ/go-xpath/evalctx"

import (
	"time"

	"github.com/CognitoIQ/go-xpath/node"
	"github.com/CognitoIQ/go-xpath/staticctx"
	"github.com/CognitoIQ/go-xpath/warning"
	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xpvalue"
)

// Function is a callable bound in the dynamic context: a built-in or
// host-registered implementation invoked with already-evaluated
// argument sequences.
type Function func(ctx *Context, args []xpvalue.Sequence) (xpvalue.Sequence, error)

// Context is the dynamic evaluation context threaded through eval.
// The zero Context is not usable; build one with New.
type Context struct {
	// Focus: the context item/position/size triple. Item is the zero
	// Item (IsNode false, Value zero Value) when no focus has been
	// established (e.g. top-level evaluation of a non-path expression).
	Item        xpvalue.Item
	HasItem     bool
	Position    int
	Size        int
	Version     staticctx.Version
	XPath10Compat bool
	DefaultCollation string
	BaseURI     string
	ImplicitTimezone *time.Location
	CurrentDateTime  time.Time

	Static *staticctx.StaticContext

	// Warnings receives diagnostics emitted during evaluation (e.g. a
	// namespace:: axis step). New installs a permissive, unbounded
	// Collector; a host replaces it with WithWarnings to apply its own
	// filtering, or to share one Collector across several evaluations.
	Warnings *warning.Collector

	variables map[[2]string]xpvalue.Sequence
	functions map[[2]string]Function
	namespaces map[string]string

	documents  map[string]node.Node
	collections map[string][]node.Node
	defaultCollectionURI string

	Extensions map[string]interface{}
}

// New builds a root Context with no established focus, the Unicode
// codepoint default collation, UTC implicit timezone, and the given
// time now frozen as CurrentDateTime for the lifetime of the
// evaluation (so fn:current-dateTime() is stable within one Eval call).
func New(sc *staticctx.StaticContext, now time.Time) *Context {
	return &Context{
		Version:          sc.Version,
		XPath10Compat:    sc.XPath10Compatibility,
		DefaultCollation: sc.DefaultCollation(),
		ImplicitTimezone: time.UTC,
		CurrentDateTime:  now,
		Static:           sc,
		Warnings:         warning.New(),
		variables:        make(map[[2]string]xpvalue.Sequence),
		functions:        make(map[[2]string]Function),
		namespaces:       make(map[string]string),
		documents:        make(map[string]node.Node),
		collections:      make(map[string][]node.Node),
		Extensions:       make(map[string]interface{}),
	}
}

// Child returns a shallow copy of ctx for evaluating a nested
// expression (predicate body, FLWOR return clause, function body):
// scalar fields are copied, the variable/function/namespace/document
// maps are shared by reference, so a binding added via WithVariable on
// the child is invisible to ctx and siblings.
func (ctx *Context) Child() *Context {
	cp := *ctx
	return &cp
}

// WithFocus returns a child context with the context item/position/size
// set to the given triple.
func (ctx *Context) WithFocus(item xpvalue.Item, position, size int) *Context {
	cp := ctx.Child()
	cp.Item = item
	cp.HasItem = true
	cp.Position = position
	cp.Size = size
	return cp
}

// WithWarnings returns a child context that reports diagnostics to the
// given Collector instead of the default permissive one, e.g. a
// caller-supplied Collector shared across several evaluations.
func (ctx *Context) WithWarnings(c *warning.Collector) *Context {
	cp := ctx.Child()
	cp.Warnings = c
	return cp
}

// WithVariable returns a child context with one additional (or
// shadowing) variable binding. The parent's binding table is left
// untouched: a new map is allocated for the child on first write.
func (ctx *Context) WithVariable(namespace, local string, v xpvalue.Sequence) *Context {
	cp := ctx.Child()
	cp.variables = copyVarMap(ctx.variables)
	cp.variables[[2]string{namespace, local}] = v
	return cp
}

func copyVarMap(m map[[2]string]xpvalue.Sequence) map[[2]string]xpvalue.Sequence {
	out := make(map[[2]string]xpvalue.Sequence, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Variable looks up a bound variable, returning XPST0008 if no binding
// exists. The parser does not check variable references, so an
// undeclared variable is reported here, at evaluation time.
func (ctx *Context) Variable(namespace, local string) (xpvalue.Sequence, error) {
	v, ok := ctx.variables[[2]string{namespace, local}]
	if !ok {
		return nil, xperror.New(xperror.XPST0008, "variable $%s is not bound in the dynamic context", local)
	}
	return v, nil
}

// WithFunction returns a child context with an additional callable
// bound at runtime (distinct from the static signature table: this is
// the implementation a FunctionCall actually invokes).
func (ctx *Context) WithFunction(namespace, local string, fn Function) *Context {
	cp := ctx.Child()
	out := make(map[[2]string]Function, len(ctx.functions)+1)
	for k, v := range ctx.functions {
		out[k] = v
	}
	out[[2]string{namespace, local}] = fn
	cp.functions = out
	return cp
}

// Function looks up a bound callable.
func (ctx *Context) Function(namespace, local string) (Function, bool) {
	fn, ok := ctx.functions[[2]string{namespace, local}]
	return fn, ok
}

// WithNamespace returns a child context with an additional (or
// shadowing) prefix-to-URI namespace binding in scope.
func (ctx *Context) WithNamespace(prefix, uri string) *Context {
	cp := ctx.Child()
	out := make(map[string]string, len(ctx.namespaces)+1)
	for k, v := range ctx.namespaces {
		out[k] = v
	}
	out[prefix] = uri
	cp.namespaces = out
	return cp
}

// ResolveNamespace resolves a prefix to its in-scope URI.
func (ctx *Context) ResolveNamespace(prefix string) (string, bool) {
	uri, ok := ctx.namespaces[prefix]
	return uri, ok
}

// WithDocument registers an available document under a URI, for
// fn:doc to resolve (the I/O that fetches and parses it is out of
// scope; a host populates this map with already-parsed trees).
func (ctx *Context) WithDocument(uri string, root node.Node) *Context {
	cp := ctx.Child()
	out := make(map[string]node.Node, len(ctx.documents)+1)
	for k, v := range ctx.documents {
		out[k] = v
	}
	out[uri] = root
	cp.documents = out
	return cp
}

// Document resolves a URI registered via WithDocument.
func (ctx *Context) Document(uri string) (node.Node, bool) {
	d, ok := ctx.documents[uri]
	return d, ok
}

// WithCollection registers an available node collection under a URI,
// for fn:collection to resolve.
func (ctx *Context) WithCollection(uri string, nodes []node.Node) *Context {
	cp := ctx.Child()
	out := make(map[string][]node.Node, len(ctx.collections)+1)
	for k, v := range ctx.collections {
		out[k] = v
	}
	out[uri] = nodes
	cp.collections = out
	if ctx.defaultCollectionURI == "" {
		cp.defaultCollectionURI = uri
	}
	return cp
}

// Collection resolves a URI registered via WithCollection; an empty
// uri resolves the default collection.
func (ctx *Context) Collection(uri string) ([]node.Node, bool) {
	if uri == "" {
		uri = ctx.defaultCollectionURI
	}
	c, ok := ctx.collections[uri]
	return c, ok
}

// RequireItem returns the context item, or XPDY0002 if no focus has
// been established (e.g. a bare "." evaluated outside any path/step).
func (ctx *Context) RequireItem() (xpvalue.Item, error) {
	if !ctx.HasItem {
		return xpvalue.Item{}, xperror.New(xperror.XPDY0002, "no context item is established")
	}
	return ctx.Item, nil
}
