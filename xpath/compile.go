package xpath

import (
	"fmt"
	"time"

	"github.com/CognitoIQ/go-xpath/ast"
	"github.com/CognitoIQ/go-xpath/eval"
	"github.com/CognitoIQ/go-xpath/evalctx"
	"github.com/CognitoIQ/go-xpath/functions"
	"github.com/CognitoIQ/go-xpath/node"
	"github.com/CognitoIQ/go-xpath/parser"
	"github.com/CognitoIQ/go-xpath/staticctx"
	"github.com/CognitoIQ/go-xpath/warning"
	"github.com/CognitoIQ/go-xpath/xpvalue"
)

// Compiled is an expression parsed once against a static context and
// ready to be evaluated against any number of document roots.
type Compiled struct {
	source string
	expr   ast.Expr
	static *staticctx.StaticContext
	cfg    *Config
}

// Source returns the original expression text.
func (c *Compiled) Source() string { return c.source }

// Parse parses source against a static context assembled from opts,
// returning the expression tree and the static context it was checked
// against, without building a Compiled value. Most callers want
// Compile instead; Parse is for callers that need the raw tree (e.g.
// static analysis tooling).
func Parse(source string, opts ...Option) (ast.Expr, *staticctx.StaticContext, error) {
	cfg := New(opts...)
	sc := staticctx.New(append(functions.Options(), cfg.scOpts...)...)
	expr, err := parser.Parse(source, sc)
	if err != nil {
		return nil, sc, err
	}
	return expr, sc, nil
}

// Compile parses source once and returns a Compiled value reusable
// across many Eval calls. If cfg was built with WithCache, an
// identical (source, static settings) pair is served from cache
// instead of re-parsed, with concurrent misses for the same key
// coalesced.
func Compile(source string, opts ...Option) (*Compiled, error) {
	cfg := New(opts...)
	if cfg.compileCache == nil {
		return compile(source, cfg)
	}
	return cfg.compileCache.Compile(cacheKey(source, cfg), func() (*Compiled, error) {
		return compile(source, cfg)
	})
}

func compile(source string, cfg *Config) (*Compiled, error) {
	cfg.logger.Debug("compiling expression", "source", source)
	sc := staticctx.New(append(functions.Options(), cfg.scOpts...)...)
	expr, err := parser.Parse(source, sc)
	if err != nil {
		cfg.logger.Debug("compile failed", "source", source, "error", err)
		return nil, err
	}
	return &Compiled{source: source, expr: expr, static: sc, cfg: cfg}, nil
}

// cacheKey combines source text with the static settings that affect
// parsing, so two Compile calls with the same text but different
// versions or compatibility flags never collide in the cache.
func cacheKey(source string, cfg *Config) string {
	sc := staticctx.New(append(functions.Options(), cfg.scOpts...)...)
	return fmt.Sprintf("%s\x00%s\x00%t\x00%t\x00%t",
		source, sc.Version, sc.Strict, sc.EnableNamespaceAxis, sc.XPath10Compatibility)
}

// Eval evaluates the compiled expression with root established as the
// initial context item (position 1, size 1). Warnings emitted during
// evaluation are recorded on the returned Collector: a fresh one per
// call, unless the Config was built with WithSharedWarnings.
func (c *Compiled) Eval(root node.Node) (xpvalue.Sequence, *warning.Collector, error) {
	c.cfg.logger.Debug("evaluating expression", "source", c.source)
	ctx := evalctx.New(c.static, time.Now())

	warnings := c.cfg.sharedWarnings
	if warnings == nil {
		warnings = warning.New(c.cfg.warningOpts...)
	}
	ctx = ctx.WithWarnings(warnings)

	for _, e := range c.cfg.extensions {
		ctx = ctx.WithFunction(e.Signature.Namespace, e.Signature.Local, e.Func)
	}

	if root != nil {
		ctx = ctx.WithFocus(xpvalue.NodeItem(root), 1, 1)
	}

	result, err := eval.Eval(c.expr, ctx)
	return result, warnings, err
}

// Eval is a one-shot convenience wrapping Compile and Compiled.Eval
// for callers that don't need to reuse the compiled expression.
func Eval(source string, root node.Node, opts ...Option) (xpvalue.Sequence, *warning.Collector, error) {
	compiled, err := Compile(source, opts...)
	if err != nil {
		return nil, nil, err
	}
	return compiled.Eval(root)
}
