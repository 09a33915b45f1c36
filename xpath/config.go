// Package xpath ties the compile-time and evaluation packages together
// into a small, host-facing API: Compile parses an expression once
// against a configured static context, and the returned Compiled value
// is evaluated against any number of document roots. Config/Option
// mirrors xsdgen.Config/xsdgen.Option's functional-options shape.
package xpath // import "github.com/CognitoIQ/go-xpath/xpath"

import (
	"log/slog"

	"github.com/CognitoIQ/go-xpath/cache"
	"github.com/CognitoIQ/go-xpath/evalctx"
	"github.com/CognitoIQ/go-xpath/internal/xlog"
	"github.com/CognitoIQ/go-xpath/staticctx"
	"github.com/CognitoIQ/go-xpath/warning"
)

// Extension binds a host-implemented function to the signature the
// parser checks arity against; WithExtensions registers both halves
// together so a host never has to keep them in sync by hand.
type Extension struct {
	Signature staticctx.FunctionSignature
	Func      evalctx.Function
}

// Config collects the options a host assembles before compiling an
// expression. Build one with New, not a bare &Config{}: its fields are
// unexported and New installs the discard logger New's callers expect
// by default.
type Config struct {
	scOpts         []staticctx.Option
	warningOpts    []warning.Option
	sharedWarnings *warning.Collector
	extensions     []Extension
	compileCache   *cache.Cache[string, *Compiled]
	logger         *slog.Logger
}

// Option configures a Config during New or Compile.
type Option func(*Config)

// New builds a Config from the given options.
func New(opts ...Option) *Config {
	cfg := &Config{logger: xlog.Discard}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithVersion selects the XPath grammar/feature-set version.
func WithVersion(v staticctx.Version) Option {
	return func(cfg *Config) { cfg.scOpts = append(cfg.scOpts, staticctx.WithVersion(v)) }
}

// WithStrictMode sets the static context's Strict flag. The flag is part
// of the compile cache key; no parser or evaluator path reads it, so it
// does not change whether a feature raises an error or emits a warning.
func WithStrictMode(strict bool) Option {
	return func(cfg *Config) { cfg.scOpts = append(cfg.scOpts, staticctx.WithStrictMode(strict)) }
}

// WithNamespaceAxis enables the deprecated namespace:: axis.
func WithNamespaceAxis(enable bool) Option {
	return func(cfg *Config) { cfg.scOpts = append(cfg.scOpts, staticctx.WithNamespaceAxis(enable)) }
}

// WithXPath10Compatibility enables XPath 1.0 compatibility mode for
// general comparisons.
func WithXPath10Compatibility(enable bool) Option {
	return func(cfg *Config) {
		cfg.scOpts = append(cfg.scOpts, staticctx.WithXPath10Compatibility(enable))
	}
}

// WithStaticContext appends arbitrary staticctx.Option values, for
// settings (variable types, default namespaces, schema awareness) this
// package does not wrap with a dedicated WithX of its own.
func WithStaticContext(opts ...staticctx.Option) Option {
	return func(cfg *Config) { cfg.scOpts = append(cfg.scOpts, opts...) }
}

// WithWarningConfig appends warning.Option values applied to the
// Collector built fresh for each Eval call, unless WithSharedWarnings
// overrides it with one long-lived Collector.
func WithWarningConfig(opts ...warning.Option) Option {
	return func(cfg *Config) { cfg.warningOpts = append(cfg.warningOpts, opts...) }
}

// WithSharedWarnings installs one Collector reused across every Eval
// call made through this Config, instead of a fresh Collector per
// call. The Collector is safe for concurrent use, so this is the
// "explicit shared instance" case warning.Collector's own docs call
// out as requiring atomic emission, which it already provides.
func WithSharedWarnings(c *warning.Collector) Option {
	return func(cfg *Config) { cfg.sharedWarnings = c }
}

// WithCache installs a compiled-expression cache so repeated Compile
// calls with identical source and static settings are coalesced and
// reused instead of re-parsed.
func WithCache(c *cache.Cache[string, *Compiled]) Option {
	return func(cfg *Config) { cfg.compileCache = c }
}

// WithExtensions registers host-implemented extension functions,
// adding both the arity signature the parser checks and the
// implementation the evaluator dispatches to.
func WithExtensions(exts ...Extension) Option {
	return func(cfg *Config) {
		for _, e := range exts {
			cfg.scOpts = append(cfg.scOpts, staticctx.WithFunction(e.Signature))
		}
		cfg.extensions = append(cfg.extensions, exts...)
	}
}

// WithLogger sets the internal engineering logger (parser trace, cache
// eviction, axis-walk debug); distinct from the user-facing warning
// subsystem. Logging is discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) { cfg.logger = l }
}
