// Code generated by cmd/xpathgen from the builtinGroups declarative
// table; DO NOT EDIT.

package functions

import "github.com/CognitoIQ/go-xpath/staticctx"

// BuiltinSignatures is the static arity table for every built-in
// function this module implements, each namespaced to the standard
// function namespace and marked Reserved so a host cannot silently
// shadow a core function through staticctx.RegisterFunction.
var BuiltinSignatures = []staticctx.FunctionSignature{
	{Local: "true", MinArgs: 0, MaxArgs: 0, Reserved: true},
	{Local: "false", MinArgs: 0, MaxArgs: 0, Reserved: true},
	{Local: "not", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "boolean", MinArgs: 1, MaxArgs: 1, Reserved: true},

	{Local: "position", MinArgs: 0, MaxArgs: 0, Reserved: true},
	{Local: "last", MinArgs: 0, MaxArgs: 0, Reserved: true},
	{Local: "count", MinArgs: 1, MaxArgs: 1, Reserved: true},

	{Local: "string", MinArgs: 0, MaxArgs: 1, Reserved: true},
	{Local: "concat", MinArgs: 2, MaxArgs: -1, Reserved: true},
	{Local: "string-length", MinArgs: 0, MaxArgs: 1, Reserved: true},
	{Local: "substring", MinArgs: 2, MaxArgs: 3, Reserved: true},
	{Local: "substring-before", MinArgs: 2, MaxArgs: 2, Reserved: true},
	{Local: "substring-after", MinArgs: 2, MaxArgs: 2, Reserved: true},
	{Local: "starts-with", MinArgs: 2, MaxArgs: 2, Reserved: true},
	{Local: "contains", MinArgs: 2, MaxArgs: 2, Reserved: true},
	{Local: "ends-with", MinArgs: 2, MaxArgs: 2, Reserved: true},
	{Local: "normalize-space", MinArgs: 0, MaxArgs: 1, Reserved: true},
	{Local: "translate", MinArgs: 3, MaxArgs: 3, Reserved: true},
	{Local: "upper-case", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "lower-case", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "string-join", MinArgs: 2, MaxArgs: 2, Reserved: true},
	{Local: "matches", MinArgs: 2, MaxArgs: 3, Reserved: true},
	{Local: "replace", MinArgs: 3, MaxArgs: 4, Reserved: true},
	{Local: "compare", MinArgs: 2, MaxArgs: 3, Reserved: true},

	{Local: "number", MinArgs: 0, MaxArgs: 1, Reserved: true},
	{Local: "sum", MinArgs: 1, MaxArgs: 2, Reserved: true},
	{Local: "floor", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "ceiling", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "round", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "abs", MinArgs: 1, MaxArgs: 1, Reserved: true},

	{Local: "empty", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "exists", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "head", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "tail", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "reverse", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Local: "distinct-values", MinArgs: 1, MaxArgs: 2, Reserved: true},
	{Local: "index-of", MinArgs: 2, MaxArgs: 3, Reserved: true},
	{Local: "subsequence", MinArgs: 2, MaxArgs: 3, Reserved: true},
	{Local: "insert-before", MinArgs: 3, MaxArgs: 3, Reserved: true},
	{Local: "remove", MinArgs: 2, MaxArgs: 2, Reserved: true},

	{Local: "name", MinArgs: 0, MaxArgs: 1, Reserved: true},
	{Local: "local-name", MinArgs: 0, MaxArgs: 1, Reserved: true},
	{Local: "namespace-uri", MinArgs: 0, MaxArgs: 1, Reserved: true},
	{Local: "root", MinArgs: 0, MaxArgs: 1, Reserved: true},
	{Local: "id", MinArgs: 1, MaxArgs: 2, Reserved: true},
	{Local: "lang", MinArgs: 1, MaxArgs: 2, Reserved: true},

	// xs: constructor-function sugar; arity is fixed at one by the
	// "xs:T(expr)" grammar production itself, so these entries exist
	// only so LookupFunction's arity check has something to compare
	// against before parser.parseFunctionCallOrName's cast-sugar
	// branch takes over.
	{Namespace: "http://www.w3.org/2001/XMLSchema", Local: "string", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Namespace: "http://www.w3.org/2001/XMLSchema", Local: "integer", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Namespace: "http://www.w3.org/2001/XMLSchema", Local: "decimal", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Namespace: "http://www.w3.org/2001/XMLSchema", Local: "double", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Namespace: "http://www.w3.org/2001/XMLSchema", Local: "boolean", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Namespace: "http://www.w3.org/2001/XMLSchema", Local: "date", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Namespace: "http://www.w3.org/2001/XMLSchema", Local: "dateTime", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Namespace: "http://www.w3.org/2001/XMLSchema", Local: "anyURI", MinArgs: 1, MaxArgs: 1, Reserved: true},
	{Namespace: "http://www.w3.org/2001/XMLSchema", Local: "QName", MinArgs: 1, MaxArgs: 1, Reserved: true},
}
