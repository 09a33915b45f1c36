package main

// builtinSpec is one entry of the static arity table xpathgen emits as
// a staticctx.FunctionSignature composite literal.
type builtinSpec struct {
	namespace string
	local     string
	minArgs   int
	maxArgs   int
}

// specGroup names a run of related specs so the generated table keeps
// the same visual grouping (booleans, node-set functions, string
// functions, ...) a hand-written table would use; the group comment,
// when non-empty, is emitted directly above the group's first entry.
type specGroup struct {
	comment string
	specs   []builtinSpec
}

const xmlSchemaNS = "http://www.w3.org/2001/XMLSchema"

// builtinGroups is the declarative source of truth for
// functions/builtins_table.go. Every entry here is Reserved: a host
// can never shadow a core function through staticctx.RegisterFunction.
var builtinGroups = []specGroup{
	{specs: []builtinSpec{
		{local: "true"},
		{local: "false"},
		{local: "not", minArgs: 1, maxArgs: 1},
		{local: "boolean", minArgs: 1, maxArgs: 1},
	}},
	{specs: []builtinSpec{
		{local: "position"},
		{local: "last"},
		{local: "count", minArgs: 1, maxArgs: 1},
	}},
	{specs: []builtinSpec{
		{local: "string", maxArgs: 1},
		{local: "concat", minArgs: 2, maxArgs: -1},
		{local: "string-length", maxArgs: 1},
		{local: "substring", minArgs: 2, maxArgs: 3},
		{local: "substring-before", minArgs: 2, maxArgs: 2},
		{local: "substring-after", minArgs: 2, maxArgs: 2},
		{local: "starts-with", minArgs: 2, maxArgs: 2},
		{local: "contains", minArgs: 2, maxArgs: 2},
		{local: "ends-with", minArgs: 2, maxArgs: 2},
		{local: "normalize-space", maxArgs: 1},
		{local: "translate", minArgs: 3, maxArgs: 3},
		{local: "upper-case", minArgs: 1, maxArgs: 1},
		{local: "lower-case", minArgs: 1, maxArgs: 1},
		{local: "string-join", minArgs: 2, maxArgs: 2},
		{local: "matches", minArgs: 2, maxArgs: 3},
		{local: "replace", minArgs: 3, maxArgs: 4},
		{local: "compare", minArgs: 2, maxArgs: 3},
	}},
	{specs: []builtinSpec{
		{local: "number", maxArgs: 1},
		{local: "sum", minArgs: 1, maxArgs: 2},
		{local: "floor", minArgs: 1, maxArgs: 1},
		{local: "ceiling", minArgs: 1, maxArgs: 1},
		{local: "round", minArgs: 1, maxArgs: 1},
		{local: "abs", minArgs: 1, maxArgs: 1},
	}},
	{specs: []builtinSpec{
		{local: "empty", minArgs: 1, maxArgs: 1},
		{local: "exists", minArgs: 1, maxArgs: 1},
		{local: "head", minArgs: 1, maxArgs: 1},
		{local: "tail", minArgs: 1, maxArgs: 1},
		{local: "reverse", minArgs: 1, maxArgs: 1},
		{local: "distinct-values", minArgs: 1, maxArgs: 2},
		{local: "index-of", minArgs: 2, maxArgs: 3},
		{local: "subsequence", minArgs: 2, maxArgs: 3},
		{local: "insert-before", minArgs: 3, maxArgs: 3},
		{local: "remove", minArgs: 2, maxArgs: 2},
	}},
	{specs: []builtinSpec{
		{local: "name", maxArgs: 1},
		{local: "local-name", maxArgs: 1},
		{local: "namespace-uri", maxArgs: 1},
		{local: "root", maxArgs: 1},
		{local: "id", minArgs: 1, maxArgs: 2},
		{local: "lang", minArgs: 1, maxArgs: 2},
	}},
	{
		comment: `xs: constructor-function sugar; arity is fixed at one by the
"xs:T(expr)" grammar production itself, so these entries exist
only so LookupFunction's arity check has something to compare
against before parser.parseFunctionCallOrName's cast-sugar
branch takes over.`,
		specs: []builtinSpec{
			{namespace: xmlSchemaNS, local: "string", minArgs: 1, maxArgs: 1},
			{namespace: xmlSchemaNS, local: "integer", minArgs: 1, maxArgs: 1},
			{namespace: xmlSchemaNS, local: "decimal", minArgs: 1, maxArgs: 1},
			{namespace: xmlSchemaNS, local: "double", minArgs: 1, maxArgs: 1},
			{namespace: xmlSchemaNS, local: "boolean", minArgs: 1, maxArgs: 1},
			{namespace: xmlSchemaNS, local: "date", minArgs: 1, maxArgs: 1},
			{namespace: xmlSchemaNS, local: "dateTime", minArgs: 1, maxArgs: 1},
			{namespace: xmlSchemaNS, local: "anyURI", minArgs: 1, maxArgs: 1},
			{namespace: xmlSchemaNS, local: "QName", minArgs: 1, maxArgs: 1},
		},
	},
}
