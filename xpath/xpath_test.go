package xpath

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xpath/evalctx"
	"github.com/CognitoIQ/go-xpath/node"
	"github.com/CognitoIQ/go-xpath/staticctx"
	"github.com/CognitoIQ/go-xpath/warning"
	"github.com/CognitoIQ/go-xpath/xpvalue"
)

const bookstoreXML = `<store>
	<book><title>Go in Action</title><price>39.99</price></book>
	<book><title>The Go Programming Language</title><price>34.99</price></book>
</store>`

func mustParseDoc(t *testing.T) node.Node {
	t.Helper()
	root, err := node.Parse([]byte(bookstoreXML))
	require.NoError(t, err)
	return root
}

func TestCompileAndEvalCountsBooks(t *testing.T) {
	root := mustParseDoc(t)
	compiled, err := Compile("count(/store/book)")
	require.NoError(t, err)

	result, warnings, err := compiled.Eval(root)
	require.NoError(t, err)
	require.Empty(t, warnings.Warnings())
	require.Len(t, result, 1)
	require.Equal(t, float64(2), result[0].Value.Num)
}

func TestOneShotEvalReadsTitle(t *testing.T) {
	root := mustParseDoc(t)
	result, _, err := Eval("/store/book[1]/title", root)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "Go in Action", result[0].String())
}

func TestParseReturnsTreeWithoutEvaluating(t *testing.T) {
	expr, sc, err := Parse("1 + 2")
	require.NoError(t, err)
	require.NotNil(t, expr)
	require.Equal(t, staticctx.Version20, sc.Version)
}

func TestNonStrictCountYieldsNoWarning(t *testing.T) {
	root := mustParseDoc(t)
	compiled, err := Compile("count(/store/book)", WithStrictMode(false))
	require.NoError(t, err)
	_, warnings, err := compiled.Eval(root)
	require.NoError(t, err)
	require.Empty(t, warnings.Warnings())
}

func TestWithSharedWarningsAccumulatesAcrossEvalCalls(t *testing.T) {
	root := mustParseDoc(t)
	shared := warning.New()
	compiled, err := Compile("namespace::*", WithNamespaceAxis(true), WithSharedWarnings(shared))
	require.NoError(t, err)

	_, w1, err := compiled.Eval(root)
	require.NoError(t, err)
	require.Same(t, shared, w1)

	_, w2, err := compiled.Eval(root)
	require.NoError(t, err)
	require.Same(t, shared, w2)

	require.Len(t, shared.Warnings(), 2)
}

func TestWithExtensionsRegistersHostFunction(t *testing.T) {
	root := mustParseDoc(t)
	double := Extension{
		Signature: staticctx.FunctionSignature{Namespace: "ext", Local: "double-price", MinArgs: 1, MaxArgs: 1},
		Func: func(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
			atomic := xpvalue.Atomize(args[0])[0].Value
			num, err := xpvalue.ToArithmeticNumeric(atomic)
			if err != nil {
				return nil, err
			}
			return xpvalue.Sequence{xpvalue.ValueItem(xpvalue.NewDouble(num.Num * 2))}, nil
		},
	}

	compiled, err := Compile(`ext:double-price(/store/book[1]/price)`, WithExtensions(double))
	require.NoError(t, err)
	result, _, err := compiled.Eval(root)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.InDelta(t, 79.98, result[0].Value.Num, 0.001)
}
