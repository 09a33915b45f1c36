package eval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xpath/evalctx"
	"github.com/CognitoIQ/go-xpath/functions"
	"github.com/CognitoIQ/go-xpath/node"
	"github.com/CognitoIQ/go-xpath/parser"
	"github.com/CognitoIQ/go-xpath/staticctx"
	"github.com/CognitoIQ/go-xpath/warning"
	"github.com/CognitoIQ/go-xpath/xpvalue"
)

const doc = `<store>
	<book category="fiction" id="1"><title>Catch-22</title><price>7.5</price></book>
	<book category="fiction" id="2"><title>Dune</title><price>8.99</price></book>
	<book category="reference" id="3"><title>Go in Action</title><price>20</price></book>
</store>`

func mustEval(t *testing.T, src string, root node.Node) xpvalue.Sequence {
	t.Helper()
	sc := staticctx.New(functions.Options()...)
	expr, err := parser.Parse(src, sc)
	require.NoError(t, err, "parsing %q", src)
	ctx := evalctx.New(sc, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx = ctx.WithFocus(xpvalue.NodeItem(root), 1, 1)
	seq, err := Eval(expr, ctx)
	require.NoError(t, err, "evaluating %q", src)
	return seq
}

func mustParseDoc(t *testing.T) node.Node {
	t.Helper()
	root, err := node.Parse([]byte(doc))
	require.NoError(t, err)
	return root
}

func TestChildAxisBareName(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "book", root)
	require.Len(t, seq, 3)
}

func TestAbsolutePath(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/book", root)
	require.Len(t, seq, 3)
}

func TestDescendantOrSelfAbbrev(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "//title", root)
	require.Len(t, seq, 3)
	require.Equal(t, "Catch-22", seq[0].Node.StringValue())
}

func TestPositionalPredicate(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/book[2]/title", root)
	require.Len(t, seq, 1)
	require.Equal(t, "Dune", seq[0].Node.StringValue())
}

func TestAttributePredicate(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, `/store/book[@category="reference"]/title`, root)
	require.Len(t, seq, 1)
	require.Equal(t, "Go in Action", seq[0].Node.StringValue())
}

func TestNumericComparisonPredicate(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/book[price > 8]/title", root)
	require.Len(t, seq, 2)
}

func TestArithmetic(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "1 + 2 * 3", root)
	require.Len(t, seq, 1)
	require.Equal(t, float64(7), seq[0].Value.Num)
}

func TestDivisionByZeroIsError(t *testing.T) {
	root := mustParseDoc(t)
	sc := staticctx.New(functions.Options()...)
	expr, err := parser.Parse("1 div 0", sc)
	require.NoError(t, err)
	ctx := evalctx.New(sc, time.Now())
	ctx = ctx.WithFocus(xpvalue.NodeItem(root), 1, 1)
	_, err = Eval(expr, ctx)
	require.Error(t, err)
}

func TestFloatDivisionByZeroProducesInfinity(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "1.0e0 div 0.0e0", root)
	require.True(t, seq[0].Value.Num > 0)
}

func TestIfExpr(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, `if (1 < 2) then "yes" else "no"`, root)
	require.Equal(t, "yes", seq[0].Value.Str)
}

func TestForExpr(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "for $b in /store/book return $b/title", root)
	require.Len(t, seq, 3)
}

func TestLetBinding(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "let $x := 5 return $x + 1", root)
	require.Equal(t, float64(6), seq[0].Value.Num)
}

func TestQuantifiedSomeAndEvery(t *testing.T) {
	root := mustParseDoc(t)
	some := mustEval(t, "some $p in /store/book/price satisfies $p > 20", root)
	require.False(t, some[0].Value.Bool)

	every := mustEval(t, "every $p in /store/book/price satisfies $p > 1", root)
	require.True(t, every[0].Value.Bool)
}

func TestUnionOfTwoPaths(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/book[1] | /store/book[3]", root)
	require.Len(t, seq, 2)
}

func TestIntersectAndExcept(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "(/store/book[1] | /store/book[2]) intersect (/store/book[2] | /store/book[3])", root)
	require.Len(t, seq, 1)

	seq = mustEval(t, "/store/book except /store/book[1]", root)
	require.Len(t, seq, 2)
}

func TestRangeExpr(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "1 to 5", root)
	require.Len(t, seq, 5)
	require.Equal(t, float64(5), seq[4].Value.Num)
}

func TestInstanceOfAndCast(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, `"42" cast as xs:integer`, root)
	require.Equal(t, float64(42), seq[0].Value.Num)

	seq = mustEval(t, `1 instance of xs:integer`, root)
	require.True(t, seq[0].Value.Bool)

	seq = mustEval(t, `"x" castable as xs:integer`, root)
	require.False(t, seq[0].Value.Bool)
}

func TestUnaryMinusBindsTighterThanInstanceOf(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, `-1 instance of xs:integer`, root)
	require.True(t, seq[0].Value.Bool)
}

func TestUnaryMinusBindsTighterThanCast(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, `-1 cast as xs:string`, root)
	require.Equal(t, "-1", seq[0].String())
}

func TestFunctionCallDispatch(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "count(/store/book)", root)
	require.Equal(t, float64(3), seq[0].Value.Num)

	seq = mustEval(t, `concat("a", "b")`, root)
	require.Equal(t, "ab", seq[0].Value.Str)
}

func TestReverseAxisPredicatePosition(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/book[3]/preceding-sibling::book[1]/title", root)
	require.Len(t, seq, 1)
	require.Equal(t, "Dune", seq[0].Node.StringValue())
}

func TestFollowingSiblingAxis(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/book[1]/following-sibling::book/title", root)
	require.Len(t, seq, 2)
	require.Equal(t, "Dune", seq[0].Node.StringValue())
}

func TestWildcardNameTest(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/*", root)
	require.Len(t, seq, 3)
}

func TestLocalWildcardNameTestMatchesAnyNamespace(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/*:book", root)
	require.Len(t, seq, 3)
}

func TestPrefixWildcardNameTestStillRequiresLocalMatch(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/*:nonexistent", root)
	require.Empty(t, seq)
}

func TestSelfAndParentAxes(t *testing.T) {
	root := mustParseDoc(t)
	seq := mustEval(t, "/store/book[1]/title/parent::book/self::book", root)
	require.Len(t, seq, 1)
}

func TestNamespaceAxisAlwaysEmptyAndWarns(t *testing.T) {
	root := mustParseDoc(t)
	sc := staticctx.New(append(functions.Options(), staticctx.WithNamespaceAxis(true))...)
	expr, err := parser.Parse("/store/book[1]/namespace::*", sc)
	require.NoError(t, err)
	ctx := evalctx.New(sc, time.Now())
	ctx = ctx.WithFocus(xpvalue.NodeItem(root), 1, 1)
	seq, err := Eval(expr, ctx)
	require.NoError(t, err)
	require.Empty(t, seq)

	got := ctx.Warnings.Warnings()
	require.Len(t, got, 1)
	require.Equal(t, warning.NamespaceAxisDeprecated, got[0].Code)
}

func TestUntypedAtomicGeneralComparisonWarns(t *testing.T) {
	root := mustParseDoc(t)
	sc := staticctx.New(functions.Options()...)
	expr, err := parser.Parse(`/store/book[1]/price = "7.5"`, sc)
	require.NoError(t, err)
	ctx := evalctx.New(sc, time.Now())
	ctx = ctx.WithFocus(xpvalue.NodeItem(root), 1, 1)
	seq, err := Eval(expr, ctx)
	require.NoError(t, err)
	require.True(t, seq[0].Value.Bool)

	got := ctx.Warnings.Warnings()
	require.Len(t, got, 1)
	require.Equal(t, warning.UntypedAtomicCoercion, got[0].Code)
}

func TestXPath10CompatGeneralComparisonWarns(t *testing.T) {
	root := mustParseDoc(t)
	sc := staticctx.New(append(functions.Options(), staticctx.WithXPath10Compatibility(true))...)
	expr, err := parser.Parse(`/store/book[3]/price = 20`, sc)
	require.NoError(t, err)
	ctx := evalctx.New(sc, time.Now())
	ctx = ctx.WithFocus(xpvalue.NodeItem(root), 1, 1)
	seq, err := Eval(expr, ctx)
	require.NoError(t, err)
	require.True(t, seq[0].Value.Bool)

	got := ctx.Warnings.Warnings()
	require.Len(t, got, 1)
	require.Equal(t, warning.XPath10CompatCoercion, got[0].Code)
}
