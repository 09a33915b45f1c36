package functions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xpath/evalctx"
	"github.com/CognitoIQ/go-xpath/staticctx"
	"github.com/CognitoIQ/go-xpath/xpvalue"
)

func newCtx(t *testing.T) *evalctx.Context {
	t.Helper()
	sc := staticctx.New(Options()...)
	return evalctx.New(sc, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
}

func call(t *testing.T, local string, args ...xpvalue.Sequence) xpvalue.Sequence {
	t.Helper()
	fn, ok := Lookup(functionNS, local)
	require.True(t, ok, "no builtin named %q", local)
	seq, err := fn(newCtx(t), args)
	require.NoError(t, err)
	return seq
}

func single(seq xpvalue.Sequence) xpvalue.Value {
	return seq[0].Value
}

func str(s string) xpvalue.Sequence {
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(s)))
}

func num(n float64) xpvalue.Sequence {
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewDouble(n)))
}

const functionNS = "http://www.w3.org/2005/xpath-functions"

func TestOptionsRegistersEverySignature(t *testing.T) {
	sc := staticctx.New(Options()...)
	for _, sig := range BuiltinSignatures {
		_, ok := sc.LookupFunction(sig.Namespace, sig.Local)
		require.True(t, ok, "signature %s:%s not registered", sig.Namespace, sig.Local)
	}
}

func TestBooleanBuiltins(t *testing.T) {
	require.True(t, single(call(t, "true")).Bool)
	require.False(t, single(call(t, "false")).Bool)
	require.False(t, single(call(t, "not", call(t, "true"))).Bool)
	require.True(t, single(call(t, "boolean", str("x"))).Bool)
	require.False(t, single(call(t, "boolean", str(""))).Bool)
}

func TestStringBuiltins(t *testing.T) {
	require.Equal(t, "helloworld", single(call(t, "concat", str("hello"), str("world"))).Str)
	require.Equal(t, float64(5), single(call(t, "string-length", str("hello"))).Num)
	require.Equal(t, "ell", single(call(t, "substring", str("hello"), num(2), num(3))).Str)
	require.Equal(t, "llo", single(call(t, "substring", str("hello"), num(3))).Str)
	require.True(t, single(call(t, "starts-with", str("hello"), str("he"))).Bool)
	require.True(t, single(call(t, "contains", str("hello"), str("ell"))).Bool)
	require.True(t, single(call(t, "ends-with", str("hello"), str("lo"))).Bool)
	require.Equal(t, "a b c", single(call(t, "normalize-space", str("  a   b  c "))).Str)
	require.Equal(t, "HELLO", single(call(t, "upper-case", str("hello"))).Str)
	require.Equal(t, "hello", single(call(t, "lower-case", str("HELLO"))).Str)
	require.Equal(t, "bcd", single(call(t, "translate", str("abcd"), str("a"), str(""))).Str)
}

func TestSubstringBeforeAfter(t *testing.T) {
	require.Equal(t, "ba", single(call(t, "substring-before", str("ba/ni"), str("/"))).Str)
	require.Equal(t, "ni", single(call(t, "substring-after", str("ba/ni"), str("/"))).Str)
}

func TestMatchesAndReplace(t *testing.T) {
	require.True(t, single(call(t, "matches", str("abc123"), str("^[a-z]+[0-9]+$"))).Bool)
	require.Equal(t, "abcXYZ", single(call(t, "replace", str("abc123"), str("[0-9]+"), str("XYZ"))).Str)
}

func TestNumericBuiltins(t *testing.T) {
	require.Equal(t, float64(2), single(call(t, "floor", num(2.7))).Num)
	require.Equal(t, float64(3), single(call(t, "ceiling", num(2.1))).Num)
	require.Equal(t, float64(3), single(call(t, "round", num(2.5))).Num)
	require.Equal(t, float64(-2), single(call(t, "round", num(-2.5))).Num)
	require.Equal(t, float64(5), single(call(t, "abs", num(-5))).Num)
}

func TestSumOverEmptySequenceUsesZeroOrDefault(t *testing.T) {
	require.Equal(t, float64(0), single(call(t, "sum", xpvalue.Empty)).Num)
	require.Equal(t, float64(9), single(call(t, "sum", xpvalue.Empty, num(9))).Num)

	seq := append(append(xpvalue.Sequence{}, num(1)...), num(2)...)
	require.Equal(t, float64(3), single(call(t, "sum", seq)).Num)
}

func TestSequenceBuiltins(t *testing.T) {
	seq := xpvalue.Sequence{}
	seq = append(seq, str("a")[0], str("b")[0], str("c")[0])

	require.True(t, single(call(t, "empty", xpvalue.Empty)).Bool)
	require.True(t, single(call(t, "exists", seq)).Bool)

	head := call(t, "head", seq)
	require.Len(t, head, 1)
	require.Equal(t, "a", head[0].Value.Str)

	tail := call(t, "tail", seq)
	require.Len(t, tail, 2)
	require.Equal(t, "b", tail[0].Value.Str)

	rev := call(t, "reverse", seq)
	require.Equal(t, "c", rev[0].Value.Str)
	require.Equal(t, "a", rev[2].Value.Str)
}

func TestIndexOfAndSubsequence(t *testing.T) {
	seq := xpvalue.Sequence{}
	for _, v := range []float64{10, 20, 30, 20} {
		seq = append(seq, num(v)[0])
	}
	idx := call(t, "index-of", seq, num(20))
	require.Len(t, idx, 2)
	require.Equal(t, float64(2), idx[0].Value.Num)
	require.Equal(t, float64(4), idx[1].Value.Num)

	sub := call(t, "subsequence", seq, num(2), num(2))
	require.Len(t, sub, 2)
	require.Equal(t, float64(20), sub[0].Value.Num)
	require.Equal(t, float64(30), sub[1].Value.Num)
}

func TestInsertBeforeAndRemove(t *testing.T) {
	seq := xpvalue.Sequence{}
	for _, v := range []float64{1, 2, 3} {
		seq = append(seq, num(v)[0])
	}
	inserted := call(t, "insert-before", seq, num(2), num(99))
	require.Len(t, inserted, 4)
	require.Equal(t, float64(99), inserted[1].Value.Num)

	removed := call(t, "remove", seq, num(2))
	require.Len(t, removed, 2)
	require.Equal(t, float64(1), removed[0].Value.Num)
	require.Equal(t, float64(3), removed[1].Value.Num)
}

func TestDistinctValues(t *testing.T) {
	seq := xpvalue.Sequence{}
	for _, v := range []float64{1, 2, 1, 3, 2} {
		seq = append(seq, num(v)[0])
	}
	distinct := call(t, "distinct-values", seq)
	require.Len(t, distinct, 3)
}

func TestXSConstructorSugarBuiltins(t *testing.T) {
	fn, ok := Lookup("http://www.w3.org/2001/XMLSchema", "integer")
	require.True(t, ok)
	seq, err := fn(newCtx(t), []xpvalue.Sequence{str("42")})
	require.NoError(t, err)
	require.Equal(t, float64(42), single(seq).Num)
}

func TestLangMatchesIsCaseInsensitiveAndPrefixed(t *testing.T) {
	require.True(t, langMatches("en-US", "en"))
	require.True(t, langMatches("EN", "en"))
	require.False(t, langMatches("eng", "en"))
}
