package staticctx

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xstype"
)

func TestNewDefaults(t *testing.T) {
	sc := New()
	require.Equal(t, Version20, sc.Version)
	require.False(t, sc.Strict)
	require.False(t, sc.EnableNamespaceAxis)
	require.Equal(t, defaultCollation, sc.DefaultCollation())
}

func TestVersionAtLeast(t *testing.T) {
	require.True(t, Version31.AtLeast(Version20))
	require.True(t, Version20.AtLeast(Version20))
	require.False(t, Version10.AtLeast(Version20))
}

func TestWithOptionsApply(t *testing.T) {
	sc := New(
		WithVersion(Version10),
		WithStrictMode(true),
		WithNamespaceAxis(true),
		WithXPath10Compatibility(true),
		WithSchemaAware(true),
		WithDefaultElementNamespace("urn:example"),
	)
	require.Equal(t, Version10, sc.Version)
	require.True(t, sc.Strict)
	require.True(t, sc.EnableNamespaceAxis)
	require.True(t, sc.XPath10Compatibility)
	require.True(t, sc.SchemaAware)
	require.Equal(t, "urn:example", sc.DefaultElementNamespace)
}

func TestVariableTypeLookup(t *testing.T) {
	st := xstype.SequenceType{Occurrence: xstype.ExactlyOne}
	sc := New(WithVariableType("", "x", st))
	got, ok := sc.VariableType("", "x")
	require.True(t, ok)
	require.Equal(t, st, got)

	_, ok = sc.VariableType("", "missing")
	require.False(t, ok)
}

func TestFunctionLookupDefaultsNamespace(t *testing.T) {
	sc := New(WithFunction(FunctionSignature{Local: "count", MinArgs: 1, MaxArgs: 1, Reserved: true}))
	sig, ok := sc.LookupFunction("", "count")
	require.True(t, ok)
	require.Equal(t, 1, sig.MinArgs)

	sig2, ok := sc.LookupFunction(xstype.FunctionNS, "count")
	require.True(t, ok)
	require.Equal(t, sig, sig2)
}

func TestRegisterFunctionRejectsReservedRebind(t *testing.T) {
	sc := New(WithFunction(FunctionSignature{Local: "count", MinArgs: 1, MaxArgs: 1, Reserved: true}))
	err := sc.RegisterFunction(FunctionSignature{Local: "count", MinArgs: 0, MaxArgs: 2})
	require.Error(t, err)

	var xpErr *xperror.Error
	require.ErrorAs(t, err, &xpErr)
	require.Equal(t, xperror.XPST0017, xpErr.Code)
}

func TestRegisterFunctionAllowsNonReserved(t *testing.T) {
	sc := New()
	err := sc.RegisterFunction(FunctionSignature{Namespace: "urn:ext", Local: "double-it", MinArgs: 1, MaxArgs: 1})
	require.NoError(t, err)
	sig, ok := sc.LookupFunction("urn:ext", "double-it")
	require.True(t, ok)
	require.Equal(t, 1, sig.MinArgs)
}

func TestCollationLookup(t *testing.T) {
	sc := New()
	c, err := sc.Collation("")
	require.NoError(t, err)
	require.NotNil(t, c)

	c2, err := sc.Collation(htmlASCIICollation)
	require.NoError(t, err)
	require.NotNil(t, c2)

	_, err = sc.Collation("urn:unknown-collation")
	require.Error(t, err)
	xpErr, ok := err.(*xperror.Error)
	require.True(t, ok)
	require.Equal(t, xperror.FOCH0002, xpErr.Code)
}

func TestRegisterCollation(t *testing.T) {
	sc := New()
	base, err := sc.Collation("")
	require.NoError(t, err)
	sc.RegisterCollation("urn:custom", base)
	got, err := sc.Collation("urn:custom")
	require.NoError(t, err)
	require.Equal(t, base, got)
}

func TestCollationURIsSortedAndIncludesRegistered(t *testing.T) {
	sc := New()
	base, err := sc.Collation("")
	require.NoError(t, err)
	sc.RegisterCollation("urn:zzz-custom", base)
	sc.RegisterCollation("urn:aaa-custom", base)

	uris := sc.CollationURIs()
	require.True(t, sort.IsSorted(sort.StringSlice(uris)))
	require.Contains(t, uris, "urn:zzz-custom")
	require.Contains(t, uris, "urn:aaa-custom")
}
