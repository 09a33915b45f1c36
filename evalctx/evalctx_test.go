package evalctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xpath/staticctx"
	"github.com/CognitoIQ/go-xpath/warning"
	"github.com/CognitoIQ/go-xpath/xpvalue"
)

func TestNewHasNoFocus(t *testing.T) {
	sc := staticctx.New()
	ctx := New(sc, time.Unix(0, 0).UTC())
	require.False(t, ctx.HasItem)
	_, err := ctx.RequireItem()
	require.Error(t, err)
}

func TestWithFocusEstablishesItem(t *testing.T) {
	sc := staticctx.New()
	root := New(sc, time.Unix(0, 0).UTC())
	it := xpvalue.ValueItem(xpvalue.NewInteger(1))
	child := root.WithFocus(it, 1, 1)
	require.True(t, child.HasItem)
	require.False(t, root.HasItem)

	got, err := child.RequireItem()
	require.NoError(t, err)
	require.Equal(t, it, got)
}

func TestVariableBindingIsolatedToChild(t *testing.T) {
	sc := staticctx.New()
	root := New(sc, time.Unix(0, 0).UTC())
	child := root.WithVariable("", "x", xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewInteger(5))))

	_, err := root.Variable("", "x")
	require.Error(t, err)

	v, err := child.Variable("", "x")
	require.NoError(t, err)
	require.Len(t, v, 1)
}

func TestFunctionBindingIsolatedToChild(t *testing.T) {
	sc := staticctx.New()
	root := New(sc, time.Unix(0, 0).UTC())
	fn := func(ctx *Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
		return xpvalue.Empty, nil
	}
	child := root.WithFunction("urn:ext", "noop", fn)

	_, ok := root.Function("urn:ext", "noop")
	require.False(t, ok)

	_, ok = child.Function("urn:ext", "noop")
	require.True(t, ok)
}

func TestNamespaceBindingIsolatedToChild(t *testing.T) {
	sc := staticctx.New()
	root := New(sc, time.Unix(0, 0).UTC())
	child := root.WithNamespace("ex", "urn:example")

	_, ok := root.ResolveNamespace("ex")
	require.False(t, ok)

	uri, ok := child.ResolveNamespace("ex")
	require.True(t, ok)
	require.Equal(t, "urn:example", uri)
}

func TestCollectionDefaultURI(t *testing.T) {
	sc := staticctx.New()
	root := New(sc, time.Unix(0, 0).UTC())
	child := root.WithCollection("urn:coll", nil)

	got, ok := child.Collection("")
	require.True(t, ok)
	require.Nil(t, got)
}

func TestNewInstallsAPermissiveWarningCollector(t *testing.T) {
	sc := staticctx.New()
	root := New(sc, time.Unix(0, 0).UTC())
	require.NotNil(t, root.Warnings)

	root.Warnings.Emit(warning.NamespaceAxisDeprecated, "ctx", "")
	require.Len(t, root.Warnings.Warnings(), 1)
}

func TestWithWarningsIsolatedToChild(t *testing.T) {
	sc := staticctx.New()
	root := New(sc, time.Unix(0, 0).UTC())
	custom := warning.New(warning.WithMaxWarnings(0))
	child := root.WithWarnings(custom)

	require.NotSame(t, root.Warnings, child.Warnings)
	child.Warnings.Emit(warning.NamespaceAxisDeprecated, "ctx", "")
	require.Empty(t, child.Warnings.Warnings())
	require.Empty(t, root.Warnings.Warnings())
}
