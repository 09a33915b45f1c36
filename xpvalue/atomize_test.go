package xpvalue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xpath/node"
	"github.com/CognitoIQ/go-xpath/xstype"
)

func TestAtomizeNodeProducesUntypedAtomic(t *testing.T) {
	root, err := node.Parse([]byte(`<r>hello</r>`))
	require.NoError(t, err)
	r := root.Elements[0]

	out := Atomize(Singleton(NodeItem(r)))
	require.Len(t, out, 1)
	require.False(t, out[0].IsNode())
	require.Equal(t, xstype.UntypedAtomic, out[0].Value.Type)
	require.Equal(t, "hello", out[0].Value.Str)
}

func TestAtomizeAtomicPassesThrough(t *testing.T) {
	seq := Singleton(ValueItem(NewInteger(5)))
	out := Atomize(seq)
	require.Equal(t, seq, out)
}

func TestAtomizeValues(t *testing.T) {
	seq := Sequence{ValueItem(NewInteger(1)), ValueItem(NewInteger(2))}
	vals := AtomizeValues(seq)
	require.Len(t, vals, 2)
	require.Equal(t, float64(1), vals[0].Num)
}

func TestToItemTypeSlice(t *testing.T) {
	root, err := node.Parse([]byte(`<r/>`))
	require.NoError(t, err)
	seq := Sequence{NodeItem(root.Elements[0]), ValueItem(NewInteger(3))}
	items := ToItemTypeSlice(seq)
	require.Len(t, items, 2)
	require.True(t, items[0].IsNode)
	require.False(t, items[1].IsNode)
	require.Equal(t, xstype.XInteger, items[1].Atomic)
}
