package xpvalue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xpath/node"
)

func TestEffectiveBooleanValueEmpty(t *testing.T) {
	b, err := EffectiveBooleanValue(Empty)
	require.NoError(t, err)
	require.False(t, b)
}

func TestEffectiveBooleanValueFirstNode(t *testing.T) {
	root, err := node.Parse([]byte(`<r><a/><b/></r>`))
	require.NoError(t, err)
	seq := Sequence{NodeItem(root), NodeItem(root)}
	b, err := EffectiveBooleanValue(seq)
	require.NoError(t, err)
	require.True(t, b)
}

func TestEffectiveBooleanValueSingletonBoolean(t *testing.T) {
	b, err := EffectiveBooleanValue(Singleton(ValueItem(NewBoolean(false))))
	require.NoError(t, err)
	require.False(t, b)
}

func TestEffectiveBooleanValueSingletonNumeric(t *testing.T) {
	b, err := EffectiveBooleanValue(Singleton(ValueItem(NewInteger(0))))
	require.NoError(t, err)
	require.False(t, b)

	b, err = EffectiveBooleanValue(Singleton(ValueItem(NewDouble(math.NaN()))))
	require.NoError(t, err)
	require.False(t, b)

	b, err = EffectiveBooleanValue(Singleton(ValueItem(NewInteger(5))))
	require.NoError(t, err)
	require.True(t, b)
}

func TestEffectiveBooleanValueSingletonString(t *testing.T) {
	b, err := EffectiveBooleanValue(Singleton(ValueItem(NewString(""))))
	require.NoError(t, err)
	require.False(t, b)

	b, err = EffectiveBooleanValue(Singleton(ValueItem(NewString("x"))))
	require.NoError(t, err)
	require.True(t, b)
}

func TestEffectiveBooleanValueMultiAtomicIsError(t *testing.T) {
	seq := Sequence{ValueItem(NewInteger(1)), ValueItem(NewInteger(2))}
	_, err := EffectiveBooleanValue(seq)
	require.Error(t, err)
}
