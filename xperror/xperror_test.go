package xperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		code Code
		want Kind
	}{
		{XPST0003, Static},
		{XPST0017, Static},
		{XPTY0004, Type},
		{XPTY0018, Type},
		{FOAR0001, Dynamic},
		{FOCH0002, Dynamic},
		{XPDY0002, Dynamic},
	}
	for _, tt := range tests {
		err := New(tt.code, "boom")
		require.Equal(t, tt.want, err.Kind(), "code %s", tt.code)
	}
}

func TestIsStaticIsDynamic(t *testing.T) {
	static := New(XPST0003, "parse error")
	require.True(t, static.IsStatic())
	require.False(t, static.IsDynamic())

	typ := New(XPTY0004, "type error")
	require.False(t, typ.IsStatic())
	require.True(t, typ.IsDynamic())

	dyn := New(FOAR0001, "division by zero")
	require.False(t, dyn.IsStatic())
	require.True(t, dyn.IsDynamic())
}

func TestQNameAndNamespace(t *testing.T) {
	err := New(FORG0001, "cannot cast %q", "abc")
	require.Equal(t, "err:FORG0001", err.QName)
	require.Equal(t, ErrorNamespace, err.Namespace)
	require.Equal(t, `cannot cast "abc"`, err.Message)
}

func TestErrorsIs(t *testing.T) {
	err := New(XPST0017, "foo() not found")
	require.True(t, errors.Is(err, New(XPST0017, "different message")))
	require.False(t, errors.Is(err, New(XPST0003, "different code")))
}
