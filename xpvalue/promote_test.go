package xpvalue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xpath/xstype"
)

func TestToArithmeticNumericPromotesUntypedAtomic(t *testing.T) {
	v, err := ToArithmeticNumeric(NewUntypedAtomic("3.5"))
	require.NoError(t, err)
	require.Equal(t, xstype.XDouble, v.Type)
	require.Equal(t, 3.5, v.Num)
}

func TestToArithmeticNumericRejectsNonNumeric(t *testing.T) {
	_, err := ToArithmeticNumeric(NewString("x"))
	require.Error(t, err)
}

func TestPromoteNumericPair(t *testing.T) {
	av, bv, common, err := PromoteNumericPair(NewInteger(2), NewDouble(3.5))
	require.NoError(t, err)
	require.Equal(t, float64(2), av)
	require.Equal(t, 3.5, bv)
	require.Equal(t, xstype.XDouble, common)
}

func TestToComparisonStringPromotesAnyURI(t *testing.T) {
	s, err := ToComparisonString(NewAnyURI("http://example.com"))
	require.NoError(t, err)
	require.Equal(t, "http://example.com", s)
}

func TestToComparisonStringRejectsUnpromotable(t *testing.T) {
	_, err := ToComparisonString(Value{Type: xstype.HexBinary, Str: "FF"})
	require.Error(t, err)
}
