package xpvalue

import (
	"math"

	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xstype"
)

// EffectiveBooleanValue computes the effective boolean value of a sequence:
//
//   - empty sequence -> false
//   - first item is a node -> true, regardless of remaining items
//   - singleton boolean -> the boolean
//   - singleton numeric -> false iff zero or NaN
//   - singleton string/anyURI -> false iff empty string
//   - anything else -> FORG0006
func EffectiveBooleanValue(seq Sequence) (bool, error) {
	if len(seq) == 0 {
		return false, nil
	}
	if seq[0].IsNode() {
		return true, nil
	}
	if len(seq) > 1 {
		return false, xperror.New(xperror.FORG0006, "effective boolean value is undefined for a sequence of more than one atomic item")
	}
	v := seq[0].Value
	switch {
	case v.Type == xstype.XBoolean:
		return v.Bool, nil
	case v.Type.IsNumeric():
		return !(v.Num == 0 || math.IsNaN(v.Num)), nil
	case v.Type.IsDerivedFrom(xstype.XString) || v.Type == xstype.AnyURI || v.Type == xstype.UntypedAtomic:
		return v.Str != "", nil
	default:
		return false, xperror.New(xperror.FORG0006, "effective boolean value is undefined for type %s", v.Type)
	}
}
