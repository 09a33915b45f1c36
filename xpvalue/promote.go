package xpvalue

import (
	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xstype"
)

// ToArithmeticNumeric coerces v for use as an arithmetic operand:
// xs:untypedAtomic promotes to xs:double in arithmetic context; any
// other non-numeric type is a type error.
func ToArithmeticNumeric(v Value) (Value, error) {
	if v.Type == xstype.UntypedAtomic {
		n, err := parseDouble(v.Str)
		if err != nil {
			return Value{}, err
		}
		return NewDouble(n), nil
	}
	if !v.Type.IsNumeric() {
		return Value{}, xperror.New(xperror.XPTY0004, "%s is not numeric", v.Type)
	}
	return v, nil
}

// PromoteNumericPair promotes two numeric values to their common
// numeric level and returns both as raw float64 payloads alongside the
// common type.
func PromoteNumericPair(a, b Value) (av, bv float64, common *xstype.AtomicType, err error) {
	a, err = ToArithmeticNumeric(a)
	if err != nil {
		return 0, 0, nil, err
	}
	b, err = ToArithmeticNumeric(b)
	if err != nil {
		return 0, 0, nil, err
	}
	common, err = xstype.CommonNumericType(a.Type, b.Type)
	if err != nil {
		return 0, 0, nil, err
	}
	return a.Num, b.Num, common, nil
}

// ToComparisonString coerces v for use in a string-context comparison:
// xs:anyURI and xs:untypedAtomic promote to xs:string.
func ToComparisonString(v Value) (string, error) {
	if xstype.PromoteString(v.Type) {
		return v.Str, nil
	}
	if v.Type == xstype.XBoolean || v.Type.IsNumeric() {
		return v.String(), nil
	}
	return "", xperror.New(xperror.XPTY0004, "%s cannot be promoted to xs:string", v.Type)
}

func parseDouble(s string) (float64, error) {
	n, ok := parseFloatLiteral(s)
	if !ok {
		return 0, xperror.New(xperror.FORG0001, "cannot cast %q to xs:double", s)
	}
	return n, nil
}
