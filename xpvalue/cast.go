package xpvalue

import (
	"math"
	"strconv"
	"strings"

	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xstype"
)

// Castable reports whether v can be cast to target without error.
func Castable(v Value, target *xstype.AtomicType) bool {
	_, err := Cast(v, target)
	return err == nil
}

// Cast converts v to the requested atomic type, implementing the subset
// of "cast as" needed by a core numeric/string/boolean type system:
// string<->numeric<->boolean conversions plus same-family identity
// casts. FORG0001 is raised for a value whose lexical form is invalid
// for the target type.
func Cast(v Value, target *xstype.AtomicType) (Value, error) {
	if v.Type == target {
		return v, nil
	}
	switch {
	case target == xstype.XBoolean:
		return castToBoolean(v)
	case target.IsNumeric():
		return castToNumeric(v, target)
	case target.IsDerivedFrom(xstype.XString) || target == xstype.UntypedAtomic || target == xstype.AnyURI:
		return castToStringLike(v, target)
	default:
		return Value{}, xperror.New(xperror.FORG0001, "cast to %s is not supported", target)
	}
}

func castToBoolean(v Value) (Value, error) {
	switch {
	case v.Type == xstype.XBoolean:
		return v, nil
	case v.Type.IsNumeric():
		return NewBoolean(!(v.Num == 0 || math.IsNaN(v.Num))), nil
	case v.Type.IsDerivedFrom(xstype.XString) || v.Type == xstype.UntypedAtomic:
		switch strings.TrimSpace(v.Str) {
		case "true", "1":
			return NewBoolean(true), nil
		case "false", "0":
			return NewBoolean(false), nil
		default:
			return Value{}, xperror.New(xperror.FORG0001, "cannot cast %q to xs:boolean", v.Str)
		}
	default:
		return Value{}, xperror.New(xperror.FORG0001, "cannot cast %s to xs:boolean", v.Type)
	}
}

func castToNumeric(v Value, target *xstype.AtomicType) (Value, error) {
	var n float64
	switch {
	case v.Type.IsNumeric():
		n = v.Num
	case v.Type == xstype.XBoolean:
		if v.Bool {
			n = 1
		}
	case v.Type.IsDerivedFrom(xstype.XString) || v.Type == xstype.UntypedAtomic || v.Type == xstype.AnyURI:
		parsed, ok := parseFloatLiteral(v.Str)
		if !ok {
			return Value{}, xperror.New(xperror.FORG0001, "cannot cast %q to %s", v.Str, target)
		}
		n = parsed
	default:
		return Value{}, xperror.New(xperror.FORG0001, "cannot cast %s to %s", v.Type, target)
	}
	if target.NumericLevel() == 1 /* integer family */ {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return Value{}, xperror.New(xperror.FORG0001, "%v has no integer representation", n)
		}
		n = math.Trunc(n)
	}
	return Value{Type: target, Num: n}, nil
}

func castToStringLike(v Value, target *xstype.AtomicType) (Value, error) {
	return Value{Type: target, Str: v.String()}, nil
}

// parseFloatLiteral parses an XPath numeric literal's lexical form,
// additionally accepting the special values INF, -INF, and NaN that
// strconv.ParseFloat spells differently.
func parseFloatLiteral(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "INF", "+INF":
		return math.Inf(1), true
	case "-INF":
		return math.Inf(-1), true
	case "NaN":
		return math.NaN(), true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
