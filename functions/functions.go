// Package functions implements the built-in function library: the
// static arity table (BuiltinSignatures, generated into
// builtins_table.go by cmd/xpathgen) and the Go implementation each
// entry dispatches to at evaluation time.
package functions // import "github.com/CognitoIQ/go-xpath/functions"

import (
	"regexp"
	"strings"

	"github.com/CognitoIQ/go-xpath/evalctx"
	"github.com/CognitoIQ/go-xpath/staticctx"
	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xpvalue"
	"github.com/CognitoIQ/go-xpath/xstype"
)

// Options returns a staticctx.Option for every built-in signature, for
// embedding into staticctx.New so the parser's arity/reserved-name
// checks see the full built-in table without every caller having to
// list it by hand.
func Options() []staticctx.Option {
	opts := make([]staticctx.Option, 0, len(BuiltinSignatures))
	for _, sig := range BuiltinSignatures {
		opts = append(opts, staticctx.WithFunction(sig))
	}
	return opts
}

// table maps (namespace, local) to the Go implementation. Built once at
// package initialization, apart from builtins_table.go (the arity
// data), so that file and this one (the behavior) can evolve
// independently, the way xsdgen separates generated type
// declarations from hand-written marshal code.
var table = buildTable()

// Lookup resolves a built-in function's implementation by namespace and
// local name. A false second return means local is not a built-in
// (either unknown, or a host extension registered directly in the
// evaluation context instead).
func Lookup(namespace, local string) (evalctx.Function, bool) {
	fn, ok := table[[2]string{namespace, local}]
	return fn, ok
}

func buildTable() map[[2]string]evalctx.Function {
	fn := xstype.FunctionNS
	xs := xstype.SchemaNS
	return map[[2]string]evalctx.Function{
		{fn, "true"}:  fnTrue,
		{fn, "false"}: fnFalse,
		{fn, "not"}:   fnNot,
		{fn, "boolean"}: fnBoolean,

		{fn, "position"}: fnPosition,
		{fn, "last"}:     fnLast,
		{fn, "count"}:    fnCount,

		{fn, "string"}:           fnString,
		{fn, "concat"}:           fnConcat,
		{fn, "string-length"}:    fnStringLength,
		{fn, "substring"}:        fnSubstring,
		{fn, "substring-before"}: fnSubstringBefore,
		{fn, "substring-after"}:  fnSubstringAfter,
		{fn, "starts-with"}:      fnStartsWith,
		{fn, "contains"}:         fnContains,
		{fn, "ends-with"}:        fnEndsWith,
		{fn, "normalize-space"}:  fnNormalizeSpace,
		{fn, "translate"}:        fnTranslate,
		{fn, "upper-case"}:       fnUpperCase,
		{fn, "lower-case"}:       fnLowerCase,
		{fn, "string-join"}:      fnStringJoin,
		{fn, "matches"}:          fnMatches,
		{fn, "replace"}:          fnReplace,
		{fn, "compare"}:          fnCompare,

		{fn, "number"}:  fnNumber,
		{fn, "sum"}:     fnSum,
		{fn, "floor"}:   fnFloor,
		{fn, "ceiling"}: fnCeiling,
		{fn, "round"}:   fnRound,
		{fn, "abs"}:     fnAbs,

		{fn, "empty"}:           fnEmpty,
		{fn, "exists"}:          fnExists,
		{fn, "head"}:            fnHead,
		{fn, "tail"}:            fnTail,
		{fn, "reverse"}:         fnReverse,
		{fn, "distinct-values"}: fnDistinctValues,
		{fn, "index-of"}:        fnIndexOf,
		{fn, "subsequence"}:     fnSubsequence,
		{fn, "insert-before"}:   fnInsertBefore,
		{fn, "remove"}:          fnRemove,

		{fn, "name"}:          fnName,
		{fn, "local-name"}:    fnLocalName,
		{fn, "namespace-uri"}: fnNamespaceURI,
		{fn, "root"}:          fnRoot,
		{fn, "id"}:            fnID,
		{fn, "lang"}:          fnLang,

		{xs, "string"}:   castBuiltin(xstype.XString),
		{xs, "integer"}:  castBuiltin(xstype.XInteger),
		{xs, "decimal"}:  castBuiltin(xstype.XDecimal),
		{xs, "double"}:   castBuiltin(xstype.XDouble),
		{xs, "boolean"}:  castBuiltin(xstype.XBoolean),
		{xs, "date"}:     castBuiltin(xstype.XDate),
		{xs, "dateTime"}: castBuiltin(xstype.XDateTime),
		{xs, "anyURI"}:   castBuiltin(xstype.AnyURI),
		{xs, "QName"}:    castBuiltin(xstype.XQName),
	}
}

func arg0(args []xpvalue.Sequence) xpvalue.Sequence {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// contextOrArg resolves the "zero-arg form uses the context item"
// pattern shared by string(), string-length(), normalize-space(),
// name(), local-name(), namespace-uri(), number(), and root(): if args
// is empty, the context item (atomized where the callee needs an
// atomic value) stands in for the missing argument.
func contextOrArg(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	it, err := ctx.RequireItem()
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(it), nil
}

func oneString(seq xpvalue.Sequence) (string, error) {
	atomized := xpvalue.Atomize(seq)
	if len(atomized) == 0 {
		return "", nil
	}
	if len(atomized) > 1 {
		return "", xperror.New(xperror.XPTY0004, "expected a single string value, got a sequence of %d items", len(atomized))
	}
	return xpvalue.ToComparisonString(atomized[0].Value)
}

func oneNumber(seq xpvalue.Sequence) (float64, error) {
	atomized := xpvalue.Atomize(seq)
	if len(atomized) == 0 {
		return 0, nil
	}
	if len(atomized) > 1 {
		return 0, xperror.New(xperror.XPTY0004, "expected a single numeric value, got a sequence of %d items", len(atomized))
	}
	v, err := xpvalue.ToArithmeticNumeric(atomized[0].Value)
	if err != nil {
		return 0, err
	}
	return v.Num, nil
}

// --- Boolean functions ---

func fnTrue(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(true))), nil
}

func fnFalse(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(false))), nil
}

func fnNot(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	b, err := xpvalue.EffectiveBooleanValue(arg0(args))
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(!b))), nil
}

func fnBoolean(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	b, err := xpvalue.EffectiveBooleanValue(arg0(args))
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(b))), nil
}

// --- Context functions ---

func fnPosition(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	if !ctx.HasItem {
		return nil, xperror.New(xperror.XPDY0002, "fn:position() has no context position")
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewInteger(int64(ctx.Position)))), nil
}

func fnLast(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	if !ctx.HasItem {
		return nil, xperror.New(xperror.XPDY0002, "fn:last() has no context size")
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewInteger(int64(ctx.Size)))), nil
}

func fnCount(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewInteger(int64(len(arg0(args)))))), nil
}

// --- String functions ---

func fnString(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	seq, err := contextOrArg(ctx, args)
	if err != nil {
		return nil, err
	}
	s, err := oneString(seq)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(s))), nil
}

func fnConcat(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	var b strings.Builder
	for _, a := range args {
		s, err := oneString(a)
		if err != nil {
			return nil, err
		}
		b.WriteString(s)
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(b.String()))), nil
}

func fnStringLength(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	seq, err := contextOrArg(ctx, args)
	if err != nil {
		return nil, err
	}
	s, err := oneString(seq)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewInteger(int64(len([]rune(s)))))), nil
}

func fnSubstring(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	start, err := oneNumber(args[1])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	length := float64(len(runes)) - start + 1
	if len(args) == 3 {
		length, err = oneNumber(args[2])
		if err != nil {
			return nil, err
		}
	}
	from := round(start)
	count := round(length)
	lo := from - 1
	hi := lo + count
	if lo < 0 {
		lo = 0
	}
	if hi > float64(len(runes)) {
		hi = float64(len(runes))
	}
	if hi <= lo {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(""))), nil
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(string(runes[int(lo):int(hi)])))), nil
}

func fnSubstringBefore(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	sep, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	if sep == "" {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(""))), nil
	}
	i := strings.Index(s, sep)
	if i < 0 {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(""))), nil
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(s[:i]))), nil
}

func fnSubstringAfter(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	sep, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	if sep == "" {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(s))), nil
	}
	i := strings.Index(s, sep)
	if i < 0 {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(""))), nil
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(s[i+len(sep):]))), nil
}

func fnStartsWith(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	prefix, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(strings.HasPrefix(s, prefix)))), nil
}

func fnContains(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	sub, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(strings.Contains(s, sub)))), nil
}

func fnEndsWith(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	suffix, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(strings.HasSuffix(s, suffix)))), nil
}

func fnNormalizeSpace(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	seq, err := contextOrArg(ctx, args)
	if err != nil {
		return nil, err
	}
	s, err := oneString(seq)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(strings.Join(strings.Fields(s), " ")))), nil
}

func fnTranslate(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	from, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	to, err := oneString(args[2])
	if err != nil {
		return nil, err
	}
	toRunes := []rune(to)
	var b strings.Builder
	for _, r := range s {
		idx := strings.IndexRune(from, r)
		if idx < 0 {
			b.WriteRune(r)
			continue
		}
		pos := len([]rune(from[:idx]))
		if pos < len(toRunes) {
			b.WriteRune(toRunes[pos])
		}
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(b.String()))), nil
}

func fnUpperCase(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(strings.ToUpper(s)))), nil
}

func fnLowerCase(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(strings.ToLower(s)))), nil
}

func fnStringJoin(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	sep, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	atomized := xpvalue.AtomizeValues(args[0])
	parts := make([]string, len(atomized))
	for i, v := range atomized {
		s, err := xpvalue.ToComparisonString(v)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(strings.Join(parts, sep)))), nil
}

func fnMatches(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	pattern, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	flags := ""
	if len(args) == 3 {
		flags, err = oneString(args[2])
		if err != nil {
			return nil, err
		}
	}
	re, err := compileXPathRegex(pattern, flags)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(re.MatchString(s)))), nil
}

func fnReplace(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	s, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	pattern, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	replacement, err := oneString(args[2])
	if err != nil {
		return nil, err
	}
	flags := ""
	if len(args) == 4 {
		flags, err = oneString(args[3])
		if err != nil {
			return nil, err
		}
	}
	re, err := compileXPathRegex(pattern, flags)
	if err != nil {
		return nil, err
	}
	// XPath backreferences are "$1".."$9"; Go's regexp uses the same
	// "$1" syntax for ReplaceAll, so no translation is needed beyond
	// escaping a literal "$" the caller didn't intend as one, which is
	// out of scope for this core subset.
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(re.ReplaceAllString(s, replacement)))), nil
}

// compileXPathRegex maps the XPath flags "s", "m" and "i" to Go
// regexp's inline flag syntax. The "x" flag is accepted but has no
// effect: whitespace in the pattern is still matched literally.
func compileXPathRegex(pattern, flags string) (*regexp.Regexp, error) {
	var goFlags string
	for _, f := range flags {
		switch f {
		case 's':
			goFlags += "s"
		case 'm':
			goFlags += "m"
		case 'i':
			goFlags += "i"
		case 'x':
			goFlags += ""
		default:
			return nil, xperror.New(xperror.FORG0001, "unsupported regex flag %q", string(f))
		}
	}
	if goFlags != "" {
		pattern = "(?" + goFlags + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, xperror.New(xperror.FORG0001, "invalid regular expression %q: %v", pattern, err)
	}
	return re, nil
}

func fnCompare(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	a, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	b, err := oneString(args[1])
	if err != nil {
		return nil, err
	}
	uri := ctx.DefaultCollation
	if len(args) == 3 {
		uri, err = oneString(args[2])
		if err != nil {
			return nil, err
		}
	}
	coll, err := ctx.Static.Collation(uri)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewInteger(int64(coll.CompareString(a, b))))), nil
}

// --- Numeric functions ---

func fnNumber(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	seq, err := contextOrArg(ctx, args)
	if err != nil {
		return nil, err
	}
	n, err := oneNumber(seq)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewDouble(n))), nil
}

func fnSum(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	atomized := xpvalue.AtomizeValues(args[0])
	if len(atomized) == 0 {
		if len(args) == 2 {
			return args[1], nil
		}
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewInteger(0))), nil
	}
	total := 0.0
	for _, v := range atomized {
		nv, err := xpvalue.ToArithmeticNumeric(v)
		if err != nil {
			return nil, err
		}
		total += nv.Num
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewDouble(total))), nil
}

func fnFloor(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	n, err := oneNumber(args[0])
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewDouble(floor(n)))), nil
}

func fnCeiling(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	n, err := oneNumber(args[0])
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewDouble(ceil(n)))), nil
}

func fnRound(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	n, err := oneNumber(args[0])
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewDouble(round(n)))), nil
}

func fnAbs(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	n, err := oneNumber(args[0])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = -n
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewDouble(n))), nil
}

// --- Sequence functions ---

func fnEmpty(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(len(args[0]) == 0))), nil
}

func fnExists(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(len(args[0]) > 0))), nil
}

func fnHead(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	if len(args[0]) == 0 {
		return xpvalue.Empty, nil
	}
	return xpvalue.Singleton(args[0][0]), nil
}

func fnTail(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	if len(args[0]) <= 1 {
		return xpvalue.Empty, nil
	}
	return args[0][1:], nil
}

func fnReverse(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	seq := args[0]
	out := make(xpvalue.Sequence, len(seq))
	for i, it := range seq {
		out[len(seq)-1-i] = it
	}
	return out, nil
}

func fnDistinctValues(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	atomized := xpvalue.AtomizeValues(args[0])
	seen := make(map[string]bool, len(atomized))
	var out xpvalue.Sequence
	for _, v := range atomized {
		key := v.Type.String() + "|" + v.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, xpvalue.ValueItem(v))
	}
	return out, nil
}

func fnIndexOf(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	atomized := xpvalue.AtomizeValues(args[0])
	target := xpvalue.AtomizeValues(args[1])
	if len(target) != 1 {
		return nil, xperror.New(xperror.XPTY0004, "fn:index-of's second argument must be a single atomic value")
	}
	var out xpvalue.Sequence
	for i, v := range atomized {
		if v.String() == target[0].String() {
			out = append(out, xpvalue.ValueItem(xpvalue.NewInteger(int64(i+1))))
		}
	}
	return out, nil
}

func fnSubsequence(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	seq := args[0]
	start, err := oneNumber(args[1])
	if err != nil {
		return nil, err
	}
	length := float64(len(seq)) - start + 1
	if len(args) == 3 {
		length, err = oneNumber(args[2])
		if err != nil {
			return nil, err
		}
	}
	from := round(start)
	count := round(length)
	lo := from - 1
	hi := lo + count
	if lo < 0 {
		lo = 0
	}
	if hi > float64(len(seq)) {
		hi = float64(len(seq))
	}
	if hi <= lo {
		return xpvalue.Empty, nil
	}
	return seq[int(lo):int(hi)], nil
}

func fnInsertBefore(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	seq := args[0]
	pos, err := oneNumber(args[1])
	if err != nil {
		return nil, err
	}
	insert := args[2]
	idx := int(round(pos)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(seq) {
		idx = len(seq)
	}
	out := make(xpvalue.Sequence, 0, len(seq)+len(insert))
	out = append(out, seq[:idx]...)
	out = append(out, insert...)
	out = append(out, seq[idx:]...)
	return out, nil
}

func fnRemove(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	seq := args[0]
	pos, err := oneNumber(args[1])
	if err != nil {
		return nil, err
	}
	idx := int(round(pos)) - 1
	if idx < 0 || idx >= len(seq) {
		return append(xpvalue.Sequence{}, seq...), nil
	}
	out := make(xpvalue.Sequence, 0, len(seq)-1)
	out = append(out, seq[:idx]...)
	out = append(out, seq[idx+1:]...)
	return out, nil
}

// --- Node functions ---

func requireNodeArg(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Item, bool, error) {
	seq, err := contextOrArg(ctx, args)
	if err != nil {
		return xpvalue.Item{}, false, err
	}
	if len(seq) == 0 {
		return xpvalue.Item{}, false, nil
	}
	if !seq[0].IsNode() {
		return xpvalue.Item{}, false, xperror.New(xperror.XPTY0004, "expected a node argument")
	}
	return seq[0], true, nil
}

func fnName(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	it, ok, err := requireNodeArg(ctx, args)
	if err != nil {
		return nil, err
	}
	if !ok {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(""))), nil
	}
	ns, local := it.Node.Name()
	name := local
	if ns != "" {
		name = ns + ":" + local
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(name))), nil
}

func fnLocalName(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	it, ok, err := requireNodeArg(ctx, args)
	if err != nil {
		return nil, err
	}
	if !ok {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(""))), nil
	}
	_, local := it.Node.Name()
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(local))), nil
}

func fnNamespaceURI(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	it, ok, err := requireNodeArg(ctx, args)
	if err != nil {
		return nil, err
	}
	if !ok {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewAnyURI(""))), nil
	}
	ns, _ := it.Node.Name()
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewAnyURI(ns))), nil
}

func fnRoot(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	it, ok, err := requireNodeArg(ctx, args)
	if err != nil {
		return nil, err
	}
	if !ok {
		return xpvalue.Empty, nil
	}
	n := it.Node
	for {
		p := n.Parent()
		if p == nil {
			break
		}
		n = p
	}
	return xpvalue.Singleton(xpvalue.NodeItem(n)), nil
}

func fnID(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	return nil, xperror.New(xperror.FORG0006, "fn:id requires a DTD/schema-declared ID attribute, which this data-model adapter does not track")
}

func fnLang(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
	want, err := oneString(args[0])
	if err != nil {
		return nil, err
	}
	it, err := ctx.RequireItem()
	if err != nil {
		return nil, err
	}
	if len(args) == 2 {
		if !args[1][0].IsNode() {
			return nil, xperror.New(xperror.XPTY0004, "fn:lang's second argument must be a node")
		}
		it = args[1][0]
	}
	if !it.IsNode() {
		return nil, xperror.New(xperror.XPTY0004, "fn:lang requires a node context item")
	}
	for n := it.Node; n != nil; n = n.Parent() {
		if v, ok := n.GetAttribute("lang"); ok {
			return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(langMatches(v, want)))), nil
		}
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(false))), nil
}

func langMatches(have, want string) bool {
	have = strings.ToLower(have)
	want = strings.ToLower(want)
	return have == want || strings.HasPrefix(have, want+"-")
}

// --- xs: constructor functions ---

func castBuiltin(target *xstype.AtomicType) evalctx.Function {
	return func(ctx *evalctx.Context, args []xpvalue.Sequence) (xpvalue.Sequence, error) {
		atomized := xpvalue.Atomize(args[0])
		if len(atomized) == 0 {
			return xpvalue.Empty, nil
		}
		if len(atomized) > 1 {
			return nil, xperror.New(xperror.XPTY0004, "xs:%s constructor expects a single atomic value", target.Name)
		}
		v, err := xpvalue.Cast(atomized[0].Value, target)
		if err != nil {
			return nil, err
		}
		return xpvalue.Singleton(xpvalue.ValueItem(v)), nil
	}
}

// round/floor/ceil implement the IEEE round-half-to-positive-infinity
// rule fn:round uses, distinct from math.Round's round-half-away-from-zero.
func round(n float64) float64 {
	f := floor(n)
	if n-f >= 0.5 {
		return f + 1
	}
	return f
}

func floor(n float64) float64 {
	i := int64(n)
	if n < 0 && float64(i) != n {
		i--
	}
	return float64(i)
}

func ceil(n float64) float64 {
	i := int64(n)
	if n > 0 && float64(i) != n {
		i++
	}
	return float64(i)
}
