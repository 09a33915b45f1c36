// Package eval implements the dynamic evaluator: it walks an ast.Expr
// tree against an evalctx.Context and produces an xpvalue.Sequence,
// dispatching on the AST's closed type-switch rather than a visitor
// interface, matching the AST package's own "dispatch lives in eval"
// design.
package eval // import "github.com/CognitoIQ/go-xpath/eval"

import (
	"math"

	"github.com/CognitoIQ/go-xpath/ast"
	"github.com/CognitoIQ/go-xpath/evalctx"
	"github.com/CognitoIQ/go-xpath/functions"
	"github.com/CognitoIQ/go-xpath/node"
	"github.com/CognitoIQ/go-xpath/warning"
	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xpvalue"
	"github.com/CognitoIQ/go-xpath/xstype"
)

// Eval evaluates expr against ctx, returning the resulting sequence or
// the first error raised during evaluation.
func Eval(expr ast.Expr, ctx *evalctx.Context) (xpvalue.Sequence, error) {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewString(e.Value))), nil
	case *ast.NumberLiteral:
		switch {
		case e.IsInteger:
			return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewInteger(int64(e.Value)))), nil
		case e.IsDouble:
			return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewDouble(e.Value))), nil
		default:
			return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewDecimal(e.Value))), nil
		}
	case *ast.VarRef:
		return ctx.Variable(e.Namespace, e.Local)
	case *ast.ContextItemExpr:
		it, err := ctx.RequireItem()
		if err != nil {
			return nil, err
		}
		return xpvalue.Singleton(it), nil
	case *ast.UnaryExpr:
		return evalUnary(ctx, e)
	case *ast.BinaryExpr:
		return evalBinary(ctx, e)
	case *ast.SequenceExpr:
		return evalSequence(ctx, e)
	case *ast.UnionExpr:
		return evalUnion(ctx, e)
	case *ast.IntersectExceptExpr:
		return evalIntersectExcept(ctx, e)
	case *ast.RangeExpr:
		return evalRange(ctx, e)
	case *ast.IfExpr:
		return evalIf(ctx, e)
	case *ast.ForExpr:
		return evalFor(ctx, e)
	case *ast.QuantifiedExpr:
		return evalQuantified(ctx, e)
	case *ast.InstanceOfExpr:
		return evalInstanceOf(ctx, e)
	case *ast.CastableExpr:
		return evalCastable(ctx, e)
	case *ast.CastExpr:
		return evalCast(ctx, e)
	case *ast.TreatExpr:
		return evalTreat(ctx, e)
	case *ast.PathExpr:
		return evalPath(ctx, e)
	case *ast.FilterExpr:
		return evalFilter(ctx, e)
	case *ast.FunctionCall:
		return evalFunctionCall(ctx, e)
	default:
		return nil, xperror.New(xperror.XPST0001, "unsupported expression node %T", expr)
	}
}

// --- Literals, sequences, set operators ---

func evalSequence(ctx *evalctx.Context, e *ast.SequenceExpr) (xpvalue.Sequence, error) {
	var out xpvalue.Sequence
	for _, item := range e.Items {
		seq, err := Eval(item, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, seq...)
	}
	return out, nil
}

func evalUnary(ctx *evalctx.Context, e *ast.UnaryExpr) (xpvalue.Sequence, error) {
	seq, err := Eval(e.Operand, ctx)
	if err != nil {
		return nil, err
	}
	v, ok, err := atomizeSingleton(seq)
	if err != nil {
		return nil, err
	}
	if !ok {
		return xpvalue.Empty, nil
	}
	nv, err := xpvalue.ToArithmeticNumeric(v)
	if err != nil {
		return nil, err
	}
	if e.Op == ast.UnaryMinus {
		nv.Num = -nv.Num
	}
	return xpvalue.Singleton(xpvalue.ValueItem(nv)), nil
}

func nodesOf(seq xpvalue.Sequence) ([]node.Node, error) {
	out := make([]node.Node, len(seq))
	for i, it := range seq {
		if !it.IsNode() {
			return nil, xperror.New(xperror.XPTY0004, "operand of a node-set operator contains a non-node item")
		}
		out[i] = it.Node
	}
	return out, nil
}

func evalUnion(ctx *evalctx.Context, e *ast.UnionExpr) (xpvalue.Sequence, error) {
	leftSeq, err := Eval(e.Left, ctx)
	if err != nil {
		return nil, err
	}
	rightSeq, err := Eval(e.Right, ctx)
	if err != nil {
		return nil, err
	}
	left, err := nodesOf(leftSeq)
	if err != nil {
		return nil, err
	}
	right, err := nodesOf(rightSeq)
	if err != nil {
		return nil, err
	}
	return nodesToSequence(node.Union(left, right)), nil
}

func evalIntersectExcept(ctx *evalctx.Context, e *ast.IntersectExceptExpr) (xpvalue.Sequence, error) {
	leftSeq, err := Eval(e.Left, ctx)
	if err != nil {
		return nil, err
	}
	rightSeq, err := Eval(e.Right, ctx)
	if err != nil {
		return nil, err
	}
	left, err := nodesOf(leftSeq)
	if err != nil {
		return nil, err
	}
	right, err := nodesOf(rightSeq)
	if err != nil {
		return nil, err
	}
	inRight := make(map[interface{}]bool, len(right))
	for _, n := range right {
		inRight[node.Identity(n)] = true
	}
	var out []node.Node
	for _, n := range left {
		present := inRight[node.Identity(n)]
		if (e.Op == ast.OpIntersect) == present {
			out = append(out, n)
		}
	}
	return nodesToSequence(node.Sort(node.Dedupe(out))), nil
}

func nodesToSequence(nodes []node.Node) xpvalue.Sequence {
	out := make(xpvalue.Sequence, len(nodes))
	for i, n := range nodes {
		out[i] = xpvalue.NodeItem(n)
	}
	return out
}

func evalRange(ctx *evalctx.Context, e *ast.RangeExpr) (xpvalue.Sequence, error) {
	leftSeq, err := Eval(e.Left, ctx)
	if err != nil {
		return nil, err
	}
	rightSeq, err := Eval(e.Right, ctx)
	if err != nil {
		return nil, err
	}
	lv, lok, err := atomizeSingleton(leftSeq)
	if err != nil {
		return nil, err
	}
	rv, rok, err := atomizeSingleton(rightSeq)
	if err != nil {
		return nil, err
	}
	if !lok || !rok {
		return xpvalue.Empty, nil
	}
	ln, err := xpvalue.ToArithmeticNumeric(lv)
	if err != nil {
		return nil, err
	}
	rn, err := xpvalue.ToArithmeticNumeric(rv)
	if err != nil {
		return nil, err
	}
	lo, hi := int64(ln.Num), int64(rn.Num)
	if lo > hi {
		return xpvalue.Empty, nil
	}
	out := make(xpvalue.Sequence, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, xpvalue.ValueItem(xpvalue.NewInteger(i)))
	}
	return out, nil
}

// --- Conditionals, FLWOR, quantified expressions ---

func evalIf(ctx *evalctx.Context, e *ast.IfExpr) (xpvalue.Sequence, error) {
	condSeq, err := Eval(e.Cond, ctx)
	if err != nil {
		return nil, err
	}
	cond, err := xpvalue.EffectiveBooleanValue(condSeq)
	if err != nil {
		return nil, err
	}
	if cond {
		return Eval(e.Then, ctx)
	}
	return Eval(e.Else, ctx)
}

func evalFor(ctx *evalctx.Context, e *ast.ForExpr) (xpvalue.Sequence, error) {
	return evalForBindings(ctx, e.Bindings, e.Return)
}

// evalForBindings implements Cartesian iteration over the for/let
// binding chain: a "for" binding fans the remaining bindings and the
// return clause out once per bound item; a "let" binding evaluates once
// and threads a single value through.
func evalForBindings(ctx *evalctx.Context, bindings []ast.ForBinding, ret ast.Expr) (xpvalue.Sequence, error) {
	if len(bindings) == 0 {
		return Eval(ret, ctx)
	}
	b := bindings[0]
	seq, err := Eval(b.Expr, ctx)
	if err != nil {
		return nil, err
	}
	if b.IsLet {
		return evalForBindings(ctx.WithVariable("", b.Var, seq), bindings[1:], ret)
	}
	var out xpvalue.Sequence
	for _, it := range seq {
		childCtx := ctx.WithVariable("", b.Var, xpvalue.Singleton(it))
		tupleResult, err := evalForBindings(childCtx, bindings[1:], ret)
		if err != nil {
			return nil, err
		}
		out = append(out, tupleResult...)
	}
	return out, nil
}

func evalQuantified(ctx *evalctx.Context, e *ast.QuantifiedExpr) (xpvalue.Sequence, error) {
	result, err := quantifiedEval(ctx, e.Bindings, e.Satisfies, e.Kind)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(result))), nil
}

func quantifiedEval(ctx *evalctx.Context, bindings []ast.ForBinding, satisfies ast.Expr, kind ast.QuantifiedKind) (bool, error) {
	if len(bindings) == 0 {
		seq, err := Eval(satisfies, ctx)
		if err != nil {
			return false, err
		}
		return xpvalue.EffectiveBooleanValue(seq)
	}
	b := bindings[0]
	seq, err := Eval(b.Expr, ctx)
	if err != nil {
		return false, err
	}
	for _, it := range seq {
		childCtx := ctx.WithVariable("", b.Var, xpvalue.Singleton(it))
		ok, err := quantifiedEval(childCtx, bindings[1:], satisfies, kind)
		if err != nil {
			return false, err
		}
		if kind == ast.QuantifiedSome && ok {
			return true, nil
		}
		if kind == ast.QuantifiedEvery && !ok {
			return false, nil
		}
	}
	return kind == ast.QuantifiedEvery, nil
}

// --- instance of / castable / cast / treat ---

// evalInstanceOf tests the operand's dynamic sequence type without
// atomizing it first: a kind test (element(), text(), ...) needs to see
// node identity, so only xpvalue.AtomizeValues-style callers atomize.
func evalInstanceOf(ctx *evalctx.Context, e *ast.InstanceOfExpr) (xpvalue.Sequence, error) {
	seq, err := Eval(e.Operand, ctx)
	if err != nil {
		return nil, err
	}
	items := xpvalue.ToItemTypeSlice(seq)
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(xstype.InstanceOf(items, e.Type)))), nil
}

func evalCastable(ctx *evalctx.Context, e *ast.CastableExpr) (xpvalue.Sequence, error) {
	seq, err := Eval(e.Operand, ctx)
	if err != nil {
		return nil, err
	}
	atomized := xpvalue.Atomize(seq)
	ok := castableSequence(atomized, e.Type, e.Optional)
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(ok))), nil
}

func castableSequence(atomized xpvalue.Sequence, target *xstype.AtomicType, optional bool) bool {
	if len(atomized) == 0 {
		return optional
	}
	if len(atomized) > 1 {
		return false
	}
	return xpvalue.Castable(atomized[0].Value, target)
}

func evalCast(ctx *evalctx.Context, e *ast.CastExpr) (xpvalue.Sequence, error) {
	seq, err := Eval(e.Operand, ctx)
	if err != nil {
		return nil, err
	}
	atomized := xpvalue.Atomize(seq)
	if len(atomized) == 0 {
		if e.Optional {
			return xpvalue.Empty, nil
		}
		return nil, xperror.New(xperror.XPTY0004, "cannot cast an empty sequence to %s", e.Type)
	}
	if len(atomized) > 1 {
		return nil, xperror.New(xperror.XPTY0004, "cannot cast a sequence of more than one item to %s", e.Type)
	}
	v, err := xpvalue.Cast(atomized[0].Value, e.Type)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(v)), nil
}

func evalTreat(ctx *evalctx.Context, e *ast.TreatExpr) (xpvalue.Sequence, error) {
	seq, err := Eval(e.Operand, ctx)
	if err != nil {
		return nil, err
	}
	items := xpvalue.ToItemTypeSlice(seq)
	result := xstype.MatchSequence(items, e.Type)
	if !result.Matches {
		return nil, xperror.New(xperror.XPDY0050, "treat as %s failed: %s", e.Type, result.Reason)
	}
	return seq, nil
}

// --- Arithmetic, comparisons, logical operators ---

func evalBinary(ctx *evalctx.Context, e *ast.BinaryExpr) (xpvalue.Sequence, error) {
	switch e.Op {
	case ast.OpAnd, ast.OpOr:
		return evalLogical(ctx, e)
	}

	leftSeq, err := Eval(e.Left, ctx)
	if err != nil {
		return nil, err
	}
	rightSeq, err := Eval(e.Right, ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case isArithmetic(e.Op):
		return evalArithmetic(e.Op, leftSeq, rightSeq)
	case isValueComparison(e.Op):
		return evalValueComparison(ctx, e.Op, leftSeq, rightSeq)
	default:
		return evalGeneralComparison(ctx, e.Op, leftSeq, rightSeq)
	}
}

func evalLogical(ctx *evalctx.Context, e *ast.BinaryExpr) (xpvalue.Sequence, error) {
	leftSeq, err := Eval(e.Left, ctx)
	if err != nil {
		return nil, err
	}
	left, err := xpvalue.EffectiveBooleanValue(leftSeq)
	if err != nil {
		return nil, err
	}
	// Short-circuit: "and"/"or" only evaluate the right operand when its
	// value could change the result.
	if e.Op == ast.OpAnd && !left {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(false))), nil
	}
	if e.Op == ast.OpOr && left {
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(true))), nil
	}
	rightSeq, err := Eval(e.Right, ctx)
	if err != nil {
		return nil, err
	}
	right, err := xpvalue.EffectiveBooleanValue(rightSeq)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(right))), nil
}

func isArithmetic(op ast.BinOp) bool {
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpIDiv, ast.OpMod:
		return true
	default:
		return false
	}
}

func isValueComparison(op ast.BinOp) bool {
	switch op {
	case ast.OpValueEq, ast.OpValueNe, ast.OpValueLt, ast.OpValueLe, ast.OpValueGt, ast.OpValueGe:
		return true
	default:
		return false
	}
}

func atomizeSingleton(seq xpvalue.Sequence) (xpvalue.Value, bool, error) {
	atomized := xpvalue.Atomize(seq)
	if len(atomized) == 0 {
		return xpvalue.Value{}, false, nil
	}
	if len(atomized) > 1 {
		return xpvalue.Value{}, false, xperror.New(xperror.XPTY0004, "expected a single value, got a sequence of %d items", len(atomized))
	}
	return atomized[0].Value, true, nil
}

func evalArithmetic(op ast.BinOp, leftSeq, rightSeq xpvalue.Sequence) (xpvalue.Sequence, error) {
	lv, lok, err := atomizeSingleton(leftSeq)
	if err != nil {
		return nil, err
	}
	if !lok {
		return xpvalue.Empty, nil
	}
	rv, rok, err := atomizeSingleton(rightSeq)
	if err != nil {
		return nil, err
	}
	if !rok {
		return xpvalue.Empty, nil
	}

	av, bv, common, err := xpvalue.PromoteNumericPair(lv, rv)
	if err != nil {
		return nil, err
	}
	floating := common.Primitive() == xstype.XDouble || common.Primitive() == xstype.XFloat

	switch op {
	case ast.OpAdd:
		return numResult(av+bv, common), nil
	case ast.OpSub:
		return numResult(av-bv, common), nil
	case ast.OpMul:
		return numResult(av*bv, common), nil
	case ast.OpDiv:
		if bv == 0 && !floating {
			return nil, xperror.New(xperror.FOAR0001, "division by zero")
		}
		resultType := common
		if common.IsDerivedFrom(xstype.XInteger) {
			resultType = xstype.XDecimal
		}
		return numResult(av/bv, resultType), nil
	case ast.OpIDiv:
		if bv == 0 {
			return nil, xperror.New(xperror.FOAR0001, "integer division by zero")
		}
		if math.IsNaN(av) || math.IsNaN(bv) || math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return nil, xperror.New(xperror.FOAR0001, "idiv operand is not a finite number")
		}
		return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewInteger(int64(math.Trunc(av / bv))))), nil
	case ast.OpMod:
		if bv == 0 && !floating {
			return nil, xperror.New(xperror.FOAR0001, "modulo by zero")
		}
		return numResult(math.Mod(av, bv), common), nil
	default:
		return nil, xperror.New(xperror.XPST0001, "unsupported arithmetic operator %s", op)
	}
}

func numResult(n float64, t *xstype.AtomicType) xpvalue.Sequence {
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.Value{Type: t, Num: n}))
}

func evalValueComparison(ctx *evalctx.Context, op ast.BinOp, leftSeq, rightSeq xpvalue.Sequence) (xpvalue.Sequence, error) {
	lv, lok, err := atomizeSingleton(leftSeq)
	if err != nil {
		return nil, err
	}
	rv, rok, err := atomizeSingleton(rightSeq)
	if err != nil {
		return nil, err
	}
	if !lok || !rok {
		return xpvalue.Empty, nil
	}
	if lv.Type == xstype.UntypedAtomic || rv.Type == xstype.UntypedAtomic {
		ctx.Warnings.Emit(warning.UntypedAtomicCoercion, "value comparison "+op.String(), "")
	}
	pl, pr := promoteUntyped(lv, xstype.XString), promoteUntyped(rv, xstype.XString)
	if pl.Type.IsNumeric() != pr.Type.IsNumeric() || (pl.Type == xstype.XBoolean) != (pr.Type == xstype.XBoolean) {
		return nil, xperror.New(xperror.XPTY0004, "%s and %s are not comparable", pl.Type, pr.Type)
	}
	result, err := compareAtomicValues(ctx, pl, pr, op)
	if err != nil {
		return nil, err
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(result))), nil
}

func evalGeneralComparison(ctx *evalctx.Context, op ast.BinOp, leftSeq, rightSeq xpvalue.Sequence) (xpvalue.Sequence, error) {
	left := xpvalue.AtomizeValues(leftSeq)
	right := xpvalue.AtomizeValues(rightSeq)
	for _, a := range left {
		for _, b := range right {
			ok, err := generalCompareValue(ctx, a, b, op)
			if err != nil {
				return nil, err
			}
			if ok {
				return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(true))), nil
			}
		}
	}
	return xpvalue.Singleton(xpvalue.ValueItem(xpvalue.NewBoolean(false))), nil
}

// generalCompareValue implements the general-comparison untyped-atomic
// promotion rules: in XPath 1.0 compatibility mode, a comparison
// involving a numeric operand coerces both sides to number (the 1.0
// behavior this module's compatibility flag exists to preserve, per the
// Open Question decision that 1.0 compat governs general comparisons
// only); otherwise an xs:untypedAtomic operand promotes to xs:double
// when the other operand is numeric, to the other operand's type
// otherwise (xs:string if both sides are untyped).
func generalCompareValue(ctx *evalctx.Context, a, b xpvalue.Value, op ast.BinOp) (bool, error) {
	if ctx.XPath10Compat && (a.Type.IsNumeric() || b.Type.IsNumeric()) {
		ctx.Warnings.Emit(warning.XPath10CompatCoercion, "general comparison "+op.String(), "")
		an, err := xpvalue.ToArithmeticNumeric(a)
		if err != nil {
			return false, err
		}
		bn, err := xpvalue.ToArithmeticNumeric(b)
		if err != nil {
			return false, err
		}
		return compareNumeric(an.Num, bn.Num, op), nil
	}

	pa, pb := a, b
	switch {
	case a.Type == xstype.UntypedAtomic && b.Type != xstype.UntypedAtomic:
		ctx.Warnings.Emit(warning.UntypedAtomicCoercion, "general comparison "+op.String(), "")
		casted, err := xpvalue.Cast(a, untypedTarget(b.Type))
		if err == nil {
			pa = casted
		}
	case b.Type == xstype.UntypedAtomic && a.Type != xstype.UntypedAtomic:
		ctx.Warnings.Emit(warning.UntypedAtomicCoercion, "general comparison "+op.String(), "")
		casted, err := xpvalue.Cast(b, untypedTarget(a.Type))
		if err == nil {
			pb = casted
		}
	}
	pa = promoteUntyped(pa, xstype.XString)
	pb = promoteUntyped(pb, xstype.XString)
	return compareAtomicValues(ctx, pa, pb, op)
}

// untypedTarget is the type an xs:untypedAtomic operand is cast to when
// compared against an operand of type other: xs:double for any numeric
// type, other itself for everything else.
func untypedTarget(other *xstype.AtomicType) *xstype.AtomicType {
	if other.IsNumeric() {
		return xstype.XDouble
	}
	return other
}

// promoteUntyped casts an xs:untypedAtomic operand to target, used by
// value comparison (which always promotes to xs:string) and as the
// both-sides-untyped fallback for general comparison.
func promoteUntyped(v xpvalue.Value, target *xstype.AtomicType) xpvalue.Value {
	if v.Type != xstype.UntypedAtomic {
		return v
	}
	casted, err := xpvalue.Cast(v, target)
	if err != nil {
		return v
	}
	return casted
}

func compareAtomicValues(ctx *evalctx.Context, a, b xpvalue.Value, op ast.BinOp) (bool, error) {
	switch {
	case a.Type.IsNumeric() && b.Type.IsNumeric():
		av, bv, _, err := xpvalue.PromoteNumericPair(a, b)
		if err != nil {
			return false, err
		}
		return compareNumeric(av, bv, op), nil
	case a.Type == xstype.XBoolean && b.Type == xstype.XBoolean:
		return compareBool(a.Bool, b.Bool, op), nil
	default:
		as, errA := xpvalue.ToComparisonString(a)
		bs, errB := xpvalue.ToComparisonString(b)
		if errA != nil || errB != nil {
			return false, xperror.New(xperror.XPTY0004, "%s and %s are not comparable", a.Type, b.Type)
		}
		return compareString(ctx, as, bs, op)
	}
}

func compareNumeric(a, b float64, op ast.BinOp) bool {
	switch op {
	case ast.OpGeneralEq, ast.OpValueEq:
		return a == b
	case ast.OpGeneralNe, ast.OpValueNe:
		return a != b
	case ast.OpGeneralLt, ast.OpValueLt:
		return a < b
	case ast.OpGeneralLe, ast.OpValueLe:
		return a <= b
	case ast.OpGeneralGt, ast.OpValueGt:
		return a > b
	case ast.OpGeneralGe, ast.OpValueGe:
		return a >= b
	default:
		return false
	}
}

func compareBool(a, b bool, op ast.BinOp) bool {
	toInt := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	return compareNumeric(float64(toInt(a)), float64(toInt(b)), op)
}

func compareString(ctx *evalctx.Context, a, b string, op ast.BinOp) (bool, error) {
	if op == ast.OpGeneralEq || op == ast.OpValueEq {
		return a == b, nil
	}
	if op == ast.OpGeneralNe || op == ast.OpValueNe {
		return a != b, nil
	}
	coll, err := ctx.Static.Collation(ctx.DefaultCollation)
	if err != nil {
		return false, err
	}
	cmp := coll.CompareString(a, b)
	switch op {
	case ast.OpGeneralLt, ast.OpValueLt:
		return cmp < 0, nil
	case ast.OpGeneralLe, ast.OpValueLe:
		return cmp <= 0, nil
	case ast.OpGeneralGt, ast.OpValueGt:
		return cmp > 0, nil
	case ast.OpGeneralGe, ast.OpValueGe:
		return cmp >= 0, nil
	default:
		return false, xperror.New(xperror.XPST0001, "unsupported comparison operator %s", op)
	}
}

// --- Function calls ---

func evalFunctionCall(ctx *evalctx.Context, e *ast.FunctionCall) (xpvalue.Sequence, error) {
	args := make([]xpvalue.Sequence, len(e.Args))
	for i, a := range e.Args {
		seq, err := Eval(a, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = seq
	}

	if fn, ok := ctx.Function(e.Namespace, e.Local); ok {
		return fn(ctx, args)
	}
	if fn, ok := functions.Lookup(e.Namespace, e.Local); ok {
		return fn(ctx, args)
	}
	return nil, xperror.New(xperror.XPST0017, "function %q in namespace %q is not bound", e.Local, e.Namespace)
}
