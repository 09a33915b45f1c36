package eval

import (
	"github.com/CognitoIQ/go-xpath/ast"
	"github.com/CognitoIQ/go-xpath/evalctx"
	"github.com/CognitoIQ/go-xpath/node"
	"github.com/CognitoIQ/go-xpath/warning"
	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xpvalue"
	"github.com/CognitoIQ/go-xpath/xstype"
)

// evalPath evaluates a location path: it resolves the starting node
// sequence (the root, an explicit Start expression, or the context
// item), then threads it through each step in turn.
func evalPath(ctx *evalctx.Context, e *ast.PathExpr) (xpvalue.Sequence, error) {
	var startNodes []node.Node

	switch {
	case e.Root:
		it, err := ctx.RequireItem()
		if err != nil {
			return nil, err
		}
		if !it.IsNode() {
			return nil, xperror.New(xperror.XPTY0020, "context item of an absolute path is not a node")
		}
		startNodes = []node.Node{documentRoot(it.Node)}
	case e.Start != nil:
		seq, err := Eval(e.Start, ctx)
		if err != nil {
			return nil, err
		}
		if len(e.Steps) == 0 {
			return seq, nil
		}
		startNodes, err = nodesOf(seq)
		if err != nil {
			return nil, err
		}
	default:
		it, err := ctx.RequireItem()
		if err != nil {
			return nil, err
		}
		if !it.IsNode() {
			return nil, xperror.New(xperror.XPTY0020, "context item of a relative path is not a node")
		}
		startNodes = []node.Node{it.Node}
	}

	nodes := startNodes
	var err error
	for _, step := range e.Steps {
		nodes, err = evalStep(ctx, nodes, step)
		if err != nil {
			return nil, err
		}
	}
	return nodesToSequence(nodes), nil
}

func documentRoot(n node.Node) node.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		n = p
	}
	return n
}

// evalStep runs one axis step over every node in ctxNodes, merging each
// context node's surviving candidates into a single document-order,
// duplicate-free result (the step-boundary invariant the next step, or
// the path's final result, depends on).
func evalStep(ctx *evalctx.Context, ctxNodes []node.Node, step ast.Step) ([]node.Node, error) {
	var all []node.Node
	size := len(ctxNodes)
	if step.Axis == ast.AxisNamespace {
		ctx.Warnings.Emit(warning.NamespaceAxisDeprecated, "path step", step.Axis.String()+"::"+nodeTestText(step.Test))
	}
	for i, cn := range ctxNodes {
		stepCtx := ctx.WithFocus(xpvalue.NodeItem(cn), i+1, size)
		candidates := axisNodes(step.Axis, cn)
		candidates, err := filterNodeTest(stepCtx, step.Axis, candidates, step.Test)
		if err != nil {
			return nil, err
		}
		filtered, err := applyPredicates(stepCtx, candidates, step.Predicates)
		if err != nil {
			return nil, err
		}
		all = append(all, filtered...)
	}
	return node.Sort(node.Dedupe(all)), nil
}

// nodeTestText renders a node test back to source-like text for
// warning messages; it is not used for any evaluation decision.
func nodeTestText(test ast.NodeTest) string {
	if test.Kind != nil {
		return "node()"
	}
	if test.NamePrefix == "" {
		return test.NameLocal
	}
	return test.NamePrefix + ":" + test.NameLocal
}

// principalNodeKind returns the node kind a bare name test matches on a
// given axis: attribute:: and namespace:: match attribute/namespace
// nodes, every other axis matches elements only.
func principalNodeKind(axis ast.Axis) xstype.NodeKind {
	switch axis {
	case ast.AxisAttribute:
		return xstype.Attribute
	case ast.AxisNamespace:
		return xstype.Namespace
	default:
		return xstype.Element
	}
}

func filterNodeTest(ctx *evalctx.Context, axis ast.Axis, candidates []node.Node, test ast.NodeTest) ([]node.Node, error) {
	var out []node.Node
	for _, n := range candidates {
		ok, err := nodeTestMatches(ctx, axis, n, test)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func nodeTestMatches(ctx *evalctx.Context, axis ast.Axis, n node.Node, test ast.NodeTest) (bool, error) {
	if test.Kind != nil {
		ns, local := n.Name()
		return test.Kind.Matches(n.Kind(), local, ns), nil
	}
	if n.Kind() != principalNodeKind(axis) {
		return false, nil
	}
	if test.NamePrefix == "*" && test.NameLocal == "*" {
		return true, nil
	}
	ns, local := n.Name()
	if test.NameLocal != "*" && test.NameLocal != local {
		return false, nil
	}
	wantNS, err := resolveNodeTestNamespace(ctx, test.NamePrefix)
	if err != nil {
		return false, err
	}
	if test.NamePrefix == "*" {
		return true, nil
	}
	return wantNS == ns, nil
}

// resolveNodeTestNamespace resolves a name test's raw prefix to a
// namespace URI: an explicit prefix resolves through the dynamic
// context's in-scope namespace bindings, an empty prefix falls back to
// the static context's default element namespace (the "*" wildcard
// prefix never reaches here as a real lookup).
func resolveNodeTestNamespace(ctx *evalctx.Context, prefix string) (string, error) {
	if prefix == "" {
		return ctx.Static.DefaultElementNamespace, nil
	}
	if prefix == "*" {
		return "", nil
	}
	uri, ok := ctx.ResolveNamespace(prefix)
	if !ok {
		return "", xperror.New(xperror.XPST0081, "namespace prefix %q has no in-scope binding", prefix)
	}
	return uri, nil
}

// applyPredicates filters candidates through each predicate in turn,
// renumbering position/size after every pass (later predicates see the
// survivors of earlier ones, not the original candidate list).
func applyPredicates(ctx *evalctx.Context, candidates []node.Node, preds []ast.Expr) ([]node.Node, error) {
	for _, pred := range preds {
		size := len(candidates)
		var next []node.Node
		for i, cand := range candidates {
			predCtx := ctx.WithFocus(xpvalue.NodeItem(cand), i+1, size)
			seq, err := Eval(pred, predCtx)
			if err != nil {
				return nil, err
			}
			ok, err := predicateTruth(seq, i+1)
			if err != nil {
				return nil, err
			}
			if ok {
				next = append(next, cand)
			}
		}
		candidates = next
	}
	return candidates, nil
}

// predicateTruth implements the numeric-predicate special case: a
// predicate whose value is a single numeric item tests context
// position equality rather than effective boolean value.
func predicateTruth(seq xpvalue.Sequence, position int) (bool, error) {
	if len(seq) == 1 && !seq[0].IsNode() && seq[0].Value.Type.IsNumeric() {
		return seq[0].Value.Num == float64(position), nil
	}
	return xpvalue.EffectiveBooleanValue(seq)
}

// evalFilter applies a predicate list to an arbitrary primary
// expression's result (not necessarily nodes), e.g. "(1, 2, 3)[. > 1]".
func evalFilter(ctx *evalctx.Context, e *ast.FilterExpr) (xpvalue.Sequence, error) {
	seq, err := Eval(e.Primary, ctx)
	if err != nil {
		return nil, err
	}
	for _, pred := range e.Predicates {
		size := len(seq)
		var next xpvalue.Sequence
		for i, it := range seq {
			predCtx := ctx.WithFocus(it, i+1, size)
			predSeq, err := Eval(pred, predCtx)
			if err != nil {
				return nil, err
			}
			ok, err := predicateTruth(predSeq, i+1)
			if err != nil {
				return nil, err
			}
			if ok {
				next = append(next, it)
			}
		}
		seq = next
	}
	return seq, nil
}
