package eval

import (
	"github.com/CognitoIQ/go-xpath/ast"
	"github.com/CognitoIQ/go-xpath/node"
)

// axisNodes returns the candidate nodes an axis step produces from a
// single context node, in the axis's own traversal order. Forward axes
// produce nodes in document order; the reverse axes (parent, ancestor,
// ancestor-or-self, preceding, preceding-sibling) produce them nearest
// node first, which is also the order predicate positions are numbered
// in for those axes. The caller is responsible for restoring document
// order across the whole step's result (see evalStep in path.go).
func axisNodes(axis ast.Axis, ctxNode node.Node) []node.Node {
	switch axis {
	case ast.AxisChild:
		return append([]node.Node{}, ctxNode.Children()...)
	case ast.AxisDescendant:
		return descendants(ctxNode, false)
	case ast.AxisDescendantOrSelf:
		return descendants(ctxNode, true)
	case ast.AxisParent:
		if p := ctxNode.Parent(); p != nil {
			return []node.Node{p}
		}
		return nil
	case ast.AxisAncestor:
		return ancestors(ctxNode, false)
	case ast.AxisAncestorOrSelf:
		return ancestors(ctxNode, true)
	case ast.AxisFollowing:
		return following(ctxNode)
	case ast.AxisFollowingSibling:
		return siblings(ctxNode, true)
	case ast.AxisPreceding:
		return preceding(ctxNode)
	case ast.AxisPrecedingSibling:
		return siblings(ctxNode, false)
	case ast.AxisAttribute:
		return append([]node.Node{}, ctxNode.Attributes()...)
	case ast.AxisSelf:
		return []node.Node{ctxNode}
	case ast.AxisNamespace:
		// In-scope namespace nodes aren't tracked by the node.Node
		// adapter contract (Attributes only covers attribute nodes),
		// so this axis, deprecated since XPath 2.0, always produces
		// the empty sequence rather than a half-correct approximation.
		return nil
	default:
		return nil
	}
}

// descendants walks n's subtree depth-first, matching the order
// droyo's xmltree.SearchFunc walks an Element tree.
func descendants(n node.Node, includeSelf bool) []node.Node {
	var out []node.Node
	if includeSelf {
		out = append(out, n)
	}
	var walk func(node.Node)
	walk = func(cur node.Node) {
		for _, c := range cur.Children() {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}

// ancestors walks n's Parent chain outward, nearest ancestor first.
func ancestors(n node.Node, includeSelf bool) []node.Node {
	var out []node.Node
	if includeSelf {
		out = append(out, n)
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// siblings walks n's sibling chain in the given direction.
func siblings(n node.Node, forward bool) []node.Node {
	var out []node.Node
	if forward {
		for s := n.NextSibling(); s != nil; s = s.NextSibling() {
			out = append(out, s)
		}
	} else {
		for s := n.PreviousSibling(); s != nil; s = s.PreviousSibling() {
			out = append(out, s)
		}
	}
	return out
}

// following collects every node after n in document order, excluding
// n's own descendants, attributes, and namespace nodes: at each level
// of n's ancestor chain (starting at n itself), every following
// sibling and its full subtree is appended.
func following(n node.Node) []node.Node {
	var out []node.Node
	for cur := n; cur != nil; cur = cur.Parent() {
		for s := cur.NextSibling(); s != nil; s = s.NextSibling() {
			out = append(out, descendants(s, true)...)
		}
	}
	return out
}

// preceding collects every node before n in document order, excluding
// n's ancestors (which are never walked here, since only each
// ancestor's *previous* siblings are collected, never the ancestor
// itself), attributes, and namespace nodes. Each previous sibling's
// subtree is appended in reverse document order, so the whole result
// runs nearest node first.
func preceding(n node.Node) []node.Node {
	var out []node.Node
	for cur := n; cur != nil; cur = cur.Parent() {
		for s := cur.PreviousSibling(); s != nil; s = s.PreviousSibling() {
			sub := descendants(s, true)
			for i := len(sub) - 1; i >= 0; i-- {
				out = append(out, sub[i])
			}
		}
	}
	return out
}
