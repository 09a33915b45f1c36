package node

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/CognitoIQ/go-xpath/xstype"
)

// ParseHTML builds a Node tree from an HTML document using
// golang.org/x/net/html. It exists to conformance-test the Node interface against
// a tree with HTML's looser nesting and implicit-tag rules, independent
// of the encoding/xml-backed Element adapter.
func ParseHTML(r io.Reader) (Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	indices := map[*html.Node]int{}
	preorder := 0
	var assign func(*html.Node)
	assign = func(n *html.Node) {
		preorder++
		indices[n] = preorder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			assign(c)
		}
	}
	assign(root)
	return &htmlNode{n: root, indices: indices}, nil
}

// htmlNode adapts an *html.Node to the Node interface.
type htmlNode struct {
	n       *html.Node
	indices map[*html.Node]int
}

func wrap(n *html.Node, indices map[*html.Node]int) Node {
	if n == nil {
		return nil
	}
	return &htmlNode{n: n, indices: indices}
}

func (h *htmlNode) Kind() xstype.NodeKind {
	switch h.n.Type {
	case html.DocumentNode:
		return xstype.Document
	case html.ElementNode:
		return xstype.Element
	case html.TextNode:
		return xstype.Text
	case html.CommentNode:
		return xstype.Comment
	case html.DoctypeNode:
		return xstype.DocumentFragment
	default:
		return xstype.Text
	}
}

func (h *htmlNode) Name() (namespace, local string) {
	if h.n.Type != html.ElementNode {
		return "", ""
	}
	return h.n.Namespace, h.n.Data
}

func (h *htmlNode) TypedValue() (string, bool) { return "", false }

func (h *htmlNode) StringValue() string {
	if h.n.Type == html.TextNode || h.n.Type == html.CommentNode {
		return h.n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			} else if c.Type == html.ElementNode {
				walk(c)
			}
		}
	}
	walk(h.n)
	return b.String()
}

func (h *htmlNode) Target() string { return "" }

func (h *htmlNode) Parent() Node { return wrap(h.n.Parent, h.indices) }

func (h *htmlNode) Children() []Node {
	var out []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || c.Type == html.TextNode || c.Type == html.CommentNode {
			out = append(out, wrap(c, h.indices))
		}
	}
	return out
}

func (h *htmlNode) Attributes() []Node {
	var out []Node
	for _, a := range h.n.Attr {
		out = append(out, &htmlAttr{parent: h, attr: a})
	}
	return out
}

func (h *htmlNode) NextSibling() Node { return wrap(h.n.NextSibling, h.indices) }

func (h *htmlNode) PreviousSibling() Node { return wrap(h.n.PrevSibling, h.indices) }

func (h *htmlNode) GetAttribute(local string) (string, bool) {
	for _, a := range h.n.Attr {
		if a.Key == local {
			return a.Val, true
		}
	}
	return "", false
}

func (h *htmlNode) ComparePosition(other Node) int {
	o, ok := other.(*htmlNode)
	if !ok {
		return 0
	}
	ai, bi := h.indices[h.n], h.indices[o.n]
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}

// htmlAttr adapts one HTML attribute to the Node interface as an
// Attribute-kind node.
type htmlAttr struct {
	parent *htmlNode
	attr   html.Attribute
}

func (a *htmlAttr) Kind() xstype.NodeKind              { return xstype.Attribute }
func (a *htmlAttr) Name() (string, string)             { return a.attr.Namespace, a.attr.Key }
func (a *htmlAttr) TypedValue() (string, bool)         { return "", false }
func (a *htmlAttr) StringValue() string                { return a.attr.Val }
func (a *htmlAttr) Target() string                     { return "" }
func (a *htmlAttr) Parent() Node                       { return a.parent }
func (a *htmlAttr) Children() []Node                   { return nil }
func (a *htmlAttr) Attributes() []Node                 { return nil }
func (a *htmlAttr) NextSibling() Node                  { return nil }
func (a *htmlAttr) PreviousSibling() Node              { return nil }
func (a *htmlAttr) GetAttribute(string) (string, bool) { return "", false }
func (a *htmlAttr) ComparePosition(other Node) int {
	o, ok := other.(*htmlAttr)
	if ok && o.attr == a.attr && o.parent.n == a.parent.n {
		return 0
	}
	return a.parent.ComparePosition(other)
}
