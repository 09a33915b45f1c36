package node

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/CognitoIQ/go-xpath/xstype"
)

const recursionLimit = 3000

var errDeepXML = errors.New("node: xml document too deeply nested")

// Scope represents the xml namespace scope at a given position in the
// document. Prefix resolution is orthogonal to document-order
// navigation and the parser's name-test resolution needs exactly this.
type Scope struct {
	ns []xml.Name
}

// Resolve translates a QName (namespace-prefixed string) using this
// scope. If qname has no prefix, the default namespace is used.
func (s *Scope) Resolve(qname string) xml.Name {
	name, _ := s.ResolveNS(qname)
	return name
}

// ResolveNS is like Resolve, but also reports whether the prefix was
// found.
func (s *Scope) ResolveNS(qname string) (xml.Name, bool) {
	var prefix, local string
	parts := strings.SplitN(qname, ":", 2)
	if len(parts) == 2 {
		prefix, local = parts[0], parts[1]
	} else {
		prefix, local = "", parts[0]
	}
	for i := len(s.ns) - 1; i >= 0; i-- {
		if s.ns[i].Local == prefix {
			return xml.Name{Space: s.ns[i].Space, Local: local}, true
		}
	}
	return xml.Name{Space: prefix, Local: local}, false
}

func (s *Scope) pushNS(tag xml.StartElement) {
	var ns []xml.Name
	for _, attr := range tag.Attr {
		if attr.Name.Space == "xmlns" {
			ns = append(ns, xml.Name{Space: attr.Value, Local: attr.Name.Local})
		} else if attr.Name.Local == "xmlns" {
			ns = append(ns, xml.Name{Space: attr.Value, Local: ""})
		}
	}
	if len(ns) > 0 {
		s.ns = append(s.ns, ns...)
		s.ns = s.ns[:len(s.ns):len(s.ns)]
	}
}

// Element is a single element (or, for leaf-only synthesized nodes, text
// / comment / PI) in an XML document tree, implementing Node.
// Sub-elements and text share this same type, distinguished by kind.
type Element struct {
	xml.StartElement
	Scope
	// Content is never set by Parse and stays nil; the raw inner
	// content of an element is not recorded.
	Content []byte
	// Elements holds element, text, comment, and PI children in
	// document order. Named Elements rather than Children to leave the
	// Children name free for the Node interface method below.
	Elements []*Element
	Attrs    []*Element

	kind     xstype.NodeKind
	text     string
	piTarget string
	parent   *Element
	index    int // preorder index, assigned after a full parse
	root     *Element
}

// Parse builds a tree of Elements by reading an XML document with a
// single-pass xml.Decoder loop, tracking parent pointers, text/comment/PI
// children, and a preorder index for document-order comparisons.
func Parse(doc []byte) (*Element, error) {
	d := xml.NewDecoder(bytes.NewReader(doc))
	root := new(Element)
	root.kind = xstype.Document
	root.root = root

	var stack []*Element
	cur := root
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > recursionLimit {
				return nil, errDeepXML
			}
			el := &Element{StartElement: t.Copy(), kind: xstype.Element, parent: cur, root: root}
			el.Scope = cur.Scope
			el.pushNS(el.StartElement)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				el.Attrs = append(el.Attrs, &Element{
					StartElement: xml.StartElement{Name: a.Name},
					kind:         xstype.Attribute,
					text:         a.Value,
					parent:       el,
					root:         root,
				})
			}
			cur.Elements = append(cur.Elements, el)
			stack = append(stack, cur)
			cur = el
		case xml.EndElement:
			depth--
			if len(stack) == 0 {
				return nil, fmt.Errorf("node: unbalanced end element </%s>", t.Name.Local)
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case xml.CharData:
			text := string(t)
			if strings.TrimSpace(text) == "" {
				continue
			}
			cur.Elements = append(cur.Elements, &Element{kind: xstype.Text, text: text, parent: cur, root: root})
		case xml.Comment:
			cur.Elements = append(cur.Elements, &Element{kind: xstype.Comment, text: string(t), parent: cur, root: root})
		case xml.ProcInst:
			cur.Elements = append(cur.Elements, &Element{kind: xstype.ProcessingInstruction, piTarget: t.Target, text: string(t.Inst), parent: cur, root: root})
		}
	}
	assignIndex(root, 0)
	return root, nil
}

func assignIndex(el *Element, next int) int {
	el.index = next
	next++
	for _, attr := range el.Attrs {
		attr.index = next
		next++
	}
	for _, c := range el.Elements {
		next = assignIndex(c, next)
	}
	return next
}

// Kind implements Node.
func (el *Element) Kind() xstype.NodeKind { return el.kind }

// Name implements Node.
func (el *Element) Name() (namespace, local string) {
	switch el.kind {
	case xstype.Element, xstype.Attribute:
		return el.StartElement.Name.Space, el.StartElement.Name.Local
	default:
		return "", ""
	}
}

// TypedValue implements Node. The encoding/xml-backed tree never carries
// schema type information, so this always reports ok=false.
func (el *Element) TypedValue() (string, bool) { return "", false }

// StringValue implements Node: the concatenation of all descendant text,
// in document order.
func (el *Element) StringValue() string {
	switch el.kind {
	case xstype.Text, xstype.Comment:
		return el.text
	case xstype.ProcessingInstruction:
		return el.text
	case xstype.Attribute:
		return el.text
	}
	var b strings.Builder
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.Elements {
			switch c.kind {
			case xstype.Text:
				b.WriteString(c.text)
			case xstype.Element:
				walk(c)
			}
		}
	}
	walk(el)
	return b.String()
}

// Target implements Node.
func (el *Element) Target() string { return el.piTarget }

// Parent implements Node.
func (el *Element) Parent() Node {
	if el.parent == nil {
		return nil
	}
	return el.parent
}

// Children implements Node.
func (el *Element) Children() []Node {
	out := make([]Node, len(el.Elements))
	for i, c := range el.Elements {
		out[i] = c
	}
	return out
}

// Attributes implements Node.
func (el *Element) Attributes() []Node {
	out := make([]Node, len(el.Attrs))
	for i, a := range el.Attrs {
		out[i] = a
	}
	return out
}

func (el *Element) siblingList() []*Element {
	if el.parent == nil {
		return nil
	}
	if el.kind == xstype.Attribute {
		return el.parent.Attrs
	}
	return el.parent.Elements
}

// NextSibling implements Node.
func (el *Element) NextSibling() Node {
	sibs := el.siblingList()
	for i, s := range sibs {
		if s == el && i+1 < len(sibs) {
			return sibs[i+1]
		}
	}
	return nil
}

// PreviousSibling implements Node.
func (el *Element) PreviousSibling() Node {
	sibs := el.siblingList()
	for i, s := range sibs {
		if s == el && i > 0 {
			return sibs[i-1]
		}
	}
	return nil
}

// GetAttribute implements Node.
func (el *Element) GetAttribute(local string) (string, bool) {
	for _, a := range el.Attrs {
		if a.StartElement.Name.Local == local {
			return a.text, true
		}
	}
	return "", false
}

// Attr is a convenience lookup for callers that already have
// namespace+local in hand.
func (el *Element) Attr(space, local string) string {
	for _, a := range el.Attrs {
		if a.StartElement.Name.Local != local {
			continue
		}
		if space == "" || a.StartElement.Name.Space == space {
			return a.text
		}
	}
	return ""
}

// ComparePosition implements Node using the preorder index assigned at
// parse time.
func (el *Element) ComparePosition(other Node) int {
	o, ok := other.(*Element)
	if !ok || o.root != el.root {
		return 0
	}
	switch {
	case el.index < o.index:
		return -1
	case el.index > o.index:
		return 1
	default:
		return 0
	}
}

// Search finds descendant elements by namespace and local name, exactly
// matching on local name and, if space is non-empty, namespace too.
func (el *Element) Search(space, local string) []*Element {
	var results []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.Elements {
			if c.kind == xstype.Element && c.StartElement.Name.Local == local &&
				(space == "" || c.StartElement.Name.Space == space) {
				results = append(results, c)
			}
			walk(c)
		}
	}
	walk(el)
	return results
}
