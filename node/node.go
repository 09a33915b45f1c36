// Package node defines the data-model adapter interface the evaluator
// consumes, plus two concrete implementations: an encoding/xml-backed
// tree, and a golang.org/x/net/html-backed adapter used to
// conformance-test the interface against a second, independently
// structured tree.
//
// The core never mutates a Node; all navigation is read-only.
package node // import "github.com/CognitoIQ/go-xpath/node"

import "github.com/CognitoIQ/go-xpath/xstype"

// Node is the tree-navigation interface a caller supplies to the
// evaluator. It is implemented by *Element (an encoding/xml-backed tree)
// and *htmlNode (a golang.org/x/net/html-backed tree) in this package;
// hosts may supply their own implementation over any tree shape.

type Node interface {
	// Kind reports the node's closed-enumeration kind.
	Kind() xstype.NodeKind
	// Name returns the node's namespace URI and local name. Text,
	// comment, and document nodes return "", "".
	Name() (namespace, local string)
	// TypedValue returns the node's declared-schema typed value, if the
	// adapter tracks one, and true. Adapters that do not carry schema
	// type information (the two in this package) always return "",
	// false; atomization then falls back to StringValue.
	TypedValue() (value string, ok bool)
	// StringValue is the concatenation of all descendant text node
	// content, in document order.
	StringValue() string
	// Target returns the target of a processing-instruction node, or ""
	// for any other kind.
	Target() string
	// Parent returns the node's parent, or nil for a document node or a
	// detached node.
	Parent() Node
	// Children returns the node's element/text/comment/PI children, in
	// document order. Never includes attribute or namespace nodes.
	Children() []Node
	// Attributes returns the node's attribute nodes (empty for
	// non-element kinds).
	Attributes() []Node
	// NextSibling and PreviousSibling navigate the parent's child list.
	NextSibling() Node
	PreviousSibling() Node
	// GetAttribute looks up an attribute by local name, searching any
	// namespace. ok is false if no such attribute exists.
	GetAttribute(local string) (value string, ok bool)
	// ComparePosition returns a signed integer consistent with document
	// order: negative if n precedes other, positive if it follows,
	// zero if they are the same node.
	ComparePosition(other Node) int
}
