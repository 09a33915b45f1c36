package node

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xpath/xstype"
)

func TestParseAndChildren(t *testing.T) {
	root, err := Parse([]byte(`<r><a>1</a><a>2</a><a>3</a></r>`))
	require.NoError(t, err)
	require.Equal(t, xstype.Document, root.Kind())
	require.Len(t, root.Children(), 1)

	r := root.Elements[0]
	require.Equal(t, "r", r.StartElement.Name.Local)
	require.Len(t, r.Elements, 3)
	require.Equal(t, "123", r.StringValue())
}

func TestDocumentOrderComparison(t *testing.T) {
	root, err := Parse([]byte(`<r><a/><b/></r>`))
	require.NoError(t, err)
	r := root.Elements[0]
	a, b := r.Elements[0], r.Elements[1]
	require.Equal(t, -1, a.ComparePosition(b))
	require.Equal(t, 1, b.ComparePosition(a))
	require.Equal(t, 0, a.ComparePosition(a))
}

func TestSiblingNavigation(t *testing.T) {
	root, err := Parse([]byte(`<r><a/><b/><c/></r>`))
	require.NoError(t, err)
	r := root.Elements[0]
	b := r.Elements[1]
	require.Equal(t, "a", asElement(t, b.PreviousSibling()).StartElement.Name.Local)
	require.Equal(t, "c", asElement(t, b.NextSibling()).StartElement.Name.Local)
}

func asElement(t *testing.T, n Node) *Element {
	t.Helper()
	el, ok := n.(*Element)
	require.True(t, ok)
	return el
}

func TestAttributes(t *testing.T) {
	root, err := Parse([]byte(`<r id="5" class="x"/>`))
	require.NoError(t, err)
	r := root.Elements[0]
	v, ok := r.GetAttribute("id")
	require.True(t, ok)
	require.Equal(t, "5", v)
	require.Len(t, r.Attributes(), 2)
}

func TestUnionDedupeAndSort(t *testing.T) {
	root, err := Parse([]byte(`<r><a/><b/><c/></r>`))
	require.NoError(t, err)
	r := root.Elements[0]
	a, b, c := Node(r.Elements[0]), Node(r.Elements[1]), Node(r.Elements[2])

	union := Union([]Node{c, a}, []Node{b, a})
	require.Len(t, union, 3)
	require.True(t, union[0].ComparePosition(union[1]) < 0)
	require.True(t, union[1].ComparePosition(union[2]) < 0)
}

func TestParseHTMLAdapter(t *testing.T) {
	h, err := ParseHTML(strings.NewReader(`<html><body><p>hello</p></body></html>`))
	require.NoError(t, err)
	require.Equal(t, xstype.Document, h.Kind())

	var findP func(n Node) Node
	findP = func(n Node) Node {
		if ns, local := n.Name(); local == "p" {
			_ = ns
			return n
		}
		for _, c := range n.Children() {
			if found := findP(c); found != nil {
				return found
			}
		}
		return nil
	}
	p := findP(h)
	require.NotNil(t, p)
	require.Equal(t, "hello", p.StringValue())
}
