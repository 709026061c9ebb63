// Package mathml provides a small, typed XML tree for building and
// serializing Content-MathML documents: a Root/Declaration/Element/
// Text/Comment node model with ordered attributes and children,
// namespace declarations, and an indented writer. It performs no
// attribute-value escaping; callers are expected to pre-escape any
// value that needs it.
package mathml

import (
	"io"
	"strings"
)

// NodeType is the tag of an XML tree node.
type NodeType int

const (
	// Root is the invisible document root; only its children are
	// rendered.
	Root NodeType = iota
	// Declaration renders as "<?name?>".
	Declaration
	// Element renders as a tag, self-closing when childless.
	Element
	// Text renders its Name as a line of text content.
	Text
	// Comment renders as "<!-- name -->".
	Comment
)

// Attribute is a single XML attribute, optionally namespace-prefixed.
type Attribute struct {
	Name   string
	Value  string
	Prefix string
}

// Node is one node of the tree. Children belong to exactly one parent:
// there is no sharing and no cycle, so the tree can be walked and freed
// like any other Go value tree.
type Node struct {
	Type     NodeType
	Name     string // tag name, text payload, or comment payload
	Prefix   string // namespace prefix, if any
	Attrs    []Attribute
	Children []*Node
}

// New creates a detached node of the given type, name, and (possibly
// empty) namespace prefix.
func New(t NodeType, name string, prefix ...string) *Node {
	n := &Node{Type: t, Name: name}
	if len(prefix) > 0 {
		n.Prefix = prefix[0]
	}
	return n
}

// NewElement is a convenience for New(Element, name).
func NewElement(name string) *Node {
	return New(Element, name)
}

// AppendChild appends child to n's children, preserving order, and
// returns child so calls can be chained into a build sequence.
func (n *Node) AppendChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// AddAttribute adds an attribute, optionally namespace-prefixed, in
// insertion order.
func (n *Node) AddAttribute(name, value string, prefix ...string) *Node {
	a := Attribute{Name: name, Value: value}
	if len(prefix) > 0 {
		a.Prefix = prefix[0]
	}
	n.Attrs = append(n.Attrs, a)
	return n
}

// DeclareNamespace adds a namespace declaration attribute: "xmlns" for
// the default namespace (empty prefix), or "xmlns:<prefix>" otherwise.
func (n *Node) DeclareNamespace(prefix, uri string) *Node {
	key := "xmlns"
	if prefix != "" {
		key = "xmlns:" + prefix
	}
	n.Attrs = append(n.Attrs, Attribute{Name: key, Value: uri})
	return n
}

// qualifiedName returns the node's tag name, namespace-qualified if it
// has a prefix.
func (n *Node) qualifiedName() string {
	if n.Prefix == "" {
		return n.Name
	}
	return n.Prefix + ":" + n.Name
}

// qualifiedName returns an attribute's name, namespace-qualified if
// it has a prefix.
func (a Attribute) qualifiedName() string {
	if a.Prefix == "" {
		return a.Name
	}
	return a.Prefix + ":" + a.Name
}

// WriteTo serializes n (and its descendants) to w, two-space indented,
// one node per line, satisfying io.WriterTo. The root node prints only
// its children.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	ww := &errWriter{w: cw}
	writeNode(ww, n, 0)
	return cw.n, ww.err
}

// Render serializes n to a byte slice.
func Render(n *Node) ([]byte, error) {
	var b strings.Builder
	if _, err := n.WriteTo(&b); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// RenderString serializes n to a string, for call sites that would
// otherwise immediately convert Render's result back with string(...).
func RenderString(n *Node) (string, error) {
	var b strings.Builder
	if _, err := n.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// countingWriter tracks bytes written, for WriteTo's io.WriterTo
// contract.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func writeNode(w *errWriter, n *Node, depth int) {
	indent := indentOf(depth)

	switch n.Type {
	case Root:
		for _, c := range n.Children {
			writeNode(w, c, depth)
		}
	case Declaration:
		w.writeString(indent)
		w.writeString("<?")
		w.writeString(n.Name)
		w.writeString("?>\n")
	case Element:
		w.writeString(indent)
		w.writeString("<")
		w.writeString(n.qualifiedName())
		for _, a := range n.Attrs {
			w.writeString(" ")
			w.writeString(a.qualifiedName())
			w.writeString(`="`)
			w.writeString(a.Value)
			w.writeString(`"`)
		}
		if len(n.Children) == 0 {
			w.writeString(" />\n")
			return
		}
		w.writeString(">\n")
		for _, c := range n.Children {
			writeNode(w, c, depth+1)
		}
		w.writeString(indent)
		w.writeString("</")
		w.writeString(n.qualifiedName())
		w.writeString(">\n")
	case Text:
		w.writeString(indent)
		w.writeString(n.Name)
		w.writeString("\n")
	case Comment:
		w.writeString(indent)
		w.writeString("<!-- ")
		w.writeString(n.Name)
		w.writeString(" -->\n")
	}
}

func indentOf(depth int) string {
	if depth == 0 {
		return ""
	}
	b := make([]byte, depth*2)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// errWriter lets writeNode ignore per-call error checks; the first
// error short-circuits every subsequent write.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}
