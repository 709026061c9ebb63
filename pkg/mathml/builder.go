package mathml

// NewDocument builds the standard document shell: a Root node holding
// an XML declaration and a "math" element in the MathML namespace,
// ready to receive equation nodes via Math.AppendChild.
func NewDocument() (doc *Node, math *Node) {
	doc = New(Root, "")
	decl := New(Declaration, `xml version="1.0" encoding="UTF-8"`)
	doc.AppendChild(decl)

	math = NewElement("math")
	math.DeclareNamespace("", "http://www.w3.org/1998/Math/MathML")
	doc.AppendChild(math)
	return doc, math
}

// Apply builds an <apply> element whose first child is the operator
// element named op (e.g. "eq", "plus", "diff"), matching the Content
// MathML shape every n-ary and binary construct in this tool emits.
func Apply(op string) *Node {
	n := NewElement("apply")
	n.AppendChild(NewElement(op))
	return n
}

// Ci builds a <ci>name</ci> identifier reference.
func Ci(name string) *Node {
	n := NewElement("ci")
	n.AppendChild(New(Text, name))
	return n
}

// Cn builds a <cn>value</cn> numeric literal, optionally decorated with
// CellML units via WithUnits.
func Cn(value string) *Node {
	n := NewElement("cn")
	n.AppendChild(New(Text, value))
	return n
}

// WithUnits decorates a <cn> (or other) element with a cellml:units
// attribute and the cellml namespace declaration, in the attribute
// order the original tool emits: the attribute first, the namespace
// declaration second.
func WithUnits(n *Node, units string) *Node {
	n.AddAttribute("units", units, "cellml")
	n.DeclareNamespace("cellml", "http://www.cellml.org/cellml/2.0#")
	return n
}

// Bvar builds a <bvar><ci>name</ci></bvar> bound-variable wrapper, used
// by derivative elements.
func Bvar(name string) *Node {
	n := NewElement("bvar")
	n.AppendChild(Ci(name))
	return n
}
