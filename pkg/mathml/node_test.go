package mathml

import "testing"

func TestWriteToChildlessElementSelfCloses(t *testing.T) {
	n := NewElement("eq")
	got, err := RenderString(n)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	want := "<eq />\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteToTextChildOnOwnIndentedLine(t *testing.T) {
	n := Ci("a")
	got, err := RenderString(n)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	want := "<ci>\n  a\n</ci>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteToDocumentShell(t *testing.T) {
	doc, math := NewDocument()
	apply := Apply("eq")
	apply.AppendChild(Ci("a"))
	apply.AppendChild(Ci("b"))
	math.AppendChild(apply)

	got, err := RenderString(doc)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<math xmlns="http://www.w3.org/1998/Math/MathML">
  <apply>
    <eq />
    <ci>
      a
    </ci>
    <ci>
      b
    </ci>
  </apply>
</math>
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWithUnitsAttributeOrder(t *testing.T) {
	n := Cn("3")
	WithUnits(n, "dimensionless")
	got, err := RenderString(n)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	want := "<cn cellml:units=\"dimensionless\" xmlns:cellml=\"http://www.cellml.org/cellml/2.0#\">\n  3\n</cn>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteToCommentAndMultipleAttributes(t *testing.T) {
	n := NewElement("math")
	n.AddAttribute("xmlns", "http://www.w3.org/1998/Math/MathML")
	n.AddAttribute("id", "m1")
	n.AppendChild(New(Comment, "note"))

	got, err := RenderString(n)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	want := "<math xmlns=\"http://www.w3.org/1998/Math/MathML\" id=\"m1\">\n  <!-- note -->\n</math>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderReturnsBytes(t *testing.T) {
	n := NewElement("true")
	b, err := Render(n)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(b) != "<true />\n" {
		t.Errorf("got %q", string(b))
	}
}
