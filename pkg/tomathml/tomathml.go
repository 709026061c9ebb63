// Package tomathml is the public entry point for translating
// EquationText (CellML Text's equation syntax) into Content-MathML.
package tomathml

import (
	"fmt"
	"strings"

	"github.com/cellml-text/tomathml/internal/parser"
	"github.com/cellml-text/tomathml/pkg/mathml"
)

// Process parses text as one or more "lhs = rhs;" equations and
// returns the resulting Content-MathML document, two-space indented.
// If parsing fails, it instead returns a human-readable listing of the
// parser's diagnostics, one per line:
//
//	Messages from parser (<N>)
//	[<line>, <col>]: <message>
//
// domainAware selects CellML's domain-aware grammar (unit blocks on
// numbers, derivative orders, and so on); pass false to parse bare
// mathematical expressions without them.
func Process(text string, domainAware bool) string {
	p := parser.New()

	if p.Execute(text, true, domainAware) {
		rendered, err := mathml.RenderString(p.Document())
		if err == nil {
			return rendered
		}
		// Rendering a successfully parsed document should never fail;
		// if it does, report it the same way a parse failure is
		// reported rather than returning an empty string.
		return formatMessages([]parser.Message{{Kind: parser.Error, Text: err.Error()}})
	}

	return formatMessages(p.Messages())
}

// ProcessStatement classifies the first statement of text without
// building a document, for editor tooling that needs to know what
// kind of line it is looking at (a plain equation, one arm of a
// piecewise expression, or its "endsel"). It returns an error only
// when the statement can't be classified at all; in that case the
// parser's messages are joined into the error text.
func ProcessStatement(text string, domainAware bool) (parser.Statement, error) {
	p := parser.New()

	if p.Execute(text, false, domainAware) {
		return p.Statement(), nil
	}

	return parser.Unknown, fmt.Errorf("%s", formatMessages(p.Messages()))
}

func formatMessages(messages []parser.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Messages from parser (%d)\n", len(messages))
	for _, m := range messages {
		fmt.Fprintf(&b, "[%d, %d]: %s\n", m.Line, m.Column, m.Text)
	}
	return b.String()
}
