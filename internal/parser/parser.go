// Package parser implements the recursive-descent parser for
// EquationText: it drives an internal/scanner.Scanner, builds a
// Content-MathML subtree with pkg/mathml, and records diagnostics.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cellml-text/tomathml/internal/scanner"
	"github.com/cellml-text/tomathml/internal/token"
	"github.com/cellml-text/tomathml/pkg/mathml"
)

const mathmlNamespace = "http://www.w3.org/1998/Math/MathML"

// Statement classifies the first statement of a partial parse, for
// editor tooling that needs to know what kind of line it is looking
// at without running a full parse.
type Statement int

const (
	Unknown Statement = iota
	Normal
	PiecewiseSel
	PiecewiseCase
	PiecewiseOtherwise
	PiecewiseEndSel
)

func (s Statement) String() string {
	switch s {
	case Normal:
		return "Normal"
	case PiecewiseSel:
		return "PiecewiseSel"
	case PiecewiseCase:
		return "PiecewiseCase"
	case PiecewiseOtherwise:
		return "PiecewiseOtherwise"
	case PiecewiseEndSel:
		return "PiecewiseEndSel"
	default:
		return "Unknown"
	}
}

// Parser holds everything needed for one parse: the scanner it drives,
// the document it builds, accumulated messages, and the statement
// classification produced by a partial parse. A Parser is good for one
// Execute call; Execute reinitializes all of this state, so reusing a
// Parser for a second document is safe but pointless; just use a new
// one.
type Parser struct {
	domainAware bool
	scan        *scanner.Scanner

	doc         *mathml.Node
	mathElement *mathml.Node

	messages []Message

	statement Statement
}

// New returns a Parser ready to have Execute or Prepare called on it.
func New() *Parser {
	return &Parser{}
}

// Document returns the root of the XML tree built by a successful
// full parse.
func (p *Parser) Document() *mathml.Node {
	return p.doc
}

// Messages returns the diagnostics accumulated by the last Execute
// call, in source order.
func (p *Parser) Messages() []Message {
	return p.messages
}

// Statement returns the classification produced by a partial parse.
func (p *Parser) Statement() Statement {
	return p.statement
}

// DomainAware reports whether the last Execute call ran in CellML
// domain-aware mode.
func (p *Parser) DomainAware() bool {
	return p.domainAware
}

// Prepare gets the parser ready to parse a full model definition. The
// full model grammar (component/units/variable definitions) is not
// implemented, so this is initialization only; it always succeeds.
func (p *Parser) Prepare(text string) bool {
	p.initialize(text, true)
	return true
}

var fullParseLeadTokens = []token.Kind{token.IdentifierOrCmetaId, token.Ode}
var partialParseLeadTokens = []token.Kind{
	token.IdentifierOrCmetaId, token.Ode,
	token.Case, token.Otherwise, token.EndSel,
}

// Execute parses text as one or more "lhs = rhs;" statements. In full
// mode it loops over statements until EOF, building the document
// returned by Document. In partial mode it classifies only the first
// statement (see Statement) and returns without building a tree.
func (p *Parser) Execute(text string, fullParsing, domainAware bool) bool {
	p.initialize(text, domainAware)

	if fullParsing {
		for p.scan.Token().Kind != token.Eof {
			if !p.expectKinds(p.mathElement, "An identifier or 'ode'", fullParseLeadTokens) {
				return false
			}
			if !p.parseMathematicalExpression(p.mathElement, true) {
				return false
			}

			p.scan.Next()
		}

		return true
	}

	if !p.expectKinds(p.doc, "An identifier, 'ode', 'case', 'otherwise' or 'endsel'", partialParseLeadTokens) {
		return false
	}

	switch p.scan.Token().Kind {
	case token.Case:
		p.statement = PiecewiseCase
		return true
	case token.Otherwise:
		p.statement = PiecewiseOtherwise
		return true
	case token.EndSel:
		p.statement = PiecewiseEndSel
		return true
	}

	return p.parseMathematicalExpression(p.doc, false)
}

func (p *Parser) initialize(text string, domainAware bool) {
	p.domainAware = domainAware

	p.doc = mathml.New(mathml.Root, "")
	p.doc.AppendChild(mathml.New(mathml.Declaration, `xml version="1.0" encoding="UTF-8"`))

	p.mathElement = mathml.NewElement("math")
	p.mathElement.DeclareNamespace("", mathmlNamespace)
	p.doc.AppendChild(p.mathElement)

	p.messages = nil
	p.statement = Unknown

	p.scan = scanner.New(text)
}

func (p *Parser) addUnexpectedTokenError(expected, found string) {
	tok := p.scan.Token()
	p.messages = append(p.messages, Message{
		Kind:   Error,
		Line:   tok.Line,
		Column: tok.Column,
		Text:   fmt.Sprintf("%s is expected, but %s was found instead.", expected, found),
	})
}

// expectKinds drains pending comments onto domNode, then checks the
// current token against kinds. A match surfaces any attached warning
// comment/overflow notice; a mismatch on an Invalid token promotes its
// carried diagnostic to an Error; any other mismatch records an
// unexpected-token error.
func (p *Parser) expectKinds(domNode *mathml.Node, expected string, kinds []token.Kind) bool {
	p.parseComments(domNode)

	tok := p.scan.Token()

	if token.Contains(kinds, tok.Kind) {
		if tok.Comment != "" {
			p.messages = append(p.messages, Message{
				Kind:   Warning,
				Line:   tok.Line,
				Column: tok.Column,
				Text:   tok.Comment,
			})
		}
		return true
	}

	if tok.Kind == token.Invalid {
		p.messages = append(p.messages, Message{
			Kind:   Error,
			Line:   tok.Line,
			Column: tok.Column,
			Text:   tok.Comment,
		})
		return false
	}

	found := tok.Lexeme
	if tok.Kind != token.Eof {
		found = fmt.Sprintf("'%s'", specialsSigil(found))
	}

	p.addUnexpectedTokenError(expected, found)
	return false
}

func (p *Parser) expectKind(domNode *mathml.Node, expected string, kind token.Kind) bool {
	return p.expectKinds(domNode, expected, []token.Kind{kind})
}

func (p *Parser) isKind(domNode *mathml.Node, kind token.Kind) bool {
	p.parseComments(domNode)
	return p.scan.Token().Kind == kind
}

func (p *Parser) strictlyPositiveIntegerNumberToken(domNode *mathml.Node) bool {
	sign := 0
	if p.isKind(domNode, token.Plus) {
		sign = 1
		p.scan.Next()
	} else if p.isKind(domNode, token.Minus) {
		sign = -1
		p.scan.Next()
	}

	const expected = "A strictly positive integer number"
	if !p.expectKind(domNode, expected, token.Number) {
		return false
	}

	lexeme := p.scan.Token().Lexeme
	n, err := strconv.Atoi(lexeme)
	if err != nil {
		n = 0
	}
	if sign == -1 {
		n = -n
	}

	if n <= 0 {
		found := lexeme
		if sign == 1 {
			found = "+" + found
		} else if sign == -1 {
			found = "-" + found
		}
		p.addUnexpectedTokenError(expected, fmt.Sprintf("'%s'", found))
		return false
	}

	return true
}

func (p *Parser) identifierOrSiUnitToken(domNode *mathml.Node) bool {
	return p.expectKinds(domNode, "An identifier or an SI unit (e.g. 'second')", identifierOrSiUnitTokens)
}

var identifierOrSiUnitTokens = append(token.RangeOf(token.FirstUnit, token.LastUnit), token.IdentifierOrCmetaId)

func processCommentString(comment string) string {
	return strings.ReplaceAll(comment, "--", "&#45;&#45;")
}

// parseComments drains any comment tokens sitting at the scanner's
// current position, attaching them to domNode (if non-nil) as XML
// comment nodes. Consecutive single-line comments on strictly
// consecutive source lines are coalesced into one comment node; a
// line-number gap flushes the accumulated block first. Multiline
// comments are discarded.
func (p *Parser) parseComments(domNode *mathml.Node) {
	prevLine := 0
	var acc strings.Builder

	flush := func() {
		text := acc.String()
		if text == "" {
			text = " "
		}
		if domNode != nil {
			domNode.AppendChild(mathml.New(mathml.Comment, text))
		}
	}

	for {
		tok := p.scan.Token()

		switch tok.Kind {
		case token.SingleLineComment:
			text := processCommentString(tok.Comment)
			switch {
			case prevLine == 0:
				acc.Reset()
				acc.WriteString(text)
			case tok.Line == prevLine+1:
				acc.WriteString("\n")
				acc.WriteString(text)
			default:
				flush()
				acc.Reset()
				acc.WriteString(text)
			}
			prevLine = tok.Line
		case token.MultilineComment:
			// Discarded.
		default:
			if prevLine != 0 {
				flush()
			}
			return
		}

		p.scan.Next()
	}
}

func specialsSigil(s string) string {
	switch s {
	case "\xef\xbf\xb9":
		return "IAA"
	case "\xef\xbf\xba":
		return "IAS"
	case "\xef\xbf\xbb":
		return "IAT"
	case "\xef\xbf\xbc":
		return "OBJ"
	}
	return s
}

func newDerivativeElement(f, x string) *mathml.Node {
	n := mathml.Apply("diff")
	n.AppendChild(mathml.Bvar(x))
	n.AppendChild(mathml.Ci(f))
	return n
}

func newDerivativeElementWithOrder(f, x, order string, domainAware bool) *mathml.Node {
	n := mathml.Apply("diff")

	bvar := mathml.NewElement("bvar")
	bvar.AppendChild(mathml.Ci(x))

	cn := mathml.NewElement("cn")
	cn.AppendChild(mathml.New(mathml.Text, order))
	if domainAware {
		mathml.WithUnits(cn, "dimensionless")
	}

	degree := mathml.NewElement("degree")
	degree.AppendChild(cn)
	bvar.AppendChild(degree)

	n.AppendChild(bvar)
	n.AppendChild(mathml.Ci(f))
	return n
}

func newNumberElement(number, unit string, domainAware bool) *mathml.Node {
	n := mathml.NewElement("cn")

	ePos := strings.IndexByte(strings.ToUpper(number), 'E')
	if ePos < 0 {
		n.AppendChild(mathml.New(mathml.Text, number))
	} else {
		n.AddAttribute("type", "e-notation")
		n.AppendChild(mathml.New(mathml.Text, number[:ePos]))
		n.AppendChild(mathml.NewElement("sep"))
		n.AppendChild(mathml.New(mathml.Text, number[ePos+1:]))
	}

	if domainAware {
		mathml.WithUnits(n, unit)
	}

	return n
}

func newMathematicalFunctionElement(kind token.Kind, args []*mathml.Node, domainAware bool) *mathml.Node {
	n := mathml.Apply(mathmlName(kind))

	if len(args) == 2 {
		switch kind {
		case token.Log:
			logbase := mathml.NewElement("logbase")
			logbase.AppendChild(args[1])
			n.AppendChild(logbase)
		case token.Root:
			degree := mathml.NewElement("degree")
			degree.AppendChild(args[1])
			n.AppendChild(degree)
		}
	}

	n.AppendChild(args[0])

	switch {
	case len(args) == 1:
		if kind == token.Sqr {
			n.AppendChild(newNumberElement("2", "dimensionless", domainAware))
		}
	case token.InRange(kind, token.FirstTwoOrMoreArgumentFunction, token.LastTwoOrMoreArgumentFunction):
		for _, arg := range args[1:] {
			n.AppendChild(arg)
		}
	case kind != token.Log && kind != token.Root:
		n.AppendChild(args[1])
	}

	return n
}

var mathmlNames = map[token.Kind]string{
	token.And: "and", token.Or: "or", token.Xor: "xor", token.Not: "not",

	token.Abs: "abs", token.Ceil: "ceiling", token.Exp: "exp", token.Fact: "factorial",
	token.Floor: "floor", token.Ln: "ln", token.Sqr: "power", token.Sqrt: "root",

	token.Min: "min", token.Max: "max", token.Gcd: "gcd", token.Lcm: "lcm",

	token.Sin: "sin", token.Cos: "cos", token.Tan: "tan",
	token.Sec: "sec", token.Csc: "csc", token.Cot: "cot",
	token.Sinh: "sinh", token.Cosh: "cosh", token.Tanh: "tanh",
	token.Sech: "sech", token.Csch: "csch", token.Coth: "coth",

	token.Asin: "arcsin", token.Acos: "arccos", token.Atan: "arctan",
	token.Asec: "arcsec", token.Acsc: "arccsc", token.Acot: "arccot",
	token.Asinh: "arcsinh", token.Acosh: "arccosh", token.Atanh: "arctanh",
	token.Asech: "arcsech", token.Acsch: "arccsch", token.Acoth: "arccoth",

	token.Log: "log", token.Pow: "power", token.Rem: "rem", token.Root: "root",

	token.True: "true", token.False: "false", token.Nan: "notanumber",
	token.Pi: "pi", token.Inf: "infinity", token.E: "exponentiale",

	token.EqEq: "eq", token.Neq: "neq",
	token.Lt: "lt", token.Leq: "leq", token.Gt: "gt", token.Geq: "geq",
	token.Plus: "plus", token.Minus: "minus", token.Times: "times", token.Divide: "divide",
}

// mathmlName maps a token kind to its Content-MathML element name.
// Kinds with no entry (there is no sensible MathML spelling for them,
// e.g. punctuation) map to "???", mirroring the original table's
// fallback.
func mathmlName(kind token.Kind) string {
	if name, ok := mathmlNames[kind]; ok {
		return name
	}
	return "???"
}

func (p *Parser) parseMathematicalExpression(domNode *mathml.Node, fullParsing bool) bool {
	tok := p.scan.Token()

	var lhs *mathml.Node
	switch tok.Kind {
	case token.IdentifierOrCmetaId:
		lhs = mathml.Ci(tok.Lexeme)
	case token.Ode:
		lhs = p.parseDerivativeIdentifier(domNode)
	}

	if lhs == nil {
		return false
	}

	p.scan.Next()
	if !p.expectKind(domNode, "'='", token.Eq) {
		return false
	}

	// A cmeta:id may appear here in full CellML Text; that hook is not
	// implemented (see DESIGN.md), so we just move past "=".
	p.scan.Next()

	if !fullParsing {
		if p.scan.Token().Kind == token.Sel {
			p.scan.Next()
			if p.isKind(nil, token.OpeningBracket) {
				p.statement = Normal
			} else {
				p.statement = PiecewiseSel
			}
		} else {
			p.statement = Normal
		}
		return true
	}

	var rhs *mathml.Node
	if p.scan.Token().Kind == token.Sel {
		snapshot := p.scan.Snapshot()
		p.scan.Next()
		selFunction := p.isKind(nil, token.OpeningBracket)
		p.scan.Restore(snapshot)

		if selFunction {
			rhs = p.parseNormalMathematicalExpression(domNode)
		} else {
			rhs = p.parsePiecewiseMathematicalExpression(domNode, true)
		}
	} else {
		rhs = p.parseNormalMathematicalExpression(domNode)
	}

	if rhs == nil {
		return false
	}

	if !p.expectKind(domNode, "';'", token.SemiColon) {
		return false
	}

	applyElement := mathml.Apply("eq")
	applyElement.AppendChild(lhs)
	applyElement.AppendChild(rhs)
	domNode.AppendChild(applyElement)

	return true
}

func (p *Parser) parseDerivativeIdentifier(domNode *mathml.Node) *mathml.Node {
	p.scan.Next()
	if !p.expectKind(domNode, "'('", token.OpeningBracket) {
		return nil
	}

	p.scan.Next()
	if !p.expectKind(domNode, "An identifier", token.IdentifierOrCmetaId) {
		return nil
	}
	f := p.scan.Token().Lexeme

	p.scan.Next()
	if !p.expectKind(domNode, "','", token.Comma) {
		return nil
	}

	p.scan.Next()
	if !p.expectKind(domNode, "An identifier", token.IdentifierOrCmetaId) {
		return nil
	}
	x := p.scan.Token().Lexeme

	p.scan.Next()
	if !p.expectKinds(domNode, "',' or ')'", []token.Kind{token.Comma, token.ClosingBracket}) {
		return nil
	}

	if p.scan.Token().Kind != token.Comma {
		return newDerivativeElement(f, x)
	}

	p.scan.Next()
	if !p.strictlyPositiveIntegerNumberToken(domNode) {
		return nil
	}
	order := p.scan.Token().Lexeme

	if p.domainAware {
		p.scan.Next()
		if !p.expectKind(domNode, "'{'", token.OpeningCurlyBracket) {
			return nil
		}
		p.scan.Next()
		if !p.expectKind(domNode, "'dimensionless'", token.Dimensionless) {
			return nil
		}
		p.scan.Next()
		if !p.expectKind(domNode, "'}'", token.ClosingCurlyBracket) {
			return nil
		}
	}

	p.scan.Next()
	if !p.expectKind(domNode, "')'", token.ClosingBracket) {
		return nil
	}

	return newDerivativeElementWithOrder(f, x, order, p.domainAware)
}

func (p *Parser) parseNumber(domNode *mathml.Node) *mathml.Node {
	number := p.scan.Token().Lexeme
	unit := ""

	if p.domainAware {
		p.scan.Next()
		if !p.expectKind(domNode, "'{'", token.OpeningCurlyBracket) {
			return nil
		}
		p.scan.Next()
		if !p.identifierOrSiUnitToken(domNode) {
			return nil
		}
		unit = p.scan.Token().Lexeme
		p.scan.Next()
		if !p.expectKind(domNode, "'}'", token.ClosingCurlyBracket) {
			return nil
		}
	}

	return newNumberElement(number, unit, p.domainAware)
}

func (p *Parser) parseMathematicalFunction(domNode *mathml.Node, oneArgument, twoArguments, moreArguments bool) *mathml.Node {
	kind := p.scan.Token().Kind

	p.scan.Next()
	if !p.expectKind(domNode, "'('", token.OpeningBracket) {
		return nil
	}

	p.scan.Next()
	arg := p.parseNormalMathematicalExpression(domNode)
	if arg == nil {
		return nil
	}
	args := []*mathml.Node{arg}

	if (oneArgument && twoArguments && p.isKind(domNode, token.Comma)) || (!oneArgument && twoArguments) {
		if !oneArgument && twoArguments {
			if !p.expectKind(domNode, "','", token.Comma) {
				return nil
			}
		}

		p.scan.Next()
		arg = p.parseNormalMathematicalExpression(domNode)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	for twoArguments && moreArguments && p.isKind(domNode, token.Comma) {
		p.scan.Next()
		arg = p.parseNormalMathematicalExpression(domNode)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	if !p.expectKind(domNode, "')'", token.ClosingBracket) {
		return nil
	}

	return newMathematicalFunctionElement(kind, args, p.domainAware)
}

func (p *Parser) parseParenthesizedMathematicalExpression(domNode *mathml.Node) *mathml.Node {
	p.scan.Next()

	res := p.parseNormalMathematicalExpression(domNode)
	if res == nil {
		return nil
	}

	if !p.expectKind(domNode, "')'", token.ClosingBracket) {
		return nil
	}

	return res
}

var naryOperators = []token.Kind{token.Plus, token.Times, token.And, token.Or, token.Xor}

// parseMathematicalExpressionElement parses "<operand> [<op> <operand>
// <op> <operand> ...]" where each operand comes from next, flattening
// runs of an identical n-ary operator (+, *, and, or, xor) into a
// single apply with more than two children instead of a left-leaning
// binary chain.
func (p *Parser) parseMathematicalExpressionElement(domNode *mathml.Node, kinds []token.Kind, next func(*mathml.Node) *mathml.Node) *mathml.Node {
	res := next(domNode)
	if res == nil {
		return nil
	}

	prevOperator := token.Unknown

	for {
		p.parseComments(domNode)

		crtOperator := p.scan.Token().Kind
		if !token.Contains(kinds, crtOperator) {
			return res
		}

		p.scan.Next()
		other := next(domNode)
		if other == nil {
			return nil
		}

		if crtOperator == prevOperator && token.Contains(naryOperators, crtOperator) {
			res.AppendChild(other)
		} else {
			applyElement := mathml.NewElement("apply")
			applyElement.AppendChild(mathml.NewElement(mathmlName(crtOperator)))
			applyElement.AppendChild(res)
			applyElement.AppendChild(other)
			res = applyElement
		}

		prevOperator = crtOperator
	}
}

func (p *Parser) parseNormalMathematicalExpression(domNode *mathml.Node) *mathml.Node {
	return p.parseMathematicalExpressionElement(domNode, []token.Kind{token.Or}, p.parseNormalMathematicalExpression2)
}

func (p *Parser) parseNormalMathematicalExpression2(domNode *mathml.Node) *mathml.Node {
	return p.parseMathematicalExpressionElement(domNode, []token.Kind{token.And}, p.parseNormalMathematicalExpression3)
}

func (p *Parser) parseNormalMathematicalExpression3(domNode *mathml.Node) *mathml.Node {
	return p.parseMathematicalExpressionElement(domNode, []token.Kind{token.Xor}, p.parseNormalMathematicalExpression4)
}

func (p *Parser) parseNormalMathematicalExpression4(domNode *mathml.Node) *mathml.Node {
	return p.parseMathematicalExpressionElement(domNode, []token.Kind{token.EqEq, token.Neq}, p.parseNormalMathematicalExpression5)
}

func (p *Parser) parseNormalMathematicalExpression5(domNode *mathml.Node) *mathml.Node {
	return p.parseMathematicalExpressionElement(domNode, []token.Kind{token.Lt, token.Gt, token.Leq, token.Geq}, p.parseNormalMathematicalExpression6)
}

func (p *Parser) parseNormalMathematicalExpression6(domNode *mathml.Node) *mathml.Node {
	return p.parseMathematicalExpressionElement(domNode, []token.Kind{token.Plus, token.Minus}, p.parseNormalMathematicalExpression7)
}

func (p *Parser) parseNormalMathematicalExpression7(domNode *mathml.Node) *mathml.Node {
	return p.parseMathematicalExpressionElement(domNode, []token.Kind{token.Times, token.Divide}, p.parseNormalMathematicalExpression8)
}

var unaryOperatorTokens = []token.Kind{token.Not, token.Plus, token.Minus}

func (p *Parser) parseNormalMathematicalExpression8(domNode *mathml.Node) *mathml.Node {
	p.parseComments(domNode)

	crtOperator := p.scan.Token().Kind
	if !token.Contains(unaryOperatorTokens, crtOperator) {
		return p.parseNormalMathematicalExpression9(domNode)
	}

	var operand *mathml.Node
	if crtOperator == token.Not {
		p.scan.Next()
		operand = p.parseNormalMathematicalExpression(domNode)
	} else {
		p.scan.Next()
		operand = p.parseNormalMathematicalExpression8(domNode)
	}

	if operand == nil {
		return nil
	}

	res := mathml.NewElement("apply")
	res.AppendChild(mathml.NewElement(mathmlName(crtOperator)))
	res.AppendChild(operand)
	return res
}

var mathematicalConstantTokens = token.RangeOf(token.FirstMathematicalConstant, token.LastMathematicalConstant)
var oneArgumentFunctionTokens = token.RangeOf(token.FirstOneArgumentFunction, token.LastOneArgumentFunction)
var oneOrTwoArgumentFunctionTokens = token.RangeOf(token.FirstOneOrTwoArgumentFunction, token.LastOneOrTwoArgumentFunction)
var twoArgumentFunctionTokens = token.RangeOf(token.FirstTwoArgumentFunction, token.LastTwoArgumentFunction)
var twoOrMoreArgumentFunctionTokens = token.RangeOf(token.FirstTwoOrMoreArgumentFunction, token.LastTwoOrMoreArgumentFunction)

func (p *Parser) parseNormalMathematicalExpression9(domNode *mathml.Node) *mathml.Node {
	tok := p.scan.Token()

	var res *mathml.Node
	switch {
	case tok.Kind == token.IdentifierOrCmetaId:
		res = mathml.Ci(tok.Lexeme)
	case tok.Kind == token.Ode:
		res = p.parseDerivativeIdentifier(domNode)
	case tok.Kind == token.Number:
		res = p.parseNumber(domNode)
	case token.Contains(mathematicalConstantTokens, tok.Kind):
		res = mathml.NewElement(mathmlName(tok.Kind))
	case token.Contains(oneArgumentFunctionTokens, tok.Kind):
		res = p.parseMathematicalFunction(domNode, true, false, false)
	case tok.Kind == token.Sel:
		res = p.parsePiecewiseMathematicalExpression(domNode, false)
	case token.Contains(oneOrTwoArgumentFunctionTokens, tok.Kind):
		res = p.parseMathematicalFunction(domNode, true, true, false)
	case token.Contains(twoArgumentFunctionTokens, tok.Kind):
		res = p.parseMathematicalFunction(domNode, false, true, false)
	case token.Contains(twoOrMoreArgumentFunctionTokens, tok.Kind):
		res = p.parseMathematicalFunction(domNode, false, true, true)
	case tok.Kind == token.OpeningBracket:
		res = p.parseParenthesizedMathematicalExpression(domNode)
	default:
		found := tok.Lexeme
		if tok.Kind != token.Eof {
			found = fmt.Sprintf("'%s'", found)
		}
		p.addUnexpectedTokenError("An identifier, 'ode', a number, a mathematical function, a mathematical constant or '('", found)
		return nil
	}

	if res == nil {
		return nil
	}

	p.scan.Next()
	return res
}

var caseOtherwiseTokens = []token.Kind{token.Case, token.Otherwise}
var openingBracketCaseOtherwiseTokens = []token.Kind{token.OpeningBracket, token.Case, token.Otherwise}
var commaClosingBracketTokens = []token.Kind{token.Comma, token.ClosingBracket}
var caseOtherwiseEndSelTokens = []token.Kind{token.Case, token.Otherwise, token.EndSel}

// parsePiecewiseMathematicalExpression parses either surface form of a
// piecewise expression: the sel() function form, or (when
// allowTopPiecewiseStatement is set) the bare sel...endsel statement
// form. Both emit the same <piecewise><piece>...</piece>
// <otherwise>...</otherwise></piecewise> shape.
func (p *Parser) parsePiecewiseMathematicalExpression(domNode *mathml.Node, allowTopPiecewiseStatement bool) *mathml.Node {
	p.scan.Next()

	selFunction := true
	if allowTopPiecewiseStatement {
		selFunction = p.isKind(domNode, token.OpeningBracket)
	} else if !p.expectKind(domNode, "'('", token.OpeningBracket) {
		return nil
	}

	piecewiseElement := mathml.NewElement("piecewise")
	hasOtherwise := false

	if selFunction {
		p.scan.Next()
		if !p.expectKinds(piecewiseElement, "'case' or 'otherwise'", caseOtherwiseTokens) {
			return nil
		}
	} else if !p.expectKinds(piecewiseElement, "'(', 'case' or 'otherwise'", openingBracketCaseOtherwiseTokens) {
		return nil
	}

	for {
		caseClause := p.scan.Token().Kind == token.Case
		var condition *mathml.Node

		if caseClause {
			p.scan.Next()
			condition = p.parseNormalMathematicalExpression(piecewiseElement)
			if condition == nil {
				return nil
			}
		} else if hasOtherwise {
			tok := p.scan.Token()
			p.messages = append(p.messages, Message{
				Kind:   Error,
				Line:   tok.Line,
				Column: tok.Column,
				Text:   "There can only be one 'otherwise' clause.",
			})
			return nil
		} else {
			hasOtherwise = true
			p.scan.Next()
		}

		if !p.expectKind(piecewiseElement, "':'", token.Colon) {
			return nil
		}

		p.scan.Next()
		expression := p.parseNormalMathematicalExpression(piecewiseElement)
		if expression == nil {
			return nil
		}

		if selFunction {
			if !p.expectKinds(piecewiseElement, "',' or ')'", commaClosingBracketTokens) {
				return nil
			}
		} else if !p.expectKind(piecewiseElement, "';'", token.SemiColon) {
			return nil
		}

		tag := "piece"
		if !caseClause {
			tag = "otherwise"
		}
		pieceOrOtherwise := mathml.NewElement(tag)
		pieceOrOtherwise.AppendChild(expression)
		if caseClause {
			pieceOrOtherwise.AppendChild(condition)
		}
		piecewiseElement.AppendChild(pieceOrOtherwise)

		if (selFunction && p.scan.Token().Kind == token.Comma) || !selFunction {
			p.scan.Next()
		}

		if (selFunction && p.isKind(domNode, token.ClosingBracket)) ||
			(!selFunction && p.isKind(domNode, token.EndSel)) {
			break
		}

		if selFunction {
			if !p.expectKinds(piecewiseElement, "'case' or 'otherwise'", caseOtherwiseTokens) {
				return nil
			}
		} else if !p.expectKinds(piecewiseElement, "'case', 'otherwise' or 'endsel'", caseOtherwiseEndSelTokens) {
			return nil
		}
	}

	if selFunction {
		if !p.expectKind(domNode, "')'", token.ClosingBracket) {
			return nil
		}
	} else if !p.expectKind(domNode, "'endsel'", token.EndSel) {
		return nil
	}

	if allowTopPiecewiseStatement {
		p.scan.Next()
	}

	return piecewiseElement
}
