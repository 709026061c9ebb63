package scanner

import (
	"testing"

	"github.com/cellml-text/tomathml/internal/token"
)

func tokenKinds(t *testing.T, text string) []token.Kind {
	t.Helper()
	s := New(text)
	var kinds []token.Kind
	for {
		tok := s.Token()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.Eof {
			return kinds
		}
		s.Next()
	}
}

func TestScanSimpleEquation(t *testing.T) {
	got := tokenKinds(t, "a = b;")
	want := []token.Kind{token.IdentifierOrCmetaId, token.Eq, token.IdentifierOrCmetaId, token.SemiColon, token.Eof}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanEqualityAndInequalityOperators(t *testing.T) {
	cases := map[string]token.Kind{
		"=":  token.Eq,
		"==": token.EqEq,
		"<>": token.Neq,
		"<":  token.Lt,
		"<=": token.Leq,
		">":  token.Gt,
		">=": token.Geq,
	}
	for text, want := range cases {
		s := New(text)
		if got := s.Token().Kind; got != want {
			t.Errorf("%q: got %v, want %v", text, got, want)
		}
	}
}

func TestScanNumberPlain(t *testing.T) {
	s := New("123.45")
	tok := s.Token()
	if tok.Kind != token.Number || tok.Lexeme != "123.45" {
		t.Errorf("got %+v", tok)
	}
}

func TestScanNumberExponent(t *testing.T) {
	s := New("1.5e-10")
	tok := s.Token()
	if tok.Kind != token.Number || tok.Lexeme != "1.5e-10" || tok.Comment != "" {
		t.Errorf("got %+v", tok)
	}
}

func TestScanNumberExponentWithoutDigitsIsInvalid(t *testing.T) {
	s := New("1.5e")
	tok := s.Token()
	if tok.Kind != token.Invalid {
		t.Errorf("got %+v, want Invalid", tok)
	}
	if tok.Comment != "The exponent has no digits." {
		t.Errorf("got comment %q", tok.Comment)
	}
}

func TestScanNumberOverflowCarriesWarningButStaysNumber(t *testing.T) {
	s := New("1e400")
	tok := s.Token()
	if tok.Kind != token.Number {
		t.Errorf("got kind %v, want Number", tok.Kind)
	}
	if tok.Comment == "" {
		t.Errorf("expected an overflow comment")
	}
}

func TestScanLeadingFullStopWithoutDigitIsUnknown(t *testing.T) {
	s := New(". ")
	tok := s.Token()
	if tok.Kind != token.Unknown {
		t.Errorf("got %+v, want Unknown", tok)
	}
}

func TestScanStringTerminated(t *testing.T) {
	s := New(`"hello"`)
	tok := s.Token()
	if tok.Kind != token.String || tok.Lexeme != "hello" {
		t.Errorf("got %+v", tok)
	}
}

func TestScanStringUnterminatedIsInvalid(t *testing.T) {
	s := New(`"hello`)
	tok := s.Token()
	if tok.Kind != token.Invalid || tok.Comment != "The string is incomplete." {
		t.Errorf("got %+v", tok)
	}
}

func TestScanSingleLineComment(t *testing.T) {
	s := New("// hi there\na")
	tok := s.Token()
	if tok.Kind != token.SingleLineComment || tok.Comment != " hi there" {
		t.Errorf("got %+v", tok)
	}
	next := s.Next()
	if next.Kind != token.IdentifierOrCmetaId || next.Lexeme != "a" {
		t.Errorf("got %+v", next)
	}
}

func TestScanMultilineCommentTerminated(t *testing.T) {
	s := New("/* one\ntwo */a")
	tok := s.Token()
	if tok.Kind != token.MultilineComment {
		t.Errorf("got %+v", tok)
	}
	next := s.Next()
	if next.Kind != token.IdentifierOrCmetaId || next.Lexeme != "a" {
		t.Errorf("got %+v", next)
	}
}

func TestScanMultilineCommentUnterminatedIsInvalid(t *testing.T) {
	s := New("/* never closes")
	tok := s.Token()
	if tok.Kind != token.Invalid || tok.Comment != "The comment is incomplete." {
		t.Errorf("got %+v", tok)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	cases := map[string]token.Kind{
		"ode":    token.Ode,
		"sel":    token.Sel,
		"endsel": token.EndSel,
		"case":   token.Case,
		"sin":    token.Sin,
		"pi":     token.Pi,
		"x":      token.IdentifierOrCmetaId,
		"mu":     token.IdentifierOrCmetaId,
	}
	for text, want := range cases {
		s := New(text)
		if got := s.Token().Kind; got != want {
			t.Errorf("%q: got %v, want %v", text, got, want)
		}
	}
}

func TestScanSIUnitOutsideParameterBlock(t *testing.T) {
	s := New("kilogram")
	if got := s.Token().Kind; got != token.Kilogram {
		t.Errorf("got %v, want Kilogram", got)
	}
}

func TestScanParameterBlockAllowsHyphenAndPeriodInWords(t *testing.T) {
	s := New("{x-1.2}")
	if got := s.Token().Kind; got != token.OpeningCurlyBracket {
		t.Fatalf("got %v, want OpeningCurlyBracket", got)
	}
	tok := s.Next()
	if tok.Kind != token.ProperCmetaId {
		t.Errorf("got %+v, want ProperCmetaId", tok)
	}
	if tok.Lexeme != "x-1.2" {
		t.Errorf("got lexeme %q", tok.Lexeme)
	}
}

func TestSnapshotRestoreRewindsScannerState(t *testing.T) {
	s := New("a b c")
	first := s.Token()

	snap := s.Snapshot()
	second := s.Next()
	if second.Lexeme != "b" {
		t.Fatalf("got %+v", second)
	}

	s.Restore(snap)
	if got := s.Token(); got.Lexeme != first.Lexeme {
		t.Errorf("after restore got %+v, want %+v", got, first)
	}

	again := s.Next()
	if again.Lexeme != "b" {
		t.Errorf("after restore, Next() got %+v, want lexeme b", again)
	}
}
