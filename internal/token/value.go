package token

// Token is a single lexical token: its kind, the exact source text that
// produced it, its starting line/column (both 1-based: the first
// character of a line is column 1), and an optional diagnostic payload.
//
// Comment carries different things depending on Kind: for
// SingleLineComment/MultilineComment it is the comment's text; for
// Invalid it is the reason the token is invalid (e.g. "The string is
// incomplete."); for Number it may carry an informational message when
// the lexeme overflows a float64, without changing Kind away from
// Number (see scanner.Scanner.Next).
type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Column  int
	Comment string
}

// RangeOf returns the token kinds in [from, to], inclusive. Used by the
// parser to build the token sets it passes to its "expect one of"
// helpers (e.g. the SI-unit range, or the four mathematical-function
// arity ranges).
func RangeOf(from, to Kind) []Kind {
	kinds := make([]Kind, 0, int(to-from)+1)
	for k := from; k <= to; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Contains reports whether kind appears in kinds.
func Contains(kinds []Kind, kind Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
