package bipoly

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token kinds for the textual polynomial grammar of spec.md §6 ("a
// textual expression in x, y"). This mirrors the teacher's own use of
// lexmachine (grammar/scan.go) but talks to the library directly
// instead of through the ANTLR-oriented scanner adapter, since the
// grammar here is a small arithmetic expression language, not a full
// MetaPost-derived DSL.
const (
	tokNumber = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

var tokNames = map[int]string{
	tokNumber: "NUMBER",
	tokIdent:  "IDENT",
	tokPlus:   "+",
	tokMinus:  "-",
	tokStar:   "*",
	tokSlash:  "/",
	tokCaret:  "^",
	tokLParen: "(",
	tokRParen: ")",
}

func token(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}

func newLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`( |\t|\n|\r)+`), skip)
	lex.Add([]byte(`[0-9]+(\.[0-9]+)?(/[0-9]+)?`), token(tokNumber))
	lex.Add([]byte(`[a-zA-Z][a-zA-Z0-9]*`), token(tokIdent))
	lex.Add([]byte(`\+`), token(tokPlus))
	lex.Add([]byte(`\-`), token(tokMinus))
	lex.Add([]byte(`\*\*`), token(tokCaret))
	lex.Add([]byte(`\*`), token(tokStar))
	lex.Add([]byte(`/`), token(tokSlash))
	lex.Add([]byte(`\^`), token(tokCaret))
	lex.Add([]byte(`\(`), token(tokLParen))
	lex.Add([]byte(`\)`), token(tokRParen))
	if err := lex.Compile(); err != nil {
		return nil, fmt.Errorf("bipoly: compiling lexer: %w", err)
	}
	return lex, nil
}

func tokenize(src string) ([]*lexmachine.Token, error) {
	lex, err := newLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lex.Scanner([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("bipoly: scanning input: %w", err)
	}
	var toks []*lexmachine.Token
	for tc, err, eof := scanner.Next(); !eof; tc, err, eof = scanner.Next() {
		if err != nil {
			return nil, fmt.Errorf("bipoly: lexical error: %w", err)
		}
		if tc == nil {
			continue
		}
		tok := tc.(*lexmachine.Token)
		toks = append(toks, tok)
	}
	return toks, nil
}
