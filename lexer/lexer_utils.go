/*
File    : elton/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"

	"elton/errors"
)

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// escapeChar converts the character following a backslash in a string
// literal into its resolved byte. Per spec.md §4.1 rule 3, only
// \n \t \" \\ have dedicated meanings; any other escaped character
// resolves to itself (so "\q" becomes "q", not an error).
func escapeChar(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '"':
		return '"'
	case '\\':
		return '\\'
	default:
		return c
	}
}

// readNumber scans a NUMBER token: one or more digits, optionally followed
// by a single '.' and more digits. A run of two dots is the range operator
// and is never consumed here (spec.md §4.1 rule 6).
func (lex *Lexer) readNumber() Token {
	line, col := lex.Line, lex.Column
	start := lex.Position

	for isDigit(lex.Current) {
		lex.Advance()
	}

	if lex.Current == '.' && lex.Peek() != '.' && isDigit(lex.Peek()) {
		lex.Advance() // consume '.'
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}

	return Token{Type: NUMBER, Lexeme: lex.Src[start:lex.Position], Line: line, Column: col}
}

// readIdentifier scans an IDENTIFIER or KEYWORD token. Identifiers start
// with a letter or underscore and continue with letters, digits, or
// underscores.
func (lex *Lexer) readIdentifier() Token {
	line, col := lex.Line, lex.Column
	start := lex.Position

	lex.Advance() // first char already validated by the caller
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	return Token{Type: lookupIdentifier(literal), Lexeme: literal, Line: line, Column: col}
}

// readStringLiteral scans a double-quoted string literal, resolving escape
// sequences and expanding any `${...}` interpolations it contains.
//
// A plain string (no interpolation) yields a single STRING token. A string
// with interpolation is rewritten into the token sequence described in
// spec.md §4.1 rule 4: alternating text fragments and parenthesized
// sub-expressions joined by PLUS, with empty fragments dropped so neither
// a leading nor a trailing '+' is ever emitted next to nothing (the
// trailing-`+` pitfall spec.md §9's Open Question calls out).
//
// It returns the first token of the literal's expansion and queues any
// remaining tokens on lex.pending; it returns once the closing quote has
// been consumed.
func (lex *Lexer) readStringLiteral() (Token, error) {
	startLine, startCol := lex.Line, lex.Column
	lex.Advance() // consume opening quote

	type part struct {
		isExpr bool
		text   string
		tokens []Token
	}
	var parts []part
	var frag strings.Builder

	flushFrag := func() {
		if frag.Len() > 0 {
			parts = append(parts, part{text: frag.String()})
			frag.Reset()
		}
	}

	for {
		if lex.Current == 0 {
			return Token{}, errors.Syntax(startLine, startCol, "unterminated string literal")
		}
		if lex.Current == '"' {
			break
		}
		if lex.Current == '\\' {
			lex.Advance()
			if lex.Current == 0 {
				return Token{}, errors.Syntax(startLine, startCol, "unterminated string literal")
			}
			frag.WriteByte(escapeChar(lex.Current))
			lex.Advance()
			continue
		}
		if lex.Current == '$' && lex.Peek() == '{' {
			flushFrag()

			lex.Advance() // consume '$'
			lex.Advance() // consume '{'

			exprStart := lex.Position
			exprLine, exprCol := lex.Line, lex.Column
			depth := 1
			for depth > 0 {
				if lex.Current == 0 {
					return Token{}, errors.Syntax(startLine, startCol, "unterminated string interpolation")
				}
				if lex.Current == '{' {
					depth++
				} else if lex.Current == '}' {
					depth--
					if depth == 0 {
						break
					}
				} else if lex.Current == '\n' {
					lex.Line++
					lex.Column = 0
				}
				lex.Advance()
			}
			exprSrc := lex.Src[exprStart:lex.Position]
			lex.Advance() // consume closing '}'

			subLexer := NewLexer(exprSrc)
			subLexer.Line = exprLine
			subLexer.Column = exprCol
			subTokens, err := subLexer.tokenizeAll()
			if err != nil {
				return Token{}, err
			}
			parts = append(parts, part{isExpr: true, tokens: subTokens})
			continue
		}

		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		frag.WriteByte(lex.Current)
		lex.Advance()
	}
	flushFrag()
	lex.Advance() // consume closing quote

	if len(parts) == 0 {
		return Token{Type: STRING, Lexeme: "", Line: startLine, Column: startCol}, nil
	}
	if len(parts) == 1 && !parts[0].isExpr {
		return Token{Type: STRING, Lexeme: parts[0].text, Line: startLine, Column: startCol}, nil
	}

	// Multiple parts: the caller (NextToken) only returns a single Token,
	// so an interpolated literal is buffered onto the lexer's pending
	// queue and the first token of that queue is returned here.
	var expanded []Token
	for i, p := range parts {
		if i > 0 {
			expanded = append(expanded, Token{Type: PLUS, Lexeme: "+", Line: startLine, Column: startCol})
		}
		if p.isExpr {
			expanded = append(expanded, Token{Type: LPAREN, Lexeme: "(", Line: startLine, Column: startCol})
			expanded = append(expanded, p.tokens...)
			expanded = append(expanded, Token{Type: RPAREN, Lexeme: ")", Line: startLine, Column: startCol})
		} else {
			expanded = append(expanded, Token{Type: STRING, Lexeme: p.text, Line: startLine, Column: startCol})
		}
	}
	lex.pending = append(lex.pending, expanded[1:]...)
	return expanded[0], nil
}

// tokenizeAll drains this lexer completely; the recursive interpolation
// sub-lexer uses it (Tokenize runs the same loop over its own lexer).
func (lex *Lexer) tokenizeAll() ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF_TYPE {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
