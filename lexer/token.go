/*
File    : elton/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenType identifies the lexical category of a Token. It is a string so
// that token dumps (elton -tokens) are readable without a lookup table.
type TokenType string

// Token kinds, exhaustive per the language's external interface.
const (
	EOF_TYPE TokenType = "EOF"

	NUMBER     TokenType = "NUMBER"
	STRING     TokenType = "STRING"
	IDENTIFIER TokenType = "IDENTIFIER"
	KEYWORD    TokenType = "KEYWORD"

	PLUS     TokenType = "PLUS"
	MINUS    TokenType = "MINUS"
	MULTIPLY TokenType = "MULTIPLY"
	DIVIDE   TokenType = "DIVIDE"
	MODULO   TokenType = "MODULO"
	ASSIGN   TokenType = "ASSIGN"

	EQUALS        TokenType = "EQUALS"
	NOT_EQUALS    TokenType = "NOT_EQUALS"
	LESS          TokenType = "LESS"
	GREATER       TokenType = "GREATER"
	LESS_EQUAL    TokenType = "LESS_EQUAL"
	GREATER_EQUAL TokenType = "GREATER_EQUAL"
	AND           TokenType = "AND"
	OR            TokenType = "OR"
	NOT           TokenType = "NOT"

	LPAREN   TokenType = "LPAREN"
	RPAREN   TokenType = "RPAREN"
	LBRACE   TokenType = "LBRACE"
	RBRACE   TokenType = "RBRACE"
	LBRACKET TokenType = "LBRACKET"
	RBRACKET TokenType = "RBRACKET"

	COLON     TokenType = "COLON"
	SEMICOLON TokenType = "SEMICOLON"
	COMMA     TokenType = "COMMA"
	DOT       TokenType = "DOT"
	RANGE     TokenType = "RANGE"
)

// keywords is the canonical dialect's reserved-word table (var/func/print),
// per spec.md §9 — the other recorded spellings (arg/fn/prtoc) are
// out-of-scope variants.
var keywords = map[string]bool{
	"var": true, "func": true, "if": true, "else": true, "while": true,
	"for": true, "in": true, "return": true, "print": true,
	"true": true, "false": true, "and": true, "or": true, "not": true,
	"string": true, "int": true, "bool": true, "float": true, "array": true,
	"try": true, "catch": true, "throw": true, "lambda": true,
}

// Token is an immutable lexical unit emitted by the Lexer. The parser
// borrows tokens from the stream; it never mutates one.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

// lookupIdentifier classifies ident as KEYWORD (carrying the word itself as
// its lexeme) or IDENTIFIER.
func lookupIdentifier(ident string) TokenType {
	if keywords[ident] {
		return KEYWORD
	}
	return IDENTIFIER
}

// String renders a token as "lexeme:TYPE", used by the -tokens debug dump.
func (t Token) String() string {
	return fmt.Sprintf("%s:%s", t.Lexeme, t.Type)
}
