/*
File    : elton/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package parser

import (
	"elton/ast"
	"elton/errors"
	"elton/lexer"
)

// parseWhileStmt parses `while (cond) { body }`.
func (p *Parser) parseWhileStmt() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'while'
		return nil, err
	}
	if err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(line, col, cond, body), nil
}

// parseForStmt parses `for ITER in EXPR [.. EXPR] { body }`. The `..` form
// produces a Range node the interpreter expands into an inclusive integer
// sequence; otherwise the bare expression is expected to evaluate to an
// array at run time.
func (p *Parser) parseForStmt() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'for'
		return nil, err
	}
	if !p.curIs(lexer.IDENTIFIER) {
		return nil, errors.Syntax(p.cur.Line, p.cur.Column, "expected loop variable name, got %q", p.cur.Lexeme)
	}
	iterName := p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	if !p.curIsKeyword("in") {
		return nil, errors.Syntax(p.cur.Line, p.cur.Column, "expected 'in', got %q", p.cur.Lexeme)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	startLine, startCol := p.cur.Line, p.cur.Column
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var iterable ast.Node = start
	if p.curIs(lexer.RANGE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		end, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		iterable = ast.NewRange(startLine, startCol, start, end)
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFor(line, col, iterName, iterable, body), nil
}
