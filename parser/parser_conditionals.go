/*
File    : elton/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// The `if` keyword drives two distinct productions depending on where it
// appears: a statement form with brace-delimited branches (parseIfStmt,
// reached from parseStatement) and an expression (ternary) form (
// parseConditionalExpr, reached from parsePrimary). Both share the same
// `if (cond)` prefix.
package parser

import (
	"elton/ast"
	"elton/lexer"
)

// parseIfStmt parses `if (cond) { then } [else { else }]`.
func (p *Parser) parseIfStmt() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'if'
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
	thenBranch, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBranch []ast.Node
	if p.curIsKeyword("else") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBranch, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIf(line, col, cond, thenBranch, elseBranch), nil
}

// parseConditionalExpr parses the ternary form `if (c) then_expr [else
// else_expr]` at expression position.
func (p *Parser) parseConditionalExpr() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'if'
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
	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var els ast.Node
	if p.curIsKeyword("else") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		els, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewConditional(line, col, cond, then, els), nil
}
