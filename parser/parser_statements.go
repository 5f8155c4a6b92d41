/*
File    : elton/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Statement dispatch and the statement forms that are not large enough to
// warrant their own file, per spec.md §4.2's "Statement dispatch" rule.
package parser

import (
	"elton/ast"
	"elton/errors"
	"elton/lexer"
)

// parseStatement dispatches on the current token exactly as spec.md §4.2
// describes: keyword-led forms branch on the keyword; an IDENTIFIER
// followed by '=' is an assignment; an IDENTIFIER followed by '(' is a
// call used as a statement; anything else is parsed as a bare expression
// statement (this also covers keyword-led expression forms like `true` and
// `lambda`, which parseStatement delegates to parseExpressionStatement
// rather than special-casing here). An `if` at statement position is always
// parsed as the statement form; the ternary `if` is reached only from
// expression position.
func (p *Parser) parseStatement() (ast.Node, error) {
	if p.curIs(lexer.KEYWORD) {
		switch p.cur.Lexeme {
		case "var":
			return p.parseVarDecl()
		case "func":
			return p.parseFuncDecl()
		case "return":
			return p.parseReturnStmt()
		case "print":
			return p.parsePrintStmt()
		case "if":
			return p.parseIfStmt()
		case "while":
			return p.parseWhileStmt()
		case "for":
			return p.parseForStmt()
		case "try":
			return p.parseTryCatch()
		case "throw":
			return p.parseThrowStmt()
		}
		return p.parseExpressionStatement()
	}

	if p.curIs(lexer.IDENTIFIER) {
		if p.nextIs(lexer.ASSIGN) {
			return p.parseAssignment()
		}
		if p.nextIs(lexer.LPAREN) {
			return p.parseExpressionStatement()
		}
	}

	return p.parseExpressionStatement()
}

// parseVarDecl parses `var NAME [: TYPE] = EXPR`.
func (p *Parser) parseVarDecl() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'var'
		return nil, err
	}
	if !p.curIs(lexer.IDENTIFIER) {
		return nil, errors.Syntax(p.cur.Line, p.cur.Column, "expected variable name, got %q", p.cur.Lexeme)
	}
	name := p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	declType := ""
	if p.curIs(lexer.COLON) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		declType = p.cur.Lexeme
		if err := p.advance(); err != nil { // consume the type token
			return nil, err
		}
	}
	if err := p.expect(lexer.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewVarDeclaration(line, col, name, declType, value), nil
}

// parseAssignment parses `NAME = EXPR`, assuming the current token is the
// IDENTIFIER and the lookahead is '='.
func (p *Parser) parseAssignment() (ast.Node, error) {
	line, col, name := p.cur.Line, p.cur.Column, p.cur.Lexeme
	if err := p.advance(); err != nil { // consume NAME
		return nil, err
	}
	if err := p.advance(); err != nil { // consume '='
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewAssignment(line, col, name, value), nil
}

// parseExpressionStatement parses any expression and returns it directly
// as a statement node; the interpreter discards its value unless it is the
// last statement of a block.
func (p *Parser) parseExpressionStatement() (ast.Node, error) {
	return p.parseExpression()
}

// parseReturnStmt parses `return EXPR`.
func (p *Parser) parseReturnStmt() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(line, col, value), nil
}

// parsePrintStmt parses `print(args)`.
func (p *Parser) parsePrintStmt() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'print'
		return nil, err
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	return ast.NewPrint(line, col, args), nil
}

// parseThrowStmt parses `throw EXPR`.
func (p *Parser) parseThrowStmt() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'throw'
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewThrow(line, col, value), nil
}

// parseTryCatch parses `try { body } catch NAME { body }`.
func (p *Parser) parseTryCatch() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'try'
		return nil, err
	}
	tryBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if !p.curIsKeyword("catch") {
		return nil, errors.Syntax(p.cur.Line, p.cur.Column, "expected 'catch', got %q", p.cur.Lexeme)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if !p.curIs(lexer.IDENTIFIER) {
		return nil, errors.Syntax(p.cur.Line, p.cur.Column, "expected catch variable name, got %q", p.cur.Lexeme)
	}
	catchVar := p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	catchBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewTryCatch(line, col, tryBody, catchVar, catchBody), nil
}
