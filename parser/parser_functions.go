/*
File    : elton/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Function declarations and lambda literals: parameter lists, optional
// return type annotation, and the brace-delimited body shared by both.
package parser

import (
	"elton/ast"
	"elton/errors"
	"elton/lexer"
)

// parseParamList parses `(name: type, name: type, ...)`. A parameter's
// type is required whenever the parameter itself is present, per
// spec.md §4.2's statement-forms table.
func (p *Parser) parseParamList() ([]ast.Param, error) {
	if err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.curIs(lexer.RPAREN) {
		if !p.curIs(lexer.IDENTIFIER) {
			return nil, errors.Syntax(p.cur.Line, p.cur.Column, "expected parameter name, got %q", p.cur.Lexeme)
		}
		name := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON, "':'"); err != nil {
			return nil, err
		}
		declType := p.cur.Lexeme
		if err := p.advance(); err != nil { // consume the type token
			return nil, err
		}
		params = append(params, ast.Param{Name: name, DeclaredType: declType})
		if p.curIs(lexer.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseFuncDecl parses `func NAME(params) [return_type] { body }`.
func (p *Parser) parseFuncDecl() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'func'
		return nil, err
	}
	if !p.curIs(lexer.IDENTIFIER) {
		return nil, errors.Syntax(p.cur.Line, p.cur.Column, "expected function name, got %q", p.cur.Lexeme)
	}
	name := p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	returnType := ""
	if !p.curIs(lexer.LBRACE) {
		returnType = p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDeclaration(line, col, name, params, returnType, body), nil
}

// parseLambda parses `lambda(params) { body }` at expression position.
func (p *Parser) parseLambda() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume 'lambda'
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewLambda(line, col, params, body), nil
}
