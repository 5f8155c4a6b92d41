/*
File    : elton/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Primary-expression parsing: literals, parenthesized expressions, and the
// identifier forms (variable, call, index, slice) that all start with the
// same token and are disambiguated by lookahead, per spec.md §4.2's
// "Primary forms" table.
package parser

import (
	"elton/ast"
	"elton/errors"
	"elton/lexer"
)

func (p *Parser) parsePrimary() (ast.Node, error) {
	switch {
	case p.curIs(lexer.NUMBER):
		return p.parseNumberLiteral()
	case p.curIs(lexer.STRING):
		return p.parseStringLiteral()
	case p.curIsKeyword("true"):
		return p.parseBooleanLiteral(true)
	case p.curIsKeyword("false"):
		return p.parseBooleanLiteral(false)
	case p.curIsKeyword("if"):
		return p.parseConditionalExpr()
	case p.curIsKeyword("lambda"):
		return p.parseLambda()
	case p.curIs(lexer.LBRACKET):
		return p.parseArrayLiteral()
	case p.curIs(lexer.LPAREN):
		return p.parseParenExpr()
	case p.curIs(lexer.IDENTIFIER):
		return p.parseIdentifierExpr()
	}
	return nil, errors.Syntax(p.cur.Line, p.cur.Column, "unexpected token %q in expression", p.cur.Lexeme)
}

func (p *Parser) parseStringLiteral() (ast.Node, error) {
	line, col, value := p.cur.Line, p.cur.Column, p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ast.NewString(line, col, value), nil
}

func (p *Parser) parseBooleanLiteral(value bool) (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ast.NewBoolean(line, col, value), nil
}

func (p *Parser) parseParenExpr() (ast.Node, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseIdentifierExpr disambiguates the three forms that start with an
// IDENTIFIER at expression position: a call `name(...)`, an index or slice
// `name[...]`, or a bare variable reference.
func (p *Parser) parseIdentifierExpr() (ast.Node, error) {
	line, col, name := p.cur.Line, p.cur.Column, p.cur.Lexeme
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch {
	case p.curIs(lexer.LPAREN):
		return p.parseCallTail(line, col, name)
	case p.curIs(lexer.LBRACKET):
		return p.parseIndexOrSliceTail(line, col, name)
	default:
		return ast.NewVariable(line, col, name), nil
	}
}

// parseCallTail parses `(args...)` assuming NAME has already been consumed.
func (p *Parser) parseCallTail(line, col int, name string) (ast.Node, error) {
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionCall(line, col, name, args), nil
}

// parseArgumentList parses a parenthesized, comma-separated expression
// list: `(e1, e2, ...)`, allowing an empty list.
func (p *Parser) parseArgumentList() ([]ast.Node, error) {
	if err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var args []ast.Node
	for !p.curIs(lexer.RPAREN) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
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
	return args, nil
}

// parseIndexOrSliceTail parses `[index]` or `[start..end]`, with either
// slice bound optional, assuming NAME has already been consumed.
func (p *Parser) parseIndexOrSliceTail(line, col int, name string) (ast.Node, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}

	var start ast.Node
	if !p.curIs(lexer.RANGE) && !p.curIs(lexer.RBRACKET) {
		var err error
		start, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if p.curIs(lexer.RANGE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var end ast.Node
		if !p.curIs(lexer.RBRACKET) {
			var err error
			end, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expect(lexer.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		return ast.NewArraySlice(line, col, name, start, end), nil
	}

	if err := p.expect(lexer.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	if start == nil {
		return nil, errors.Syntax(line, col, "empty index expression for %q", name)
	}
	return ast.NewArrayAccess(line, col, name, start), nil
}

// parseArrayLiteral parses `[ e1, e2, ... ]`, allowing an empty array.
func (p *Parser) parseArrayLiteral() (ast.Node, error) {
	line, col := p.cur.Line, p.cur.Column
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	var elements []ast.Node
	for !p.curIs(lexer.RBRACKET) {
		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		if p.curIs(lexer.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return ast.NewArrayLiteral(line, col, elements), nil
}
