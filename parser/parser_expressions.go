/*
File    : elton/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Expression parsing: one function per precedence level from spec.md §4.2's
// table, each calling down to the next-tighter level before looking for its
// own operators. This is the classic recursive-descent rendering of
// precedence climbing, equivalent to the teacher's table-driven Pratt
// parser (parser/parser_precedence.go) but written as an explicit ladder
// since Elton's operator set is small and fixed.
package parser

import (
	"elton/ast"
	"elton/lexer"
)

// parseExpression is the entry point for any expression context.
func (p *Parser) parseExpression() (ast.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.OR) {
		line, col := p.cur.Line, p.cur.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(line, col, "||", left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.AND) {
		line, col := p.cur.Line, p.cur.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(line, col, "&&", left, right)
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Node, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.EQUALS) || p.curIs(lexer.NOT_EQUALS) {
		op, line, col := binaryOpLexeme[p.cur.Type], p.cur.Line, p.cur.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(line, col, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseRelational() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.LESS) || p.curIs(lexer.GREATER) || p.curIs(lexer.LESS_EQUAL) || p.curIs(lexer.GREATER_EQUAL) {
		op, line, col := binaryOpLexeme[p.cur.Type], p.cur.Line, p.cur.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(line, col, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.PLUS) || p.curIs(lexer.MINUS) {
		op, line, col := binaryOpLexeme[p.cur.Type], p.cur.Line, p.cur.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(line, col, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.MULTIPLY) || p.curIs(lexer.DIVIDE) || p.curIs(lexer.MODULO) {
		op, line, col := binaryOpLexeme[p.cur.Type], p.cur.Line, p.cur.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(line, col, op, left, right)
	}
	return left, nil
}

// parseUnary handles prefix `+`/`-`, right-associative per spec.md §4.2.
func (p *Parser) parseUnary() (ast.Node, error) {
	if p.curIs(lexer.PLUS) || p.curIs(lexer.MINUS) {
		op, line, col := p.cur.Lexeme, p.cur.Line, p.cur.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(line, col, op, operand), nil
	}
	return p.parsePrimary()
}
