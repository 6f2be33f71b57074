package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → ( IDENTIFIER "=" assignment ) | logic_or
//
// The left-hand side is parsed as any expression; if the next token is
// "=", the parsed LHS must be a Variable, and the right-hand side
// recurses as another assignment (right-associative). An LHS that
// isn't a plain variable is reported as an invalid assignment target,
// but parsing continues — this is not panic-mode recoverable because
// the expression itself parsed fine.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		p.errors = append(p.errors, formatError(equals, "Invalid assignment target."))
	}
	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ( "!" | "-" ) unary | primary
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.primary()
}

// primary → "true" | "false" | "nil" | NUMBER | STRING | IDENTIFIER
//         | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: value.Bool(false)}
	case p.match(token.True):
		return &ast.Literal{Value: value.Bool(true)}
	case p.match(token.Nil):
		return &ast.Literal{Value: value.Nil}
	case p.match(token.Number):
		return &ast.Literal{Value: value.Number(p.previous().Literal.(float64))}
	case p.match(token.String):
		return &ast.Literal{Value: value.String(p.previous().Literal.(string))}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		inner := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: inner}
	}
	panic(p.reportAndRecover(p.peek(), "Expect expression."))
}

// formatError mirrors reportAndRecover's message format for call sites
// (like the assignment-target check) that report without unwinding.
func formatError(tok token.Token, message string) string {
	if tok.Kind == token.EOF {
		return fmt.Sprintf("Line %d at end. %s", tok.Line, message)
	}
	return fmt.Sprintf("Line %d at '%s'. %s", tok.Line, tok.Lexeme, message)
}
