// Package parser implements a classical recursive-descent parser over
// a token.Token stream, producing an ordered list of ast.Stmt values.
// It reports syntax errors with line and lexeme context and performs
// panic-mode recovery (synchronize) so a single mistake doesn't abort
// the whole parse.
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

// ParseError is returned by Parse when one or more syntax errors were
// encountered. Messages holds every individual diagnostic, already
// formatted for stderr; Code is always 65 (spec.md §7's syntax-error
// exit code).
type ParseError struct {
	Messages []string
	Code     int
}

func (e *ParseError) Error() string {
	if len(e.Messages) == 0 {
		return "parse error"
	}
	return e.Messages[0]
}

// Parser holds the cursor state for a single left-to-right pass over a
// token stream. It never seeks backward.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []string
}

// New returns a Parser over tokens, which must be terminated by an
// EOF token (as produced by scanner.ScanTokens).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the entire token stream and returns the resulting
// statement list. If any syntax error was encountered, it returns a
// best-effort statement list (statements parsed before/around the
// failure) alongside a *ParseError; callers must not evaluate the
// returned statements when err is non-nil, per spec.md §7.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if len(p.errors) > 0 {
		return statements, &ParseError{Messages: p.errors, Code: 65}
	}
	return statements, nil
}

// declaration → varDecl | statement, with panic-mode recovery: a
// syntax error anywhere within a declaration synchronizes to the next
// statement boundary before returning, so the surrounding loop keeps
// making progress.
func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseFailure); ok {
				p.synchronize()
				return
			}
			panic(r)
		}
	}()

	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

// parseFailure is the sentinel panicked by reportAndRecover to unwind
// to the nearest declaration() frame; it is never observed outside
// this package and never represents a genuine runtime panic.
type parseFailure struct{}

// varDecl → "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// statement → exprStmt | printStmt | block | ifStmt | whileStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	default:
		return p.expressionStatement()
	}
}

// printStmt → "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

// exprStmt → expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

// block → "{" declaration* "}"
func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return statements
}

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// synchronize discards tokens until it believes it has found a
// statement boundary: the previous token was a semicolon, or the next
// token begins a new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

// --- token cursor primitives ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past the current token if it has the expected
// kind, otherwise reports a syntax error at the current position and
// triggers panic-mode recovery back to the nearest declaration().
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.reportAndRecover(p.peek(), message))
}

// reportAndRecover records a syntax error in the spec's
// "Line L at '<lexeme>'. <message>" format (or "Line L at end." at
// EOF) and returns the sentinel declaration() recovers from.
func (p *Parser) reportAndRecover(tok token.Token, message string) parseFailure {
	p.errors = append(p.errors, formatError(tok, message))
	return parseFailure{}
}
