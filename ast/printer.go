package ast

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/golox/value"
)

// Printer renders a statement tree as nested parenthesized
// expressions, in the spirit of the teacher's PrintingVisitor. The
// output is a Lisp-style prefix form such as "(; (+ 1 2))"; it is not
// Lox source, and the parser does not accept it as input.
type Printer struct{}

// Print renders a single statement.
func (p Printer) Print(s Stmt) string {
	var sb strings.Builder
	_ = s.AcceptStmt(&printVisitor{sb: &sb})
	return sb.String()
}

// PrintExpr renders a single expression.
func (p Printer) PrintExpr(e Expr) string {
	var sb strings.Builder
	v := &printVisitor{sb: &sb}
	_, _ = e.AcceptExpr(v)
	return sb.String()
}

type printVisitor struct {
	sb *strings.Builder
}

func (p *printVisitor) parenthesize(name string, exprs ...Expr) {
	p.sb.WriteString("(")
	p.sb.WriteString(name)
	for _, e := range exprs {
		p.sb.WriteString(" ")
		_, _ = e.AcceptExpr(p)
	}
	p.sb.WriteString(")")
}

func (p *printVisitor) VisitLiteral(e *Literal) (value.Value, error) {
	switch e.Value.Kind() {
	case value.KindString:
		fmt.Fprintf(p.sb, "%q", e.Value.AsString())
	default:
		p.sb.WriteString(e.Value.RunString())
	}
	return value.Nil, nil
}

func (p *printVisitor) VisitVariable(e *Variable) (value.Value, error) {
	p.sb.WriteString(e.Name.Lexeme)
	return value.Nil, nil
}

func (p *printVisitor) VisitAssign(e *Assign) (value.Value, error) {
	p.sb.WriteString("(= ")
	p.sb.WriteString(e.Name.Lexeme)
	p.sb.WriteString(" ")
	_, _ = e.Value.AcceptExpr(p)
	p.sb.WriteString(")")
	return value.Nil, nil
}

func (p *printVisitor) VisitGrouping(e *Grouping) (value.Value, error) {
	p.parenthesize("group", e.Inner)
	return value.Nil, nil
}

func (p *printVisitor) VisitUnary(e *Unary) (value.Value, error) {
	p.parenthesize(e.Op.Lexeme, e.Right)
	return value.Nil, nil
}

func (p *printVisitor) VisitBinary(e *Binary) (value.Value, error) {
	p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
	return value.Nil, nil
}

func (p *printVisitor) VisitLogical(e *Logical) (value.Value, error) {
	p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
	return value.Nil, nil
}

func (p *printVisitor) VisitExpressionStmt(s *ExpressionStmt) error {
	p.parenthesize(";", s.Expression)
	return nil
}

func (p *printVisitor) VisitPrintStmt(s *PrintStmt) error {
	p.parenthesize("print", s.Expression)
	return nil
}

func (p *printVisitor) VisitVarStmt(s *VarStmt) error {
	p.sb.WriteString("(var ")
	p.sb.WriteString(s.Name.Lexeme)
	if s.Initializer != nil {
		p.sb.WriteString(" = ")
		_, _ = s.Initializer.AcceptExpr(p)
	}
	p.sb.WriteString(")")
	return nil
}

func (p *printVisitor) VisitBlockStmt(s *BlockStmt) error {
	p.sb.WriteString("(block")
	for _, stmt := range s.Statements {
		p.sb.WriteString(" ")
		_ = stmt.AcceptStmt(p)
	}
	p.sb.WriteString(")")
	return nil
}

func (p *printVisitor) VisitIfStmt(s *IfStmt) error {
	p.sb.WriteString("(if ")
	_, _ = s.Condition.AcceptExpr(p)
	p.sb.WriteString(" ")
	_ = s.Then.AcceptStmt(p)
	if s.Else != nil {
		p.sb.WriteString(" ")
		_ = s.Else.AcceptStmt(p)
	}
	p.sb.WriteString(")")
	return nil
}

func (p *printVisitor) VisitWhileStmt(s *WhileStmt) error {
	p.sb.WriteString("(while ")
	_, _ = s.Condition.AcceptExpr(p)
	p.sb.WriteString(" ")
	_ = s.Body.AcceptStmt(p)
	p.sb.WriteString(")")
	return nil
}
