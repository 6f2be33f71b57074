// Package ast defines the data model the parser produces and the
// interpreter consumes: expression and statement nodes, dispatched
// through a Visitor in the style of the teacher's NodeVisitor/Accept
// pattern rather than a manual kind-tag switch. Each statement in the
// top-level program is an independent tree; no node is shared between
// trees, and a node's children are released along with it once the
// program's statement slice goes out of scope.
package ast

import (
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// Expr is the base interface for every expression node.
type Expr interface {
	AcceptExpr(v ExprVisitor) (value.Value, error)
}

// Stmt is the base interface for every statement node.
type Stmt interface {
	AcceptStmt(v StmtVisitor) error
}

// ExprVisitor dispatches over the closed set of expression nodes.
// Implementations return the value the expression evaluates to (or an
// error for a runtime failure); a visitor that only needs to print or
// walk the tree may ignore the returned value.
type ExprVisitor interface {
	VisitLiteral(e *Literal) (value.Value, error)
	VisitVariable(e *Variable) (value.Value, error)
	VisitAssign(e *Assign) (value.Value, error)
	VisitGrouping(e *Grouping) (value.Value, error)
	VisitUnary(e *Unary) (value.Value, error)
	VisitBinary(e *Binary) (value.Value, error)
	VisitLogical(e *Logical) (value.Value, error)
}

// StmtVisitor dispatches over the closed set of statement nodes.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
}

// Literal is a literal value embedded directly in the source:
// a number, string, boolean, or nil.
type Literal struct {
	Value value.Value
}

func (e *Literal) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitLiteral(e) }

// Variable is a reference to a bound name, resolved against the
// environment chain at evaluation time.
type Variable struct {
	Name token.Token
}

func (e *Variable) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitVariable(e) }

// Assign writes Value into the nearest enclosing environment that
// already declares Name, and evaluates to the assigned value.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitAssign(e) }

// Grouping is a parenthesized expression: "(" Inner ")".
type Grouping struct {
	Inner Expr
}

func (e *Grouping) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitGrouping(e) }

// Unary is a prefix operator applied to Right: "-" or "!".
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitUnary(e) }

// Binary is an infix operator (everything except "and"/"or") applied
// to Left and Right.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitBinary(e) }

// Logical is "and" or "or", which short-circuit and return the
// deciding operand rather than a coerced boolean.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitLogical(e) }

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expression and writes its rendered form followed
// by a newline to the program's output.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) AcceptStmt(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares Name in the current environment, bound to the value
// of Initializer (or nil if the source omitted "= expr").
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) AcceptStmt(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt executes Statements in a fresh child environment, which is
// discarded on exit regardless of how execution left the block.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) AcceptStmt(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt executes Then when Condition is truthy, otherwise Else (which
// may be nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) AcceptStmt(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt repeatedly executes Body while Condition evaluates truthy.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) AcceptStmt(v StmtVisitor) error { return v.VisitWhileStmt(s) }
