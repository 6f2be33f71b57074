// Package interpreter walks the statement/expression tree produced by
// the parser against a lexically scoped environment.Environment chain,
// producing print side effects and runtime errors. It implements
// ast.ExprVisitor and ast.StmtVisitor directly, in the style of the
// teacher's eval package walking parser.NodeVisitor.
package interpreter

import (
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// RuntimeError is returned when evaluation fails at runtime: a type
// mismatch in an operator, or a read/assign of an undeclared variable.
// It carries the offending token so the CLI driver can report line
// context if it chooses to; the message text alone matches spec.md
// §6's error-output format.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

// Interpreter holds the single mutable piece of shared state in the
// system — the current environment — and the writer print statements
// render to. It is single-threaded and synchronous: there is exactly
// one call stack, walking the tree depth-first in source order.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	out     io.Writer
}

// New returns an Interpreter whose print statements write to out.
func New(out io.Writer) *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{globals: globals, env: globals, out: out}
}

// Interpret executes statements in order. It stops at the first
// runtime error — matching spec.md §4.4's "Ready → Scanning → Parsing
// → Executing → Done(code)" state machine, where a runtime-error
// transition short-circuits execution but leaves any prints already
// emitted observable.
func (i *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.AcceptStmt(i)
}

func (i *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	return expr.AcceptExpr(i)
}
