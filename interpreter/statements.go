package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/value"
)

// VisitExpressionStmt evaluates the expression and discards the
// result.
func (i *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := i.evaluate(s.Expression)
	return err
}

// VisitPrintStmt evaluates the expression, renders it per the §6
// number/boolean/nil/string formatting rules, and writes it followed
// by a newline — exactly the bytes, nothing else.
func (i *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := i.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, v.RunString())
	return nil
}

// VisitVarStmt evaluates the initializer (defaulting to Nil when the
// source omitted "= expr") and defines the name in the current
// environment, shadowing any enclosing binding of the same name.
func (i *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	v := value.Nil
	if s.Initializer != nil {
		var err error
		v, err = i.evaluate(s.Initializer)
		if err != nil {
			return err
		}
	}
	i.env.Define(s.Name.Lexeme, v)
	return nil
}

// VisitBlockStmt executes the block's statements in a fresh child
// environment, unconditionally restoring the prior environment on
// exit — including when a statement returns a runtime error.
func (i *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return i.executeBlock(s.Statements, environment.New(i.env))
}

func (i *Interpreter) executeBlock(statements []ast.Stmt, blockEnv *environment.Environment) error {
	previous := i.env
	i.env = blockEnv
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// VisitIfStmt evaluates the condition once and executes exactly one of
// Then/Else (Else may be absent).
func (i *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := i.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if cond.Truthy() {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return nil
}

// VisitWhileStmt repeatedly evaluates the condition and executes Body
// while it is truthy.
func (i *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}
