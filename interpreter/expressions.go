package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// VisitLiteral returns the literal's embedded value directly.
func (i *Interpreter) VisitLiteral(e *ast.Literal) (value.Value, error) {
	return e.Value, nil
}

// VisitVariable resolves the name against the environment chain.
func (i *Interpreter) VisitVariable(e *ast.Variable) (value.Value, error) {
	v, ok := i.env.Get(e.Name.Lexeme)
	if !ok {
		return value.Nil, newRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
	}
	return v, nil
}

// VisitAssign evaluates the right-hand side, writes it into the
// nearest enclosing environment that already declares the name, and
// evaluates to the assigned value.
func (i *Interpreter) VisitAssign(e *ast.Assign) (value.Value, error) {
	v, err := i.evaluate(e.Value)
	if err != nil {
		return value.Nil, err
	}
	if !i.env.Assign(e.Name.Lexeme, v) {
		return value.Nil, newRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
	}
	return v, nil
}

// VisitGrouping evaluates the parenthesized inner expression.
func (i *Interpreter) VisitGrouping(e *ast.Grouping) (value.Value, error) {
	return i.evaluate(e.Inner)
}

// VisitUnary applies "-" (numeric negation) or "!" (logical not).
func (i *Interpreter) VisitUnary(e *ast.Unary) (value.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return value.Nil, err
	}

	switch e.Op.Kind {
	case token.Minus:
		if right.Kind() != value.KindNumber {
			return value.Nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return value.Number(-right.AsNumber()), nil
	case token.Bang:
		return value.Bool(!right.Truthy()), nil
	}
	return value.Nil, newRuntimeError(e.Op, "Unknown unary operator.")
}

// VisitLogical implements short-circuit "and"/"or": the left operand
// is always evaluated; for "or" a truthy left short-circuits, for
// "and" a falsy left short-circuits — in both cases returning the left
// operand itself, not a coerced boolean. Otherwise the right operand's
// value is returned.
func (i *Interpreter) VisitLogical(e *ast.Logical) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return value.Nil, err
	}

	if e.Op.Kind == token.Or {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

// VisitBinary evaluates both operands — type checks happen after both
// sides are evaluated, so short-circuiting never applies to binary
// operators, only to Logical — then applies the operator.
func (i *Interpreter) VisitBinary(e *ast.Binary) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return value.Nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return value.Nil, err
	}

	switch e.Op.Kind {
	case token.EqualEqual:
		return value.Bool(left.Equal(right)), nil
	case token.BangEqual:
		return value.Bool(!left.Equal(right)), nil
	case token.Greater:
		return numericComparison(e.Op, left, right, func(a, b float64) bool { return a > b })
	case token.GreaterEqual:
		return numericComparison(e.Op, left, right, func(a, b float64) bool { return a >= b })
	case token.Less:
		return numericComparison(e.Op, left, right, func(a, b float64) bool { return a < b })
	case token.LessEqual:
		return numericComparison(e.Op, left, right, func(a, b float64) bool { return a <= b })
	case token.Minus:
		return numericArithmetic(e.Op, left, right, func(a, b float64) float64 { return a - b })
	case token.Star:
		return numericArithmetic(e.Op, left, right, func(a, b float64) float64 { return a * b })
	case token.Slash:
		return numericArithmetic(e.Op, left, right, func(a, b float64) float64 { return a / b })
	case token.Plus:
		return addOperands(e.Op, left, right)
	}
	return value.Nil, newRuntimeError(e.Op, "Unknown binary operator.")
}

func addOperands(op token.Token, left, right value.Value) (value.Value, error) {
	if left.Kind() == value.KindNumber && right.Kind() == value.KindNumber {
		return value.Number(left.AsNumber() + right.AsNumber()), nil
	}
	if left.Kind() == value.KindString && right.Kind() == value.KindString {
		return value.String(left.AsString() + right.AsString()), nil
	}
	return value.Nil, newRuntimeError(op, "Operands must be numbers.")
}

func numericArithmetic(op token.Token, left, right value.Value, apply func(a, b float64) float64) (value.Value, error) {
	if left.Kind() != value.KindNumber || right.Kind() != value.KindNumber {
		return value.Nil, newRuntimeError(op, "Operands must be numbers.")
	}
	return value.Number(apply(left.AsNumber(), right.AsNumber())), nil
}

func numericComparison(op token.Token, left, right value.Value, apply func(a, b float64) bool) (value.Value, error) {
	if left.Kind() != value.KindNumber || right.Kind() != value.KindNumber {
		return value.Nil, newRuntimeError(op, "Operands must be numbers.")
	}
	return value.Bool(apply(left.AsNumber(), right.AsNumber())), nil
}
