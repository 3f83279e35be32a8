/*
File    : lox/eval/eval_expressions.go
*/
package eval

import (
	"fmt"

	"github.com/arvindrajan/lox/ast"
	"github.com/arvindrajan/lox/environment"
	"github.com/arvindrajan/lox/lexer"
	"github.com/pkg/errors"
)

// evalExpr dispatches on the concrete Expr variant, mirroring the closed
// set enumerated in ast.Expr: Literal, Grouping, Variable, Assignment,
// Unary, Binary.
func (i *Interpreter) evalExpr(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case ast.Literal:
		return e.Value, nil
	case ast.Grouping:
		return i.evalExpr(e.Inner)
	case ast.Variable:
		return i.env.Get(e.Name)
	case ast.Assignment:
		return i.evalAssignment(e)
	case ast.Unary:
		return i.evalUnary(e)
	case ast.Binary:
		return i.evalBinary(e)
	}
	return nil, fmt.Errorf("eval: unhandled expression type %T", expr)
}

func (i *Interpreter) evalAssignment(e ast.Assignment) (any, error) {
	value, err := i.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	if err := i.env.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) evalUnary(e ast.Unary) (any, error) {
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case lexer.BANG:
		return !isTruthy(right), nil
	case lexer.MINUS:
		n, err := checkNumberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	}
	return nil, fmt.Errorf("eval: unhandled unary operator %s", e.Operator.Kind)
}

func (i *Interpreter) evalBinary(e ast.Binary) (any, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case lexer.MINUS:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case lexer.SLASH:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case lexer.STAR:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case lexer.PLUS:
		return evalPlus(e.Operator, left, right)
	case lexer.GREATER:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, err := checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, fmt.Errorf("eval: unhandled binary operator %s", e.Operator.Kind)
}

// evalPlus implements "+" on numbers (addition) and strings (concatenation).
// Unlike the other arithmetic operators it is not purely numeric, so it
// gets its own operand check rather than reusing checkNumberOperands.
func evalPlus(operator lexer.Token, left, right any) (any, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, runtimeError(operator, "+ operator should be either numbers or strings")
}

func checkNumberOperand(operator lexer.Token, operand any) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, runtimeError(operator, "Operand must be a number.")
}

func checkNumberOperands(operator lexer.Token, left, right any) (float64, float64, error) {
	l, ok := left.(float64)
	if !ok {
		return 0, 0, runtimeError(operator, "Operand must be a number.")
	}
	r, ok := right.(float64)
	if !ok {
		return 0, 0, runtimeError(operator, "Operand must be a number.")
	}
	return l, r, nil
}

func runtimeError(token lexer.Token, message string) error {
	return errors.Wrap(&environment.RuntimeError{Token: token, Message: message}, "eval")
}

// isTruthy implements Lox's truthiness: nil and false are falsy, every
// other value — including 0 and "" — is truthy.
func isTruthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements structural equality with no coercion: values of
// different kinds are never equal, and nil equals only nil.
func isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}
