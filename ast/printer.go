/*
File    : lox/ast/printer.go
*/
package ast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Print renders an expression in the canonical fully-parenthesized form
// used by the `parse` command.
func Print(expr Expr) string {
	var buf bytes.Buffer
	printExpr(&buf, expr)
	return buf.String()
}

// PrintStatement renders a statement in its canonical parenthesized form.
func PrintStatement(stmt Stmt) string {
	var buf bytes.Buffer
	printStmt(&buf, stmt)
	return buf.String()
}

func printExpr(buf *bytes.Buffer, expr Expr) {
	switch e := expr.(type) {
	case Literal:
		// Numbers keep at least one decimal place (1 -> "1.0"), the same
		// text the tokenize dump uses; other values print via Stringify.
		if n, ok := e.Value.(float64); ok {
			s := strconv.FormatFloat(n, 'f', -1, 64)
			if !strings.Contains(s, ".") {
				s += ".0"
			}
			buf.WriteString(s)
		} else {
			buf.WriteString(Stringify(e.Value))
		}
	case Grouping:
		buf.WriteString("(group ")
		printExpr(buf, e.Inner)
		buf.WriteString(")")
	case Unary:
		fmt.Fprintf(buf, "(%s ", e.Operator.Lexeme)
		printExpr(buf, e.Right)
		buf.WriteString(")")
	case Binary:
		buf.WriteString("(")
		buf.WriteString(e.Operator.Lexeme)
		buf.WriteString(" ")
		printExpr(buf, e.Left)
		buf.WriteString(" ")
		printExpr(buf, e.Right)
		buf.WriteString(")")
	case Variable:
		buf.WriteString(e.Name.Lexeme)
	case Assignment:
		fmt.Fprintf(buf, "(= %s ", e.Name.Lexeme)
		printExpr(buf, e.Value)
		buf.WriteString(")")
	default:
		fmt.Fprintf(buf, "<unknown expr %T>", expr)
	}
}

func printStmt(buf *bytes.Buffer, stmt Stmt) {
	switch s := stmt.(type) {
	case ExpressionStmt:
		buf.WriteString("(")
		printExpr(buf, s.Expr)
		buf.WriteString(")")
	case PrintStmt:
		buf.WriteString("(print ")
		printExpr(buf, s.Expr)
		buf.WriteString(")")
	case VarDecl:
		fmt.Fprintf(buf, "(=var %s ", s.Name.Lexeme)
		if s.Initializer != nil {
			printExpr(buf, s.Initializer)
		} else {
			buf.WriteString("nil")
		}
		buf.WriteString(")")
	case Block:
		buf.WriteString("(block")
		for _, inner := range s.Statements {
			buf.WriteString(" ")
			printStmt(buf, inner)
		}
		buf.WriteString(")")
	default:
		fmt.Fprintf(buf, "<unknown stmt %T>", stmt)
	}
}
