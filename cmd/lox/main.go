/*
File    : lox/cmd/lox/main.go
*/

// Command lox is the interpreter's entry point: a single dispatcher over
// the four pipeline stages (tokenize, parse, evaluate, run), each backed
// by the lexer/parser/ast/eval packages.
package main

import (
	"io"
	"os"

	"github.com/arvindrajan/lox/ast"
	"github.com/arvindrajan/lox/environment"
	"github.com/arvindrajan/lox/eval"
	"github.com/arvindrajan/lox/lexer"
	"github.com/arvindrajan/lox/parser"
	"github.com/pkg/errors"
)

const usage = "Usage: lox <command> <filename>\n"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run is main's testable core: it takes the same argv/stdout/stderr main
// would use and returns the process exit code instead of calling os.Exit,
// so tests can assert on output and code together.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 3 {
		errColor.Fprint(stderr, usage)
		return 1
	}

	command, filename := args[1], args[2]
	source, err := os.ReadFile(filename)
	if err != nil {
		errColor.Fprintf(stderr, "Could not read file '%s': %v\n", filename, err)
		return 1
	}

	switch command {
	case "tokenize":
		return runTokenize(string(source), stdout, stderr)
	case "parse":
		return runParse(string(source), stdout, stderr)
	case "evaluate":
		return runEvaluate(string(source), stdout, stderr)
	case "run":
		return runProgram(string(source), stdout, stderr)
	default:
		errColor.Fprintf(stderr, "Unknown command: %s\n", command)
		errColor.Fprint(stderr, usage)
		return 1
	}
}

// runTokenize scans the source and dumps every token, one per line.
func runTokenize(source string, stdout, stderr io.Writer) int {
	scanner := lexer.NewScanner(source, stderr)
	tokens, hadError := scanner.ScanTokens()
	for _, token := range tokens {
		io.WriteString(stdout, token.String()+"\n")
	}
	if hadError {
		return 65
	}
	return 0
}

// runParse prints the AST printer form of the first parsed expression.
func runParse(source string, stdout, stderr io.Writer) int {
	tokens, hadError := scanQuiet(source, stderr)
	if hadError {
		return 65
	}
	p := parser.NewParser(tokens, stderr)
	expressions := p.ParseExpressions()
	if len(expressions) == 0 {
		return 65
	}
	io.WriteString(stdout, ast.Print(expressions[0])+"\n")
	return 0
}

// runEvaluate prints the stringified value of the first parsed expression.
func runEvaluate(source string, stdout, stderr io.Writer) int {
	tokens, hadError := scanQuiet(source, stderr)
	if hadError {
		return 65
	}
	p := parser.NewParser(tokens, stderr)
	expressions := p.ParseExpressions()
	if len(expressions) == 0 {
		return 65
	}
	interp := eval.NewInterpreter(stdout)
	value, err := interp.Evaluate(expressions[0])
	if err != nil {
		reportRuntimeError(err, stderr)
		return 70
	}
	io.WriteString(stdout, ast.Stringify(value)+"\n")
	return 0
}

// runProgram parses statements and executes them for their side effects.
func runProgram(source string, stdout, stderr io.Writer) int {
	tokens, hadError := scanQuiet(source, stderr)
	if hadError {
		return 65
	}
	p := parser.NewParser(tokens, stderr)
	statements, err := p.ParseStatements()
	if err != nil {
		return 65
	}
	interp := eval.NewInterpreter(stdout)
	if err := interp.Interpret(statements); err != nil {
		reportRuntimeError(err, stderr)
		return 70
	}
	return 0
}

// scanQuiet scans without writing tokens anywhere; it's the shared first
// stage for parse/evaluate/run, which only need the token stream and the
// error flag, never the tokenize dump.
func scanQuiet(source string, stderr io.Writer) ([]lexer.Token, bool) {
	scanner := lexer.NewScanner(source, stderr)
	return scanner.ScanTokens()
}

// reportRuntimeError writes the §6 runtime diagnostic format: the message
// on one line, the `[line L]` pointer on the next.
func reportRuntimeError(err error, stderr io.Writer) {
	var rerr *environment.RuntimeError
	if errors.As(err, &rerr) {
		errColor.Fprintf(stderr, "%s\n[line %d]\n", rerr.Message, rerr.Token.Line)
		return
	}
	errColor.Fprintf(stderr, "%s\n", err)
}
