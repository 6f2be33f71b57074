/*
Package cli wires the scanner/parser/interpreter pipeline into the
three-command driver ("tokenize", "parse", "run"), in the style of the
teacher's colorized main.go: errors go to stderr in red, debug output
(the COMMAND line and, for run -d, the token dump) goes to the Debug
stream in cyan, everything else is plain stdout.
*/
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/scanner"
	"github.com/akashmaji946/golox/source"
	"github.com/akashmaji946/golox/token"
)

// Exit codes, per the error-handling taxonomy: 0 success, 65 a
// lexical or syntax error, 70 a runtime error, 1 a usage or I/O
// failure.
const (
	ExitSuccess  = 0
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitUsage    = 1
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Streams bundles the three I/O destinations a Run invocation writes
// to, so tests can capture them without touching the real os.Stdout/
// os.Stderr.
type Streams struct {
	Out   io.Writer
	Err   io.Writer
	Debug io.Writer
}

// Run dispatches a single CLI invocation and returns the process exit
// code. args is the argument vector excluding the program name (i.e.
// os.Args[1:]).
func Run(streams Streams, args []string) int {
	if len(args) < 2 {
		redColor.Fprintln(streams.Err, "Usage: golox tokenize|parse|run <filename> [-d]")
		return ExitUsage
	}

	command := args[0]
	path := args[1]
	debug := len(args) >= 3 && args[2] == "-d"

	contents, err := source.Load(path)
	if err != nil {
		redColor.Fprintln(streams.Err, err.Error())
		return ExitUsage
	}

	if debug {
		cyanColor.Fprintf(streams.Debug, "COMMAND: %s\n", command)
	}

	switch command {
	case "tokenize":
		return runTokenize(streams, contents)
	case "parse":
		return runParse(streams, contents)
	case "run":
		return runProgram(streams, contents, debug)
	default:
		redColor.Fprintf(streams.Err, "Unknown command: %s\n", command)
		return ExitUsage
	}
}

// runTokenize always prints the full token stream — that is the whole
// point of the command — then reports 65 if scanning hit a lexical
// error.
func runTokenize(streams Streams, contents string) int {
	scan := scanner.New(contents)
	tokens, hadError := scan.ScanTokens()
	printTokens(streams.Out, tokens)
	if hadError {
		reportScanErrors(streams, scan)
		return ExitDataErr
	}
	return ExitSuccess
}

// runParse prints the token stream unconditionally (matching the
// reference driver, which prints tokens before attempting to parse
// regardless of the debug flag) and then parses, reporting any syntax
// error in red.
func runParse(streams Streams, contents string) int {
	scan := scanner.New(contents)
	tokens, hadError := scan.ScanTokens()
	printTokens(streams.Out, tokens)
	if hadError {
		reportScanErrors(streams, scan)
		return ExitDataErr
	}

	_, err := parser.New(tokens).Parse()
	if err != nil {
		return reportParseError(streams, err)
	}
	return ExitSuccess
}

// runProgram scans, parses, and interprets the source, printing the
// token stream only when debug is set.
func runProgram(streams Streams, contents string, debug bool) int {
	scan := scanner.New(contents)
	tokens, hadError := scan.ScanTokens()
	if debug {
		for _, tok := range tokens {
			cyanColor.Fprintln(streams.Debug, tok.String())
		}
	}
	if hadError {
		reportScanErrors(streams, scan)
		return ExitDataErr
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		return reportParseError(streams, err)
	}

	interp := interpreter.New(streams.Out)
	if runErr := interp.Interpret(statements); runErr != nil {
		redColor.Fprintln(streams.Err, runErr.Error())
		return ExitSoftware
	}
	return ExitSuccess
}

func reportScanErrors(streams Streams, scan *scanner.Scanner) {
	for _, message := range scan.Errors() {
		redColor.Fprintln(streams.Err, message)
	}
}

func printTokens(out io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintln(out, tok.String())
	}
}

func reportParseError(streams Streams, err error) int {
	parseErr, ok := err.(*parser.ParseError)
	if !ok {
		redColor.Fprintln(streams.Err, err.Error())
		return ExitDataErr
	}
	for _, message := range parseErr.Messages {
		redColor.Fprintln(streams.Err, message)
	}
	return parseErr.Code
}
