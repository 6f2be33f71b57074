package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/scanner"
)

func parseSource(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, hadError := scanner.New(src).ScanTokens()
	require.False(t, hadError)
	stmts, err := New(tokens).Parse()
	require.NoError(t, err)
	return stmts
}

func printAll(stmts []ast.Stmt) []string {
	p := ast.Printer{}
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = p.Print(s)
	}
	return out
}

func TestParse_Precedence(t *testing.T) {
	stmts := parseSource(t, "1 + 2 * 3;")
	assert.Equal(t, []string{"(; (+ 1 (* 2 3)))"}, printAll(stmts))
}

func TestParse_GroupingOverridesPrecedence(t *testing.T) {
	stmts := parseSource(t, "(1 + 2) * 3;")
	assert.Equal(t, []string{"(; (* (group (+ 1 2)) 3))"}, printAll(stmts))
}

func TestParse_UnaryChain(t *testing.T) {
	stmts := parseSource(t, "!!true;")
	assert.Equal(t, []string{"(; (! (! true)))"}, printAll(stmts))
}

func TestParse_ComparisonAndEquality(t *testing.T) {
	stmts := parseSource(t, "1 < 2 == true;")
	assert.Equal(t, []string{"(; (== (< 1 2) true))"}, printAll(stmts))
}

func TestParse_LogicalOperatorsLowerThanEquality(t *testing.T) {
	stmts := parseSource(t, "1 == 1 and 2 == 2 or false;")
	assert.Equal(t, []string{"(; (or (and (== 1 1) (== 2 2)) false))"}, printAll(stmts))
}

func TestParse_VarDeclaration(t *testing.T) {
	stmts := parseSource(t, "var a = 1;")
	assert.Equal(t, []string{"(var a = 1)"}, printAll(stmts))
}

func TestParse_VarDeclarationNoInitializer(t *testing.T) {
	stmts := parseSource(t, "var a;")
	assert.Equal(t, []string{"(var a)"}, printAll(stmts))
}

func TestParse_Assignment_RightAssociative(t *testing.T) {
	stmts := parseSource(t, "a = b = 3;")
	assert.Equal(t, []string{"(; (= a (= b 3)))"}, printAll(stmts))
}

func TestParse_Block(t *testing.T) {
	stmts := parseSource(t, "{ var x = 1; print x; }")
	assert.Equal(t, []string{"(block (var x = 1) (print x))"}, printAll(stmts))
}

func TestParse_NestedBlocksShadow(t *testing.T) {
	stmts := parseSource(t, "{ var x = 1; { var x = 2; print x; } print x; }")
	assert.Equal(t, []string{"(block (var x = 1) (block (var x = 2) (print x)) (print x))"}, printAll(stmts))
}

func TestParse_IfElse(t *testing.T) {
	stmts := parseSource(t, `if (true) print "y"; else print "n";`)
	assert.Equal(t, []string{`(if true (print "y") (print "n"))`}, printAll(stmts))
}

func TestParse_IfWithoutElse(t *testing.T) {
	stmts := parseSource(t, `if (a) print a;`)
	assert.Equal(t, []string{`(if a (print a))`}, printAll(stmts))
}

func TestParse_While(t *testing.T) {
	stmts := parseSource(t, "while (i < 3) { print i; i = i + 1; }")
	assert.Equal(t, []string{"(while (< i 3) (block (print i) (; (= i (+ i 1)))))"}, printAll(stmts))
}

func TestParse_MultipleStatements(t *testing.T) {
	stmts := parseSource(t, "var a = 1; var b = 2; print a + b;")
	assert.Equal(t, []string{"(var a = 1)", "(var b = 2)", "(print (+ a b))"}, printAll(stmts))
}

func TestParse_MissingSemicolon_ReportsError(t *testing.T) {
	tokens, _ := scanner.New("var a = 1").ScanTokens()
	_, err := New(tokens).Parse()
	require.Error(t, err)
	parseErr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, 65, parseErr.Code)
	require.Len(t, parseErr.Messages, 1)
	assert.Contains(t, parseErr.Messages[0], "Expect ';' after variable declaration.")
}

func TestParse_UnexpectedTokenAtEOF(t *testing.T) {
	tokens, _ := scanner.New("print").ScanTokens()
	_, err := New(tokens).Parse()
	require.Error(t, err)
	parseErr := err.(*ParseError)
	assert.Contains(t, parseErr.Messages[0], "Line 1 at end.")
}

func TestParse_UnexpectedTokenWithLexeme(t *testing.T) {
	tokens, _ := scanner.New("1 + ;").ScanTokens()
	_, err := New(tokens).Parse()
	require.Error(t, err)
	parseErr := err.(*ParseError)
	assert.Contains(t, parseErr.Messages[0], "Line 1 at ';'.")
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	tokens, _ := scanner.New("1 = 2;").ScanTokens()
	_, err := New(tokens).Parse()
	require.Error(t, err)
	parseErr := err.(*ParseError)
	assert.Contains(t, parseErr.Messages[0], "Invalid assignment target.")
}

func TestParse_SynchronizeRecoversAfterError(t *testing.T) {
	// the first statement is broken (missing ';'); the second should
	// still parse once synchronize skips to the next statement boundary.
	tokens, _ := scanner.New("var a = 1\nvar b = 2;").ScanTokens()
	stmts, err := New(tokens).Parse()
	require.Error(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, "(var b = 2)", ast.Printer{}.Print(stmts[0]))
}

func TestParse_EmptySource(t *testing.T) {
	stmts := parseSource(t, "")
	assert.Empty(t, stmts)
}
