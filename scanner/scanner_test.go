package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens, hadError := New("(){},.-+;*").ScanTokens()
	require.False(t, hadError)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_OperatorCompounding(t *testing.T) {
	tokens, hadError := New("! != = == < <= > >=").ScanTokens()
	require.False(t, hadError)
	assert.Equal(t, []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
		token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_CommentsIgnored(t *testing.T) {
	tokens, hadError := New("1 // this is a comment\n+ 2").ScanTokens()
	require.False(t, hadError)
	assert.Equal(t, []token.Kind{token.Number, token.Plus, token.Number, token.EOF}, kinds(tokens))
}

func TestScanTokens_String(t *testing.T) {
	tokens, hadError := New(`"hello world"`).ScanTokens()
	require.False(t, hadError)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, hadError := New(`"`).ScanTokens()
	assert.True(t, hadError)

	sc := New(`"`)
	_, _ = sc.ScanTokens()
	require.Len(t, sc.Errors(), 1)
	assert.Equal(t, "[line 1] Error: Unterminated string.", sc.Errors()[0])
}

func TestScanTokens_MultilineString_TracksLine(t *testing.T) {
	sc := New("\"line one\nstill a string\"\nvar")
	tokens, hadError := sc.ScanTokens()
	require.False(t, hadError)
	// the var keyword after the string is on line 3
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Var, tokens[1].Kind)
	assert.Equal(t, 3, tokens[1].Line)
}

func TestScanTokens_Numbers(t *testing.T) {
	tokens, hadError := New("42 3.14 0.5").ScanTokens()
	require.False(t, hadError)
	require.Len(t, tokens, 4)
	assert.Equal(t, float64(42), tokens[0].Literal)
	assert.Equal(t, 3.14, tokens[1].Literal)
	assert.Equal(t, 0.5, tokens[2].Literal)
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	tokens, hadError := New("var x = true and false or nil while if else print").ScanTokens()
	require.False(t, hadError)
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Equal, token.True, token.And, token.False,
		token.Or, token.Nil, token.While, token.If, token.Else, token.Print, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	sc := New("@")
	_, hadError := sc.ScanTokens()
	assert.True(t, hadError)
	require.Len(t, sc.Errors(), 1)
	assert.Equal(t, "[line 1] Error: Unexpected character: @", sc.Errors()[0])
}

func TestScanTokens_EmptySource(t *testing.T) {
	tokens, hadError := New("").ScanTokens()
	require.False(t, hadError)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

func TestScanTokens_ErrorsDoNotStopScanning(t *testing.T) {
	sc := New("1 @ 2")
	tokens, hadError := sc.ScanTokens()
	assert.True(t, hadError)
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(tokens))
}
