package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(l *Lexer) []Token {
	var out []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestAssignVariableTokenizesKeywordIdentNumberPunctuators(t *testing.T) {
	toks := drain(New("var foo=42;"))
	require.Equal(t, []Token{
		{Kind: Keyword, Ident: "var"},
		{Kind: Identifier, Ident: "foo"},
		{Kind: Punctuator, Punct: '='},
		{Kind: Number, Num: 42},
		{Kind: Punctuator, Punct: ';'},
	}, toks)
}

func TestDoubleQuotedStringLiteralsAroundPlus(t *testing.T) {
	toks := drain(New(`"foo" + "bar"`))
	require.Equal(t, []Token{
		{Kind: StringLiteral, Ident: "foo"},
		{Kind: Punctuator, Punct: '+'},
		{Kind: StringLiteral, Ident: "bar"},
	}, toks)
}

func TestFunctionDeclarationWithParams(t *testing.T) {
	toks := drain(New("function foo(a, b) { return a+b; }"))
	require.Equal(t, Keyword, toks[0].Kind)
	require.Equal(t, "function", toks[0].Ident)
	require.Equal(t, Identifier, toks[1].Kind)
	require.Equal(t, Punctuator, toks[2].Kind)
	require.Equal(t, '(', toks[2].Punct)
	last := toks[len(toks)-1]
	require.Equal(t, Punctuator, last.Kind)
	require.Equal(t, '}', last.Punct)
}

func TestMemberExpressionDotIsAPunctuator(t *testing.T) {
	toks := drain(New("document.getElementById"))
	require.Equal(t, []Token{
		{Kind: Identifier, Ident: "document"},
		{Kind: Punctuator, Punct: '.'},
		{Kind: Identifier, Ident: "getElementById"},
	}, toks)
}

func TestEmptyInputYieldsNoTokens(t *testing.T) {
	require.Empty(t, drain(New("")))
}
