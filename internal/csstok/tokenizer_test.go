package csstok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(tk *Tokenizer) []Token {
	var out []Token
	for {
		tok := tk.Next()
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
	}
}

func TestTokenizesIdentifiersHashesAndNumbers(t *testing.T) {
	toks := drain(New("p { color: #fff; width: 12.5 }"))
	require.Equal(t, Ident, toks[0].Kind)
	require.Equal(t, "p", toks[0].Ident)
	require.Equal(t, OpenCurly, toks[1].Kind)
	require.Equal(t, Ident, toks[2].Kind)
	require.Equal(t, "color", toks[2].Ident)
	require.Equal(t, Colon, toks[3].Kind)
	require.Equal(t, Hash, toks[4].Kind)
	require.Equal(t, "fff", toks[4].Ident)
	require.Equal(t, SemiColon, toks[5].Kind)
	require.Equal(t, Ident, toks[6].Kind)
	require.Equal(t, "width", toks[6].Ident)
	require.Equal(t, Colon, toks[7].Kind)
	require.Equal(t, Number, toks[8].Kind)
	require.InDelta(t, 12.5, toks[8].Num, 0.0001)
	require.Equal(t, CloseCurly, toks[9].Kind)
	require.Equal(t, EOF, toks[10].Kind)
}

func TestClassSelectorTokenizesAsDotThenIdent(t *testing.T) {
	toks := drain(New(".title"))
	require.Equal(t, Delim, toks[0].Kind)
	require.Equal(t, '.', toks[0].Delim)
	require.Equal(t, Ident, toks[1].Kind)
	require.Equal(t, "title", toks[1].Ident)
}

func TestAtKeywordCapturesNameWithoutAt(t *testing.T) {
	toks := drain(New("@media"))
	require.Equal(t, AtKeyword, toks[0].Kind)
	require.Equal(t, "media", toks[0].Ident)
}

func TestStringLiteralAcceptsBothQuoteStyles(t *testing.T) {
	toks := drain(New(`"hi" 'there'`))
	require.Equal(t, StringTok, toks[0].Kind)
	require.Equal(t, "hi", toks[0].Ident)
	require.Equal(t, StringTok, toks[1].Kind)
	require.Equal(t, "there", toks[1].Ident)
}

func TestNumberGrammarHasNoExponentOrSign(t *testing.T) {
	// A leading '-' is not part of the number grammar: it tokenizes as
	// its own Delim, followed by a plain Number.
	toks := drain(New("-5"))
	require.Equal(t, Delim, toks[0].Kind)
	require.Equal(t, '-', toks[0].Delim)
	require.Equal(t, Number, toks[1].Kind)
	require.Equal(t, float64(5), toks[1].Num)
}

func TestWhitespaceAndNewlinesAreSkipped(t *testing.T) {
	toks := drain(New("a \n\t b"))
	require.Equal(t, Ident, toks[0].Kind)
	require.Equal(t, "a", toks[0].Ident)
	require.Equal(t, Ident, toks[1].Kind)
	require.Equal(t, "b", toks[1].Ident)
	require.Equal(t, EOF, toks[2].Kind)
}
