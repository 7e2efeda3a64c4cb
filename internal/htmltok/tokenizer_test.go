package htmltok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(t *Tokenizer) []Token {
	var out []Token
	for {
		tok := t.Next()
		out = append(out, tok)
		if tok.Kind == Eof {
			return out
		}
	}
}

func TestTokenizesSimpleTagsAndText(t *testing.T) {
	toks := drain(New("<p>hi</p>"))
	require.Equal(t, StartTag, toks[0].Kind)
	require.Equal(t, "p", toks[0].Name)
	require.Equal(t, Char, toks[1].Kind)
	require.Equal(t, 'h', toks[1].Char)
	require.Equal(t, Char, toks[2].Kind)
	require.Equal(t, 'i', toks[2].Char)
	require.Equal(t, EndTag, toks[3].Kind)
	require.Equal(t, "p", toks[3].Name)
	require.Equal(t, Eof, toks[4].Kind)
}

func TestAttributesAreLowercasedAndParsedAcrossQuoteStyles(t *testing.T) {
	toks := drain(New(`<A HREF="x" class='y' disabled>`))
	require.Equal(t, StartTag, toks[0].Kind)
	require.Equal(t, "a", toks[0].Name)
	require.Equal(t, []struct{ Name, Value string }{
		{"href", "x"}, {"class", "y"}, {"disabled", ""},
	}, toAttrPairs(toks[0]))
}

func toAttrPairs(tok Token) []struct{ Name, Value string } {
	out := make([]struct{ Name, Value string }, len(tok.Attrs))
	for i, a := range tok.Attrs {
		out[i] = struct{ Name, Value string }{a.Name, a.Value}
	}
	return out
}

func TestSelfClosingTagIsFlagged(t *testing.T) {
	toks := drain(New(`<img src="x"/>`))
	require.True(t, toks[0].SelfClosing)
}

func TestScriptDataModeEmitsRawTextUntilMatchingEndTag(t *testing.T) {
	tok := New(`var x = "<not a tag>"; </script>`)
	tok.SwitchTo(ScriptData)
	tok.lastStartTagName = "script"

	var chars []rune
	for {
		got := tok.Next()
		if got.Kind == EndTag {
			require.Equal(t, "script", got.Name)
			break
		}
		require.Equal(t, Char, got.Kind)
		chars = append(chars, got.Char)
	}
	require.Equal(t, `var x = "<not a tag>"; `, string(chars))
}

func TestMismatchedEndTagInScriptDataIsTreatedAsText(t *testing.T) {
	tok := New(`a</b>c`)
	tok.SwitchTo(ScriptData)
	tok.lastStartTagName = "script"

	got := drain(tok)
	var text []rune
	for _, tk := range got {
		if tk.Kind == Char {
			text = append(text, tk.Char)
		}
	}
	require.Equal(t, "a</b>c", string(text))
}

func TestEofInsideTagEmitsEof(t *testing.T) {
	toks := drain(New(`<div class="x`))
	require.Equal(t, Eof, toks[len(toks)-1].Kind)
}
