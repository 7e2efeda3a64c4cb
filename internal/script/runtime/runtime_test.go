package runtime

import (
	"testing"

	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/script/parser"
	"github.com/stretchr/testify/require"
)

func runLast(t *testing.T, src string) (Value, bool) {
	t.Helper()
	doc := dom.NewDocument()
	rt := New(doc, "http://test.example/page#frag")
	program := parser.Parse(src)
	var result Value
	var ok bool
	for _, node := range program.Body {
		result, ok = rt.eval(node, rt.global)
	}
	return result, ok
}

func TestNumericLiteralEvaluatesToItself(t *testing.T) {
	v, ok := runLast(t, "42")
	require.True(t, ok)
	require.Equal(t, numberValue(42), v)
}

func TestAddingTwoNumbersSumsThem(t *testing.T) {
	v, ok := runLast(t, "1 + 2")
	require.True(t, ok)
	require.Equal(t, numberValue(3), v)
}

func TestSubtractingTwoNumbersDiffsThem(t *testing.T) {
	v, ok := runLast(t, "2 - 1")
	require.True(t, ok)
	require.Equal(t, numberValue(1), v)
}

func TestSubtractingNonNumbersYieldsZero(t *testing.T) {
	v, ok := runLast(t, `"a" - "b"`)
	require.True(t, ok)
	require.Equal(t, numberValue(0), v)
}

func TestAssigningVariableDeclarationHasNoValue(t *testing.T) {
	_, ok := runLast(t, "var foo=42;")
	require.False(t, ok)
}

func TestVariableLookupAfterDeclaration(t *testing.T) {
	v, ok := runLast(t, "var foo=42; foo+1")
	require.True(t, ok)
	require.Equal(t, numberValue(43), v)
}

func TestCallingDeclaredFunctionReturnsItsBody(t *testing.T) {
	v, ok := runLast(t, "function foo() { return 42; } foo()+1")
	require.True(t, ok)
	require.Equal(t, numberValue(43), v)
}

func TestFunctionParametersAreBoundInCalleeEnvironment(t *testing.T) {
	v, ok := runLast(t, "function add(a, b) { return a+b; } add(1, 2)")
	require.True(t, ok)
	require.Equal(t, numberValue(3), v)
}

func TestUnknownIdentifierEvaluatesToItsOwnName(t *testing.T) {
	v, ok := runLast(t, "console")
	require.True(t, ok)
	require.Equal(t, stringValue("console"), v)
}

func TestLocationHrefYieldsPageURL(t *testing.T) {
	v, ok := runLast(t, "location.href")
	require.True(t, ok)
	require.Equal(t, "http://test.example/page#frag", v.Str)
}

func TestLocationHashYieldsFragmentIncludingHash(t *testing.T) {
	v, ok := runLast(t, "location.hash")
	require.True(t, ok)
	require.Equal(t, "#frag", v.Str)
}

func TestLocationHashIsEmptyWhenURLHasNoFragment(t *testing.T) {
	doc := dom.NewDocument()
	rt := New(doc, "http://test.example/page")
	program := parser.Parse("location.hash")
	v, ok := rt.eval(program.Body[0], rt.global)
	require.True(t, ok)
	require.Equal(t, "", v.Str)
}

func TestInnerHTMLAssignmentReplacesChildAndSetsDOMModified(t *testing.T) {
	doc := dom.NewDocument()
	html := dom.NewElement(dom.Html, nil)
	body := dom.NewElement(dom.Body, nil)
	target := dom.NewElement(dom.Div, []dom.Attribute{{Name: "id", Value: "target"}})
	body.AppendChild(target)
	html.AppendChild(body)
	doc.AppendChild(html)

	rt := New(doc, "http://test.example/")
	program := parser.Parse(`document.getElementById("target").innerHTML = "foobar";`)
	rt.Execute(program)

	require.True(t, rt.DOMModified())
	require.Equal(t, dom.TextKind, target.FirstChild().Kind)
	require.Equal(t, "foobar", target.FirstChild().Text)
}

func TestGetElementByIdReturnsHTMLElementValue(t *testing.T) {
	doc := dom.NewDocument()
	target := dom.NewElement(dom.Div, []dom.Attribute{{Name: "id", Value: "x"}})
	doc.AppendChild(target)

	rt := New(doc, "http://test.example/")
	program := parser.Parse(`document.getElementById("x")`)
	v, ok := rt.eval(program.Body[0], rt.global)
	require.True(t, ok)
	require.Equal(t, HTMLElementValue, v.Kind)
	require.Same(t, target, v.Element)
}

func TestConsoleLogEvaluatesArgumentAndReturnsNoValue(t *testing.T) {
	_, ok := runLast(t, `console.log("hi")`)
	require.False(t, ok)
}
