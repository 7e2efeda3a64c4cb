package parser

import (
	"testing"

	"github.com/MeKo-Christian/JustGoHTML/internal/script/ast"
	"github.com/stretchr/testify/require"
)

func TestParsesNumericLiteralExpressionStatement(t *testing.T) {
	program := Parse("42")
	require.Len(t, program.Body, 1)
	stmt := program.Body[0]
	require.Equal(t, ast.ExpressionStatement, stmt.Kind)
	require.Equal(t, ast.NumericLiteral, stmt.Argument.Kind)
	require.Equal(t, uint64(42), stmt.Argument.Number)
}

func TestParsesAdditiveExpression(t *testing.T) {
	program := Parse("1 + 2")
	expr := program.Body[0].Argument
	require.Equal(t, ast.BinaryExpression, expr.Kind)
	require.Equal(t, '+', expr.Operator)
	require.Equal(t, uint64(1), expr.Left.Number)
	require.Equal(t, uint64(2), expr.Right.Number)
}

func TestParsesVariableDeclarationWithInitialiser(t *testing.T) {
	program := Parse("var foo=42;")
	decl := program.Body[0]
	require.Equal(t, ast.VariableDeclaration, decl.Kind)
	require.Len(t, decl.Declarations, 1)
	declarator := decl.Declarations[0]
	require.Equal(t, "foo", declarator.DeclID.Name)
	require.Equal(t, uint64(42), declarator.DeclInit.Number)
}

func TestParsesReassignmentAsAssignmentExpression(t *testing.T) {
	program := Parse("var foo=42; foo=1;")
	stmt := program.Body[1]
	require.Equal(t, ast.ExpressionStatement, stmt.Kind)
	assign := stmt.Argument
	require.Equal(t, ast.AssignmentExpression, assign.Kind)
	require.Equal(t, '=', assign.Operator)
	require.Equal(t, "foo", assign.Left.Name)
	require.Equal(t, uint64(1), assign.Right.Number)
}

func TestParsesFunctionDeclarationWithParamsAndReturn(t *testing.T) {
	program := Parse("function foo(a, b) { return a+b; }")
	fn := program.Body[0]
	require.Equal(t, ast.FunctionDeclaration, fn.Kind)
	require.Equal(t, "foo", fn.ID.Name)
	require.Len(t, fn.Params, 2)
	require.Equal(t, "a", fn.Params[0].Name)
	require.Equal(t, "b", fn.Params[1].Name)
	require.Len(t, fn.FnBody.Body, 1)
	ret := fn.FnBody.Body[0]
	require.Equal(t, ast.ReturnStatement, ret.Kind)
	require.Equal(t, ast.BinaryExpression, ret.Argument.Kind)
}

func TestParsesCallExpressionAddedToNumber(t *testing.T) {
	program := Parse("function foo() { return 42; } var result = foo() + 1;")
	decl := program.Body[1]
	init := decl.Declarations[0].DeclInit
	require.Equal(t, ast.BinaryExpression, init.Kind)
	call := init.Left
	require.Equal(t, ast.CallExpression, call.Kind)
	require.Equal(t, "foo", call.Callee.Name)
	require.Empty(t, call.Arguments)
}

func TestParsesMemberExpressionChain(t *testing.T) {
	program := Parse(`document.getElementById`)
	member := program.Body[0].Argument
	require.Equal(t, ast.MemberExpression, member.Kind)
	require.Equal(t, "document", member.Object.Name)
	require.Equal(t, "getElementById", member.Property.Name)
}

func TestParsesInnerHTMLAssignmentThroughMemberExpression(t *testing.T) {
	program := Parse(`document.getElementById("target").innerHTML = "foobar";`)
	assign := program.Body[0].Argument
	require.Equal(t, ast.AssignmentExpression, assign.Kind)
	left := assign.Left
	require.Equal(t, ast.MemberExpression, left.Kind)
	require.Equal(t, "innerHTML", left.Property.Name)
	require.Equal(t, ast.CallExpression, left.Object.Kind)
	require.Equal(t, "foobar", assign.Right.Str)
}
