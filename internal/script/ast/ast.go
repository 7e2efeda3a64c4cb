// Package ast defines the AST node shape for the script subsystem of
// spec.md §4.4, mirroring estree's node kinds
// (https://github.com/estree/estree/blob/master/es5.md) the way
// original_source/core/src/renderer/js/ast.rs does.
//
// Grounded on the same file's Rust `Node` enum, re-expressed as a
// single tagged struct rather than a sum type — the same shape
// internal/dom.Node uses for the same reason (one Go type, a Kind
// discriminant, and the fields relevant to that kind left zero
// otherwise), so the two packages read consistently.
package ast

// Kind discriminates AST node variants.
type Kind int

const (
	ExpressionStatement Kind = iota
	BlockStatement
	ReturnStatement
	FunctionDeclaration
	VariableDeclaration
	VariableDeclarator
	BinaryExpression
	AssignmentExpression
	MemberExpression
	CallExpression
	Identifier
	NumericLiteral
	StringLiteral
)

// Node is a single AST node. Only the fields relevant to Kind are
// populated; the rest are left zero.
type Node struct {
	Kind Kind

	// ExpressionStatement, ReturnStatement: the (optional) expression.
	Argument *Node

	// BlockStatement: statement list, evaluated in order.
	Body []*Node

	// FunctionDeclaration
	ID     *Node
	Params []*Node
	FnBody *Node

	// VariableDeclaration
	Declarations []*Node

	// VariableDeclarator
	DeclID   *Node
	DeclInit *Node

	// BinaryExpression, AssignmentExpression
	Operator rune
	Left     *Node
	Right    *Node

	// MemberExpression
	Object   *Node
	Property *Node

	// CallExpression
	Callee    *Node
	Arguments []*Node

	// Identifier
	Name string

	// NumericLiteral
	Number uint64

	// StringLiteral
	Str string
}

// Program is the root of a parsed script: a flat list of source
// elements (function declarations and statements).
type Program struct {
	Body []*Node
}

func NewExpressionStatement(expr *Node) *Node {
	return &Node{Kind: ExpressionStatement, Argument: expr}
}

func NewBlockStatement(body []*Node) *Node {
	return &Node{Kind: BlockStatement, Body: body}
}

func NewReturnStatement(argument *Node) *Node {
	return &Node{Kind: ReturnStatement, Argument: argument}
}

func NewFunctionDeclaration(id *Node, params []*Node, body *Node) *Node {
	return &Node{Kind: FunctionDeclaration, ID: id, Params: params, FnBody: body}
}

func NewVariableDeclaration(declarations []*Node) *Node {
	return &Node{Kind: VariableDeclaration, Declarations: declarations}
}

func NewVariableDeclarator(id, init *Node) *Node {
	return &Node{Kind: VariableDeclarator, DeclID: id, DeclInit: init}
}

func NewBinaryExpression(operator rune, left, right *Node) *Node {
	return &Node{Kind: BinaryExpression, Operator: operator, Left: left, Right: right}
}

func NewAssignmentExpression(operator rune, left, right *Node) *Node {
	return &Node{Kind: AssignmentExpression, Operator: operator, Left: left, Right: right}
}

func NewMemberExpression(object, property *Node) *Node {
	return &Node{Kind: MemberExpression, Object: object, Property: property}
}

func NewCallExpression(callee *Node, arguments []*Node) *Node {
	return &Node{Kind: CallExpression, Callee: callee, Arguments: arguments}
}

func NewIdentifier(name string) *Node {
	return &Node{Kind: Identifier, Name: name}
}

func NewNumericLiteral(value uint64) *Node {
	return &Node{Kind: NumericLiteral, Number: value}
}

func NewStringLiteral(value string) *Node {
	return &Node{Kind: StringLiteral, Str: value}
}
