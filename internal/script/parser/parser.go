// Package parser implements the recursive-descent script parser of
// spec.md §4.4.
//
// Grounded on original_source/core/src/renderer/js/ast.rs's JsParser:
// same production names and the same single-token lookahead via a
// peekable lexer. The grammar is narrowed to what spec.md §4.4 names,
// including its one deliberate deviation from real JS: AdditiveExpression
// is right-recursive (`LeftHandSide ((+|-) AssignmentExpression)?`
// rather than the usual left-associative loop), kept as specified —
// see DESIGN.md.
package parser

import (
	"github.com/MeKo-Christian/JustGoHTML/internal/script/ast"
	"github.com/MeKo-Christian/JustGoHTML/internal/script/lexer"
)

// Parser consumes a lexer.Lexer token stream into an ast.Program.
type Parser struct {
	lex       *lexer.Lexer
	lookahead *lexer.Token
	atEOF     bool
}

// New creates a parser over src.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src)}
}

// Parse parses src into a Program. This is the Program entry point of
// spec.md §4.4's grammar: `Program := SourceElement*`.
func Parse(src string) *ast.Program {
	return New(src).ParseProgram()
}

func (p *Parser) peek() (lexer.Token, bool) {
	if p.atEOF {
		return lexer.Token{}, false
	}
	if p.lookahead == nil {
		t, ok := p.lex.Next()
		if !ok {
			p.atEOF = true
			return lexer.Token{}, false
		}
		p.lookahead = &t
	}
	return *p.lookahead, true
}

func (p *Parser) next() (lexer.Token, bool) {
	t, ok := p.peek()
	p.lookahead = nil
	return t, ok
}

// ParseProgram drives the parser to completion.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for {
		node := p.sourceElement()
		if node == nil {
			return program
		}
		program.Body = append(program.Body, node)
	}
}

// sourceElement implements `SourceElement := FunctionDeclaration | Statement`.
func (p *Parser) sourceElement() *ast.Node {
	t, ok := p.peek()
	if !ok {
		return nil
	}
	if t.Kind == lexer.Keyword && t.Ident == "function" {
		p.next()
		return p.functionDeclaration()
	}
	return p.statement()
}

// statement implements:
//
//	Statement := (var VariableDeclarator) | (return AssignmentExpression?) | ExpressionStatement
//
// with an optional trailing ';'.
func (p *Parser) statement() *ast.Node {
	t, ok := p.peek()
	if !ok {
		return nil
	}

	var node *ast.Node
	if t.Kind == lexer.Keyword && t.Ident == "var" {
		p.next()
		node = p.variableDeclaration()
	} else if t.Kind == lexer.Keyword && t.Ident == "return" {
		p.next()
		node = ast.NewReturnStatement(p.maybeAssignmentExpression())
	} else {
		node = ast.NewExpressionStatement(p.assignmentExpression())
	}

	if t, ok := p.peek(); ok && t.Kind == lexer.Punctuator && t.Punct == ';' {
		p.next()
	}
	return node
}

// maybeAssignmentExpression parses an AssignmentExpression unless the
// next token can't start one, supporting `return;` with no argument.
func (p *Parser) maybeAssignmentExpression() *ast.Node {
	t, ok := p.peek()
	if !ok {
		return nil
	}
	if t.Kind == lexer.Punctuator && (t.Punct == ';' || t.Punct == '}') {
		return nil
	}
	return p.assignmentExpression()
}

// variableDeclaration implements `var VariableDeclarator`, limited to
// a single declarator per spec.md §4.4's grammar.
func (p *Parser) variableDeclaration() *ast.Node {
	id := p.identifier()
	var init *ast.Node
	if t, ok := p.peek(); ok && t.Kind == lexer.Punctuator && t.Punct == '=' {
		p.next()
		init = p.assignmentExpression()
	}
	declarator := ast.NewVariableDeclarator(id, init)
	return ast.NewVariableDeclaration([]*ast.Node{declarator})
}

// assignmentExpression implements `AssignmentExpression := AdditiveExpression (= AssignmentExpression)?`.
func (p *Parser) assignmentExpression() *ast.Node {
	expr := p.additiveExpression()
	if t, ok := p.peek(); ok && t.Kind == lexer.Punctuator && t.Punct == '=' {
		p.next()
		return ast.NewAssignmentExpression('=', expr, p.assignmentExpression())
	}
	return expr
}

// additiveExpression implements spec.md §4.4's deliberately
// right-recursive `AdditiveExpression := LeftHandSide ((+|-) AssignmentExpression)?`.
func (p *Parser) additiveExpression() *ast.Node {
	left := p.leftHandSideExpression()
	t, ok := p.peek()
	if !ok || t.Kind != lexer.Punctuator || (t.Punct != '+' && t.Punct != '-') {
		return left
	}
	p.next()
	return ast.NewBinaryExpression(t.Punct, left, p.assignmentExpression())
}

// leftHandSideExpression implements `LeftHandSide := MemberExpression ((ArgumentList) (. Identifier)?)?`:
// a call may be followed by one property access, as in
// `document.getElementById("x").innerHTML`.
func (p *Parser) leftHandSideExpression() *ast.Node {
	expr := p.memberExpression()
	if t, ok := p.peek(); ok && t.Kind == lexer.Punctuator && t.Punct == '(' {
		p.next()
		expr = ast.NewCallExpression(expr, p.arguments())
		if t, ok := p.peek(); ok && t.Kind == lexer.Punctuator && t.Punct == '.' {
			p.next()
			expr = ast.NewMemberExpression(expr, p.identifier())
		}
	}
	return expr
}

// memberExpression implements `MemberExpression := PrimaryExpression (. Identifier)?`.
func (p *Parser) memberExpression() *ast.Node {
	expr := p.primaryExpression()
	if t, ok := p.peek(); ok && t.Kind == lexer.Punctuator && t.Punct == '.' {
		p.next()
		return ast.NewMemberExpression(expr, p.identifier())
	}
	return expr
}

// primaryExpression implements `PrimaryExpression := Identifier | Number | String`.
func (p *Parser) primaryExpression() *ast.Node {
	t, ok := p.next()
	if !ok {
		return nil
	}
	switch t.Kind {
	case lexer.Identifier:
		return ast.NewIdentifier(t.Ident)
	case lexer.Number:
		return ast.NewNumericLiteral(t.Num)
	case lexer.StringLiteral:
		return ast.NewStringLiteral(t.Ident)
	default:
		return nil
	}
}

func (p *Parser) identifier() *ast.Node {
	t, ok := p.next()
	if !ok || t.Kind != lexer.Identifier {
		return nil
	}
	return ast.NewIdentifier(t.Ident)
}

// arguments implements `Arguments := "(" ArgumentList? ")"`, with
// `ArgumentList := AssignmentExpression ("," AssignmentExpression)*`.
func (p *Parser) arguments() []*ast.Node {
	var args []*ast.Node
	for {
		t, ok := p.peek()
		if !ok {
			return args
		}
		if t.Kind == lexer.Punctuator && t.Punct == ')' {
			p.next()
			return args
		}
		if t.Kind == lexer.Punctuator && t.Punct == ',' {
			p.next()
			continue
		}
		args = append(args, p.assignmentExpression())
	}
}

// parameterList implements `FormalParameterList := Identifier ("," Identifier)*`
// inside the enclosing "(" ")".
func (p *Parser) parameterList() []*ast.Node {
	p.next() // '('
	var params []*ast.Node
	for {
		t, ok := p.peek()
		if !ok {
			return params
		}
		if t.Kind == lexer.Punctuator && t.Punct == ')' {
			p.next()
			return params
		}
		if t.Kind == lexer.Punctuator && t.Punct == ',' {
			p.next()
			continue
		}
		params = append(params, p.identifier())
	}
}

func (p *Parser) functionBody() *ast.Node {
	p.next() // '{'
	var body []*ast.Node
	for {
		if t, ok := p.peek(); ok && t.Kind == lexer.Punctuator && t.Punct == '}' {
			p.next()
			return ast.NewBlockStatement(body)
		}
		body = append(body, p.sourceElement())
	}
}

// functionDeclaration implements:
//
//	FunctionDeclaration := function Identifier "(" FormalParameterList? ")" FunctionBody
func (p *Parser) functionDeclaration() *ast.Node {
	id := p.identifier()
	params := p.parameterList()
	return ast.NewFunctionDeclaration(id, params, p.functionBody())
}
