// Package runtime implements the script runtime of spec.md §4.4: a
// tree-walking evaluator over the ast package with an environment-frame
// chain, a flat process-scoped function table, and the handful of
// special-cased Web APIs and DOM bindings the spec names.
//
// Grounded directly on
// original_source/core/src/renderer/js/runtime.rs's JsRuntime: the
// same RuntimeValue/Environment/Function shapes, the same eval-by-
// node-kind dispatch, the same call_web_api special-casing of
// `console.log` and `document.getElementById`, and the same
// MemberExpression handling of `document.*` and `location.*`.
// The DOM-handle runtime value (an object reference plus an optional
// property name) is shaped like iansmith-louis14's js/dom context
// struct (other_examples/5221fda4_iansmith-louis14__pkg-js-dom.go.go),
// which also mediates between script values and DOM nodes through a
// small struct rather than a VM-native object type.
package runtime

import (
	"github.com/MeKo-Christian/JustGoHTML/internal/dom"
	"github.com/MeKo-Christian/JustGoHTML/internal/script/ast"
	"github.com/MeKo-Christian/JustGoHTML/internal/tracing"
)

// ValueKind discriminates the runtime value variants of spec.md §4.4.
type ValueKind int

const (
	NumberValue ValueKind = iota
	StringValue
	HTMLElementValue
)

// Value is a script runtime value: a number, a string, or a reference
// to a DOM node with an optional bound property name.
type Value struct {
	Kind     ValueKind
	Num      uint64
	Str      string
	Element  *dom.Node
	Property string // only set on HTMLElementValue after a MemberExpression
}

func numberValue(n uint64) Value { return Value{Kind: NumberValue, Num: n} }
func stringValue(s string) Value { return Value{Kind: StringValue, Str: s} }

// String renders v the way spec.md's "concatenated string" semantics
// need: a number's decimal form, a string verbatim, or a fixed marker
// for an html-element reference.
func (v Value) String() string {
	switch v.Kind {
	case NumberValue:
		return uintToString(v.Num)
	case StringValue:
		return v.Str
	default:
		return "HtmlElement"
	}
}

func uintToString(n uint64) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// Function is a recorded function declaration: an id, its formal
// parameter names, and its body.
type Function struct {
	ID     string
	Params []string
	Body   *ast.Node
}

// Environment is a single frame of the environment chain, per
// spec.md §4.4's "environment chain".
type Environment struct {
	vars  map[string]Value
	outer *Environment
}

func newEnvironment(outer *Environment) *Environment {
	return &Environment{vars: map[string]Value{}, outer: outer}
}

func (e *Environment) get(name string) (Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.get(name)
	}
	return Value{}, false
}

func (e *Environment) set(name string, v Value) {
	e.vars[name] = v
}

// Runtime evaluates a parsed script against a DOM tree, per spec.md
// §4.4. It holds a single flat function table (spec.md §9: a
// deliberate, non-lexically-scoped deviation from real JS, kept as
// specified) shared by all calls.
type Runtime struct {
	domRoot     *dom.Node
	domModified bool
	url         string
	functions   []Function
	global      *Environment
}

// New creates a runtime over domRoot, evaluating `location.href`/
// `location.hash` relative to url.
func New(domRoot *dom.Node, url string) *Runtime {
	return &Runtime{domRoot: domRoot, url: url, global: newEnvironment(nil)}
}

// DOMModified reports whether the last Execute call mutated the DOM
// via an innerHTML assignment. The page orchestrator (spec.md §4.7)
// polls this to decide whether to re-run the pipeline.
func (r *Runtime) DOMModified() bool { return r.domModified }

// Execute evaluates every top-level statement of program in order.
func (r *Runtime) Execute(program *ast.Program) {
	for _, node := range program.Body {
		r.eval(node, r.global)
	}
}

// callWebAPI implements spec.md §4.4's CallExpression special-casing
// of `console.log` and `document.getElementById`. found reports
// whether callee named a recognized Web API at all.
func (r *Runtime) callWebAPI(callee Value, arguments []*ast.Node, env *Environment) (result Value, ok bool, found bool) {
	if callee.Kind == StringValue && callee.Str == "console.log" {
		if len(arguments) > 0 {
			r.eval(arguments[0], env)
		}
		return Value{}, false, true
	}

	if callee.Kind == StringValue && callee.Str == "document.getElementById" {
		if len(arguments) == 0 {
			return Value{}, false, true
		}
		arg, ok := r.eval(arguments[0], env)
		if !ok {
			return Value{}, false, true
		}
		target := r.domRoot.GetElementByID(arg.String())
		if target == nil {
			return Value{}, false, true
		}
		return Value{Kind: HTMLElementValue, Element: target}, true, true
	}

	return Value{}, false, false
}

// eval walks node, returning ok=false for the constructs spec.md §4.4
// models as "no value" (e.g. FunctionDeclaration, VariableDeclaration).
func (r *Runtime) eval(node *ast.Node, env *Environment) (Value, bool) {
	if node == nil {
		return Value{}, false
	}

	switch node.Kind {
	case ast.ExpressionStatement:
		return r.eval(node.Argument, env)

	case ast.BlockStatement:
		var result Value
		ok := false
		for _, stmt := range node.Body {
			result, ok = r.eval(stmt, env)
		}
		return result, ok

	case ast.ReturnStatement:
		return r.eval(node.Argument, env)

	case ast.FunctionDeclaration:
		params := make([]string, len(node.Params))
		for i, p := range node.Params {
			params[i] = p.Name
		}
		r.functions = append(r.functions, Function{ID: node.ID.Name, Params: params, Body: node.FnBody})
		return Value{}, false

	case ast.VariableDeclaration:
		for _, decl := range node.Declarations {
			r.eval(decl, env)
		}
		return Value{}, false

	case ast.VariableDeclarator:
		init, _ := r.eval(node.DeclInit, env)
		env.set(node.DeclID.Name, init)
		return Value{}, false

	case ast.BinaryExpression:
		return r.evalBinary(node, env)

	case ast.AssignmentExpression:
		return r.evalAssignment(node, env)

	case ast.MemberExpression:
		return r.evalMember(node, env)

	case ast.CallExpression:
		return r.evalCall(node, env)

	case ast.Identifier:
		if v, ok := env.get(node.Name); ok {
			return v, true
		}
		// first reference to this name: spec.md's "enabling the
		// member-expression string trick".
		return stringValue(node.Name), true

	case ast.NumericLiteral:
		return numberValue(node.Number), true

	case ast.StringLiteral:
		return stringValue(node.Str), true
	}

	panic("runtime: unhandled AST node kind")
}

func (r *Runtime) evalBinary(node *ast.Node, env *Environment) (Value, bool) {
	left, ok := r.eval(node.Left, env)
	if !ok {
		return Value{}, false
	}
	right, ok := r.eval(node.Right, env)
	if !ok {
		return Value{}, false
	}

	switch node.Operator {
	case '+':
		if left.Kind == NumberValue && right.Kind == NumberValue {
			return numberValue(left.Num + right.Num), true
		}
		return stringValue(left.String() + right.String()), true
	case '-':
		if left.Kind == NumberValue && right.Kind == NumberValue {
			return numberValue(left.Num - right.Num), true
		}
		return numberValue(0), true
	default:
		return Value{}, false
	}
}

func (r *Runtime) evalAssignment(node *ast.Node, env *Environment) (Value, bool) {
	if node.Operator != '=' {
		return Value{}, false
	}
	left, ok := r.eval(node.Left, env)
	if !ok {
		return Value{}, false
	}
	right, ok := r.eval(node.Right, env)
	if !ok {
		return Value{}, false
	}

	if left.Kind == HTMLElementValue && left.Property == "innerHTML" {
		left.Element.ReplaceChildren(dom.NewText(right.String()))
		r.domModified = true
	}
	return Value{}, false
}

func (r *Runtime) evalMember(node *ast.Node, env *Environment) (Value, bool) {
	object, ok := r.eval(node.Object, env)
	if !ok {
		return Value{}, false
	}
	property, ok := r.eval(node.Property, env)
	if !ok {
		// spec.md: no property means the MemberExpression just yields
		// the object's value.
		return object, true
	}

	if object.Kind == HTMLElementValue {
		return Value{Kind: HTMLElementValue, Element: object.Element, Property: property.String()}, true
	}

	if object.Kind == StringValue && object.Str == "document" {
		if property.Kind == StringValue && property.Str == "getElementById" {
			return stringValue(object.String() + "." + property.String()), true
		}
		return Value{Kind: HTMLElementValue, Element: r.domRoot, Property: property.String()}, true
	}

	if object.Kind == StringValue && object.Str == "location" {
		if property.Kind == StringValue && property.Str == "href" {
			return stringValue(r.url), true
		}
		if property.Kind == StringValue && property.Str == "hash" {
			for i, c := range r.url {
				if c == '#' {
					return stringValue(r.url[i:]), true
				}
			}
			return stringValue(""), true
		}
	}

	return stringValue(object.String() + "." + property.String()), true
}

func (r *Runtime) evalCall(node *ast.Node, env *Environment) (Value, bool) {
	callEnv := newEnvironment(env)
	callee, ok := r.eval(node.Callee, callEnv)
	if !ok {
		return Value{}, false
	}

	if result, ok, found := r.callWebAPI(callee, node.Arguments, callEnv); found {
		return result, ok
	}

	fn, ok := r.lookupFunction(callee)
	if !ok {
		tracing.T().Errorf("script runtime: call to unknown function %q", callee.String())
		panic("runtime: unknown function at call time")
	}
	if len(node.Arguments) != len(fn.Params) {
		tracing.T().Errorf("script runtime: argument count mismatch calling %q", fn.ID)
		panic("runtime: argument count mismatch")
	}

	fnEnv := newEnvironment(callEnv)
	for i, arg := range node.Arguments {
		v, _ := r.eval(arg, callEnv)
		fnEnv.set(fn.Params[i], v)
	}
	return r.eval(fn.Body, fnEnv)
}

func (r *Runtime) lookupFunction(callee Value) (Function, bool) {
	if callee.Kind != StringValue {
		return Function{}, false
	}
	for _, fn := range r.functions {
		if fn.ID == callee.Str {
			return fn, true
		}
	}
	return Function{}, false
}
