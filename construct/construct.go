// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// construct provides terse constructors for building terms, primarily for
// tests and embedders.
package construct

import (
	"github.com/wdamron/unify/atom"
)

// Nodes:

// Leaf term with an explicit type code.
func Node(t atom.Type, name string) *atom.Node {
	return atom.NewNode(t, name)
}

// Variable: `$x`
func Var(name string) *atom.Node {
	return atom.NewVariable(name)
}

// Concept node: `(Concept "a")`
func Concept(name string) *atom.Node {
	return atom.NewNode(atom.Concept, name)
}

// Number node: `(Number "42")`
func Number(name string) *atom.Node {
	return atom.NewNode(atom.Number, name)
}

// Predicate node: `(Predicate "p")`
func Predicate(name string) *atom.Node {
	return atom.NewNode(atom.Predicate, name)
}

// Type designator node: `(Type "Concept")`
func TypeOf(name string) *atom.Node {
	return atom.NewNode(atom.TypeNode, name)
}

// Links:

// Composite term with an explicit type code.
func Link(t atom.Type, out ...atom.Term) *atom.Link {
	return atom.NewLink(t, out...)
}

// Ordered list: `(List a b)`
func ListOf(out ...atom.Term) *atom.Link {
	return atom.NewLink(atom.List, out...)
}

// Unordered set: `(Set a b)`
func SetOf(out ...atom.Term) *atom.Link {
	return atom.NewLink(atom.Set, out...)
}

// Unordered conjunction: `(And a b)`
func AndOf(out ...atom.Term) *atom.Link {
	return atom.NewLink(atom.And, out...)
}

// Unordered disjunction: `(Or a b)`
func OrOf(out ...atom.Term) *atom.Link {
	return atom.NewLink(atom.Or, out...)
}

// Negation: `(Not a)`
func NotOf(x atom.Term) *atom.Link {
	return atom.NewLink(atom.Not, x)
}

// Inheritance: `(Inheritance child parent)`
func InheritanceOf(child, parent atom.Term) *atom.Link {
	return atom.NewLink(atom.Inheritance, child, parent)
}

// Evaluation: `(Evaluation p args)`
func EvaluationOf(p atom.Term, args ...atom.Term) *atom.Link {
	out := append([]atom.Term{p}, args...)
	return atom.NewLink(atom.Evaluation, out...)
}

// Quotations:

// Quote wrapper: variables below are inert.
func Quote(x atom.Term) *atom.Link {
	return atom.NewLink(atom.Quote, x)
}

// Unquote wrapper: re-enables variables below a Quote.
func Unquote(x atom.Term) *atom.Link {
	return atom.NewLink(atom.Unquote, x)
}

// LocalQuote wrapper: quotes a single node.
func LocalQuote(x atom.Term) *atom.Link {
	return atom.NewLink(atom.LocalQuote, x)
}

// Declarations:

// Variable list: `(VariableList $x $y)`
func VarList(out ...atom.Term) *atom.Link {
	return atom.NewLink(atom.VariableList, out...)
}

// Typed variable with a single allowed type: `(TypedVariable $x (Type "Concept"))`
func TVar(name string, typeName string) *atom.Link {
	return atom.NewLink(atom.TypedVariable, Var(name), TypeOf(typeName))
}

// Typed variable with a union of allowed types.
func TVarChoice(name string, typeNames ...string) *atom.Link {
	alts := make([]atom.Term, len(typeNames))
	for i, tn := range typeNames {
		alts[i] = TypeOf(tn)
	}
	return atom.NewLink(atom.TypedVariable, Var(name), atom.NewLink(atom.TypeChoice, alts...))
}

// Scopes:

// Scope link: `(Scope decl body)`
func ScopeOf(decl, body atom.Term) *atom.Link {
	return atom.NewLink(atom.Scope, decl, body)
}

// Bind link with a declaration: `(Bind decl pattern rewrite)`
func Bind(decl, pattern, rewrite atom.Term) *atom.Link {
	return atom.NewLink(atom.Bind, decl, pattern, rewrite)
}

// Bind link with implicit variables: `(Bind pattern rewrite)`
func BindImplicit(pattern, rewrite atom.Term) *atom.Link {
	return atom.NewLink(atom.Bind, pattern, rewrite)
}
