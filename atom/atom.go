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

// atom provides the term model shared by the unification engine: immutable
// nodes and links typed by codes from a subtype hierarchy.
package atom

import (
	"strconv"
	"strings"
)

// Term is the base interface for all terms. A term is either a *Node (leaf)
// or a *Link (composite); both are immutable after construction and carry a
// canonical key giving structural identity.
type Term interface {
	Type() Type
	// Key is the canonical structural identity of the term. Two terms are
	// structurally equal iff their keys are equal, and keys order terms
	// deterministically inside sorted containers.
	Key() string
}

// Node is a leaf term: a type code and an opaque name payload. Variables are
// nodes of type Variable.
type Node struct {
	typ  Type
	name string
	key  string
}

// Link is a composite term: a type code and an ordered sequence of children.
// Whether the children are semantically ordered is a property of the type
// within a Hierarchy, not of the Link itself.
type Link struct {
	typ Type
	out []Term
	key string
}

// Create a leaf term.
func NewNode(t Type, name string) *Node {
	return &Node{typ: t, name: name, key: strconv.Itoa(int(t)) + ":" + strconv.Quote(name)}
}

// Create a variable node.
func NewVariable(name string) *Node { return NewNode(Variable, name) }

// Create a composite term. The children slice is not copied; callers must not
// mutate it afterwards.
func NewLink(t Type, out ...Term) *Link {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(strconv.Itoa(int(t)))
	for _, c := range out {
		sb.WriteByte(' ')
		sb.WriteString(c.Key())
	}
	sb.WriteByte(')')
	return &Link{typ: t, out: out, key: sb.String()}
}

func (n *Node) Type() Type  { return n.typ }
func (n *Node) Key() string { return n.key }

// Name returns the node's payload; for variables, the variable name.
func (n *Node) Name() string { return n.name }

func (l *Link) Type() Type  { return l.typ }
func (l *Link) Key() string { return l.key }

// Arity returns the number of children.
func (l *Link) Arity() int { return len(l.out) }

// Child returns the i-th child.
func (l *Link) Child(i int) Term { return l.out[i] }

// Outgoing returns the child sequence. Callers must not mutate it.
func (l *Link) Outgoing() []Term { return l.out }

// WithoutChild returns a copy of the child sequence with the i-th child
// erased.
func (l *Link) WithoutChild(i int) []Term {
	out := make([]Term, 0, len(l.out)-1)
	out = append(out, l.out[:i]...)
	return append(out, l.out[i+1:]...)
}

// Equal reports structural equality. Nil terms are only equal to nil.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// IsVariable reports whether t is a variable node.
func IsVariable(t Term) bool {
	if t == nil {
		return false
	}
	_, isNode := t.(*Node)
	return isNode && t.Type() == Variable
}

// IsDeclaration reports whether t has one of the variable-declaration shapes
// accepted by the vars package: a bare variable, a typed variable, or a
// variable list.
func IsDeclaration(t Term) bool {
	if t == nil {
		return false
	}
	switch t.Type() {
	case Variable, TypedVariable, VariableList:
		return true
	}
	return false
}
