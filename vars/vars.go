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

// vars implements the variable-declaration layer: parsing declaration terms
// into ordered sets of typed variables, free-variable collection, type
// restriction checks, and alpha-conversion of scope-binding terms.
package vars

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/wdamron/unify/atom"
)

type entry struct {
	v          *atom.Node
	types      atom.TypeSet
	restricted bool
}

// Variables is an ordered set of declared variables with optional type-union
// restrictions, validated against a type hierarchy.
type Variables struct {
	h     *atom.Hierarchy
	order []entry
	index map[string]int
}

// Parse a declaration term: a VariableList, a bare Variable, or a
// TypedVariable. A nil declaration yields an empty set. Duplicate names keep
// the first declaration.
func Parse(h *atom.Hierarchy, decl atom.Term) (*Variables, error) {
	vs := &Variables{h: h, index: make(map[string]int)}
	if decl == nil {
		return vs, nil
	}
	switch decl.Type() {
	case atom.Variable:
		vs.add(decl.(*atom.Node), nil, false)
		return vs, nil
	case atom.TypedVariable:
		v, ts, err := parseTyped(h, decl)
		if err != nil {
			return nil, err
		}
		vs.add(v, ts, true)
		return vs, nil
	case atom.VariableList:
		l := decl.(*atom.Link)
		var errs *multierror.Error
		for i, c := range l.Outgoing() {
			switch c.Type() {
			case atom.Variable:
				vs.add(c.(*atom.Node), nil, false)
			case atom.TypedVariable:
				v, ts, err := parseTyped(h, c)
				if err != nil {
					errs = multierror.Append(errs, errors.Wrapf(err, "entry %d", i))
					continue
				}
				vs.add(v, ts, true)
			default:
				errs = multierror.Append(errs, errors.Errorf("entry %d: not a variable: %s", i, atom.TermString(c)))
			}
		}
		return vs, errs.ErrorOrNil()
	}
	return nil, errors.Errorf("not a variable declaration: %s", atom.TermString(decl))
}

func parseTyped(h *atom.Hierarchy, t atom.Term) (*atom.Node, atom.TypeSet, error) {
	l, ok := t.(*atom.Link)
	if !ok || l.Arity() != 2 {
		return nil, nil, errors.Errorf("malformed typed variable: %s", atom.TermString(t))
	}
	v, ok := l.Child(0).(*atom.Node)
	if !ok || v.Type() != atom.Variable {
		return nil, nil, errors.Errorf("typed variable does not bind a variable: %s", atom.TermString(t))
	}
	var codes []atom.Type
	switch restr := l.Child(1); restr.Type() {
	case atom.TypeNode:
		c, err := resolve(h, restr)
		if err != nil {
			return nil, nil, err
		}
		codes = append(codes, c)
	case atom.TypeChoice:
		for _, alt := range restr.(*atom.Link).Outgoing() {
			c, err := resolve(h, alt)
			if err != nil {
				return nil, nil, err
			}
			codes = append(codes, c)
		}
	default:
		return nil, nil, errors.Errorf("unrecognized type restriction: %s", atom.TermString(restr))
	}
	return v, atom.NewTypeSet(codes...), nil
}

func resolve(h *atom.Hierarchy, t atom.Term) (atom.Type, error) {
	n, ok := t.(*atom.Node)
	if !ok || n.Type() != atom.TypeNode {
		return 0, errors.Errorf("not a type designator: %s", atom.TermString(t))
	}
	c, ok := h.TypeNamed(n.Name())
	if !ok {
		return 0, errors.Errorf("unknown type name %q", n.Name())
	}
	return c, nil
}

// FromFree synthesises an unrestricted declaration from the free variables
// of a term.
func FromFree(h *atom.Hierarchy, t atom.Term) *Variables {
	vs := &Variables{h: h, index: make(map[string]int)}
	for _, v := range FreeVariables(h, t) {
		vs.add(v, nil, false)
	}
	return vs
}

func (vs *Variables) add(v *atom.Node, ts atom.TypeSet, restricted bool) {
	if _, ok := vs.index[v.Key()]; ok {
		return
	}
	vs.index[v.Key()] = len(vs.order)
	vs.order = append(vs.order, entry{v: v, types: ts, restricted: restricted})
}

// Len returns the number of declared variables.
func (vs *Variables) Len() int { return len(vs.order) }

// Contains reports whether v is declared.
func (vs *Variables) Contains(v atom.Term) bool {
	_, ok := vs.index[v.Key()]
	return ok
}

// Vars returns the declared variables in declaration order.
func (vs *Variables) Vars() []*atom.Node {
	out := make([]*atom.Node, len(vs.order))
	for i, e := range vs.order {
		out[i] = e.v
	}
	return out
}

// IsType reports whether val satisfies v's declared restriction. Undeclared
// variables admit nothing; unrestricted variables admit everything.
func (vs *Variables) IsType(v, val atom.Term) bool {
	i, ok := vs.index[v.Key()]
	if !ok || val == nil {
		return false
	}
	e := vs.order[i]
	if !e.restricted {
		return true
	}
	return e.types.Admits(vs.h, val.Type())
}

// UnionType returns v's declared type union, or the unrestricted union when
// v is undeclared or unrestricted.
func (vs *Variables) UnionType(v atom.Term) atom.TypeSet {
	if i, ok := vs.index[v.Key()]; ok && vs.order[i].restricted {
		return vs.order[i].types
	}
	return atom.TopSet
}

// Extend returns the left-biased union of both sets: entries of vs keep
// their restriction when a name collides, entries of other are appended.
func (vs *Variables) Extend(other *Variables) *Variables {
	out := &Variables{h: vs.h, index: make(map[string]int, len(vs.order))}
	for _, e := range vs.order {
		out.add(e.v, e.types, e.restricted)
	}
	if other != nil {
		for _, e := range other.order {
			out.add(e.v, e.types, e.restricted)
		}
	}
	return out
}

// MakeValues projects a variable-to-term mapping onto the declaration order.
// Unmapped variables map to themselves.
func (vs *Variables) MakeValues(m atom.TermMap) []atom.Term {
	out := make([]atom.Term, len(vs.order))
	for i, e := range vs.order {
		if val, ok := m.Get(e.v); ok {
			out[i] = val
		} else {
			out[i] = e.v
		}
	}
	return out
}

// Decl re-serialises the set as a declaration term, or nil when empty.
func (vs *Variables) Decl() atom.Term {
	if len(vs.order) == 0 {
		return nil
	}
	out := make([]atom.Term, len(vs.order))
	for i, e := range vs.order {
		if !e.restricted {
			out[i] = e.v
			continue
		}
		alts := make([]atom.Term, len(e.types))
		for j, c := range e.types {
			alts[j] = atom.NewNode(atom.TypeNode, vs.h.Name(c))
		}
		if len(alts) == 1 {
			out[i] = atom.NewLink(atom.TypedVariable, e.v, alts[0])
		} else {
			out[i] = atom.NewLink(atom.TypedVariable, e.v, atom.NewLink(atom.TypeChoice, alts...))
		}
	}
	return atom.NewLink(atom.VariableList, out...)
}
