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

package vars

import (
	"github.com/wdamron/unify/atom"
)

// FreeVariables collects the free variables of a term in depth-first order.
// Variables under an unconsumed quotation are inert and variables bound by an
// inner scope link are not free.
func FreeVariables(h *atom.Hierarchy, t atom.Term) []*atom.Node {
	var out []*atom.Node
	seen := make(map[string]bool)
	freeWalk(h, t, atom.Quotation{}, nil, seen, &out)
	return out
}

// ContainsFree reports whether v occurs in tree as a live variable: unquoted
// and not bound by an inner scope.
func ContainsFree(h *atom.Hierarchy, tree atom.Term, v atom.Term) bool {
	for _, f := range FreeVariables(h, tree) {
		if atom.Equal(f, v) {
			return true
		}
	}
	return false
}

func freeWalk(h *atom.Hierarchy, t atom.Term, q atom.Quotation, bound map[string]bool, seen map[string]bool, out *[]*atom.Node) {
	switch t := t.(type) {
	case *atom.Node:
		if t.Type() == atom.Variable && q.IsUnquoted() && !bound[t.Key()] && !seen[t.Key()] {
			seen[t.Key()] = true
			*out = append(*out, t)
		}
	case *atom.Link:
		typ := t.Type()
		if q.Consumable(typ) && t.Arity() == 1 {
			freeWalk(h, t.Child(0), q.Update(typ), bound, seen, out)
			return
		}
		q = q.Update(typ)
		children := t.Outgoing()
		if h.IsA(typ, atom.Scope) && t.Arity() >= 2 && atom.IsDeclaration(t.Child(0)) {
			if inner, err := Parse(h, t.Child(0)); err == nil {
				shadowed := make(map[string]bool, len(bound)+inner.Len())
				for k := range bound {
					shadowed[k] = true
				}
				for _, v := range inner.Vars() {
					shadowed[v.Key()] = true
				}
				bound = shadowed
				children = children[1:]
			}
		}
		for _, c := range children {
			freeWalk(h, c, q, bound, seen, out)
		}
	}
}

// Alpha substitutes positional values into a scope-binding link, re-issuing
// binders under newDecl. The receiver supplies the variable order; values
// must align with it. Inner scopes that rebind one of the variables shadow
// the substitution below them.
func (vs *Variables) Alpha(scope *atom.Link, values []atom.Term, newDecl atom.Term) atom.Term {
	if len(values) != vs.Len() {
		panic("alpha conversion: positional values do not align with the declared variables")
	}
	m := atom.EmptyTermMap
	for i, e := range vs.order {
		m = m.Set(e.v, values[i])
	}
	out := scope.Outgoing()
	if len(out) > 0 && atom.IsDeclaration(out[0]) {
		out = out[1:]
	}
	children := make([]atom.Term, 0, len(out)+1)
	if newDecl != nil {
		children = append(children, newDecl)
	}
	for _, c := range out {
		children = append(children, vs.substitute(c, m))
	}
	return atom.NewLink(scope.Type(), children...)
}

func (vs *Variables) substitute(t atom.Term, m atom.TermMap) atom.Term {
	switch t := t.(type) {
	case *atom.Node:
		if val, ok := m.Get(t); ok {
			return val
		}
		return t
	case *atom.Link:
		if vs.h.IsA(t.Type(), atom.Scope) && t.Arity() >= 2 && atom.IsDeclaration(t.Child(0)) {
			if inner, err := Parse(vs.h, t.Child(0)); err == nil {
				m = withoutBound(m, inner)
			}
		}
		children := make([]atom.Term, t.Arity())
		for i, c := range t.Outgoing() {
			children[i] = vs.substitute(c, m)
		}
		return atom.NewLink(t.Type(), children...)
	}
	return t
}

func withoutBound(m atom.TermMap, bound *Variables) atom.TermMap {
	filtered := atom.EmptyTermMap
	m.Range(func(v, val atom.Term) bool {
		if !bound.Contains(v) {
			filtered = filtered.Set(v, val)
		}
		return true
	})
	return filtered
}
