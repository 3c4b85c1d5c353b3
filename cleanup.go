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

package unify

import (
	"github.com/wdamron/unify/atom"
	"github.com/wdamron/unify/vars"
)

// IsConnector reports whether t is a pattern-matching connector type.
// LocalQuote wrappers exist to protect exactly these nodes, which is why the
// cleanup pass preserves them.
func IsConnector(t atom.Type) bool {
	return t == atom.And || t == atom.Or || t == atom.Not
}

// consumeIllQuotations removes Quote/Unquote wrappers of a substituted scope
// that no longer quote anything live. A Quote over an inner scope that binds
// one of bound's variables is preserved literally, and every Unquote below
// it is preserved as well; LocalQuote wrappers are always preserved. The
// declaration child passes through untouched.
func (u *Unifier) consumeIllQuotations(bound *vars.Variables, bl *atom.Link) *atom.Link {
	out := bl.Outgoing()
	children := make([]atom.Term, len(out))
	for i, c := range out {
		if i == 0 && atom.IsDeclaration(c) {
			children[i] = c
			continue
		}
		children[i] = u.consumeQuotations(bound, c, atom.Quotation{}, false)
	}
	return atom.NewLink(bl.Type(), children...)
}

func (u *Unifier) consumeQuotations(bound *vars.Variables, t atom.Term, q atom.Quotation, escape bool) atom.Term {
	l, ok := t.(*atom.Link)
	if !ok {
		return t
	}

	typ := l.Type()
	if q.Consumable(typ) && l.Arity() == 1 {
		switch typ {
		case atom.Quote:
			child := l.Child(0)
			if !u.scopeBindsAny(bound, child) {
				return u.consumeQuotations(bound, child, q.Update(typ), escape)
			}
			// The quote protects a capture; keep it and escape below.
			escape = true
		case atom.Unquote:
			if !escape {
				return u.consumeQuotations(bound, l.Child(0), q.Update(typ), escape)
			}
		}
		// LocalQuote wrappers protect connectors; keep them as-is.
	}

	q = q.Update(typ)
	children := make([]atom.Term, l.Arity())
	for i, c := range l.Outgoing() {
		children[i] = u.consumeQuotations(bound, c, q, escape)
	}
	if u.classes.IsA(typ, atom.Scope) {
		return u.newScope(typ, children)
	}
	return atom.NewLink(typ, children...)
}

// scopeBindsAny reports whether t is a scope-binding link whose declaration
// binds one of bound's variables. A scope with a declaration that does not
// parse is mis-shaped input.
func (u *Unifier) scopeBindsAny(bound *vars.Variables, t atom.Term) bool {
	l, ok := t.(*atom.Link)
	if !ok || !u.classes.IsA(l.Type(), atom.Scope) || l.Arity() == 0 {
		return false
	}
	decl := l.Child(0)
	if !atom.IsDeclaration(decl) {
		return false
	}
	inner, err := vars.Parse(u.classes, decl)
	if err != nil {
		panic("mis-shaped scope declaration: " + err.Error())
	}
	for _, v := range inner.Vars() {
		if bound.Contains(v) {
			return true
		}
	}
	return false
}

// newScope is the scope-aware link constructor of the cleanup pass: it
// validates the declaration child before rebuilding.
func (u *Unifier) newScope(t atom.Type, children []atom.Term) *atom.Link {
	if len(children) > 0 && atom.IsDeclaration(children[0]) {
		if _, err := vars.Parse(u.classes, children[0]); err != nil {
			panic("mis-shaped scope declaration: " + err.Error())
		}
	}
	return atom.NewLink(t, children...)
}
