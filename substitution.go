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
	"sort"

	"github.com/pkg/errors"

	"github.com/wdamron/unify/atom"
	"github.com/wdamron/unify/vars"
)

// TypedSubstitution binds the variables of one partition to their chosen
// representatives, together with the merged declaration covering the
// remaining free variables.
type TypedSubstitution struct {
	Bindings atom.TermMap
	Decl     *vars.Variables
}

func (ts TypedSubstitution) key() string {
	k := ts.Bindings.Key()
	if ts.Decl != nil {
		if d := ts.Decl.Decl(); d != nil {
			k += "/" + d.Key()
		}
	}
	return k
}

// dummyTop is the sentinel starting point for representative selection:
// every term inherits a variable, so the first admissible member replaces
// it.
var dummyTop = atom.NewVariable("__dummy_top__")

// TypedSubstitutions projects a satisfiable solution into one typed
// substitution per partition. Each block binds its variables to the block's
// least abstract member; variables are admitted as representatives only when
// they occur live in pre, the term the caller designates as having
// precedence. Panics when sol is unsatisfiable.
func (u *Unifier) TypedSubstitutions(sol SolutionSet, pre, lhs, rhs, lhsDecl, rhsDecl atom.Term) ([]TypedSubstitution, error) {
	if !sol.Satisfiable {
		panic("typed substitutions require a satisfiable solution")
	}
	ld, rd, err := u.parseDecls(lhsDecl, rhsDecl)
	if err != nil {
		return nil, err
	}
	if lhs != nil && ld == nil {
		ld = vars.FromFree(u.classes, lhs)
	}
	if rhs != nil && rd == nil {
		rd = vars.FromFree(u.classes, rhs)
	}
	merged := u.mergeDecls(rd, ld)

	var out []TypedSubstitution
	seen := make(map[string]bool)
	sol.Partitions.Range(func(p Partition) bool {
		ts := TypedSubstitution{Bindings: u.projectPartition(p, pre), Decl: merged}
		if k := ts.key(); !seen[k] {
			seen[k] = true
			out = append(out, ts)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].key() < out[j].key() })
	return out, nil
}

func (u *Unifier) projectPartition(p Partition, pre atom.Term) atom.TermMap {
	bindings := atom.EmptyTermMap
	p.Range(func(blk Block) bool {
		least := atom.Term(dummyTop)
		blk.Members.Range(func(m atom.Term) bool {
			if u.inheritTerms(m, least) &&
				(!atom.IsVariable(m) || (pre != nil && vars.ContainsFree(u.classes, pre, m))) {
				least = m
			}
			return true
		})
		blk.Members.Range(func(m atom.Term) bool {
			if atom.IsVariable(m) {
				bindings = bindings.Set(m, least)
			}
			return true
		})
		return true
	})
	return bindings
}

// mergeDecls is the declaration merge of the projector: the left-hand
// declaration keeps its restrictions when a name collides.
func (u *Unifier) mergeDecls(rd, ld *vars.Variables) *vars.Variables {
	switch {
	case rd == nil:
		return ld
	case ld == nil:
		return rd
	}
	return ld.Extend(rd)
}

// Substitute applies one typed substitution to a scope-binding rewrite
// package: the rule's variables are bound positionally (unbound variables
// map to themselves), the scope is alpha-converted under the substitution's
// declaration, and inert quotations are cleaned up.
func (u *Unifier) Substitute(rule *atom.Link, ts TypedSubstitution) (atom.Term, error) {
	rv, err := u.scopeVariables(rule)
	if err != nil {
		return nil, err
	}
	values := rv.MakeValues(ts.Bindings)
	var newDecl atom.Term
	if ts.Decl != nil {
		newDecl = ts.Decl.Decl()
	}
	converted := rv.Alpha(rule, values, newDecl).(*atom.Link)

	bound := ts.Decl
	if bound == nil {
		bound = vars.FromFree(u.classes, converted)
	}
	return u.consumeIllQuotations(bound, converted), nil
}

// scopeVariables resolves the variables bound by a scope-binding link: its
// declaration child when present, else the free variables of its body.
func (u *Unifier) scopeVariables(rule *atom.Link) (*vars.Variables, error) {
	if rule.Arity() > 0 && atom.IsDeclaration(rule.Child(0)) {
		rv, err := vars.Parse(u.classes, rule.Child(0))
		if err != nil {
			return nil, errors.Wrap(err, "parsing rule declaration")
		}
		return rv, nil
	}
	return vars.FromFree(u.classes, rule), nil
}
