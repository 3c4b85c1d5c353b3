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
	"github.com/pkg/errors"

	"github.com/wdamron/unify/atom"
	"github.com/wdamron/unify/vars"
)

// Unifier is a re-usable unification engine bound to a type hierarchy. A
// Unifier holds no per-call state; a single instance may serve concurrent
// unifications as long as the hierarchy is no longer being declared.
type Unifier struct {
	classes *atom.Hierarchy
}

// Create a unifier over the given hierarchy.
func New(classes *atom.Hierarchy) *Unifier { return &Unifier{classes: classes} }

// Hierarchy returns the injected type lattice.
func (u *Unifier) Hierarchy() *atom.Hierarchy { return u.classes }

// Unify computes the solutions making lhs and rhs structurally equal, with
// no variable declarations on either side.
func (u *Unifier) Unify(lhs, rhs atom.Term) SolutionSet {
	return u.unify(lhs, rhs, nil, nil, atom.Quotation{}, atom.Quotation{})
}

// UnifyDeclared computes the solutions making lhs and rhs structurally
// equal under the given variable declarations. A nil declaration term leaves
// that side's variables unrestricted.
func (u *Unifier) UnifyDeclared(lhs, rhs, lhsDecl, rhsDecl atom.Term) (SolutionSet, error) {
	ld, rd, err := u.parseDecls(lhsDecl, rhsDecl)
	if err != nil {
		return Unsatisfiable(), err
	}
	return u.unify(lhs, rhs, ld, rd, atom.Quotation{}, atom.Quotation{}), nil
}

func (u *Unifier) parseDecls(lhsDecl, rhsDecl atom.Term) (ld, rd *vars.Variables, err error) {
	if lhsDecl != nil {
		if ld, err = vars.Parse(u.classes, lhsDecl); err != nil {
			return nil, nil, errors.Wrap(err, "parsing left-hand declaration")
		}
	}
	if rhsDecl != nil {
		if rd, err = vars.Parse(u.classes, rhsDecl); err != nil {
			return nil, nil, errors.Wrap(err, "parsing right-hand declaration")
		}
	}
	return ld, rd, nil
}

func (u *Unifier) unify(lhs, rhs atom.Term, ld, rd *vars.Variables, lq, rq atom.Quotation) SolutionSet {
	// Base cases

	if lhs == nil || rhs == nil {
		return Unsatisfiable()
	}

	lt, rt := lhs.Type(), rhs.Type()
	_, lhsNode := lhs.(*atom.Node)
	_, rhsNode := rhs.(*atom.Node)

	// If one is a leaf: an unquoted variable on either side unifies,
	// otherwise the leaves must be equal.
	if lhsNode || rhsNode {
		if (lq.IsUnquoted() && lt == atom.Variable) || (rq.IsUnquoted() && rt == atom.Variable) {
			return u.varSolution(lhs, rhs, ld, rd, lq, rq)
		}
		return Trivial(atom.Equal(lhs, rhs))
	}

	// Recursive cases

	ll, rl := lhs.(*atom.Link), rhs.(*atom.Link)

	// Consume quotations before structural comparison.
	if lq.Consumable(lt) && rq.Consumable(rt) {
		return u.unify(ll.Child(0), rl.Child(0), ld, rd, lq.Update(lt), rq.Update(rt))
	}
	if lq.Consumable(lt) {
		return u.unify(ll.Child(0), rhs, ld, rd, lq.Update(lt), rq)
	}
	if rq.Consumable(rt) {
		return u.unify(lhs, rl.Child(0), ld, rd, lq, rq.Update(rt))
	}

	lq, rq = lq.Update(lt), rq.Update(rt)

	if lt != rt {
		return Unsatisfiable()
	}
	if ll.Arity() != rl.Arity() {
		return Unsatisfiable()
	}

	// The right-hand side decides the branch: it is the pattern shape the
	// permutation sweep runs against.
	if u.classes.IsUnordered(rt) {
		return u.unorderedUnify(ll, rl, ld, rd, lq, rq)
	}
	return u.orderedUnify(ll.Outgoing(), rl.Outgoing(), ld, rd, lq, rq)
}

// orderedUnify unifies children positionally, folding sub-solutions through
// join and stopping at the first failure.
func (u *Unifier) orderedUnify(lhs, rhs []atom.Term, ld, rd *vars.Variables, lq, rq atom.Quotation) SolutionSet {
	if len(lhs) != len(rhs) {
		panic("ordered unification requires equal arities")
	}
	sol := Trivial(true)
	for i := range lhs {
		sol = u.joinSolutions(sol, u.unify(lhs[i], rhs[i], ld, rd, lq, rq))
		if !sol.Satisfiable {
			break
		}
	}
	return sol
}

// unorderedUnify unifies multisets of children: every pairing of an lhs
// child against the first rhs child is tried, the remainders are solved
// recursively, and the satisfiable permutations are unioned. The set of
// partitions deduplicates symmetric permutations.
func (u *Unifier) unorderedUnify(lhs, rhs *atom.Link, ld, rd *vars.Variables, lq, rq atom.Quotation) SolutionSet {
	if lhs.Arity() != rhs.Arity() {
		panic("unordered unification requires equal arities")
	}
	if lhs.Arity() == 0 {
		return Trivial(true)
	}
	sol := Unsatisfiable()
	for i := 0; i < lhs.Arity(); i++ {
		head := u.unify(lhs.Child(i), rhs.Child(0), ld, rd, lq, rq)
		if !head.Satisfiable {
			continue
		}
		ltail := atom.NewLink(lhs.Type(), lhs.WithoutChild(i)...)
		rtail := atom.NewLink(rhs.Type(), rhs.WithoutChild(0)...)
		tail := u.unorderedUnify(ltail, rtail, ld, rd, lq, rq)
		perm := u.joinSolutions(head, tail)
		if perm.Satisfiable {
			sol.Satisfiable = true
			sol.Partitions = sol.Partitions.union(perm.Partitions)
		}
	}
	return sol
}

// varSolution builds the single-block solution for a leaf pair involving at
// least one live variable.
func (u *Unifier) varSolution(lhs, rhs atom.Term, ld, rd *vars.Variables, lq, rq atom.Quotation) SolutionSet {
	inter := u.typeIntersection(lhs, rhs, ld, rd, lq, rq)
	if inter == nil {
		return Unsatisfiable()
	}
	blk := Block{Members: atom.NewTermSet(lhs, rhs), Type: inter}
	return SolutionSet{Satisfiable: true, Partitions: NewPartitions(NewPartition(blk))}
}
