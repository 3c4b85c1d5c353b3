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

// joinSolutions combines the solutions of two independent sub-problems. The
// unsatisfiable solution absorbs; a satisfiable solution with no partitions
// is the identity; otherwise every partition of one side is crossed with
// every partition of the other and the failures are dropped.
func (u *Unifier) joinSolutions(lhs, rhs SolutionSet) SolutionSet {
	if !lhs.Satisfiable || !rhs.Satisfiable {
		return Unsatisfiable()
	}
	if rhs.Partitions.Len() == 0 {
		return lhs
	}
	if lhs.Partitions.Len() == 0 {
		return rhs
	}
	result := SolutionSet{Partitions: NoPartitions}
	rhs.Partitions.Range(func(rp Partition) bool {
		result.Partitions = result.Partitions.union(u.joinPartitions(lhs.Partitions, rp))
		return true
	})
	// An empty cross-join of non-empty inputs means every pairing clashed.
	result.Satisfiable = result.Partitions.Len() > 0
	return result
}

// joinPartitions joins one partition into each member of a partition set,
// keeping the members that remain coherent.
func (u *Unifier) joinPartitions(lhs Partitions, rhs Partition) Partitions {
	if rhs.Len() == 0 {
		return lhs
	}
	if lhs.Len() == 0 {
		return NewPartitions(rhs)
	}
	result := NoPartitions
	lhs.Range(func(p Partition) bool {
		if jo, ok := u.joinPartition(p, rhs); ok {
			result = result.insert(jo)
		}
		return true
	})
	return result
}

// joinPartition merges two coherent assignments. Every rhs block is absorbed
// in turn; absorption joins it with all blocks it overlaps, so the result
// stays pairwise disjoint. Reports ok=false when a merged block becomes
// unsatisfiable.
func (u *Unifier) joinPartition(lhs, rhs Partition) (Partition, bool) {
	if lhs.Len() == 0 {
		return rhs, true
	}
	if rhs.Len() == 0 {
		return lhs, true
	}
	result := lhs
	for _, blk := range rhs.Blocks() {
		var ok bool
		if result, ok = u.absorb(result, blk); !ok {
			return EmptyPartition, false
		}
	}
	return result, true
}

// absorb inserts a block into a partition, merging it with every block
// sharing a member. Collecting all overlapping blocks at once keeps the
// disjointness invariant without a second pass: any block overlapping the
// merged result must already overlap one of the collected blocks.
func (u *Unifier) absorb(p Partition, blk Block) (Partition, bool) {
	var overlapping []Block
	p.Range(func(c Block) bool {
		if blk.Members.Intersects(c.Members) {
			overlapping = append(overlapping, c)
		}
		return true
	})
	merged := blk
	for _, c := range overlapping {
		merged = u.joinBlocks(merged, c)
		if !merged.Satisfiable() {
			return EmptyPartition, false
		}
	}
	for _, c := range overlapping {
		p = p.erase(c)
	}
	return p.insert(merged), true
}

// joinBlocks unions the member sets and intersects the block types. The
// result is unsatisfiable when the intersection is undefined.
func (u *Unifier) joinBlocks(lhs, rhs Block) Block {
	return Block{
		Members: lhs.Members.Union(rhs.Members),
		Type:    u.typeIntersection(lhs.Type, rhs.Type, nil, nil, atom.Quotation{}, atom.Quotation{}),
	}
}

// typeIntersection approximates the greatest lower bound of two terms in the
// type lattice: whichever side inherits the other, or nil when neither does.
func (u *Unifier) typeIntersection(lhs, rhs atom.Term, ld, rd *vars.Variables, lq, rq atom.Quotation) atom.Term {
	if lhs == nil || rhs == nil {
		return nil
	}
	if u.inherit(lhs, rhs, ld, rd, lq, rq) {
		return lhs
	}
	if u.inherit(rhs, lhs, rd, ld, rq, lq) {
		return rhs
	}
	return nil
}

// inherit reports whether lhs is admissible wherever rhs is: the terms are
// equal after consuming quotations, or both are live variables whose type
// unions nest, or rhs is a live declared variable admitting lhs.
func (u *Unifier) inherit(lhs, rhs atom.Term, ld, rd *vars.Variables, lq, rq atom.Quotation) bool {
	lt, rt := lhs.Type(), rhs.Type()

	if lq.Consumable(lt) {
		return u.inherit(lhs.(*atom.Link).Child(0), rhs, ld, rd, lq.Update(lt), rq)
	}
	if rq.Consumable(rt) {
		return u.inherit(lhs, rhs.(*atom.Link).Child(0), ld, rd, lq, rq.Update(rt))
	}

	if atom.Equal(lhs, rhs) {
		return true
	}

	if lq.IsUnquoted() && lt == atom.Variable && rq.IsUnquoted() && rt == atom.Variable {
		return atom.Inherits(u.classes, u.unionType(lhs, ld), u.unionType(rhs, rd))
	}

	if rq.IsUnquoted() {
		return u.declared(rhs, rd).IsType(rhs, lhs)
	}

	return false
}

// inheritTerms is the declaration-free ordering used for representative
// selection: anything inherits a variable, and a term inherits itself.
func (u *Unifier) inheritTerms(lhs, rhs atom.Term) bool {
	return atom.IsVariable(rhs) || atom.Equal(lhs, rhs)
}

func (u *Unifier) unionType(t atom.Term, d *vars.Variables) atom.TypeSet {
	if d == nil {
		return atom.TopSet
	}
	return d.UnionType(t)
}

// declared resolves the effective declaration for a term: the given one, or
// one synthesised from the term's free variables.
func (u *Unifier) declared(t atom.Term, d *vars.Variables) *vars.Variables {
	if d != nil {
		return d
	}
	return vars.FromFree(u.classes, t)
}
