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
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/unify/atom"
)

var emptySorted = immutable.NewSortedMap(nil)

// Block is a set of terms known to be mutually unified, together with the
// most specific term under which every member is valid. A nil Type marks the
// unsatisfiable block.
type Block struct {
	Members atom.TermSet
	Type    atom.Term
}

// Satisfiable reports whether the block's type is defined.
func (b Block) Satisfiable() bool { return b.Type != nil }

func (b Block) key() string {
	if b.Type == nil {
		return b.Members.Key() + "::!"
	}
	return b.Members.Key() + "::" + b.Type.Key()
}

// EmptyPartition is the partition with no blocks.
var EmptyPartition = Partition{emptySorted}

// Partition is a persistent set of blocks whose member sets are pairwise
// disjoint: one coherent equivalence-class assignment.
type Partition struct {
	m *immutable.SortedMap
}

// Create a partition holding the given blocks.
func NewPartition(blocks ...Block) Partition {
	m := emptySorted
	for _, b := range blocks {
		m = m.Set(b.key(), b)
	}
	return Partition{m}
}

func (p Partition) sorted() *immutable.SortedMap {
	if p.m == nil {
		return emptySorted
	}
	return p.m
}

// Len returns the number of blocks.
func (p Partition) Len() int { return p.sorted().Len() }

func (p Partition) insert(b Block) Partition { return Partition{p.sorted().Set(b.key(), b)} }

func (p Partition) erase(b Block) Partition { return Partition{p.sorted().Delete(b.key())} }

// Iterate over blocks in canonical order. If f returns false, iteration
// stops.
func (p Partition) Range(f func(Block) bool) {
	it := p.sorted().Iterator()
	for !it.Done() {
		_, v := it.Next()
		if !f(v.(Block)) {
			return
		}
	}
}

// Blocks returns the blocks in canonical order.
func (p Partition) Blocks() []Block {
	out := make([]Block, 0, p.Len())
	p.Range(func(b Block) bool {
		out = append(out, b)
		return true
	})
	return out
}

func (p Partition) key() string {
	var sb strings.Builder
	sb.WriteByte('[')
	it := p.sorted().Iterator()
	for !it.Done() {
		k, _ := it.Next()
		sb.WriteString(k.(string))
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}

// NoPartitions is the empty set of partitions.
var NoPartitions = Partitions{emptySorted}

// Partitions is a persistent set of partitions, deduplicated by canonical
// identity, so permutation-equivalent assignments collapse.
type Partitions struct {
	m *immutable.SortedMap
}

// Create a partition set holding the given partitions.
func NewPartitions(ps ...Partition) Partitions {
	m := emptySorted
	for _, p := range ps {
		m = m.Set(p.key(), p)
	}
	return Partitions{m}
}

func (ps Partitions) sorted() *immutable.SortedMap {
	if ps.m == nil {
		return emptySorted
	}
	return ps.m
}

// Len returns the number of distinct partitions.
func (ps Partitions) Len() int { return ps.sorted().Len() }

func (ps Partitions) insert(p Partition) Partitions {
	return Partitions{ps.sorted().Set(p.key(), p)}
}

func (ps Partitions) union(o Partitions) Partitions {
	m := ps.sorted()
	it := o.sorted().Iterator()
	for !it.Done() {
		k, v := it.Next()
		m = m.Set(k, v)
	}
	return Partitions{m}
}

// Iterate over partitions in canonical order. If f returns false, iteration
// stops.
func (ps Partitions) Range(f func(Partition) bool) {
	it := ps.sorted().Iterator()
	for !it.Done() {
		_, v := it.Next()
		if !f(v.(Partition)) {
			return
		}
	}
}

// Slice returns the partitions in canonical order.
func (ps Partitions) Slice() []Partition {
	out := make([]Partition, 0, ps.Len())
	ps.Range(func(p Partition) bool {
		out = append(out, p)
		return true
	})
	return out
}

// SolutionSet is the result of unification: whether the inputs unify at all,
// and the distinct coherent assignments under which they do. The
// unsatisfiable solution has no partitions and absorbs through joins; the
// trivially satisfiable solution has no partitions and is the join identity.
type SolutionSet struct {
	Satisfiable bool
	Partitions  Partitions
}

// Unsatisfiable returns the failure solution.
func Unsatisfiable() SolutionSet { return SolutionSet{} }

// Trivial returns a solution with no constraints: satisfiable (or not) with
// no partitions.
func Trivial(satisfiable bool) SolutionSet { return SolutionSet{Satisfiable: satisfiable} }
