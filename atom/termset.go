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

package atom

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

var emptySorted = immutable.NewSortedMap(nil)

// EmptyTermSet is the persistent empty set of terms.
var EmptyTermSet = TermSet{emptySorted}

// TermSet is a persistent set of terms ordered by canonical key.
type TermSet struct {
	m *immutable.SortedMap
}

// Create a term set with the given members.
func NewTermSet(ts ...Term) TermSet {
	m := emptySorted
	for _, t := range ts {
		m = m.Set(t.Key(), t)
	}
	return TermSet{m}
}

func (s TermSet) sorted() *immutable.SortedMap {
	if s.m == nil {
		return emptySorted
	}
	return s.m
}

// Get the number of members.
func (s TermSet) Len() int { return s.sorted().Len() }

func (s TermSet) Contains(t Term) bool {
	_, ok := s.sorted().Get(t.Key())
	return ok
}

// Add returns a set extended with t, without mutating s.
func (s TermSet) Add(t Term) TermSet { return TermSet{s.sorted().Set(t.Key(), t)} }

// Union returns the union of both sets.
func (s TermSet) Union(o TermSet) TermSet {
	a, b := s.sorted(), o.sorted()
	if a.Len() < b.Len() {
		a, b = b, a
	}
	it := b.Iterator()
	for !it.Done() {
		k, v := it.Next()
		a = a.Set(k, v)
	}
	return TermSet{a}
}

// Intersects reports whether the sets share a member.
func (s TermSet) Intersects(o TermSet) bool {
	a, b := s.sorted(), o.sorted()
	if a.Len() > b.Len() {
		a, b = b, a
	}
	it := a.Iterator()
	for !it.Done() {
		k, _ := it.Next()
		if _, ok := b.Get(k); ok {
			return true
		}
	}
	return false
}

// Iterate over members in key order. If f returns false, iteration stops.
func (s TermSet) Range(f func(Term) bool) {
	it := s.sorted().Iterator()
	for !it.Done() {
		_, v := it.Next()
		if !f(v.(Term)) {
			return
		}
	}
}

// Slice returns the members in key order.
func (s TermSet) Slice() []Term {
	out := make([]Term, 0, s.Len())
	s.Range(func(t Term) bool {
		out = append(out, t)
		return true
	})
	return out
}

// Key is the canonical identity of the set: member keys joined in order.
func (s TermSet) Key() string {
	var sb strings.Builder
	sb.WriteByte('{')
	it := s.sorted().Iterator()
	for !it.Done() {
		k, _ := it.Next()
		sb.WriteString(k.(string))
		sb.WriteByte(' ')
	}
	sb.WriteByte('}')
	return sb.String()
}

// EmptyTermMap is the persistent empty variable-to-term mapping.
var EmptyTermMap = TermMap{emptySorted}

type binding struct {
	v   Term
	val Term
}

// TermMap is a persistent mapping from variables to terms, ordered by the
// variables' canonical keys.
type TermMap struct {
	m *immutable.SortedMap
}

func (m TermMap) sorted() *immutable.SortedMap {
	if m.m == nil {
		return emptySorted
	}
	return m.m
}

// Get the number of entries.
func (m TermMap) Len() int { return m.sorted().Len() }

// Get the term bound to variable v.
func (m TermMap) Get(v Term) (Term, bool) {
	b, ok := m.sorted().Get(v.Key())
	if !ok {
		return nil, false
	}
	return b.(binding).val, true
}

// Set returns a mapping extended with v -> val, without mutating m.
func (m TermMap) Set(v, val Term) TermMap {
	return TermMap{m.sorted().Set(v.Key(), binding{v, val})}
}

// Iterate over entries in key order. If f returns false, iteration stops.
func (m TermMap) Range(f func(v, val Term) bool) {
	it := m.sorted().Iterator()
	for !it.Done() {
		_, b := it.Next()
		if !f(b.(binding).v, b.(binding).val) {
			return
		}
	}
}

// Key is the canonical identity of the mapping.
func (m TermMap) Key() string {
	var sb strings.Builder
	sb.WriteByte('{')
	m.Range(func(v, val Term) bool {
		sb.WriteString(v.Key())
		sb.WriteString("->")
		sb.WriteString(val.Key())
		sb.WriteByte(' ')
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
