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
	"github.com/mpvl/unique"
)

// TypeSet is a canonical union of atom-type codes: sorted, without
// duplicates. The zero value is the empty set.
type TypeSet []Type

type typeSlice struct{ p *[]Type }

func (s typeSlice) Len() int           { return len(*s.p) }
func (s typeSlice) Less(i, j int) bool { return (*s.p)[i] < (*s.p)[j] }
func (s typeSlice) Swap(i, j int)      { (*s.p)[i], (*s.p)[j] = (*s.p)[j], (*s.p)[i] }
func (s typeSlice) Truncate(n int)     { *s.p = (*s.p)[:n] }

// Create a canonical type union from the given codes.
func NewTypeSet(ts ...Type) TypeSet {
	u := append(TypeSet(nil), ts...)
	unique.Sort(typeSlice{(*[]Type)(&u)})
	return u
}

// TopSet is the unrestricted union: any atom.
var TopSet = NewTypeSet(Top)

func (u TypeSet) Contains(t Type) bool {
	for _, m := range u {
		if m == t {
			return true
		}
	}
	return false
}

// Admits reports whether some member of the union admits t under h.
func (u TypeSet) Admits(h *Hierarchy, t Type) bool {
	for _, m := range u {
		if h.IsA(t, m) {
			return true
		}
	}
	return false
}

// Inherits reports whether every member of lhs is admitted by some member of
// rhs under h.
func Inherits(h *Hierarchy, lhs, rhs TypeSet) bool {
	for _, t := range lhs {
		if !rhs.Admits(h, t) {
			return false
		}
	}
	return true
}
