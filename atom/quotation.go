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

// Quotation tracks the quotation state of a traversal: the nesting depth of
// Quote/Unquote wrappers and whether a LocalQuote is pending. The zero value
// is the initial state: unquoted, depth 0.
//
// Quotation is a value; Update returns the state after descending past a node
// of the given type.
type Quotation struct {
	level int
	local bool
}

// Level returns the current quotation depth.
func (q Quotation) Level() int { return q.level }

// IsQuoted reports whether variables at the current depth are inert.
func (q Quotation) IsQuoted() bool { return q.local || q.level > 0 }

// IsUnquoted reports whether variables at the current depth are bindable.
func (q Quotation) IsUnquoted() bool { return !q.local && q.level == 0 }

// Consumable reports whether a wrapper of type t would be consumed in the
// current state: a Quote or LocalQuote while unquoted, an Unquote below an
// active Quote.
func (q Quotation) Consumable(t Type) bool {
	switch t {
	case Quote, LocalQuote:
		return q.IsUnquoted()
	case Unquote:
		return q.level > 0
	}
	return false
}

// Update returns the state after descending past a node of type t. A pending
// local quote covers exactly one node: descending past any non-consumable
// node clears it.
func (q Quotation) Update(t Type) Quotation {
	switch {
	case t == Quote && q.IsUnquoted():
		q.level++
	case t == Unquote && q.level > 0:
		q.level--
	case t == LocalQuote && q.IsUnquoted():
		q.local = true
	case q.local:
		q.local = false
	}
	return q
}
