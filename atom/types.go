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
	"strconv"
)

// Type is an atom-type code within a Hierarchy.
type Type uint16

// Predeclared type codes. Top is the universal supertype; every other code,
// builtin or registered, sits below it.
const (
	Top Type = iota
	NodeType
	LinkType
	Variable
	Concept
	Number
	Predicate
	TypeNode
	Ordered
	Unordered
	List
	Set
	And
	Or
	Not
	Quote
	Unquote
	LocalQuote
	VariableList
	TypedVariable
	TypeChoice
	Scope
	Bind
	Implication
	Evaluation
	Inheritance

	maxBuiltin
)

var builtinNames = [maxBuiltin]string{
	Top:           "Atom",
	NodeType:      "Node",
	LinkType:      "Link",
	Variable:      "Variable",
	Concept:       "Concept",
	Number:        "Number",
	Predicate:     "Predicate",
	TypeNode:      "Type",
	Ordered:       "OrderedLink",
	Unordered:     "UnorderedLink",
	List:          "List",
	Set:           "Set",
	And:           "And",
	Or:            "Or",
	Not:           "Not",
	Quote:         "Quote",
	Unquote:       "Unquote",
	LocalQuote:    "LocalQuote",
	VariableList:  "VariableList",
	TypedVariable: "TypedVariable",
	TypeChoice:    "TypeChoice",
	Scope:         "Scope",
	Bind:          "Bind",
	Implication:   "Implication",
	Evaluation:    "Evaluation",
	Inheritance:   "Inheritance",
}

var builtinParents = map[Type][]Type{
	NodeType:      {Top},
	LinkType:      {Top},
	Variable:      {NodeType},
	Concept:       {NodeType},
	Number:        {NodeType},
	Predicate:     {NodeType},
	TypeNode:      {NodeType},
	Ordered:       {LinkType},
	Unordered:     {LinkType},
	List:          {Ordered},
	Set:           {Unordered},
	And:           {Unordered},
	Or:            {Unordered},
	Not:           {Ordered},
	Quote:         {Ordered},
	Unquote:       {Ordered},
	LocalQuote:    {Ordered},
	VariableList:  {Ordered},
	TypedVariable: {Ordered},
	TypeChoice:    {Ordered},
	Scope:         {Ordered},
	Bind:          {Scope},
	Implication:   {Ordered},
	Evaluation:    {Ordered},
	Inheritance:   {Ordered},
}

// TypeName returns the name of a builtin type code. Registered codes are only
// named within their Hierarchy.
func TypeName(t Type) string {
	if t < maxBuiltin && builtinNames[t] != "" {
		return builtinNames[t]
	}
	return "T" + strconv.Itoa(int(t))
}

// Hierarchy is the subtype lattice over atom-type codes. The zero value is not
// usable; NewHierarchy seeds the builtin lattice.
//
// A Hierarchy is safe for concurrent reads once fully declared.
type Hierarchy struct {
	parents map[Type][]Type
	names   map[Type]string
	codes   map[string]Type
	next    Type
}

// Create a hierarchy seeded with the builtin type codes.
func NewHierarchy() *Hierarchy {
	h := &Hierarchy{
		parents: make(map[Type][]Type, 2*maxBuiltin),
		names:   make(map[Type]string, 2*maxBuiltin),
		codes:   make(map[string]Type, 2*maxBuiltin),
		next:    maxBuiltin,
	}
	for t, ps := range builtinParents {
		h.parents[t] = append([]Type(nil), ps...)
	}
	for t := Type(0); t < maxBuiltin; t++ {
		h.names[t] = builtinNames[t]
		h.codes[builtinNames[t]] = t
	}
	return h
}

// Register a new type code below the given parents. With no parents the code
// sits directly below Top.
func (h *Hierarchy) Register(name string, parents ...Type) Type {
	t := h.next
	h.next++
	if len(parents) == 0 {
		parents = []Type{Top}
	}
	h.parents[t] = append([]Type(nil), parents...)
	h.names[t] = name
	h.codes[name] = t
	return t
}

// Declare an additional subtype relationship between existing codes.
func (h *Hierarchy) Declare(child, parent Type) {
	h.parents[child] = append(h.parents[child], parent)
}

// IsA reports whether child is a subtype of parent. The relation is reflexive
// and transitive.
func (h *Hierarchy) IsA(child, parent Type) bool {
	if child == parent || parent == Top {
		return true
	}
	for _, p := range h.parents[child] {
		if h.IsA(p, parent) {
			return true
		}
	}
	return false
}

// IsUnordered reports whether links of type t have multiset child semantics.
func (h *Hierarchy) IsUnordered(t Type) bool { return h.IsA(t, Unordered) }

// Name returns the declared name of a type code.
func (h *Hierarchy) Name(t Type) string {
	if n, ok := h.names[t]; ok {
		return n
	}
	return TypeName(t)
}

// TypeNamed resolves a type code by name.
func (h *Hierarchy) TypeNamed(name string) (Type, bool) {
	t, ok := h.codes[name]
	return t, ok
}
