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
	"strconv"
	"strings"

	"github.com/wdamron/unify/atom"
)

// Diagnostic stringifiers for the engine types. The format is line-oriented
// and stable, intended for test failures and debug logs rather than for
// machine consumption.

func (b Block) String() string {
	var sb strings.Builder
	sb.WriteString("block:\n")
	writeMembers(&sb, b)
	return sb.String()
}

func writeMembers(sb *strings.Builder, b Block) {
	members := b.Members.Slice()
	sb.WriteString("size = " + strconv.Itoa(len(members)) + "\n")
	for i, m := range members {
		sb.WriteString("atom[" + strconv.Itoa(i) + "]: " + atom.TermString(m) + "\n")
	}
	sb.WriteString("type: " + atom.TermString(b.Type) + "\n")
}

func (p Partition) String() string {
	var sb strings.Builder
	blocks := p.Blocks()
	sb.WriteString("size = " + strconv.Itoa(len(blocks)) + "\n")
	for i, b := range blocks {
		sb.WriteString("block[" + strconv.Itoa(i) + "]:\n")
		writeMembers(&sb, b)
	}
	return sb.String()
}

func (ps Partitions) String() string {
	var sb strings.Builder
	parts := ps.Slice()
	sb.WriteString("size = " + strconv.Itoa(len(parts)) + "\n")
	for i, p := range parts {
		sb.WriteString("partition[" + strconv.Itoa(i) + "]:\n")
		sb.WriteString(p.String())
	}
	return sb.String()
}

func (s SolutionSet) String() string {
	var sb strings.Builder
	sb.WriteString("satisfiable: " + strconv.FormatBool(s.Satisfiable) + "\n")
	sb.WriteString("partitions: " + s.Partitions.String())
	return sb.String()
}

func (ts TypedSubstitution) String() string {
	var sb strings.Builder
	sb.WriteString("substitution:\n")
	n := 0
	ts.Bindings.Range(func(v, val atom.Term) bool {
		sb.WriteString("var[" + strconv.Itoa(n) + "]: " + atom.TermString(v) +
			" -> " + atom.TermString(val) + "\n")
		n++
		return true
	})
	sb.WriteString("type: ")
	if ts.Decl == nil {
		sb.WriteString("(undefined)\n")
	} else {
		sb.WriteString(atom.TermString(ts.Decl.Decl()) + "\n")
	}
	return sb.String()
}

// SubstitutionsString renders a substitution list in the numbered format of
// the other stringifiers.
func SubstitutionsString(tss []TypedSubstitution) string {
	var sb strings.Builder
	sb.WriteString("size = " + strconv.Itoa(len(tss)) + "\n")
	for i, ts := range tss {
		sb.WriteString("typed substitution[" + strconv.Itoa(i) + "]:\n")
		sb.WriteString(ts.String())
	}
	return sb.String()
}
