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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &termPrinter{} },
}

type termPrinter struct {
	sb strings.Builder
}

func (p *termPrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// TermString returns an s-expression rendering of a term. Variables print as
// ($X), other nodes as (TypeName "payload"), links as (TypeName child...).
func TermString(t Term) string {
	p := printerPool.Get().(*termPrinter)
	p.term(t)
	s := p.sb.String()
	p.Release()
	return s
}

func (p *termPrinter) term(t Term) {
	if t == nil {
		p.sb.WriteString("(undefined)")
		return
	}
	switch t := t.(type) {
	case *Node:
		p.sb.WriteByte('(')
		if t.Type() == Variable {
			p.sb.WriteString(t.Name())
		} else {
			p.sb.WriteString(TypeName(t.Type()))
			p.sb.WriteByte(' ')
			p.sb.WriteString(strconv.Quote(t.Name()))
		}
		p.sb.WriteByte(')')
	case *Link:
		p.sb.WriteByte('(')
		p.sb.WriteString(TypeName(t.Type()))
		for _, c := range t.Outgoing() {
			p.sb.WriteByte(' ')
			p.term(c)
		}
		p.sb.WriteByte(')')
	}
}
