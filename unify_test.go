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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"

	"github.com/wdamron/unify/atom"
	"github.com/wdamron/unify/construct"
)

func newTestUnifier() *Unifier { return New(atom.NewHierarchy()) }

// shapes renders each partition as a sorted list of "members -> type"
// strings, and sorts the partitions, so solutions compare structurally.
func shapes(sol SolutionSet) [][]string {
	var out [][]string
	sol.Partitions.Range(func(p Partition) bool {
		var blocks []string
		p.Range(func(b Block) bool {
			s := ""
			b.Members.Range(func(m atom.Term) bool {
				s += atom.TermString(m) + " "
				return true
			})
			blocks = append(blocks, s+"-> "+atom.TermString(b.Type))
			return true
		})
		sort.Strings(blocks)
		out = append(out, blocks)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return len(out[i]) > 0 && len(out[j]) > 0 && out[i][0] < out[j][0]
	})
	return out
}

func TestUnifyVariableToTerm(t *testing.T) {
	u := newTestUnifier()
	x, a := construct.Var("$X"), construct.Concept("a")

	sol := u.Unify(x, a)
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	want := [][]string{{`($X) (Concept "a") -> (Concept "a")`}}
	if diff := cmp.Diff(want, shapes(sol)); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifyUndefinedInputs(t *testing.T) {
	u := newTestUnifier()
	if sol := u.Unify(nil, construct.Concept("a")); sol.Satisfiable {
		t.Fatalf("nil lhs must not unify")
	}
	if sol := u.Unify(construct.Concept("a"), nil); sol.Satisfiable {
		t.Fatalf("nil rhs must not unify")
	}
}

func TestUnifyStructural(t *testing.T) {
	u := newTestUnifier()
	x, y := construct.Var("$X"), construct.Var("$Y")
	a, b := construct.Concept("a"), construct.Concept("b")

	sol := u.Unify(construct.ListOf(x, b), construct.ListOf(a, y))
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	want := [][]string{{
		`($X) (Concept "a") -> (Concept "a")`,
		`($Y) (Concept "b") -> (Concept "b")`,
	}}
	if diff := cmp.Diff(want, shapes(sol)); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifyLeafEquality(t *testing.T) {
	u := newTestUnifier()
	a := construct.Concept("a")

	sol := u.Unify(a, construct.Concept("a"))
	if !sol.Satisfiable || sol.Partitions.Len() != 0 {
		t.Fatalf("equal leaves must unify trivially:\n%s", sol)
	}
	if sol := u.Unify(a, construct.Concept("b")); sol.Satisfiable {
		t.Fatalf("distinct leaves must not unify")
	}
}

func TestUnifyTypeMismatch(t *testing.T) {
	u := newTestUnifier()
	a, b := construct.Concept("a"), construct.Concept("b")

	if sol := u.Unify(construct.ListOf(a, b), construct.SetOf(a, b)); sol.Satisfiable {
		t.Fatalf("composite types must agree")
	}
	if sol := u.Unify(construct.ListOf(a), construct.ListOf(a, b)); sol.Satisfiable {
		t.Fatalf("composite arities must agree")
	}
}

func TestUnifyUnordered(t *testing.T) {
	u := newTestUnifier()
	x, y := construct.Var("$X"), construct.Var("$Y")
	a, b := construct.Concept("a"), construct.Concept("b")

	sol := u.Unify(construct.AndOf(x, y), construct.AndOf(a, b))
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	if sol.Partitions.Len() != 2 {
		t.Fatalf("expected 2 partitions, got %d:\n%s", sol.Partitions.Len(), sol)
	}
	want := [][]string{
		{
			`($X) (Concept "a") -> (Concept "a")`,
			`($Y) (Concept "b") -> (Concept "b")`,
		},
		{
			`($X) (Concept "b") -> (Concept "b")`,
			`($Y) (Concept "a") -> (Concept "a")`,
		},
	}
	if diff := cmp.Diff(want, shapes(sol)); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
}

// A ground child pins the permutation: pairing b against a fails, leaving a
// single coherent matching.
func TestUnifyUnorderedPinned(t *testing.T) {
	u := newTestUnifier()
	x, y := construct.Var("$X"), construct.Var("$Y")
	a, b := construct.Concept("a"), construct.Concept("b")

	sol := u.Unify(construct.AndOf(x, b), construct.AndOf(a, y))
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	want := [][]string{{
		`($X) (Concept "a") -> (Concept "a")`,
		`($Y) (Concept "b") -> (Concept "b")`,
	}}
	if diff := cmp.Diff(want, shapes(sol)); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifyUnorderedDuplicates(t *testing.T) {
	u := newTestUnifier()
	a := construct.Concept("a")

	// Symmetric permutations of identical children collapse to one
	// partition-free solution.
	sol := u.Unify(construct.SetOf(a, a), construct.SetOf(a, a))
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	if sol.Partitions.Len() != 0 {
		t.Fatalf("ground permutations must not produce partitions:\n%s", sol)
	}
}

func TestUnifyTransitive(t *testing.T) {
	u := newTestUnifier()
	x, y := construct.Var("$X"), construct.Var("$Y")
	a := construct.Concept("a")

	sol := u.Unify(construct.ListOf(x, x), construct.ListOf(a, y))
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	want := [][]string{{`($X) ($Y) (Concept "a") -> (Concept "a")`}}
	if diff := cmp.Diff(want, shapes(sol)); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
}

// Longer chains of repeated variables must still collapse into a single
// block; the absorption step merges every overlapping block at once.
func TestUnifyTransitiveChain(t *testing.T) {
	u := newTestUnifier()
	x, y, z := construct.Var("$X"), construct.Var("$Y"), construct.Var("$Z")
	a := construct.Concept("a")

	sol := u.Unify(construct.ListOf(x, x, x), construct.ListOf(a, y, z))
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	want := [][]string{{`($X) ($Y) ($Z) (Concept "a") -> (Concept "a")`}}
	if diff := pretty.Compare(shapes(sol), want); diff != "" {
		t.Fatalf("solution mismatch (-got +want):\n%s", diff)
	}
}

func TestUnifyConflictingBindings(t *testing.T) {
	u := newTestUnifier()
	x := construct.Var("$X")
	a, b := construct.Concept("a"), construct.Concept("b")

	if sol := u.Unify(construct.ListOf(x, x), construct.ListOf(a, b)); sol.Satisfiable {
		t.Fatalf("a variable cannot take two distinct ground values")
	}
}

func TestUnifyQuotedVariableIsInert(t *testing.T) {
	u := newTestUnifier()
	x, a := construct.Var("$X"), construct.Concept("a")

	if sol := u.Unify(construct.Quote(x), construct.Quote(a)); sol.Satisfiable {
		t.Fatalf("a quoted variable must not bind")
	}
	sol := u.Unify(construct.Quote(x), construct.Quote(construct.Var("$X")))
	if !sol.Satisfiable || sol.Partitions.Len() != 0 {
		t.Fatalf("identical quoted terms must unify trivially:\n%s", sol)
	}
}

func TestUnifyUnquoteRevives(t *testing.T) {
	u := newTestUnifier()
	x, a := construct.Var("$X"), construct.Concept("a")

	// Unquote below a quote makes the variable live again.
	lhs := construct.Quote(construct.ListOf(construct.Unquote(x), construct.Concept("k")))
	rhs := construct.Quote(construct.ListOf(construct.Unquote(a), construct.Concept("k")))
	sol := u.Unify(lhs, rhs)
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	want := [][]string{{`($X) (Concept "a") -> (Concept "a")`}}
	if diff := cmp.Diff(want, shapes(sol)); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifyOneSidedQuotation(t *testing.T) {
	u := newTestUnifier()
	a := construct.Concept("a")

	// A consumable quote on one side only is stripped before comparison.
	sol := u.Unify(construct.Quote(construct.ListOf(a)), construct.ListOf(a))
	if !sol.Satisfiable {
		t.Fatalf("one-sided quote must be consumed:\n%s", sol)
	}
}

func TestUnifyDeclaredTypeClash(t *testing.T) {
	u := newTestUnifier()
	x, a := construct.Var("$X"), construct.Concept("a")

	sol, err := u.UnifyDeclared(x, a, construct.TVar("$X", "Number"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if sol.Satisfiable {
		t.Fatalf("Number-restricted variable must not bind a Concept")
	}
}

func TestUnifyDeclaredTypeMatch(t *testing.T) {
	u := newTestUnifier()
	x, a := construct.Var("$X"), construct.Concept("a")

	sol, err := u.UnifyDeclared(x, a, construct.TVar("$X", "Concept"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !sol.Satisfiable {
		t.Fatalf("Concept-restricted variable must bind a Concept:\n%s", sol)
	}
	want := [][]string{{`($X) (Concept "a") -> (Concept "a")`}}
	if diff := cmp.Diff(want, shapes(sol)); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifyDeclaredVariablePair(t *testing.T) {
	u := newTestUnifier()
	x, y := construct.Var("$X"), construct.Var("$Y")

	// The more restricted variable is the intersection type.
	sol, err := u.UnifyDeclared(x, y, construct.TVar("$X", "Number"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	want := [][]string{{`($X) ($Y) -> ($X)`}}
	if diff := cmp.Diff(want, shapes(sol)); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}

	// Disjoint restrictions are a clash.
	sol, err = u.UnifyDeclared(x, y, construct.TVar("$X", "Number"), construct.TVar("$Y", "Concept"))
	if err != nil {
		t.Fatal(err)
	}
	if sol.Satisfiable {
		t.Fatalf("disjoint restrictions must not unify")
	}
}

func TestUnifyDeclaredMalformed(t *testing.T) {
	u := newTestUnifier()
	x := construct.Var("$X")

	_, err := u.UnifyDeclared(x, x, construct.TVar("$X", "NoSuchType"), nil)
	if err == nil {
		t.Fatalf("expected an error for an unknown type name")
	}
}

func TestUnifyReflexive(t *testing.T) {
	u := newTestUnifier()
	terms := []atom.Term{
		construct.Concept("a"),
		construct.Var("$X"),
		construct.ListOf(construct.Var("$X"), construct.Concept("a")),
		construct.SetOf(construct.Var("$X"), construct.Var("$Y")),
		construct.Quote(construct.Var("$X")),
	}
	for _, tm := range terms {
		sol := u.Unify(tm, tm)
		if !sol.Satisfiable {
			t.Fatalf("unify(t, t) must be satisfiable for %s", atom.TermString(tm))
		}
		// Some partition pairs every variable of t with itself. Unordered
		// self-unification also yields cross pairings, so only one
		// partition needs all-singleton blocks.
		if sol.Partitions.Len() == 0 {
			continue
		}
		found := false
		sol.Partitions.Range(func(p Partition) bool {
			allSingleton := true
			p.Range(func(b Block) bool {
				if b.Members.Len() != 1 {
					allSingleton = false
				}
				return allSingleton
			})
			found = found || allSingleton
			return !found
		})
		if !found {
			t.Fatalf("no identity partition for %s:\n%s", atom.TermString(tm), sol)
		}
	}
}

func TestUnifySymmetricSatisfiability(t *testing.T) {
	u := newTestUnifier()
	a, b := construct.Concept("a"), construct.Concept("b")
	pairs := [][2]atom.Term{
		{construct.ListOf(a, b), construct.ListOf(a, b)},
		{construct.ListOf(a, b), construct.ListOf(b, a)},
		{construct.ListOf(a, construct.ListOf(b)), construct.ListOf(a, construct.ListOf(b))},
		{construct.EvaluationOf(construct.Predicate("p"), a), construct.EvaluationOf(construct.Predicate("p"), b)},
	}
	for _, pair := range pairs {
		if u.Unify(pair[0], pair[1]).Satisfiable != u.Unify(pair[1], pair[0]).Satisfiable {
			t.Fatalf("ordered variable-free unification must be symmetric for %s / %s",
				atom.TermString(pair[0]), atom.TermString(pair[1]))
		}
	}
}

func TestUnifyBlockDisjointness(t *testing.T) {
	u := newTestUnifier()
	x, y, z := construct.Var("$X"), construct.Var("$Y"), construct.Var("$Z")
	a, b := construct.Concept("a"), construct.Concept("b")

	sols := []SolutionSet{
		u.Unify(construct.ListOf(x, x), construct.ListOf(a, y)),
		u.Unify(construct.ListOf(x, y, x), construct.ListOf(z, b, a)),
		u.Unify(construct.AndOf(x, y), construct.AndOf(a, b)),
	}
	for _, sol := range sols {
		sol.Partitions.Range(func(p Partition) bool {
			blocks := p.Blocks()
			for i := range blocks {
				for j := i + 1; j < len(blocks); j++ {
					if blocks[i].Members.Intersects(blocks[j].Members) {
						t.Fatalf("blocks must be pairwise disjoint:\n%s", p)
					}
				}
			}
			return true
		})
	}
}

func TestUnifyNestedStructures(t *testing.T) {
	u := newTestUnifier()
	x, y := construct.Var("$X"), construct.Var("$Y")
	p := construct.Predicate("likes")
	a, b := construct.Concept("a"), construct.Concept("b")

	lhs := construct.EvaluationOf(p, construct.ListOf(x, b))
	rhs := construct.EvaluationOf(p, construct.ListOf(a, y))
	sol := u.Unify(lhs, rhs)
	if !sol.Satisfiable {
		t.Fatalf("expected satisfiable solution:\n%s", sol)
	}
	want := [][]string{{
		`($X) (Concept "a") -> (Concept "a")`,
		`($Y) (Concept "b") -> (Concept "b")`,
	}}
	if diff := cmp.Diff(want, shapes(sol)); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
}
