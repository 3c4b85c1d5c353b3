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

// unify implements syntactic unification over typed hypergraph terms.
//
// Given two terms built from nodes and links typed by codes from a subtype
// hierarchy, the engine computes every assignment of variables to terms that
// makes the two structurally equal. Solutions are sets of partitions; each
// partition groups mutually-unified terms into blocks carrying the most
// specific type under which the block holds. Unordered links produce one
// partition per valid pairing of their children.
//
// Variables may carry type-union restrictions (the vars package), and
// Quote/Unquote/LocalQuote wrappers locally disable or re-enable variable
// binding during traversal.
//
// Failure is a value: an unsatisfiable SolutionSet, which absorbs through
// joins. The engine performs no occurs-check and does not mutate its inputs;
// terms are immutable and shared by reference.
//
//
// Supported features:
//
//   * Ordered and unordered composite terms, with permutation solutions for the latter
//   * Quotation-aware traversal and post-substitution quotation cleanup
//   * Type-union restricted variables checked against an injected subtype lattice
//   * Equivalence-class merging with per-class type intersection
//   * Projection of solutions into typed substitutions and scope-aware rewriting
package unify
