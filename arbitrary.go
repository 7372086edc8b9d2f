/*
Copyright 2014 Google Inc. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package arbitrary generates pseudo-random values of controllable size and
// shrinks failing values toward minimal counterexamples. It is the value
// engine for a property-based test runner: the runner owns the random seed
// and size, asks an Arbitrary to generate a case, and walks the shrink
// sequence of a failing case looking for the simplest value that still fails.
package arbitrary

import "iter"

// An Arbitrary describes how values of one type are randomly generated and
// shrunk. Build one for a composite type by combining the Arbitraries of its
// parts with the combinators in this package, or from scratch with Make.
type Arbitrary[T any] struct {
	generate func(*Gen) T
	shrink   func(T) iter.Seq[T]
}

// Make builds an Arbitrary from a generate function and a shrink function.
// shrink may be nil, in which case values produce no shrink candidates.
// Make panics if generate is nil.
func Make[T any](generate func(*Gen) T, shrink func(T) iter.Seq[T]) Arbitrary[T] {
	if generate == nil {
		panic("arbitrary: generate function is required")
	}
	return Arbitrary[T]{generate: generate, shrink: shrink}
}

// Generate draws a fresh value from g. Every value it returns is fully
// owned by the caller and holds no reference to g.
func (a Arbitrary[T]) Generate(g *Gen) T {
	return a.generate(g)
}

// Shrink returns the candidate simplifications of v, simplest first. The
// sequence is finite and deterministic for a given v: ranging over it again
// replays the same candidates. It never consults a random source.
func (a Arbitrary[T]) Shrink(v T) iter.Seq[T] {
	if a.shrink == nil {
		return EmptyShrink[T]()
	}
	return a.shrink(v)
}

// EmptyShrink returns a shrink sequence with zero candidates. Use it for
// values that are already minimal or types with no shrink strategy.
func EmptyShrink[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// SingleShrink returns a shrink sequence with exactly one candidate.
func SingleShrink[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}

// ConcatShrink concatenates shrink sequences in order.
func ConcatShrink[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// MapShrink applies f to every candidate in s. It is how element shrink
// candidates are re-wrapped into their enclosing composite.
func MapShrink[A, B any](s iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}
