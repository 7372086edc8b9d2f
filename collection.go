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

package arbitrary

import (
	"iter"
	"slices"
)

// SliceOf returns the Arbitrary for slices of elem's type. Generation draws
// a length uniformly in [0, size) and then that many elements.
//
// Shrinking runs in three phases: the empty slice first, then copies with a
// contiguous run of elements deleted (run length starting at half the slice
// and halving, every starting offset for each length), then copies with a
// single element replaced by one of its own shrink candidates. The deletion
// phase collapses long slices quickly so the element phase has little left
// to minimize.
func SliceOf[T any](elem Arbitrary[T]) Arbitrary[[]T] {
	return Make(
		func(g *Gen) []T {
			xs := make([]T, genLen(g))
			for i := range xs {
				xs[i] = elem.Generate(g)
			}
			return xs
		},
		func(xs []T) iter.Seq[[]T] {
			return shrinkSlice(elem, xs)
		},
	)
}

// MapOf returns the Arbitrary for maps from key's type to val's type.
// Generation builds a slice of key/value pairs and folds it into a map, so
// later duplicate keys overwrite earlier ones and the final length can fall
// short of the drawn one. Shrinking flattens the map back into pairs, runs
// the slice rule, and folds each candidate back into a map; the order of
// candidates follows Go's map iteration order and so varies between calls,
// though the candidate set does not.
func MapOf[K comparable, V any](key Arbitrary[K], val Arbitrary[V]) Arbitrary[map[K]V] {
	pairs := SliceOf(Tuple2(key, val))
	return Make(
		func(g *Gen) map[K]V {
			return collectMap(pairs.Generate(g))
		},
		func(m map[K]V) iter.Seq[map[K]V] {
			ps := make([]T2[K, V], 0, len(m))
			for k, v := range m {
				ps = append(ps, T2[K, V]{k, v})
			}
			return MapShrink(pairs.Shrink(ps), collectMap[K, V])
		},
	)
}

func collectMap[K comparable, V any](ps []T2[K, V]) map[K]V {
	m := make(map[K]V, len(ps))
	for _, p := range ps {
		m[p.A] = p.B
	}
	return m
}

func genLen(g *Gen) int {
	if s := g.Size(); s > 0 {
		return g.Intn(s)
	}
	return 0
}

func shrinkSlice[T any](elem Arbitrary[T], xs []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(xs) == 0 {
			return
		}
		if !yield([]T{}) {
			return
		}
		for k := len(xs) / 2; k > 0; k /= 2 {
			for i := 0; i+k <= len(xs); i++ {
				if !yield(removeRun(xs, i, k)) {
					return
				}
			}
		}
		for i := range xs {
			for sx := range elem.Shrink(xs[i]) {
				cp := slices.Clone(xs)
				cp[i] = sx
				if !yield(cp) {
					return
				}
			}
		}
	}
}

// removeRun copies xs without the k elements starting at i.
func removeRun[T any](xs []T, i, k int) []T {
	out := make([]T, 0, len(xs)-k)
	out = append(out, xs[:i]...)
	return append(out, xs[i+k:]...)
}
