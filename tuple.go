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

import "iter"

// Fixed-arity tuple carriers. Tuples of comparable elements are comparable.
// Arities above twelve are out of scope; nest tuples if you need more.

// T2 is a pair.
type T2[A, B any] struct {
	A A
	B B
}

// T3 is a triple.
type T3[A, B, C any] struct {
	A A
	B B
	C C
}

type T4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type T5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

type T6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

type T7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

type T8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

type T9[A, B, C, D, E, F, G, H, I any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

type T10[A, B, C, D, E, F, G, H, I, J any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
}

type T11[A, B, C, D, E, F, G, H, I, J, K any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
}

type T12[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
}

// Tuple2 returns the Arbitrary for pairs. Elements are generated in
// positional order from the same Gen. Shrinking first varies A while B is
// held fixed, then varies B while A is held fixed; it deliberately explores
// the union of the two streams rather than their cross product, trading
// exhaustiveness for a shrink sequence that stays small.
func Tuple2[A, B any](a Arbitrary[A], b Arbitrary[B]) Arbitrary[T2[A, B]] {
	return Make(
		func(g *Gen) T2[A, B] {
			a0 := a.Generate(g)
			b0 := b.Generate(g)
			return T2[A, B]{a0, b0}
		},
		func(v T2[A, B]) iter.Seq[T2[A, B]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T2[A, B] { return T2[A, B]{x, v.B} }),
				MapShrink(b.Shrink(v.B), func(x B) T2[A, B] { return T2[A, B]{v.A, x} }),
			)
		},
	)
}

// Tuple3 returns the Arbitrary for triples. Shrinking varies the first
// element, then the remaining pair as a unit; higher arities below follow
// the same head/tail scheme recursively.
func Tuple3[A, B, C any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C]) Arbitrary[T3[A, B, C]] {
	rest := Tuple2(b, c)
	return Make(
		func(g *Gen) T3[A, B, C] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T3[A, B, C]{a0, r.A, r.B}
		},
		func(v T3[A, B, C]) iter.Seq[T3[A, B, C]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T3[A, B, C] {
					return T3[A, B, C]{x, v.B, v.C}
				}),
				MapShrink(rest.Shrink(T2[B, C]{v.B, v.C}), func(r T2[B, C]) T3[A, B, C] {
					return T3[A, B, C]{v.A, r.A, r.B}
				}),
			)
		},
	)
}

func Tuple4[A, B, C, D any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D]) Arbitrary[T4[A, B, C, D]] {
	rest := Tuple3(b, c, d)
	return Make(
		func(g *Gen) T4[A, B, C, D] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T4[A, B, C, D]{a0, r.A, r.B, r.C}
		},
		func(v T4[A, B, C, D]) iter.Seq[T4[A, B, C, D]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T4[A, B, C, D] {
					return T4[A, B, C, D]{x, v.B, v.C, v.D}
				}),
				MapShrink(rest.Shrink(T3[B, C, D]{v.B, v.C, v.D}), func(r T3[B, C, D]) T4[A, B, C, D] {
					return T4[A, B, C, D]{v.A, r.A, r.B, r.C}
				}),
			)
		},
	)
}

func Tuple5[A, B, C, D, E any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D], e Arbitrary[E]) Arbitrary[T5[A, B, C, D, E]] {
	rest := Tuple4(b, c, d, e)
	return Make(
		func(g *Gen) T5[A, B, C, D, E] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T5[A, B, C, D, E]{a0, r.A, r.B, r.C, r.D}
		},
		func(v T5[A, B, C, D, E]) iter.Seq[T5[A, B, C, D, E]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T5[A, B, C, D, E] {
					return T5[A, B, C, D, E]{x, v.B, v.C, v.D, v.E}
				}),
				MapShrink(rest.Shrink(T4[B, C, D, E]{v.B, v.C, v.D, v.E}), func(r T4[B, C, D, E]) T5[A, B, C, D, E] {
					return T5[A, B, C, D, E]{v.A, r.A, r.B, r.C, r.D}
				}),
			)
		},
	)
}

func Tuple6[A, B, C, D, E, F any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D], e Arbitrary[E], f Arbitrary[F]) Arbitrary[T6[A, B, C, D, E, F]] {
	rest := Tuple5(b, c, d, e, f)
	return Make(
		func(g *Gen) T6[A, B, C, D, E, F] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T6[A, B, C, D, E, F]{a0, r.A, r.B, r.C, r.D, r.E}
		},
		func(v T6[A, B, C, D, E, F]) iter.Seq[T6[A, B, C, D, E, F]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T6[A, B, C, D, E, F] {
					return T6[A, B, C, D, E, F]{x, v.B, v.C, v.D, v.E, v.F}
				}),
				MapShrink(rest.Shrink(T5[B, C, D, E, F]{v.B, v.C, v.D, v.E, v.F}), func(r T5[B, C, D, E, F]) T6[A, B, C, D, E, F] {
					return T6[A, B, C, D, E, F]{v.A, r.A, r.B, r.C, r.D, r.E}
				}),
			)
		},
	)
}

func Tuple7[A, B, C, D, E, F, G any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D], e Arbitrary[E], f Arbitrary[F], h Arbitrary[G]) Arbitrary[T7[A, B, C, D, E, F, G]] {
	rest := Tuple6(b, c, d, e, f, h)
	return Make(
		func(g *Gen) T7[A, B, C, D, E, F, G] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T7[A, B, C, D, E, F, G]{a0, r.A, r.B, r.C, r.D, r.E, r.F}
		},
		func(v T7[A, B, C, D, E, F, G]) iter.Seq[T7[A, B, C, D, E, F, G]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T7[A, B, C, D, E, F, G] {
					return T7[A, B, C, D, E, F, G]{x, v.B, v.C, v.D, v.E, v.F, v.G}
				}),
				MapShrink(rest.Shrink(T6[B, C, D, E, F, G]{v.B, v.C, v.D, v.E, v.F, v.G}), func(r T6[B, C, D, E, F, G]) T7[A, B, C, D, E, F, G] {
					return T7[A, B, C, D, E, F, G]{v.A, r.A, r.B, r.C, r.D, r.E, r.F}
				}),
			)
		},
	)
}

func Tuple8[A, B, C, D, E, F, G, H any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D], e Arbitrary[E], f Arbitrary[F], h Arbitrary[G], i Arbitrary[H]) Arbitrary[T8[A, B, C, D, E, F, G, H]] {
	rest := Tuple7(b, c, d, e, f, h, i)
	return Make(
		func(g *Gen) T8[A, B, C, D, E, F, G, H] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T8[A, B, C, D, E, F, G, H]{a0, r.A, r.B, r.C, r.D, r.E, r.F, r.G}
		},
		func(v T8[A, B, C, D, E, F, G, H]) iter.Seq[T8[A, B, C, D, E, F, G, H]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T8[A, B, C, D, E, F, G, H] {
					return T8[A, B, C, D, E, F, G, H]{x, v.B, v.C, v.D, v.E, v.F, v.G, v.H}
				}),
				MapShrink(rest.Shrink(T7[B, C, D, E, F, G, H]{v.B, v.C, v.D, v.E, v.F, v.G, v.H}), func(r T7[B, C, D, E, F, G, H]) T8[A, B, C, D, E, F, G, H] {
					return T8[A, B, C, D, E, F, G, H]{v.A, r.A, r.B, r.C, r.D, r.E, r.F, r.G}
				}),
			)
		},
	)
}

func Tuple9[A, B, C, D, E, F, G, H, I any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D], e Arbitrary[E], f Arbitrary[F], h Arbitrary[G], i Arbitrary[H], j Arbitrary[I]) Arbitrary[T9[A, B, C, D, E, F, G, H, I]] {
	rest := Tuple8(b, c, d, e, f, h, i, j)
	return Make(
		func(g *Gen) T9[A, B, C, D, E, F, G, H, I] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T9[A, B, C, D, E, F, G, H, I]{a0, r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H}
		},
		func(v T9[A, B, C, D, E, F, G, H, I]) iter.Seq[T9[A, B, C, D, E, F, G, H, I]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T9[A, B, C, D, E, F, G, H, I] {
					return T9[A, B, C, D, E, F, G, H, I]{x, v.B, v.C, v.D, v.E, v.F, v.G, v.H, v.I}
				}),
				MapShrink(rest.Shrink(T8[B, C, D, E, F, G, H, I]{v.B, v.C, v.D, v.E, v.F, v.G, v.H, v.I}), func(r T8[B, C, D, E, F, G, H, I]) T9[A, B, C, D, E, F, G, H, I] {
					return T9[A, B, C, D, E, F, G, H, I]{v.A, r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H}
				}),
			)
		},
	)
}

func Tuple10[A, B, C, D, E, F, G, H, I, J any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D], e Arbitrary[E], f Arbitrary[F], h Arbitrary[G], i Arbitrary[H], j Arbitrary[I], k Arbitrary[J]) Arbitrary[T10[A, B, C, D, E, F, G, H, I, J]] {
	rest := Tuple9(b, c, d, e, f, h, i, j, k)
	return Make(
		func(g *Gen) T10[A, B, C, D, E, F, G, H, I, J] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T10[A, B, C, D, E, F, G, H, I, J]{a0, r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H, r.I}
		},
		func(v T10[A, B, C, D, E, F, G, H, I, J]) iter.Seq[T10[A, B, C, D, E, F, G, H, I, J]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T10[A, B, C, D, E, F, G, H, I, J] {
					return T10[A, B, C, D, E, F, G, H, I, J]{x, v.B, v.C, v.D, v.E, v.F, v.G, v.H, v.I, v.J}
				}),
				MapShrink(rest.Shrink(T9[B, C, D, E, F, G, H, I, J]{v.B, v.C, v.D, v.E, v.F, v.G, v.H, v.I, v.J}), func(r T9[B, C, D, E, F, G, H, I, J]) T10[A, B, C, D, E, F, G, H, I, J] {
					return T10[A, B, C, D, E, F, G, H, I, J]{v.A, r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H, r.I}
				}),
			)
		},
	)
}

func Tuple11[A, B, C, D, E, F, G, H, I, J, K any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D], e Arbitrary[E], f Arbitrary[F], h Arbitrary[G], i Arbitrary[H], j Arbitrary[I], k Arbitrary[J], l Arbitrary[K]) Arbitrary[T11[A, B, C, D, E, F, G, H, I, J, K]] {
	rest := Tuple10(b, c, d, e, f, h, i, j, k, l)
	return Make(
		func(g *Gen) T11[A, B, C, D, E, F, G, H, I, J, K] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T11[A, B, C, D, E, F, G, H, I, J, K]{a0, r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H, r.I, r.J}
		},
		func(v T11[A, B, C, D, E, F, G, H, I, J, K]) iter.Seq[T11[A, B, C, D, E, F, G, H, I, J, K]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T11[A, B, C, D, E, F, G, H, I, J, K] {
					return T11[A, B, C, D, E, F, G, H, I, J, K]{x, v.B, v.C, v.D, v.E, v.F, v.G, v.H, v.I, v.J, v.K}
				}),
				MapShrink(rest.Shrink(T10[B, C, D, E, F, G, H, I, J, K]{v.B, v.C, v.D, v.E, v.F, v.G, v.H, v.I, v.J, v.K}), func(r T10[B, C, D, E, F, G, H, I, J, K]) T11[A, B, C, D, E, F, G, H, I, J, K] {
					return T11[A, B, C, D, E, F, G, H, I, J, K]{v.A, r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H, r.I, r.J}
				}),
			)
		},
	)
}

func Tuple12[A, B, C, D, E, F, G, H, I, J, K, L any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D], e Arbitrary[E], f Arbitrary[F], h Arbitrary[G], i Arbitrary[H], j Arbitrary[I], k Arbitrary[J], l Arbitrary[K], m Arbitrary[L]) Arbitrary[T12[A, B, C, D, E, F, G, H, I, J, K, L]] {
	rest := Tuple11(b, c, d, e, f, h, i, j, k, l, m)
	return Make(
		func(g *Gen) T12[A, B, C, D, E, F, G, H, I, J, K, L] {
			a0 := a.Generate(g)
			r := rest.Generate(g)
			return T12[A, B, C, D, E, F, G, H, I, J, K, L]{a0, r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H, r.I, r.J, r.K}
		},
		func(v T12[A, B, C, D, E, F, G, H, I, J, K, L]) iter.Seq[T12[A, B, C, D, E, F, G, H, I, J, K, L]] {
			return ConcatShrink(
				MapShrink(a.Shrink(v.A), func(x A) T12[A, B, C, D, E, F, G, H, I, J, K, L] {
					return T12[A, B, C, D, E, F, G, H, I, J, K, L]{x, v.B, v.C, v.D, v.E, v.F, v.G, v.H, v.I, v.J, v.K, v.L}
				}),
				MapShrink(rest.Shrink(T11[B, C, D, E, F, G, H, I, J, K, L]{v.B, v.C, v.D, v.E, v.F, v.G, v.H, v.I, v.J, v.K, v.L}), func(r T11[B, C, D, E, F, G, H, I, J, K, L]) T12[A, B, C, D, E, F, G, H, I, J, K, L] {
					return T12[A, B, C, D, E, F, G, H, I, J, K, L]{v.A, r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H, r.I, r.J, r.K}
				}),
			)
		},
	)
}
