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

// Option is a value that may be absent. The zero Option is None.
// Options of comparable payloads are themselves comparable.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, present: true} }

// None returns the absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the contained value and whether one is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool { return !o.present }

// Result is a two-armed union of a success value and a failure value.
// The zero Result is Ok of A's zero value.
type Result[A, B any] struct {
	ok    A
	err   B
	isErr bool
}

// Ok returns a Result in the success arm.
func Ok[A, B any](v A) Result[A, B] { return Result[A, B]{ok: v} }

// Err returns a Result in the failure arm.
func Err[A, B any](e B) Result[A, B] { return Result[A, B]{err: e, isErr: true} }

// Ok returns the success value and whether the Result is in the success arm.
func (r Result[A, B]) Ok() (A, bool) { return r.ok, !r.isErr }

// Err returns the failure value and whether the Result is in the failure arm.
func (r Result[A, B]) Err() (B, bool) { return r.err, r.isErr }

// OptionOf returns the Arbitrary for optional values of elem's type.
// Generation flips a fair coin between None and a freshly generated Some.
// Some(x) shrinks to None first, then to Some of each shrink candidate of x;
// None is minimal.
func OptionOf[T any](elem Arbitrary[T]) Arbitrary[Option[T]] {
	return Make(
		func(g *Gen) Option[T] {
			if g.Bool() {
				return None[T]()
			}
			return Some(elem.Generate(g))
		},
		func(v Option[T]) iter.Seq[Option[T]] {
			x, ok := v.Get()
			if !ok {
				return EmptyShrink[Option[T]]()
			}
			return ConcatShrink(
				SingleShrink(None[T]()),
				MapShrink(elem.Shrink(x), Some[T]),
			)
		},
	)
}

// ResultOf returns the Arbitrary for the two-armed union of oka and errb.
// Generation flips a fair coin between the arms. Shrinking stays within the
// arm of the input value, re-tagging the payload's shrink candidates; it
// never crosses from one arm to the other.
func ResultOf[A, B any](oka Arbitrary[A], errb Arbitrary[B]) Arbitrary[Result[A, B]] {
	return Make(
		func(g *Gen) Result[A, B] {
			if g.Bool() {
				return Ok[A, B](oka.Generate(g))
			}
			return Err[A, B](errb.Generate(g))
		},
		func(v Result[A, B]) iter.Seq[Result[A, B]] {
			if x, ok := v.Ok(); ok {
				return MapShrink(oka.Shrink(x), Ok[A, B])
			}
			e, _ := v.Err()
			return MapShrink(errb.Shrink(e), Err[A, B])
		},
	)
}
