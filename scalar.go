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

	"golang.org/x/exp/constraints"
)

// Unit returns the Arbitrary for the empty struct. There is only one value
// and nothing to shrink.
func Unit() Arbitrary[struct{}] {
	return Make(func(*Gen) struct{} { return struct{}{} }, nil)
}

// Bool returns the Arbitrary for booleans. Generation is a fair coin flip;
// true shrinks to false and false is minimal.
func Bool() Arbitrary[bool] {
	return Make(
		func(g *Gen) bool { return g.Bool() },
		func(v bool) iter.Seq[bool] {
			if v {
				return SingleShrink(false)
			}
			return EmptyShrink[bool]()
		},
	)
}

// Uint returns the Arbitrary for an unsigned integer type. Generated values
// are uniform in [0, size).
func Uint[T constraints.Unsigned]() Arbitrary[T] {
	return Make(genUint[T], shrinkUint[T])
}

// Int returns the Arbitrary for a signed integer type. Generated values are
// uniform in [-size, size).
func Int[T constraints.Signed]() Arbitrary[T] {
	return Make(genInt[T], shrinkInt[T])
}

// Float32 returns the Arbitrary for float32. Generated values are uniform
// in [-size, size). Shrinking goes through int32, so candidates lose their
// fractional part; the search favors magnitude reduction over exactness.
func Float32() Arbitrary[float32] {
	return Make(
		func(g *Gen) float32 {
			s := float32(g.Size())
			return g.Float32()*2*s - s
		},
		func(v float32) iter.Seq[float32] {
			return MapShrink(shrinkInt(int32(v)), func(x int32) float32 { return float32(x) })
		},
	)
}

// Float64 returns the Arbitrary for float64. Generated values are uniform
// in [-size, size); shrinking truncates through int64 as for Float32.
func Float64() Arbitrary[float64] {
	return Make(
		func(g *Gen) float64 {
			s := float64(g.Size())
			return g.Float64()*2*s - s
		},
		func(v float64) iter.Seq[float64] {
			return MapShrink(shrinkInt(int64(v)), func(x int64) float64 { return float64(x) })
		},
	)
}

func genUint[T constraints.Unsigned](g *Gen) T {
	// Truncate the bound into the target type before ranging over it, so
	// narrow types still see a non-degenerate range under a large size.
	s := int64(T(g.Size()))
	if s <= 0 {
		return 0
	}
	return T(g.Int63n(s))
}

func genInt[T constraints.Signed](g *Gen) T {
	s := int64(T(g.Size()))
	if s <= 0 {
		return 0
	}
	return T(g.Int63n(2*s) - s)
}

// shrinkUint emits 0 first, then walks x toward zero by halving the step:
// x - x/2, x - x/4, ... until the step reaches zero. The sequence is
// logarithmic in x rather than linear.
func shrinkUint[T constraints.Unsigned](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if x == 0 {
			return
		}
		if !yield(0) {
			return
		}
		for i := x / 2; i > 0; i /= 2 {
			if !yield(x - i) {
				return
			}
		}
	}
}

// shrinkInt is the signed counterpart of shrinkUint, stepping the absolute
// value toward zero. For negative x the positive mirror |x| is emitted
// before 0: a negative minimal counterexample often has an equally valid
// positive twin that reads simpler.
func shrinkInt[T constraints.Signed](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if x == 0 {
			return
		}
		if x/2 < 0 {
			if !yield(-x) {
				return
			}
		}
		if !yield(0) {
			return
		}
		for i := x / 2; ; i /= 2 {
			c := x - i
			if absVal(c) >= absVal(x) {
				return
			}
			if !yield(c) {
				return
			}
		}
	}
}

func absVal[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
