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
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestShrinkUnit(t *testing.T) {
	assert.Check(t, is.Len(collect(Unit().Shrink(struct{}{})), 0))
}

func TestShrinkBool(t *testing.T) {
	assert.Check(t, is.DeepEqual(collect(Bool().Shrink(true)), []bool{false}))
	assert.Check(t, is.Len(collect(Bool().Shrink(false)), 0))
}

func TestShrinkUint(t *testing.T) {
	assert.Check(t, is.DeepEqual(collect(Uint[uint]().Shrink(5)), []uint{0, 3, 4}))
	assert.Check(t, is.DeepEqual(collect(Uint[uint]().Shrink(1)), []uint{0}))
	assert.Check(t, is.Len(collect(Uint[uint]().Shrink(0)), 0))
	assert.Check(t, is.DeepEqual(
		collect(Uint[uint]().Shrink(11)), []uint{0, 6, 9, 10}))
}

func TestShrinkUintWidths(t *testing.T) {
	assert.Check(t, is.DeepEqual(collect(Uint[uint8]().Shrink(5)), []uint8{0, 3, 4}))
	assert.Check(t, is.DeepEqual(collect(Uint[uint16]().Shrink(5)), []uint16{0, 3, 4}))
	assert.Check(t, is.DeepEqual(collect(Uint[uint32]().Shrink(5)), []uint32{0, 3, 4}))
	assert.Check(t, is.DeepEqual(collect(Uint[uint64]().Shrink(5)), []uint64{0, 3, 4}))
}

func TestShrinkInt(t *testing.T) {
	assert.Check(t, is.DeepEqual(collect(Int[int]().Shrink(5)), []int{0, 3, 4}))
	assert.Check(t, is.DeepEqual(collect(Int[int]().Shrink(-5)), []int{5, 0, -3, -4}))
	assert.Check(t, is.DeepEqual(collect(Int[int]().Shrink(1)), []int{0}))
	assert.Check(t, is.DeepEqual(collect(Int[int]().Shrink(-1)), []int{0}))
	assert.Check(t, is.Len(collect(Int[int]().Shrink(0)), 0))
}

func TestShrinkIntWidths(t *testing.T) {
	assert.Check(t, is.DeepEqual(collect(Int[int8]().Shrink(-5)), []int8{5, 0, -3, -4}))
	assert.Check(t, is.DeepEqual(collect(Int[int16]().Shrink(-5)), []int16{5, 0, -3, -4}))
	assert.Check(t, is.DeepEqual(collect(Int[int32]().Shrink(-5)), []int32{5, 0, -3, -4}))
	assert.Check(t, is.DeepEqual(collect(Int[int64]().Shrink(-5)), []int64{5, 0, -3, -4}))
}

func TestShrinkFloat64(t *testing.T) {
	// Candidates are derived from the truncated integer value, so the
	// fractional part disappears immediately.
	assert.Check(t, is.DeepEqual(collect(Float64().Shrink(-5.5)), []float64{5, 0, -3, -4}))
	assert.Check(t, is.DeepEqual(collect(Float64().Shrink(5.0)), []float64{0, 3, 4}))
	assert.Check(t, is.Len(collect(Float64().Shrink(0.5)), 0))
	assert.Check(t, is.Len(collect(Float64().Shrink(0)), 0))
}

func TestShrinkFloat32(t *testing.T) {
	assert.Check(t, is.DeepEqual(collect(Float32().Shrink(-5.5)), []float32{5, 0, -3, -4}))
	assert.Check(t, is.Len(collect(Float32().Shrink(0.25)), 0))
}

func TestShrinkRune(t *testing.T) {
	assert.Check(t, is.Len(collect(Rune().Shrink('a')), 0))
}

func TestGenerateUnit(t *testing.T) {
	g := NewSeeded(1, 5)
	assert.Equal(t, Unit().Generate(g), struct{}{})
}

func TestGenerateUintRespectsSize(t *testing.T) {
	g := NewSeeded(2, 5)
	a := Uint[uint]()
	for i := 0; i < 200; i++ {
		v := a.Generate(g)
		assert.Assert(t, v < 5, "generated %d with size 5", v)
	}
}

func TestGenerateIntRespectsSize(t *testing.T) {
	g := NewSeeded(2, 5)
	a := Int[int]()
	for i := 0; i < 200; i++ {
		v := a.Generate(g)
		assert.Assert(t, v >= -5 && v < 5, "generated %d with size 5", v)
	}
}

func TestGenerateNarrowIntRespectsSize(t *testing.T) {
	g := NewSeeded(2, 50)
	a := Int[int8]()
	for i := 0; i < 200; i++ {
		v := a.Generate(g)
		assert.Assert(t, v >= -50 && v < 50, "generated %d with size 50", v)
	}
}

func TestGenerateFloatRespectsSize(t *testing.T) {
	g := NewSeeded(2, 5)
	a := Float64()
	for i := 0; i < 200; i++ {
		v := a.Generate(g)
		assert.Assert(t, v >= -5 && v < 5, "generated %v with size 5", v)
	}
}

func TestGenerateSizeZero(t *testing.T) {
	g := NewSeeded(2, 0)
	for i := 0; i < 20; i++ {
		assert.Equal(t, Uint[uint]().Generate(g), uint(0))
		assert.Equal(t, Int[int]().Generate(g), 0)
		assert.Equal(t, Float64().Generate(g), float64(0))
	}
}

func TestGenerateRuneAlphabet(t *testing.T) {
	g := NewSeeded(4, 10)
	a := Rune()
	for i := 0; i < 500; i++ {
		r := a.Generate(g)
		assert.Assert(t, r >= ' ' && r <= '~', "generated %q", r)
	}
}
