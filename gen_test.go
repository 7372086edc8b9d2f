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

	"github.com/infosecual/arbitrary/bytesource"
)

func TestGenSize(t *testing.T) {
	g := NewSeeded(1, 37)
	assert.Equal(t, g.Size(), 37)
}

func TestNewNegativeSizePanics(t *testing.T) {
	defer func() {
		assert.Check(t, recover() != nil, "expected panic")
	}()
	NewSeeded(1, -1)
}

func TestGenDeterminism(t *testing.T) {
	g1 := NewSeeded(42, 100)
	g2 := NewSeeded(42, 100)
	for i := 0; i < 100; i++ {
		assert.Equal(t, g1.Int63(), g2.Int63())
	}
}

func TestIntnBounds(t *testing.T) {
	g := NewSeeded(7, 100)
	for _, n := range []int{1, 2, 3, 10, 64, 1000} {
		for i := 0; i < 200; i++ {
			v := g.Intn(n)
			assert.Assert(t, v >= 0 && v < n, "Intn(%d) = %d", n, v)
		}
	}
}

func TestIntnZeroPanics(t *testing.T) {
	defer func() {
		assert.Check(t, recover() != nil, "expected panic")
	}()
	NewSeeded(1, 10).Intn(0)
}

func TestInt63nBounds(t *testing.T) {
	g := NewSeeded(11, 100)
	for i := 0; i < 500; i++ {
		v := g.Int63n(1 << 40)
		assert.Assert(t, v >= 0 && v < 1<<40, "Int63n = %d", v)
	}
}

func TestFloat64Range(t *testing.T) {
	g := NewSeeded(3, 100)
	for i := 0; i < 500; i++ {
		f := g.Float64()
		assert.Assert(t, f >= 0 && f < 1, "Float64 = %v", f)
	}
}

func TestFloat32Range(t *testing.T) {
	g := NewSeeded(3, 100)
	for i := 0; i < 500; i++ {
		f := g.Float32()
		assert.Assert(t, f >= 0 && f < 1, "Float32 = %v", f)
	}
}

func TestBoolVariety(t *testing.T) {
	g := NewSeeded(5, 100)
	var trues, falses int
	for i := 0; i < 200; i++ {
		if g.Bool() {
			trues++
		} else {
			falses++
		}
	}
	assert.Check(t, trues > 0)
	assert.Check(t, falses > 0)
}

func TestGenWithByteSource(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	g1 := New(bytesource.New(data), 50)
	g2 := New(bytesource.New(data), 50)
	a := SliceOf(Int[int]())
	v1 := a.Generate(g1)
	v2 := a.Generate(g2)
	assert.DeepEqual(t, v1, v2)
}

// uint32Source is a Source without the Source64 extension, to exercise the
// two-draw Uint64 path.
type uint32Source struct {
	g *Gen
}

func (s uint32Source) Int63() int64 { return s.g.Int63() }

func TestUint64WithoutSource64(t *testing.T) {
	g := New(uint32Source{g: NewSeeded(9, 10)}, 10)
	seen := map[uint64]bool{}
	for i := 0; i < 50; i++ {
		seen[g.Uint64()] = true
	}
	assert.Check(t, len(seen) > 1)
}
