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
	"time"

	"github.com/infosecual/arbitrary/pcg"
)

// A Source represents a source of uniformly-distributed
// pseudo-random int64 values in the range [0, 1<<63).
type Source interface {
	Int63() int64
}

// A Source64 is a Source that can also produce uniformly-distributed
// 64-bit values directly.
type Source64 interface {
	Source
	Uint64() uint64
}

// Gen pairs a random source with a size bound. The size bound caps the
// length of generated collections and the magnitude of generated numbers,
// so that growing it tends to produce larger values.
//
// A Gen advances its source on every draw and must not be shared between
// goroutines; the caller owns it for the duration of one generation.
type Gen struct {
	src  Source
	s64  Source64 // non-nil if src is a Source64
	size int
}

// New returns a Gen that draws from src and caps generated sizes at size.
// It panics if size is negative.
func New(src Source, size int) *Gen {
	if size < 0 {
		panic("arbitrary: size must be non-negative")
	}
	s64, _ := src.(Source64)
	return &Gen{src: src, s64: s64, size: size}
}

// NewSeeded returns a Gen backed by a deterministic source seeded with seed.
// Two Gens with the same seed and size produce identical values.
func NewSeeded(seed int64, size int) *Gen {
	return New(pcg.New(seed), size)
}

// NewSized returns a Gen seeded from the current time.
func NewSized(size int) *Gen {
	return NewSeeded(time.Now().UnixNano(), size)
}

// Size returns the size bound. It is fixed for the lifetime of the Gen.
func (g *Gen) Size() int { return g.size }

// Int63 returns a non-negative pseudo-random 63-bit integer as an int64.
func (g *Gen) Int63() int64 { return g.src.Int63() }

// Uint32 returns a pseudo-random 32-bit value as a uint32.
func (g *Gen) Uint32() uint32 { return uint32(g.Int63() >> 31) }

// Uint64 returns a pseudo-random 64-bit value as a uint64.
func (g *Gen) Uint64() uint64 {
	if g.s64 != nil {
		return g.s64.Uint64()
	}
	return uint64(g.Uint32())<<32 | uint64(g.Uint32())
}

// Int31 returns a non-negative pseudo-random 31-bit integer as an int32.
func (g *Gen) Int31() int32 { return int32(g.Int63() >> 32) }

// Int63n returns, as an int64, a non-negative pseudo-random number in the
// half-open interval [0,n). It panics if n <= 0.
func (g *Gen) Int63n(n int64) int64 {
	if n <= 0 {
		panic("arbitrary: invalid argument to Int63n")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return g.Int63() & (n - 1)
	}
	max := int64((1 << 63) - 1 - (1<<63)%uint64(n))
	v := g.Int63()
	for v > max {
		v = g.Int63()
	}
	return v % n
}

// Int31n returns, as an int32, a non-negative pseudo-random number in the
// half-open interval [0,n). It panics if n <= 0.
func (g *Gen) Int31n(n int32) int32 {
	if n <= 0 {
		panic("arbitrary: invalid argument to Int31n")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return g.Int31() & (n - 1)
	}
	max := int32((1 << 31) - 1 - (1<<31)%uint32(n))
	v := g.Int31()
	for v > max {
		v = g.Int31()
	}
	return v % n
}

// Intn returns, as an int, a non-negative pseudo-random number in the
// half-open interval [0,n). It panics if n <= 0.
func (g *Gen) Intn(n int) int {
	if n <= 0 {
		panic("arbitrary: invalid argument to Intn")
	}
	if n <= 1<<31-1 {
		return int(g.Int31n(int32(n)))
	}
	return int(g.Int63n(int64(n)))
}

// Float64 returns, as a float64, a pseudo-random number in the half-open
// interval [0.0,1.0).
func (g *Gen) Float64() float64 {
	// This matches the Go 1 value stream for math/rand. Int63 may land so
	// close to 1<<63 that the division rounds up to 1.0; resample when it
	// does, which happens 1/2^53 of the time.
again:
	f := float64(g.Int63()) / (1 << 63)
	if f == 1 {
		goto again
	}
	return f
}

// Float32 returns, as a float32, a pseudo-random number in the half-open
// interval [0.0,1.0).
func (g *Gen) Float32() float32 {
again:
	f := float32(g.Float64())
	if f == 1 {
		goto again // rounding can push the narrowed value to 1.0
	}
	return f
}

// Bool returns true or false with equal probability.
func (g *Gen) Bool() bool {
	return g.Int31()&(1<<30) == 0
}
