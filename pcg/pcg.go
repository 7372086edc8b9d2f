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

// Package pcg implements a small, fast PRNG: pcg xsh rr 64 32.
// See https://www.pcg-random.org/ for the underlying scheme.
// It produces statistical variety, not unpredictability; do not use it
// where cryptographic randomness is required.
package pcg

import "math/bits"

const (
	multiplier uint64 = 6364136223846793005
	increment  uint64 = 1442695040888963407 // must be odd
)

// Source is a seeded PCG stream. It is cheap to create and not safe for
// concurrent use; make one per goroutine.
type Source struct {
	state uint64
}

// New returns a Source seeded with seed. Equal seeds yield equal streams.
func New(seed int64) *Source {
	s := &Source{state: uint64(seed)}
	s.step()
	s.state += uint64(seed)
	s.step()
	return s
}

func (s *Source) step() {
	s.state = s.state*multiplier + increment
}

// Uint32 returns the next pseudo-random uint32 in the stream.
func (s *Source) Uint32() uint32 {
	x := s.state
	s.step()
	return bits.RotateLeft32(uint32(((x>>18)^x)>>27), -int(x>>59))
}

// Uint64 returns the next pseudo-random uint64, built from two 32-bit draws.
func (s *Source) Uint64() uint64 {
	return uint64(s.Uint32())<<32 | uint64(s.Uint32())
}

// Int63 returns a non-negative pseudo-random 63-bit integer as an int64.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
