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

// Package bytesource turns a recorded byte stream into a random source, so
// a failing case can be replayed from its bytes, or driven from the input
// corpus of a coverage-guided fuzzer. Once the stream runs out, draws fall
// back to a pseudo-random source seeded from the stream itself, keeping the
// whole translation deterministic for a given input.
package bytesource

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/infosecual/arbitrary/pcg"
)

// Source draws 8 bytes per value from its byte stream, then switches to the
// fallback. Not safe for concurrent use.
type Source struct {
	r         *bytes.Reader
	fallback  *pcg.Source
	exhausted bool
}

// New returns a Source reading from data. The first 8 bytes, when present,
// seed the fallback as well.
func New(data []byte) *Source {
	s := &Source{r: bytes.NewReader(data)}
	var seed int64
	if s.r.Len() >= 8 {
		seed = int64(s.consumeUint64())
		s.r.Seek(0, io.SeekStart)
	}
	s.fallback = pcg.New(seed)
	return s
}

func (s *Source) consumeUint64() uint64 {
	var buf [8]byte
	s.r.Read(buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

// Uint64 returns the next 8 bytes of the stream as a uint64, or a fallback
// draw once fewer than 8 bytes remain.
func (s *Source) Uint64() uint64 {
	if s.r.Len() >= 8 {
		return s.consumeUint64()
	}
	s.exhausted = true
	return s.fallback.Uint64()
}

// Int63 returns a non-negative 63-bit integer from the stream.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Exhausted reports whether the byte stream has run out and draws have
// switched to the fallback source.
func (s *Source) Exhausted() bool {
	return s.exhausted
}
