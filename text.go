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

// UnicodeRange describes a sequential range of unicode characters.
// Last must not be less than First.
type UnicodeRange struct {
	First, Last rune
}

// UnicodeRanges describes an arbitrary number of sequential ranges of
// unicode characters. To be useful there must be at least one range and
// each must contain at least one character.
type UnicodeRanges []UnicodeRange

// printableASCII is the default alphabet for Rune and String. Minimal
// counterexamples read best when every character prints.
var printableASCII = UnicodeRanges{{' ', '~'}}

// choose returns a uniformly chosen character from the range.
func (ur UnicodeRange) choose(g *Gen) rune {
	count := int64(ur.Last - ur.First + 1)
	return ur.First + rune(g.Int63n(count))
}

func (ur UnicodeRange) check() {
	if ur.Last < ur.First {
		panic("arbitrary: UnicodeRange last must not be less than first")
	}
}

// choose returns a random character from one of the ranges, each range
// having an equal probability of being chosen.
func (ur UnicodeRanges) choose(g *Gen) rune {
	if len(ur) == 1 {
		return ur[0].choose(g)
	}
	return ur[g.Intn(len(ur))].choose(g)
}

func (ur UnicodeRanges) check() {
	if len(ur) == 0 {
		panic("arbitrary: UnicodeRanges is empty")
	}
	for i := range ur {
		ur[i].check()
	}
}

// Rune returns the Arbitrary for characters drawn from the printable ASCII
// alphabet. Characters do not shrink; a character is as simple as any other.
func Rune() Arbitrary[rune] {
	return RuneFrom(printableASCII)
}

// RuneFrom returns the Arbitrary for characters drawn uniformly from ur.
// It panics if ur is empty or a range is reversed. Do not modify ur after
// calling.
func RuneFrom(ur UnicodeRanges) Arbitrary[rune] {
	ur.check()
	return Make(func(g *Gen) rune { return ur.choose(g) }, nil)
}

// String returns the Arbitrary for strings over the printable ASCII
// alphabet. Generation draws a length in [0, size) and that many
// characters. Shrinking treats the string as a slice of characters and
// applies the slice rule, so candidates drop runs of characters before
// anything else.
func String() Arbitrary[string] {
	return StringFrom(printableASCII)
}

// StringFrom is String with a custom alphabet. It panics if ur is empty or
// a range is reversed.
func StringFrom(ur UnicodeRanges) Arbitrary[string] {
	runes := SliceOf(RuneFrom(ur))
	return Make(
		func(g *Gen) string {
			return string(runes.Generate(g))
		},
		func(s string) iter.Seq[string] {
			return MapShrink(runes.Shrink([]rune(s)), func(rs []rune) string {
				return string(rs)
			})
		},
	)
}
