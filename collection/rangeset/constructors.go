// Copyright 2025 Bytedance Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rangeset

import (
	"math/big"

	"github.com/gorange/rangeset/internal/numeric"
	"github.com/gorange/rangeset/ranges"
)

// FromSortedDisjoint builds a set directly from a stream already known
// to satisfy the sorted-disjoint contract: entries are appended in
// order with no recomputation. If the promise is violated the resulting
// set's invariants are unspecified; validate untrusted input through
// [ranges.Check] first.
func FromSortedDisjoint[T numeric.Integer](it ranges.Iter[T]) *RangeSet[T] {
	s := New[T]()
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		s.entries = append(s.entries, r)
		s.length = new(big.Int).Add(s.length, r.Len())
	}
	return s
}

// FromIterPoints builds a set by folding [RangeSet.Insert] across points.
func FromIterPoints[T numeric.Integer](points []T) *RangeSet[T] {
	s := New[T]()
	for _, v := range points {
		s.Insert(v)
	}
	return s
}

// FromIterRanges builds a set by folding [RangeSet.InsertRange] across
// the given ranges.
func FromIterRanges[T numeric.Integer](rs []ranges.Range[T]) *RangeSet[T] {
	s := New[T]()
	for _, r := range rs {
		s.InsertRange(r.Lo, r.Hi)
	}
	return s
}
