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
	"github.com/gorange/rangeset/internal/numeric"
	"github.com/gorange/rangeset/ranges"
)

// Union returns a new set containing every element of s or other.
func (s *RangeSet[T]) Union(other *RangeSet[T]) *RangeSet[T] {
	return FromSortedDisjoint[T](ranges.Union(s.SortedRanges(), other.SortedRanges()))
}

// Intersection returns a new set containing every element in both s and
// other.
func (s *RangeSet[T]) Intersection(other *RangeSet[T]) *RangeSet[T] {
	return FromSortedDisjoint[T](ranges.Intersection(s.SortedRanges(), other.SortedRanges()))
}

// Difference returns a new set containing every element of s that is not
// in other.
func (s *RangeSet[T]) Difference(other *RangeSet[T]) *RangeSet[T] {
	return FromSortedDisjoint[T](ranges.Difference(s.SortedRanges(), other.SortedRanges()))
}

// SymmetricDifference returns a new set containing every element present
// in exactly one of s, other.
func (s *RangeSet[T]) SymmetricDifference(other *RangeSet[T]) *RangeSet[T] {
	return FromSortedDisjoint[T](ranges.SymmetricDifference(s.SortedRanges(), other.SortedRanges()))
}

// Complement returns the set of every element of the universe
// [MIN(T), safe_max(T)] not in s.
func (s *RangeSet[T]) Complement() *RangeSet[T] {
	return FromSortedDisjoint[T](ranges.Complement(s.SortedRanges()))
}

// Equal reports whether s and other contain exactly the same elements.
func (s *RangeSet[T]) Equal(other *RangeSet[T]) bool {
	return ranges.Equal(s.SortedRanges(), other.SortedRanges())
}

// IsSubset reports whether every element of s is also in other.
func (s *RangeSet[T]) IsSubset(other *RangeSet[T]) bool {
	return ranges.IsSubset(s.SortedRanges(), other.SortedRanges())
}

// IsSuperset reports whether every element of other is also in s.
func (s *RangeSet[T]) IsSuperset(other *RangeSet[T]) bool {
	return ranges.IsSuperset(s.SortedRanges(), other.SortedRanges())
}

// IsDisjoint reports whether s and other share no elements.
func (s *RangeSet[T]) IsDisjoint(other *RangeSet[T]) bool {
	return ranges.IsDisjoint(s.SortedRanges(), other.SortedRanges())
}

// UnionMany returns a new set containing every element of any of sets.
func UnionMany[T numeric.Integer](sets ...*RangeSet[T]) *RangeSet[T] {
	streams := make([]ranges.Sorted[T], len(sets))
	for i, s := range sets {
		streams[i] = s.SortedRanges()
	}
	return FromSortedDisjoint[T](ranges.UnionMany(streams...))
}

// IntersectionMany returns a new set containing every element common to
// all of sets.
func IntersectionMany[T numeric.Integer](sets ...*RangeSet[T]) *RangeSet[T] {
	streams := make([]ranges.Sorted[T], len(sets))
	for i, s := range sets {
		streams[i] = s.SortedRanges()
	}
	return FromSortedDisjoint[T](ranges.IntersectionMany(streams...))
}
