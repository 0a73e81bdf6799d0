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
	"sort"

	"github.com/gorange/rangeset/gvalue"
	"github.com/gorange/rangeset/internal/numeric"
	"github.com/gorange/rangeset/internal/rtassert"
	"github.com/gorange/rangeset/ranges"
)

// RangeSet represents a set of T as an ordered list of strictly
// increasing, non-adjacent inclusive ranges. The zero value is not
// usable; construct with [New], [WithRange], or one of the From*
// functions.
//
// A RangeSet is exclusively owned by its caller. Iterators returned by
// [RangeSet.IterRanges] and [RangeSet.IterPoints] borrow it immutably;
// mutating a set while one of its iterators is still being drained is a
// programmer error and is not detected.
type RangeSet[T numeric.Integer] struct {
	entries []ranges.Range[T]
	length  *numeric.SafeLen
}

// New returns an empty RangeSet.
func New[T numeric.Integer]() *RangeSet[T] {
	return &RangeSet[T]{length: numeric.ZeroLen()}
}

// WithRange returns a RangeSet containing exactly [lo, hi].
func WithRange[T numeric.Integer](lo, hi T) *RangeSet[T] {
	s := New[T]()
	s.InsertRange(lo, hi)
	return s
}

func safeMax[T numeric.Integer]() T {
	return numeric.SafeMax[T]()
}

func validateEndpoint[T numeric.Integer](v T) {
	if v > safeMax[T]() {
		rtassert.Raise("endpoint %v exceeds safe_max %v", v, safeMax[T]())
	}
}

// Len returns the total number of elements in the set.
func (s *RangeSet[T]) Len() *numeric.SafeLen {
	return new(big.Int).Set(s.length)
}

// IsEmpty reports whether the set has no elements.
func (s *RangeSet[T]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Clear removes every element from the set.
func (s *RangeSet[T]) Clear() {
	s.entries = nil
	s.length = numeric.ZeroLen()
}

// NumRanges returns the number of stored disjoint ranges.
func (s *RangeSet[T]) NumRanges() int {
	return len(s.entries)
}

// predecessor returns the index of the entry with the greatest Lo <= v,
// or -1 if none.
func (s *RangeSet[T]) predecessor(v T) int {
	idx := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Lo > v })
	return idx - 1
}

// Contains reports whether v is a member of the set.
func (s *RangeSet[T]) Contains(v T) bool {
	idx := s.predecessor(v)
	return idx >= 0 && v <= s.entries[idx].Hi
}

// Insert adds v to the set, coalescing with adjacent ranges as needed.
// It reports whether v was newly inserted.
func (s *RangeSet[T]) Insert(v T) bool {
	validateEndpoint(v)

	idx := s.predecessor(v)
	if idx >= 0 && v <= s.entries[idx].Hi {
		return false
	}

	predAdjacent := idx >= 0 && v == s.entries[idx].Hi+1
	succIdx := idx + 1
	succAdjacent := succIdx < len(s.entries) && v+1 == s.entries[succIdx].Lo

	switch {
	case predAdjacent && succAdjacent:
		s.entries[idx].Hi = s.entries[succIdx].Hi
		s.entries = append(s.entries[:succIdx], s.entries[succIdx+1:]...)
	case predAdjacent:
		s.entries[idx].Hi = v
	case succAdjacent:
		s.entries[succIdx].Lo = v
	default:
		s.entries = append(s.entries, ranges.Range[T]{})
		copy(s.entries[succIdx+1:], s.entries[succIdx:])
		s.entries[succIdx] = ranges.Range[T]{Lo: v, Hi: v}
	}
	s.length = new(big.Int).Add(s.length, big.NewInt(1))
	return true
}

// Remove deletes v from the set, splitting its containing range if v is
// an interior point. It reports whether v was present.
func (s *RangeSet[T]) Remove(v T) bool {
	idx := s.predecessor(v)
	if idx < 0 || v > s.entries[idx].Hi {
		return false
	}
	e := s.entries[idx]
	switch {
	case e.Lo == v && e.Hi == v:
		s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	case e.Lo == v:
		s.entries[idx].Lo = v + 1
	case e.Hi == v:
		s.entries[idx].Hi = v - 1
	default:
		s.entries[idx].Hi = v - 1
		right := ranges.Range[T]{Lo: v + 1, Hi: e.Hi}
		s.entries = append(s.entries, ranges.Range[T]{})
		copy(s.entries[idx+2:], s.entries[idx+1:])
		s.entries[idx+1] = right
	}
	s.length = new(big.Int).Sub(s.length, big.NewInt(1))
	return true
}

// InsertRange adds every element of [lo, hi] to the set in a single
// sweep: any stored range overlapping or adjacent to [lo, hi] is
// absorbed into the result. A failed call (reversed range, endpoint past
// safe_max) leaves the set exactly as it was.
func (s *RangeSet[T]) InsertRange(lo, hi T) {
	if lo > hi {
		rtassert.Raise("insert_range: reversed range %v > %v", lo, hi)
	}
	validateEndpoint(hi)

	idx := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Lo >= lo })
	if idx > 0 && s.entries[idx-1].Hi+1 >= lo {
		idx--
	}

	newLo, newHi := lo, hi
	removed := numeric.ZeroLen()
	j := idx
	for j < len(s.entries) && s.entries[j].Lo <= newHi+1 {
		e := s.entries[j]
		newLo = gvalue.Min(newLo, e.Lo)
		newHi = gvalue.Max(newHi, e.Hi)
		removed = new(big.Int).Add(removed, e.Len())
		j++
	}

	merged := ranges.Range[T]{Lo: newLo, Hi: newHi}
	tail := append([]ranges.Range[T]{}, s.entries[j:]...)
	s.entries = append(s.entries[:idx], merged)
	s.entries = append(s.entries, tail...)

	delta := new(big.Int).Sub(merged.Len(), removed)
	s.length = new(big.Int).Add(s.length, delta)
}

// RemoveRange deletes every element of [lo, hi] from the set, trimming
// or splitting any range that straddles the boundary.
func (s *RangeSet[T]) RemoveRange(lo, hi T) {
	if lo > hi {
		rtassert.Raise("remove_range: reversed range %v > %v", lo, hi)
	}
	validateEndpoint(hi)

	start := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Hi >= lo })
	i := start
	var kept []ranges.Range[T]
	var split *ranges.Range[T]
	removed := numeric.ZeroLen()

	for i < len(s.entries) && s.entries[i].Lo <= hi {
		e := s.entries[i]
		removed = new(big.Int).Add(removed, e.Len())
		switch {
		case lo <= e.Lo && hi >= e.Hi:
			// entirely removed
		case lo <= e.Lo:
			right := ranges.Range[T]{Lo: hi + 1, Hi: e.Hi}
			kept = append(kept, right)
			removed = new(big.Int).Sub(removed, right.Len())
		case hi >= e.Hi:
			left := ranges.Range[T]{Lo: e.Lo, Hi: lo - 1}
			kept = append(kept, left)
			removed = new(big.Int).Sub(removed, left.Len())
		default:
			left := ranges.Range[T]{Lo: e.Lo, Hi: lo - 1}
			right := ranges.Range[T]{Lo: hi + 1, Hi: e.Hi}
			kept = append(kept, left)
			split = &right
			removed = new(big.Int).Sub(removed, left.Len())
			removed = new(big.Int).Sub(removed, right.Len())
		}
		i++
	}

	out := append([]ranges.Range[T]{}, s.entries[:start]...)
	out = append(out, kept...)
	if split != nil {
		out = append(out, *split)
	}
	out = append(out, s.entries[i:]...)
	s.entries = out
	s.length = new(big.Int).Sub(s.length, removed)
}

// SortedRanges returns the set's own ranges as a [ranges.Sorted], trusted
// without runtime validation since the container's own invariants
// guarantee the sorted-disjoint contract.
func (s *RangeSet[T]) SortedRanges() ranges.Sorted[T] {
	i := 0
	return ranges.Dyn[T](ranges.IterFunc[T](func() (ranges.Range[T], bool) {
		if i >= len(s.entries) {
			return ranges.Range[T]{}, false
		}
		r := s.entries[i]
		i++
		return r, true
	}))
}

// IterRanges yields the set's stored ranges in key order.
func (s *RangeSet[T]) IterRanges() ranges.Sorted[T] {
	return s.SortedRanges()
}

// IterPoints yields every element of the set in ascending order.
func (s *RangeSet[T]) IterPoints() func() (T, bool) {
	entryIdx := 0
	var cur T
	haveCur := false
	return func() (T, bool) {
		for {
			if haveCur {
				v := cur
				if v < s.entries[entryIdx].Hi {
					cur = v + 1
				} else {
					haveCur = false
					entryIdx++
				}
				return v, true
			}
			if entryIdx >= len(s.entries) {
				var zero T
				return zero, false
			}
			cur = s.entries[entryIdx].Lo
			haveCur = true
		}
	}
}

// String renders the set in canonical "lo..=hi, lo..=hi" form.
func (s *RangeSet[T]) String() string {
	return ranges.Format[T](s.SortedRanges())
}
