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

package ranges

import (
	"github.com/gorange/rangeset/gvalue"
	"github.com/gorange/rangeset/internal/numeric"
)

// unionFromSortedStarts collapses a sorted-starts stream (ties allowed,
// overlaps allowed) into a sorted-disjoint one by folding overlapping or
// adjacent ranges into a running working range.
func unionFromSortedStarts[T numeric.Integer](src Iter[T]) Sorted[T] {
	var (
		started bool
		cur     Range[T]
		done    bool
	)
	return Dyn[T](IterFunc[T](func() (Range[T], bool) {
		if done {
			return Range[T]{}, false
		}
		for {
			r, ok := src.Next()
			if !ok {
				done = true
				if started {
					started = false
					return cur, true
				}
				return Range[T]{}, false
			}
			if !started {
				started = true
				cur = r
				continue
			}
			// cur.Hi <= safe_max < T's true MAX, so cur.Hi+1 never overflows.
			if r.Lo <= cur.Hi+1 {
				cur.Hi = gvalue.Max(cur.Hi, r.Hi)
				continue
			}
			out := cur
			cur = r
			return out, true
		}
	}))
}

// UnionMany returns the sorted-disjoint union of all given streams.
func UnionMany[T numeric.Integer](streams ...Sorted[T]) Sorted[T] {
	plain := make([]Iter[T], len(streams))
	for i, s := range streams {
		plain[i] = s
	}
	return unionFromSortedStarts[T](Merge(plain...))
}

// Union returns the sorted-disjoint union of a and b.
func Union[T numeric.Integer](a, b Sorted[T]) Sorted[T] {
	return UnionMany(a, b)
}
