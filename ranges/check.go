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
	"github.com/gorange/rangeset/internal/numeric"
	"github.com/gorange/rangeset/internal/rtassert"
)

// Check wraps an arbitrary range iterator and validates, on every pull,
// that it actually satisfies the sorted-disjoint contract: no value
// after exhaustion, s <= e <= safe_max, and strict non-adjacency against
// the previously produced range. Any violation raises a
// [rtassert.ProgrammerError]. Use this at the boundary where ranges
// arrive from outside the module's own trusted combinators; use [Dyn]
// once a source is already known-good.
func Check[T numeric.Integer](src Iter[T]) Sorted[T] {
	var (
		started   bool
		prevEnd   T
		exhausted bool
	)
	safeMax := numeric.SafeMax[T]()

	return Dyn[T](IterFunc[T](func() (Range[T], bool) {
		r, ok := src.Next()
		if exhausted && ok {
			rtassert.Raise("sorted-disjoint stream produced a value after exhaustion")
		}
		if !ok {
			exhausted = true
			return Range[T]{}, false
		}
		if r.Lo > r.Hi {
			rtassert.Raise("reversed range %v..=%v", r.Lo, r.Hi)
		}
		if r.Hi > safeMax {
			rtassert.Raise("endpoint %v exceeds safe_max %v", r.Hi, safeMax)
		}
		if started && prevEnd+1 >= r.Lo {
			rtassert.Raise("ranges not sorted-disjoint: previous end %v, next start %v", prevEnd, r.Lo)
		}
		started = true
		prevEnd = r.Hi
		return r, true
	}))
}
