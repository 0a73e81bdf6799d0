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
	"fmt"
	"strings"

	"github.com/gorange/rangeset/internal/numeric"
)

// Range is an inclusive [Lo, Hi] pair. A well-formed Range always has
// Lo <= Hi <= safe_max(T); Hi == T's true maximum is never produced by
// this package's own adapters.
type Range[T numeric.Integer] struct {
	Lo, Hi T
}

// Len reports the cardinality of the range as a SafeLen, since Hi-Lo+1
// may not fit back into T.
func (r Range[T]) Len() *numeric.SafeLen {
	return numeric.RangeLen(r.Lo, r.Hi)
}

// String renders the range in the module's canonical "lo..=hi" form.
func (r Range[T]) String() string {
	return fmt.Sprintf("%v..=%v", r.Lo, r.Hi)
}

// Iter is the pull-based contract every range-producing stream satisfies:
// each call to Next returns either the next range and true, or the zero
// Range and false once the stream is exhausted.
type Iter[T numeric.Integer] interface {
	Next() (Range[T], bool)
}

// IterFunc adapts a plain function to the [Iter] interface.
type IterFunc[T numeric.Integer] func() (Range[T], bool)

// Next calls f.
func (f IterFunc[T]) Next() (Range[T], bool) { return f() }

// Sorted marks an [Iter] as satisfying the sorted-disjoint contract:
// strictly increasing starts with eᵢ+1 < sᵢ₊₁ between consecutive ranges.
// The only ways to obtain one are [Check] (validates this at runtime) and
// [Dyn] (trusts the caller); every combinator in this package that takes
// a Sorted input in turn produces one, so the contract threads through an
// entire adapter chain by construction.
type Sorted[T numeric.Integer] struct {
	it Iter[T]
}

// Next implements [Iter].
func (s Sorted[T]) Next() (Range[T], bool) { return s.it.Next() }

// Slice drains s into a plain slice of ranges. Intended for tests and for
// callers who want the whole, necessarily-finite result materialized.
func Slice[T numeric.Integer](s Iter[T]) []Range[T] {
	var out []Range[T]
	for {
		r, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

// Format renders every range of s, in order, as the module's canonical
// comma-separated "lo..=hi, lo..=hi, ..." text.
func Format[T numeric.Integer](s Iter[T]) string {
	var b strings.Builder
	first := true
	for {
		r, ok := s.Next()
		if !ok {
			return b.String()
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(r.String())
	}
}

// FromSlice builds a plain (not necessarily sorted) [Iter] over a slice
// of already-constructed ranges, primarily for tests.
func FromSlice[T numeric.Integer](rs []Range[T]) Iter[T] {
	i := 0
	return IterFunc[T](func() (Range[T], bool) {
		if i >= len(rs) {
			return Range[T]{}, false
		}
		r := rs[i]
		i++
		return r, true
	})
}
