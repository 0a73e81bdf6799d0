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
	"github.com/gorange/rangeset/internal/mergeheap"
	"github.com/gorange/rangeset/internal/numeric"
)

type mergeEntry[T numeric.Integer] struct {
	r   Range[T]
	src int
}

// Merge performs an N-way merge of streams whose starts are each
// non-decreasing (disjointness among the streams is not required), and
// produces a single stream ordered by start. Ties between equal starts
// from different sources are broken by source index, which is arbitrary
// but deterministic. Implemented as a k-way heap of size len(streams);
// each pop refills from the source it came from.
func Merge[T numeric.Integer](streams ...Iter[T]) Iter[T] {
	h := mergeheap.New(func(a, b mergeEntry[T]) bool {
		if a.r.Lo != b.r.Lo {
			return a.r.Lo < b.r.Lo
		}
		return a.src < b.src
	})
	for i, s := range streams {
		if r, ok := s.Next(); ok {
			h.Push(mergeEntry[T]{r, i})
		}
	}
	return IterFunc[T](func() (Range[T], bool) {
		if h.Len() == 0 {
			return Range[T]{}, false
		}
		top := h.Pop()
		if r, ok := streams[top.src].Next(); ok {
			h.Push(mergeEntry[T]{r, top.src})
		}
		return top.r, true
	})
}
