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
	"github.com/gorange/rangeset/collection/tuple"
	"github.com/gorange/rangeset/gvalue"
	"github.com/gorange/rangeset/internal/numeric"
)

// teeState is the buffer shared by both sides of a [Tee] split. Rather
// than duplicating every pulled range into two independent queues, the
// two sides share one growing buffer; the prefix both sides have already
// consumed is dropped after every pull, so the buffer's length is always
// exactly the current lag between the slower and faster side.
type teeState[T numeric.Integer] struct {
	src Iter[T]
	buf []Range[T]
	pos [2]int
}

func (st *teeState[T]) pull(side int) (Range[T], bool) {
	if st.pos[side] < len(st.buf) {
		r := st.buf[st.pos[side]]
		st.pos[side]++
		st.trim()
		return r, true
	}
	r, ok := st.src.Next()
	if !ok {
		return Range[T]{}, false
	}
	st.buf = append(st.buf, r)
	st.pos[side]++
	st.trim()
	return r, true
}

func (st *teeState[T]) trim() {
	m := gvalue.Min(st.pos[0], st.pos[1])
	if m == 0 {
		return
	}
	st.buf = st.buf[m:]
	st.pos[0] -= m
	st.pos[1] -= m
}

// Tee splits s into two independently consumable streams that each
// reproduce s's output in full. Callers must drive both sides forward at
// roughly the same pace: the shared buffer is bounded by the current lag
// between them, not by the total size of s.
func Tee[T numeric.Integer](s Sorted[T]) (Sorted[T], Sorted[T]) {
	st := &teeState[T]{src: s}
	left := IterFunc[T](func() (Range[T], bool) { return st.pull(0) })
	right := IterFunc[T](func() (Range[T], bool) { return st.pull(1) })
	return Dyn[T](left), Dyn[T](right)
}

// TeePair is [Tee] bundled as a single [tuple.T2], convenient when both
// halves of the split travel together as one value (e.g. held in a slice
// of pending legs) rather than as two separate locals.
func TeePair[T numeric.Integer](s Sorted[T]) tuple.T2[Sorted[T], Sorted[T]] {
	left, right := Tee(s)
	return tuple.Make2(left, right)
}
