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

import "github.com/gorange/rangeset/internal/numeric"

type complementState int

const (
	complementHead complementState = iota
	complementMiddle
	complementDone
)

// Complement produces the gap ranges of s within the universe
// [MIN(T), safe_max(T)].
func Complement[T numeric.Integer](s Sorted[T]) Sorted[T] {
	minV := numeric.MinVal[T]()
	maxV := numeric.SafeMax[T]()
	state := complementHead
	var prevEnd T

	return Dyn[T](IterFunc[T](func() (Range[T], bool) {
		for {
			switch state {
			case complementHead:
				r, ok := s.Next()
				if !ok {
					state = complementDone
					return Range[T]{Lo: minV, Hi: maxV}, true
				}
				prevEnd = r.Hi
				state = complementMiddle
				if r.Lo > minV {
					return Range[T]{Lo: minV, Hi: r.Lo - 1}, true
				}
				// r.Lo == minV: nothing to emit yet, fall through to Middle.
				continue
			case complementMiddle:
				r, ok := s.Next()
				if ok {
					out := Range[T]{Lo: prevEnd + 1, Hi: r.Lo - 1}
					prevEnd = r.Hi
					return out, true
				}
				state = complementDone
				if prevEnd < maxV {
					return Range[T]{Lo: prevEnd + 1, Hi: maxV}, true
				}
				return Range[T]{}, false
			default:
				return Range[T]{}, false
			}
		}
	}))
}
