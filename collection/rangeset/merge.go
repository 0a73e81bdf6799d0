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
)

// mergeSortedInto appends other into s, where every start in other is
// known to be >= the greatest start currently in s. This is the ordered
// append fast path the bulk loader uses for runs it can prove are
// already in increasing order, avoiding the full absorb-and-search sweep
// that [RangeSet.InsertRange] performs for the unordered case.
func (s *RangeSet[T]) mergeSortedInto(other *RangeSet[T]) {
	if other.IsEmpty() {
		return
	}
	if s.IsEmpty() {
		s.entries = other.entries
		s.length = new(big.Int).Set(other.length)
		return
	}

	lastIdx := len(s.entries) - 1
	last := s.entries[lastIdx]

	oi := 0
	absorbed := numeric.ZeroLen()
	oldLastLen := last.Len()
	for oi < len(other.entries) && other.entries[oi].Lo <= last.Hi+1 {
		head := other.entries[oi]
		if head.Hi > last.Hi {
			last.Hi = head.Hi
		}
		absorbed = new(big.Int).Add(absorbed, head.Len())
		oi++
	}
	s.entries[lastIdx] = last
	newLastLen := last.Len()

	s.entries = append(s.entries, other.entries[oi:]...)

	delta := new(big.Int).Sub(newLastLen, oldLastLen)
	rest := new(big.Int).Sub(other.length, absorbed)
	s.length = new(big.Int).Add(s.length, new(big.Int).Add(delta, rest))
}
