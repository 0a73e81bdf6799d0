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

// Dyn trusts it src already satisfies the sorted-disjoint contract and
// wraps it as a [Sorted] without runtime validation. It is the adapter
// this package's own combinators use internally (their outputs are
// sorted-disjoint by construction), and the one a caller reaches for when
// it already knows its source is sorted-disjoint — a RangeSet's own
// stored ranges, for instance — and wants to avoid [Check]'s per-pull
// cost.
//
// Because Sorted only ever stores an Iter behind an interface field, Dyn
// is also how heterogeneous concrete iterator types are unified into a
// single slice for the variadic combinators ([UnionMany],
// [IntersectionMany]): the carrier erases the source type entirely.
func Dyn[T numeric.Integer](src Iter[T]) Sorted[T] {
	return Sorted[T]{it: src}
}
