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

// Package rangeset provides RangeSet, an ordered, single-owner container
// that represents a set of integers as a list of strictly increasing,
// non-adjacent inclusive ranges. It supports point and range
// insert/remove, membership, iteration, the set-algebra combinators
// built on package ranges, and a bulk loader that turns an unordered
// slice of elements into a RangeSet in near-linear time.
//
// # Structures
//
//   - [RangeSet]: the container.
//
// # Operations
//
//   - Mutation: [RangeSet.Insert], [RangeSet.Remove], [RangeSet.InsertRange], [RangeSet.RemoveRange], [RangeSet.Clear]
//   - Query: [RangeSet.Contains], [RangeSet.Len], [RangeSet.IsEmpty]
//   - Iteration: [RangeSet.IterRanges], [RangeSet.IterPoints], [RangeSet.SortedRanges]
//   - Construction: [New], [WithRange], [FromSortedDisjoint], [FromIterPoints], [FromIterRanges], [FromSlice]
//   - Algebra: [RangeSet.Union], [RangeSet.Intersection], [RangeSet.Difference], [RangeSet.SymmetricDifference], [RangeSet.Complement], [UnionMany], [IntersectionMany]
//   - Comparison: [RangeSet.Equal], [RangeSet.IsSubset], [RangeSet.IsSuperset], [RangeSet.IsDisjoint]
package rangeset
