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

// Package ranges provides the lazy, pull-based algebra over sorted
// sequences of disjoint inclusive ranges: merge, union, complement, and
// the intersection/difference/symmetric-difference combinators derived
// from them by De Morgan's laws.
//
// No adapter in this package computes a range until its consumer pulls
// one: memory is bounded by the number of currently active operand
// streams, never by the cardinality of the sets they represent.
//
// # Operations
//
//   - Merge: [Merge]
//   - Union: [Union], [UnionMany]
//   - Complement: [Complement]
//   - Derived via De Morgan: [Intersection], [IntersectionMany], [Difference], [SymmetricDifference]
//   - Comparison: [Equal], [IsSubset], [IsSuperset], [IsDisjoint], [IsEmpty]
//   - Adapters: [Check] (runtime-validated), [Dyn] (trusted, type-erasing)
//   - Splitting: [Tee]
package ranges
