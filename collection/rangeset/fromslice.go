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
	"github.com/gorange/rangeset/internal/numeric"
	"github.com/gorange/rangeset/internal/widecompare"
	"github.com/gorange/rangeset/ranges"
)

// FromSlice builds a set from an unordered slice of elements in
// near-linear time. It scans the slice element by element for maximal
// ascending runs of step 1, folds the runs discovered in increasing
// order through the ordered-append fast path, and unions in whatever
// remains once order can no longer be proven. The scan uses no vector
// compare ([widecompare.HasWideCompare] is false) and is not divided
// into [widecompare.Lanes]-sized chunks.
//
// The result is always identical to [FromIterPoints] applied to the
// same slice; this function exists purely so that clustered input (the
// common case) avoids paying for the general insert_range sweep on every
// element.
func FromSlice[T numeric.Integer](vals []T) *RangeSet[T] {
	for _, v := range vals {
		validateEndpoint(v)
	}
	runs := detectRuns(vals)
	return buildFromRuns(runs)
}

// detectRuns scans vals left to right and returns the maximal ascending
// runs of step 1 it finds, in slice order (not necessarily sorted by
// value).
func detectRuns[T numeric.Integer](vals []T) []ranges.Range[T] {
	_ = widecompare.Lanes[T]() // not used: the scan below is neither chunked nor vectorized.
	var runs []ranges.Range[T]
	i, n := 0, len(vals)
	for i < n {
		start := vals[i]
		j := i + 1
		for j < n && vals[j] == vals[j-1]+1 {
			j++
		}
		runs = append(runs, ranges.Range[T]{Lo: start, Hi: vals[j-1]})
		i = j
	}
	return runs
}

// buildFromRuns folds detected runs into a set. It keeps appending runs
// through the ordered fast path for as long as each new run's start
// exceeds the running builder's maximum end (proven monotone); once a
// run arrives out of order, the already-built monotone prefix and the
// remaining runs (folded through the general insert_range sweep) are
// combined with a single lazy union.
func buildFromRuns[T numeric.Integer](runs []ranges.Range[T]) *RangeSet[T] {
	result := New[T]()
	if len(runs) == 0 {
		return result
	}

	built := New[T]()
	built.InsertRange(runs[0].Lo, runs[0].Hi)
	splitAt := len(runs)

	for i := 1; i < len(runs); i++ {
		run := runs[i]
		lastIdx := len(built.entries) - 1
		last := built.entries[lastIdx]
		if run.Lo <= last.Hi {
			splitAt = i
			break
		}
		tmp := New[T]()
		tmp.InsertRange(run.Lo, run.Hi)
		built.mergeSortedInto(tmp)
	}

	if splitAt == len(runs) {
		return built
	}

	remainder := New[T]()
	for _, run := range runs[splitAt:] {
		remainder.InsertRange(run.Lo, run.Hi)
	}
	return UnionMany[T](built, remainder)
}
