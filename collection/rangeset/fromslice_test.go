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

package rangeset_test

import (
	"testing"

	"github.com/gorange/rangeset/collection/rangeset"
	"github.com/gorange/rangeset/internal/assert"
	"github.com/gorange/rangeset/internal/fastrand"
)

func TestFromSliceMatchesFromIterPointsOnSortedRun(t *testing.T) {
	vals := make([]int32, 1000)
	for i := range vals {
		vals[i] = int32(i)
	}
	got := rangeset.FromSlice(vals)
	want := rangeset.FromIterPoints(vals)
	assert.True(t, got.Equal(want))
	assert.Equal(t, "0..=999", got.String())
}

func TestFromSliceHandlesOutOfOrderJumps(t *testing.T) {
	vals := make([]int32, 0, 1010)
	for i := int32(0); i < 1000; i++ {
		vals = append(vals, i)
	}
	vals = append(vals, 2000, 5, 3000, -50, 999999)
	got := rangeset.FromSlice(vals)
	want := rangeset.FromIterPoints(vals)
	assert.True(t, got.Equal(want))
}

func TestFromSliceShuffledMatchesFromIterPoints(t *testing.T) {
	base := make([]int32, 300)
	for i := range base {
		base[i] = int32(i * 3)
	}
	fastrand.Shuffle2(base)

	got := rangeset.FromSlice(base)
	want := rangeset.FromIterPoints(base)
	assert.True(t, got.Equal(want))
	assert.Equal(t, int64(300), got.Len().Int64())
}

func TestFromSliceDescendingRun(t *testing.T) {
	vals := []int32{10, 9, 8, 7, 6}
	got := rangeset.FromSlice(vals)
	assert.Equal(t, "6..=10", got.String())
}

func TestFromSliceEmpty(t *testing.T) {
	got := rangeset.FromSlice[int32](nil)
	assert.True(t, got.IsEmpty())
}

func TestFromSliceSingleElement(t *testing.T) {
	got := rangeset.FromSlice([]int32{42})
	assert.Equal(t, "42..=42", got.String())
}

func TestFromSliceDuplicatesCollapse(t *testing.T) {
	got := rangeset.FromSlice([]int32{5, 5, 5, 6, 6})
	assert.Equal(t, "5..=6", got.String())
	assert.Equal(t, int64(2), got.Len().Int64())
}

func TestFromSliceRandomSampleMatchesFromIterPoints(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		n := 50 + int(fastrand.Uint32()%200)
		vals := make([]int32, n)
		for i := range vals {
			vals[i] = int32(int64(fastrand.Uint32()%2000) - 1000)
		}
		got := rangeset.FromSlice(vals)
		want := rangeset.FromIterPoints(vals)
		assert.True(t, got.Equal(want))
	}
}
