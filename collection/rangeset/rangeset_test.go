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
)

func TestCoalescingInsert(t *testing.T) {
	s := rangeset.New[int32]()
	for _, v := range []int32{2, 3, 1, 100, 1} {
		s.Insert(v)
	}
	assert.Equal(t, "1..=3, 100..=100", s.String())
	assert.Equal(t, int64(4), s.Len().Int64())
}

func TestInsertAdjacentCoalescesBothSides(t *testing.T) {
	s := rangeset.New[int32]()
	s.Insert(1)
	s.Insert(3)
	s.Insert(2) // bridges 1 and 3
	assert.Equal(t, "1..=3", s.String())
}

func TestRemoveInteriorSplits(t *testing.T) {
	s := rangeset.WithRange[int32](1, 10)
	s.Remove(5)
	assert.Equal(t, "1..=4, 6..=10", s.String())
	assert.Equal(t, int64(9), s.Len().Int64())
}

func TestRemoveEndpoint(t *testing.T) {
	s := rangeset.WithRange[int32](1, 10)
	s.Remove(1)
	assert.Equal(t, "2..=10", s.String())
	s.Remove(10)
	assert.Equal(t, "2..=9", s.String())
}

func TestRemoveEntireRange(t *testing.T) {
	s := rangeset.WithRange[int32](5, 5)
	assert.True(t, s.Remove(5))
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Remove(5))
}

func TestContains(t *testing.T) {
	s := rangeset.WithRange[int32](10, 20)
	assert.True(t, s.Contains(10))
	assert.True(t, s.Contains(15))
	assert.True(t, s.Contains(20))
	assert.False(t, s.Contains(9))
	assert.False(t, s.Contains(21))
}

func TestInsertRangeAbsorbsOverlap(t *testing.T) {
	s := rangeset.New[int32]()
	s.InsertRange(1, 5)
	s.InsertRange(10, 15)
	s.InsertRange(4, 11)
	assert.Equal(t, "1..=15", s.String())
	assert.Equal(t, int64(15), s.Len().Int64())
}

func TestInsertRangeAdjacentCoalesces(t *testing.T) {
	s := rangeset.New[int32]()
	s.InsertRange(1, 5)
	s.InsertRange(6, 10)
	assert.Equal(t, "1..=10", s.String())
}

func TestRemoveRangeSplitsStraddlingEntry(t *testing.T) {
	s := rangeset.WithRange[int32](1, 100)
	s.RemoveRange(40, 60)
	assert.Equal(t, "1..=39, 61..=100", s.String())
	assert.Equal(t, int64(39+40), s.Len().Int64())
}

func TestRemoveRangeTrimsPrefixAndSuffix(t *testing.T) {
	s := rangeset.New[int32]()
	s.InsertRange(1, 10)
	s.InsertRange(20, 30)
	s.RemoveRange(5, 25)
	assert.Equal(t, "1..=4, 26..=30", s.String())
}

func TestRemoveRangeDeletesFullyCoveredEntries(t *testing.T) {
	s := rangeset.New[int32]()
	s.InsertRange(1, 5)
	s.InsertRange(10, 15)
	s.InsertRange(20, 25)
	s.RemoveRange(0, 100)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, int64(0), s.Len().Int64())
}

func TestRangeAlgebraScenario(t *testing.T) {
	a := rangeset.New[int32]()
	a.InsertRange(1, 2)
	a.InsertRange(5, 100)

	b := rangeset.WithRange[int32](2, 6)

	c := rangeset.New[int32]()
	c.InsertRange(2, 2)
	c.InsertRange(6, 200)

	assert.Equal(t, "1..=100", a.Union(b).String())
	assert.Equal(t, "1..=1", a.Difference(b.Union(c)).String())
	assert.Equal(t, "1..=200", rangeset.UnionMany(a, b, c).String())
}

func TestComplementScenario(t *testing.T) {
	a := rangeset.New[int16]()
	a.InsertRange(-10, 0)
	a.InsertRange(1000, 2000)
	assert.Equal(t, "-32768..=-11, 1..=999, 2001..=32766", a.Complement().String())
}

func TestSymmetricDifferenceScenario(t *testing.T) {
	a := rangeset.WithRange[int32](1, 2)
	b := rangeset.WithRange[int32](2, 3)
	assert.Equal(t, "1..=1, 3..=3", a.SymmetricDifference(b).String())
}

func TestThreeInputParityScenario(t *testing.T) {
	a := rangeset.New[uint8]()
	a.InsertRange(1, 6)
	a.InsertRange(8, 9)
	a.InsertRange(11, 15)

	b := rangeset.New[uint8]()
	b.InsertRange(5, 13)
	b.InsertRange(18, 29)

	c := rangeset.WithRange[uint8](38, 42)

	parity := a.SymmetricDifference(b).SymmetricDifference(c)
	assert.Equal(t, "1..=4, 7..=7, 10..=10, 14..=15, 18..=29, 38..=42", parity.String())
}

func TestLaws(t *testing.T) {
	a := rangeset.New[int32]()
	a.InsertRange(1, 10)
	a.InsertRange(50, 60)

	empty := rangeset.New[int32]()

	assert.True(t, a.Union(empty).Equal(a))
	assert.True(t, a.Intersection(empty).Equal(empty))
	assert.True(t, a.Complement().Complement().Equal(a))
	assert.True(t, a.Difference(a).Equal(empty))
	assert.True(t, a.SymmetricDifference(a).Equal(empty))

	universe := rangeset.New[int32]()
	universe.InsertRange(-2147483648, 2147483646)
	assert.True(t, a.Union(a.Complement()).Equal(universe))
}

func TestDeMorgan(t *testing.T) {
	a := rangeset.New[int32]()
	a.InsertRange(1, 10)
	b := rangeset.New[int32]()
	b.InsertRange(5, 20)

	lhs := a.Union(b).Complement()
	rhs := a.Complement().Intersection(b.Complement())
	assert.True(t, lhs.Equal(rhs))

	lhs2 := a.Intersection(b).Complement()
	rhs2 := a.Complement().Union(b.Complement())
	assert.True(t, lhs2.Equal(rhs2))
}

func TestSubsetSuperset(t *testing.T) {
	a := rangeset.WithRange[int32](1, 5)
	b := rangeset.WithRange[int32](1, 10)
	assert.True(t, a.IsSubset(b))
	assert.True(t, b.IsSuperset(a))
	assert.True(t, a.Union(b).Equal(b))
}

func TestIsDisjoint(t *testing.T) {
	a := rangeset.WithRange[int32](1, 5)
	b := rangeset.WithRange[int32](10, 20)
	assert.True(t, a.IsDisjoint(b))

	c := rangeset.WithRange[int32](5, 20)
	assert.False(t, a.IsDisjoint(c))
}

func TestRoundTripThroughSortedDisjoint(t *testing.T) {
	a := rangeset.New[int32]()
	a.InsertRange(1, 10)
	a.InsertRange(50, 60)

	got := rangeset.FromSortedDisjoint[int32](a.IterRanges())
	assert.True(t, got.Equal(a))
}

func TestFromIterPoints(t *testing.T) {
	got := rangeset.FromIterPoints([]int32{2, 3, 1, 100, 1})
	assert.Equal(t, "1..=3, 100..=100", got.String())
}

func TestIterPoints(t *testing.T) {
	s := rangeset.New[int32]()
	s.InsertRange(1, 3)
	s.InsertRange(10, 11)

	next := s.IterPoints()
	var got []int32
	for {
		v, ok := next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int32{1, 2, 3, 10, 11}, got)
}

func TestBoundaryEndpoints(t *testing.T) {
	const minV, safeMaxV = int8(-128), int8(126)
	s := rangeset.WithRange[int8](minV, safeMaxV)
	assert.True(t, s.Contains(minV))
	assert.True(t, s.Contains(safeMaxV))
	assert.True(t, s.Complement().IsEmpty())
}

func TestEndpointPastSafeMaxPanics(t *testing.T) {
	s := rangeset.New[int8]()
	assert.Panic(t, func() { s.Insert(127) }) // int8 MAX, not safe_max
}

func TestInsertRangeReversedPanicsAndLeavesSetUnchanged(t *testing.T) {
	s := rangeset.WithRange[int32](1, 10)
	assert.Panic(t, func() { s.InsertRange(20, 5) })
	assert.Equal(t, "1..=10", s.String())
}
