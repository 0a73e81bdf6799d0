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

// IntersectionMany returns the sorted-disjoint intersection of all given
// streams, expressed through De Morgan's law so that the whole chain
// stays lazy: !(⋃ !sᵢ) = ⋂ sᵢ.
func IntersectionMany[T numeric.Integer](streams ...Sorted[T]) Sorted[T] {
	complements := make([]Sorted[T], len(streams))
	for i, s := range streams {
		complements[i] = Complement(s)
	}
	return Complement(UnionMany(complements...))
}

// Intersection returns the sorted-disjoint intersection of a and b.
func Intersection[T numeric.Integer](a, b Sorted[T]) Sorted[T] {
	return IntersectionMany(a, b)
}

// Difference returns a - b: a ∩ !b, expressed as !(!a ∪ b) so the result
// is produced lazily in a single pass.
func Difference[T numeric.Integer](a, b Sorted[T]) Sorted[T] {
	return Complement(Union(Complement(a), b))
}

// SymmetricDifference returns the ranges present in exactly one of a, b.
// Each operand is teed so that its complement/difference legs and its
// unmodified leg can be driven concurrently from the same single-pass
// source.
func SymmetricDifference[T numeric.Integer](a, b Sorted[T]) Sorted[T] {
	aLegs := TeePair(a)
	bLegs := TeePair(b)
	a0, a1 := aLegs.Values()
	b0, b1 := bLegs.Values()
	return Union(Difference(a0, b0), Difference(b1, a1))
}

// Equal reports whether a and b produce identical range sequences,
// stopping at the first mismatch or once both streams exhaust together.
func Equal[T numeric.Integer](a, b Sorted[T]) bool {
	for {
		ra, oka := a.Next()
		rb, okb := b.Next()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if ra != rb {
			return false
		}
	}
}

// IsEmpty reports whether s has no ranges. It consumes one pull of s.
func IsEmpty[T numeric.Integer](s Sorted[T]) bool {
	_, ok := s.Next()
	return !ok
}

// IsSubset reports whether every element of a is also in b.
func IsSubset[T numeric.Integer](a, b Sorted[T]) bool {
	return IsEmpty(Difference(a, b))
}

// IsSuperset reports whether every element of b is also in a.
func IsSuperset[T numeric.Integer](a, b Sorted[T]) bool {
	return IsSubset(b, a)
}

// IsDisjoint reports whether a and b share no elements.
func IsDisjoint[T numeric.Integer](a, b Sorted[T]) bool {
	return IsEmpty(Intersection(a, b))
}
