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

// Package numeric provides the integer-kind abstraction shared by this
// module's range types: domain bounds, the safe_max endpoint sentinel, and
// SafeLen, a cardinality counter wide enough to hold the size of the widest
// supported universe.
//
// Go has no built-in type wider than 64 bits, and none of this module's
// other dependencies offer fixed-width 128-bit arithmetic, so SafeLen is
// built on [math/big.Int]: a single arbitrary-precision counter is exactly
// what the stdlib's bignum package is for, and reaching for a third-party
// bignum dependency to do the same job would not be justified.
package numeric

import (
	"math"
	"math/big"

	"github.com/gorange/rangeset/internal/constraints"
)

// Integer is the set of integer kinds this module operates over.
type Integer = constraints.Integer

// MaxVal returns the maximum representable value of T.
func MaxVal[T Integer]() T {
	var z T
	switch any(z).(type) {
	case int8:
		return T(math.MaxInt8)
	case int16:
		return any(int16(math.MaxInt16)).(T)
	case int32:
		return any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MaxInt64)).(T)
	case int:
		return any(int(math.MaxInt)).(T)
	case uint8:
		return any(uint8(math.MaxUint8)).(T)
	case uint16:
		return any(uint16(math.MaxUint16)).(T)
	case uint32:
		return any(uint32(math.MaxUint32)).(T)
	case uint64:
		return any(uint64(math.MaxUint64)).(T)
	case uint:
		return any(uint(math.MaxUint)).(T)
	case uintptr:
		return any(uintptr(math.MaxUint)).(T)
	default:
		panic("numeric: unsupported integer kind")
	}
}

// MinVal returns the minimum representable value of T.
func MinVal[T Integer]() T {
	var z T
	switch any(z).(type) {
	case int8:
		return any(int8(math.MinInt8)).(T)
	case int16:
		return any(int16(math.MinInt16)).(T)
	case int32:
		return any(int32(math.MinInt32)).(T)
	case int64:
		return any(int64(math.MinInt64)).(T)
	case int:
		return any(int(math.MinInt)).(T)
	default:
		// unsigned kinds are zero-based
		return 0
	}
}

// SafeMax returns T::MAX - 1, the largest value permitted as a range
// endpoint. Reserving the true maximum keeps complement and length
// arithmetic closed: the universe [MIN, SafeMax] never needs MIN-1 or
// MAX+1 to express its own complement or successor.
func SafeMax[T Integer]() T {
	return MaxVal[T]() - 1
}

// SafeLen is a cardinality counter wide enough to hold the size of any
// supported universe, including the 128-bit-and-up case where a plain
// uint64 would overflow.
type SafeLen = big.Int

// ToBig widens a value of kind T into a SafeLen-compatible *big.Int.
func ToBig[T Integer](v T) *big.Int {
	var z T
	switch any(z).(type) {
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return new(big.Int).SetUint64(uint64(v))
	default:
		return big.NewInt(int64(v))
	}
}

// RangeLen computes the cardinality e - s + 1 of an inclusive range as a
// SafeLen, without risking overflow in T's own width.
func RangeLen[T Integer](lo, hi T) *SafeLen {
	l := new(big.Int).Sub(ToBig(hi), ToBig(lo))
	return l.Add(l, big.NewInt(1))
}

// AddLenLessOne computes a + (n - 1): given a start value a and a SafeLen
// cardinality n, returns the corresponding end value a + n - 1 as a T.
// Used to reconstitute the high endpoint of a run whose length is only
// known as a SafeLen.
func AddLenLessOne[T Integer](a T, n *SafeLen) T {
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	sum := new(big.Int).Add(ToBig(a), nMinus1)
	return fromBig[T](sum)
}

func fromBig[T Integer](v *big.Int) T {
	var z T
	switch any(z).(type) {
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return T(v.Uint64())
	default:
		return T(v.Int64())
	}
}

// LenToFloat64 converts a SafeLen to its nearest float64 approximation,
// used only for diagnostics (e.g. formatting huge cardinalities); exact
// arithmetic always goes through the *big.Int value directly.
func LenToFloat64(n *SafeLen) float64 {
	f := new(big.Float).SetInt(n)
	v, _ := f.Float64()
	return v
}

// Float64ToLen converts a float64 back to a SafeLen, truncating toward
// zero. It is the inverse of [LenToFloat64] and shares its diagnostic-only
// scope: it is not precise for values beyond float64's 53-bit mantissa.
func Float64ToLen(f float64) *SafeLen {
	bf := big.NewFloat(f)
	n, _ := bf.Int(nil)
	return n
}

// LenIsZero reports whether n represents an empty cardinality.
func LenIsZero(n *SafeLen) bool {
	return n == nil || n.Sign() == 0
}

// ZeroLen returns a fresh zero-valued SafeLen.
func ZeroLen() *SafeLen {
	return new(big.Int)
}
