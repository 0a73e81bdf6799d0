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

// Package rtassert provides runtime assertion helpers that raise
// [ProgrammerError] rather than returning an error value: this module's
// contracts (endpoint bounds, range orientation, sorted-disjoint
// ordering) are never meant to be violated by a correct caller, so a
// violation is a programmer mistake, not an operational condition to
// recover from.
package rtassert

import (
	"fmt"

	"github.com/gorange/rangeset/internal/constraints"
)

// ProgrammerError marks a contract violation: an endpoint past safe_max, a
// reversed range, or a sorted-disjoint promise broken at runtime. Mutation
// of a set while it is being iterated is not detected and does not raise
// it. It is always raised via panic, is
// never meant to be recovered and retried, and is distinguished from
// ordinary errors by its type so that a recover site can tell the two
// apart.
type ProgrammerError struct {
	msg string
}

func (e *ProgrammerError) Error() string {
	return e.msg
}

// Raise panics with a ProgrammerError built from the given message.
func Raise(format string, args ...any) {
	panic(&ProgrammerError{msg: fmt.Sprintf(format, args...)})
}

// MustNotNeg raises a ProgrammerError if n is negative.
func MustNotNeg[T constraints.Number](n T) {
	if n < 0 {
		Raise("must not be negative: %v", n)
	}
}

// MustLessEqual raises a ProgrammerError unless x <= y.
func MustLessEqual[T constraints.Ordered](x, y T) {
	if x > y {
		Raise("must not be greater than %v: %v", y, x)
	}
}

// MustLessThan raises a ProgrammerError unless x < y.
func MustLessThan[T constraints.Ordered](x, y T) {
	if x >= y {
		Raise("must be less than %v: %v", y, x)
	}
}
