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

// Package widecompare declares the capability flag the bulk loader
// consults to decide between its vectorized and scalar run-detection
// paths.
//
// Go exposes no portable SIMD intrinsic (unlike the std::simd lanes the
// original source compiles against per target-feature), so HasWideCompare
// is always false here and LANES is informational only: the loader scans
// its input element by element and does not divide it into LANES-sized
// chunks.
package widecompare

import (
	"unsafe"

	"github.com/gorange/rangeset/internal/constraints"
)

// HasWideCompare reports whether the build environment supplies a
// hardware wide-compare capability. This module never does — it has no
// access to a portable SIMD facility — so it is always false, and the
// bulk loader's element-by-element scalar scan is used unconditionally.
const HasWideCompare = false

// Lanes returns 64 / sizeof(T), the number of T-sized lanes a 64-byte
// wide compare would process at once, matching the source contract even
// though this build never executes a vectorized path.
func Lanes[T constraints.Integer]() int {
	var z T
	size := int(unsafe.Sizeof(z))
	if size <= 0 {
		return 1
	}
	return 64 / size
}
