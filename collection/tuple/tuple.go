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

// Package tuple provides a generic 2-ary pair, used by this module to
// carry the two output legs of a ranges.Tee split as one value.
//
// # Quick Start
//
// package main
//
//	import (
//		"fmt"
//		"github.com/gorange/rangeset/collection/tuple"
//	)
//
//	func main() {
//		addr := tuple.Make2("localhost", 8080)
//		fmt.Printf("%s:%d\n", addr.First, addr.Second)
//		// Output:
//		// localhost:8080
//	 }
package tuple

import (
	"github.com/gorange/rangeset/gvalue"
)

type Pair[V1, V2 any] T2[V1, V2]

// T2 is a 2-ary tuple.
type T2[V1, V2 any] struct {
	First  V1
	Second V2
}

// Values returns all elements of tuple.
func (t T2[V1, V2]) Values() (V1, V2) {
	return t.First, t.Second
}

// Make2 creates a tuple of 2 elements.
func Make2[V1, V2 any](first V1, second V2) T2[V1, V2] {
	return T2[V1, V2]{first, second}
}

// S2 is a slice of 2-ary tuple.
type S2[V1, V2 any] []T2[V1, V2]

// Unzip unpacks elements of tuple to slice.
func (s S2[V1, V2]) Unzip() ([]V1, []V2) {
	s1 := make([]V1, len(s))
	s2 := make([]V2, len(s))
	for i := range s {
		s1[i], s2[i] = s[i].Values()
	}
	return s1, s2
}

func Zip2[V1, V2 any](s1 []V1, s2 []V2) S2[V1, V2] {
	size := gvalue.Min(len(s1), len(s2))
	s := make(S2[V1, V2], size)
	for i := 0; i < size; i++ {
		s[i] = Make2(s1[i], s2[i])
	}
	return s
}
