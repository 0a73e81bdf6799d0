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

// Package assert provides minimal test assertion helpers used across this
// module's _test.go files, so tests read the same way regardless of package.
package assert

import (
	"reflect"
	"testing"
)

// Equal fails the test if got != want, per reflect.DeepEqual.
func Equal[T any](t testing.TB, want, got T) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Errorf("not equal:\n  want: %#v\n  got:  %#v", want, got)
	}
}

// NotEqual fails the test if got == want, per reflect.DeepEqual.
func NotEqual(t testing.TB, want, got any) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		t.Errorf("unexpectedly equal: %#v", got)
	}
}

// True fails the test if cond is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Error("expected true, got false")
	}
}

// False fails the test if cond is true.
func False(t testing.TB, cond bool) {
	t.Helper()
	if cond {
		t.Error("expected false, got true")
	}
}

// Nil fails the test if v is a non-nil value.
func Nil(t testing.TB, v any) {
	t.Helper()
	if v != nil && !reflect.ValueOf(v).IsZero() {
		t.Errorf("expected nil, got: %#v", v)
	}
}

// NotNil fails the test if v is nil.
func NotNil(t testing.TB, v any) {
	t.Helper()
	if v == nil || reflect.ValueOf(v).IsZero() {
		t.Error("expected a non-nil value, got nil")
	}
}

// Zero fails the test if v is not the zero value of its type.
func Zero(t testing.TB, v any) {
	t.Helper()
	if v != nil && !reflect.ValueOf(v).IsZero() {
		t.Errorf("expected zero value, got: %#v", v)
	}
}

// NotZero fails the test if v is the zero value of its type.
func NotZero(t testing.TB, v any) {
	t.Helper()
	if v == nil || reflect.ValueOf(v).IsZero() {
		t.Error("expected a non-zero value, got zero")
	}
}

// Panic fails the test if f does not panic.
func Panic(t testing.TB, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic, but none occurred")
		}
	}()
	f()
}

// NotPanic fails the test if f panics.
func NotPanic(t testing.TB, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("expected no panic, got: %v", r)
		}
	}()
	f()
}
