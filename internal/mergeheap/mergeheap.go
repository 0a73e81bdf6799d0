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

// Package mergeheap provides a small generic binary min-heap used to
// k-way merge sorted-starts range streams by repeatedly popping the
// source with the least pending start.
//
// The sift-down mechanics are those of a classic heapsort, generalized
// from an ordered value comparison to an arbitrary less function, since
// the merge driver orders by an entry's start field rather than by the
// entry itself.
package mergeheap

// Heap is a binary min-heap ordered by a caller-supplied less function.
// The zero value is not usable; construct with [New].
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New creates an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Push inserts v into the heap.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the least item in the heap.
// Pop panics if the heap is empty.
func (h *Heap[T]) Pop() T {
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return top
}

// Peek returns the least item in the heap without removing it.
// Peek panics if the heap is empty.
func (h *Heap[T]) Peek() T {
	return h.items[0]
}

func (h *Heap[T]) siftUp(node int) {
	for node > 0 {
		parent := (node - 1) / 2
		if !h.less(h.items[node], h.items[parent]) {
			return
		}
		h.items[node], h.items[parent] = h.items[parent], h.items[node]
		node = parent
	}
}

func (h *Heap[T]) siftDown(node int) {
	v := h.items
	for {
		child := 2*node + 1
		if child >= len(v) {
			break
		}
		if child+1 < len(v) && h.less(v[child+1], v[child]) {
			child++
		}
		if !h.less(v[child], v[node]) {
			return
		}
		v[node], v[child] = v[child], v[node]
		node = child
	}
}
