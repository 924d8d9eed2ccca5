// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"io"
	"iter"
	"math"
	"slices"
	"unsafe"

	"github.com/gorse-io/collection/base/encoding"
	"github.com/juju/errors"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// ErrOutOfRange is returned when an index or a range falls outside [0, Len()].
	ErrOutOfRange = errors.ConstError("out of range")
	// ErrLength is returned when a requested size or capacity is negative or exceeds MaxSize().
	ErrLength = errors.ConstError("length error")
)

// IsOutOfRange reports whether err was caused by an invalid index or range.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsLength reports whether err was caused by an invalid size or capacity.
func IsLength(err error) bool {
	return errors.Is(err, ErrLength)
}

// Vector is a resizable, contiguous and ordered sequence of elements.
// It keeps Len() <= Cap() <= MaxSize() at all times. The zero value is an
// empty vector ready to use.
type Vector[T any] struct {
	data []T
}

// New creates an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{data: make([]T, 0)}
}

// WithCapacity creates an empty vector able to hold n elements without reallocation.
func WithCapacity[T any](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, 0, n)}
}

// From creates a vector holding a copy of values.
func From[T any](values ...T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Vector[T]{data: data}
}

// Empty returns true if the vector holds no element.
func (v *Vector[T]) Empty() bool {
	return len(v.data) == 0
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// Cap returns the number of elements the vector can hold before reallocating.
func (v *Vector[T]) Cap() int {
	return cap(v.data)
}

// MaxSize returns the maximum number of elements the vector could address.
func (v *Vector[T]) MaxSize() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// Data returns the backing storage of the elements. The slice is never nil
// and is only valid until the next call that changes the size or capacity.
func (v *Vector[T]) Data() []T {
	if v.data == nil {
		v.data = make([]T, 0)
	}
	return v.data[:len(v.data):len(v.data)]
}

// All returns an iterator over indices and elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.data)
}

// PushBack appends values to the end of the vector.
func (v *Vector[T]) PushBack(values ...T) {
	v.data = append(v.data, values...)
}

// PopBack removes the last element and returns it.
func (v *Vector[T]) PopBack() (T, bool) {
	var zero T
	if len(v.data) == 0 {
		return zero, false
	}
	last := v.data[len(v.data)-1]
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return last, true
}

// At returns the element at index i with bounds checking.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// Set replaces the element at index i with bounds checking.
func (v *Vector[T]) Set(i int, value T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.data[i] = value
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	return v.At(0)
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	return v.At(len(v.data) - 1)
}

// Insert inserts values before index i. i may equal Len().
func (v *Vector[T]) Insert(i int, values ...T) error {
	if i < 0 || i > len(v.data) {
		return errors.Annotatef(ErrOutOfRange, "insert at %d into vector of size %d", i, len(v.data))
	}
	v.data = slices.Insert(v.data, i, values...)
	return nil
}

// Erase removes elements in [first, last). The capacity is left unchanged.
func (v *Vector[T]) Erase(first, last int) error {
	if first < 0 || first > last || last > len(v.data) {
		return errors.Annotatef(ErrOutOfRange, "erase [%d, %d) from vector of size %d", first, last, len(v.data))
	}
	v.data = slices.Delete(v.data, first, last)
	return nil
}

// Resize changes the number of elements to n. Extra elements are dropped from
// the tail; missing elements are appended as zero values.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 || n > v.MaxSize() {
		return errors.Annotatef(ErrLength, "resize to %d", n)
	}
	size := len(v.data)
	switch {
	case n <= size:
		clear(v.data[n:])
		v.data = v.data[:n]
	case n <= cap(v.data):
		v.data = v.data[:n]
		clear(v.data[size:])
	default:
		v.data = append(v.data, make([]T, n-size)...)
	}
	return nil
}

// Reserve grows the capacity to at least n. It never shrinks the capacity
// and never changes the size.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 || n > v.MaxSize() {
		return errors.Annotatef(ErrLength, "reserve %d", n)
	}
	if n <= cap(v.data) {
		return nil
	}
	data := make([]T, len(v.data), n)
	copy(data, v.data)
	v.data = data
	return nil
}

// ShrinkToFit releases unused capacity.
func (v *Vector[T]) ShrinkToFit() {
	if cap(v.data) == len(v.data) {
		return
	}
	data := make([]T, len(v.data))
	copy(data, v.data)
	v.data = data
}

// Clear removes all elements but keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

// Clone returns an independent copy with the same size and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data), cap(v.data))
	copy(data, v.data)
	return &Vector[T]{data: data}
}

// Swap exchanges the contents of two vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
}

// Marshal writes the elements to a byte stream.
func (v *Vector[T]) Marshal(w io.Writer) error {
	payload, err := msgpack.Marshal(v.Data())
	if err != nil {
		return errors.Trace(err)
	}
	return encoding.WriteBytes(w, payload)
}

// Unmarshal replaces the elements with those read from a byte stream.
func (v *Vector[T]) Unmarshal(r io.Reader) error {
	payload, err := encoding.ReadBytes(r)
	if err != nil {
		return errors.Trace(err)
	}
	var values []T
	if err = msgpack.Unmarshal(payload, &values); err != nil {
		return errors.Trace(err)
	}
	if values == nil {
		values = make([]T, 0)
	}
	v.data = values
	return nil
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= len(v.data) {
		return errors.Annotatef(ErrOutOfRange, "index %d in vector of size %d", i, len(v.data))
	}
	return nil
}
