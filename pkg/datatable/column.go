// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package datatable

import (
	"cmp"
	"fmt"
	"strings"
)

// Comparable is implemented by any type which can compare itself against
// another instance of the same type, returning a negative value when it is
// smaller, zero when equal and a positive value otherwise.  This matches the
// Cmp convention used by (for example) big.Int and the gnark field element
// types.
type Comparable[T any] interface {
	Cmp(T) int
}

// Column represents a named, fixed-length, immutable sequence of values of
// some uniform type, over which a total order is defined.  Columns are
// created once and never modified; every transformation in this package
// produces fresh columns (or shares existing ones) rather than mutating.
type Column interface {
	// Name returns the name of this column.
	Name() string

	// Len returns the number of values held in this column.
	Len() uint

	// Get returns the value at a given row in this column, or an error if
	// the row is out-of-bounds.
	Get(row uint) (any, error)

	// Compare the values held at two (in-bounds) rows of this column,
	// returning a negative value, zero or a positive value in the usual
	// fashion.
	Compare(i uint, j uint) int

	// Select copies the values at the given (in-bounds) rows, in the given
	// order, into a fresh column with the same name.  Rows may be repeated.
	Select(rows []uint) Column

	// String returns a compact, human-readable summary of this column.
	String() string
}

// dataColumn is the concrete column implementation, parameterised over the
// value type together with its ordering.
type dataColumn[T any] struct {
	// Holds the name of this column
	name string
	// Holds the values making up this column
	data []T
	// Three-way comparison over values
	cmp func(T, T) int
}

// NewColumn constructs a column over any naturally ordered value type, such
// as the builtin integer, float and string types.
func NewColumn[T cmp.Ordered](name string, data []T) Column {
	return NewColumnFunc(name, data, cmp.Compare[T])
}

// NewComparableColumn constructs a column over any value type which provides
// a three-way comparison of itself (e.g. *big.Int, or a field element type
// such as *fr.Element).
func NewComparableColumn[T Comparable[T]](name string, data []T) Column {
	return NewColumnFunc(name, data, func(l T, r T) int { return l.Cmp(r) })
}

// NewColumnFunc constructs a column over an arbitrary value type, using an
// explicit three-way comparison function to order values.
func NewColumnFunc[T any](name string, data []T, cmp func(T, T) int) Column {
	// Clone the input data, ensuring the column cannot be modified after
	// construction via the original slice.
	copied := make([]T, len(data))
	copy(copied, data)
	//
	return &dataColumn[T]{name, copied, cmp}
}

// ColumnValues returns the typed values held in a given column, or false
// when the column holds values of a different type.  The returned slice is a
// copy, hence modifying it does not affect the column.
func ColumnValues[T any](col Column) ([]T, bool) {
	if c, ok := col.(*dataColumn[T]); ok {
		items := make([]T, len(c.data))
		copy(items, c.data)
		//
		return items, true
	}
	// Type mismatch
	return nil, false
}

// Name returns the name of this column.
func (p *dataColumn[T]) Name() string {
	return p.name
}

// Len returns the number of values held in this column.
func (p *dataColumn[T]) Len() uint {
	return uint(len(p.data))
}

// Get returns the value at a given row in this column, or an error if the
// row is out-of-bounds.
func (p *dataColumn[T]) Get(row uint) (any, error) {
	if row >= uint(len(p.data)) {
		return nil, fmt.Errorf("row %d of column %q: %w", row, p.name, ErrIndexOutOfRange)
	}
	// in-bounds access
	return p.data[row], nil
}

// Compare the values held at two rows of this column.
func (p *dataColumn[T]) Compare(i uint, j uint) int {
	return p.cmp(p.data[i], p.data[j])
}

// Select copies the values at the given rows into a fresh column.
func (p *dataColumn[T]) Select(rows []uint) Column {
	data := make([]T, len(rows))
	//
	for i, row := range rows {
		data[i] = p.data[row]
	}
	//
	return &dataColumn[T]{p.name, data, p.cmp}
}

func (p *dataColumn[T]) String() string {
	// Use string builder to try and make this vaguely efficient.
	var id strings.Builder

	id.WriteString(p.name)
	id.WriteString("={")

	for i, item := range p.data {
		if i != 0 {
			id.WriteString(",")
		}

		id.WriteString(fmt.Sprintf("%v", item))
	}

	id.WriteString("}")
	//
	return id.String()
}
