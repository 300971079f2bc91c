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
	"fmt"

	"github.com/consensys/go-datatable/pkg/util/collection/iter"
)

// ColumnCollection is an ordered, name-indexed set of columns belonging to a
// single table.  Invariants (all enforced when the owning table is built):
// no two columns share a name, all columns have identical length, and column
// order is preserved from construction.
type ColumnCollection struct {
	columns []Column
}

// newColumnCollection wraps an already validated set of columns.
func newColumnCollection(columns []Column) *ColumnCollection {
	// Clone the column list, so the collection is unaffected by any
	// subsequent modification of the original.
	copied := make([]Column, len(columns))
	copy(copied, columns)
	//
	return &ColumnCollection{copied}
}

// Count returns the number of columns in this collection.
func (p *ColumnCollection) Count() uint {
	return uint(len(p.columns))
}

// Get returns the column at a given index in this collection, or an error if
// the index is out-of-bounds.
func (p *ColumnCollection) Get(index uint) (Column, error) {
	if index >= uint(len(p.columns)) {
		return nil, fmt.Errorf("column %d of %d: %w", index, len(p.columns), ErrIndexOutOfRange)
	}
	//
	return p.columns[index], nil
}

// GetByName returns the column with a given name in this collection, or an
// error if no such column exists.  Names are matched case-sensitively.
func (p *ColumnCollection) GetByName(name string) (Column, error) {
	for _, c := range p.columns {
		if c.Name() == name {
			// Matched column
			return c, nil
		}
	}
	//
	return nil, fmt.Errorf("column %q: %w", name, ErrColumnNotFound)
}

// IndexOf returns the index of the column with the given name in this
// collection, or false if no such column exists.
func (p *ColumnCollection) IndexOf(name string) (uint, bool) {
	for i, c := range p.columns {
		if c.Name() == name {
			return uint(i), true
		}
	}
	// Column does not exist
	return 0, false
}

// HasColumn checks whether this collection has a column with the given name
// or not.
func (p *ColumnCollection) HasColumn(name string) bool {
	_, ok := p.IndexOf(name)
	return ok
}

// AsSlice returns the columns of this collection, in order.  The returned
// slice is a copy, hence modifying it does not affect the collection.
func (p *ColumnCollection) AsSlice() []Column {
	columns := make([]Column, len(p.columns))
	copy(columns, p.columns)

	return columns
}

// Iterator returns an iterator over the columns of this collection.
func (p *ColumnCollection) Iterator() iter.Iterator[Column] {
	return iter.NewArrayIterator(p.columns)
}

// ===================================================================
// Validation
// ===================================================================

// Check that no two columns share a name.
func validateColumnNames(columns []Column) error {
	seen := make(map[string]bool, len(columns))
	//
	for _, col := range columns {
		if seen[col.Name()] {
			return fmt.Errorf("column %q: %w", col.Name(), ErrDuplicateColumnName)
		}

		seen[col.Name()] = true
	}
	//
	return nil
}

// Check that all columns have the same length.
func validateColumnLengths(columns []Column) error {
	for i := 1; i < len(columns); i++ {
		if columns[i].Len() != columns[0].Len() {
			return fmt.Errorf("column %q has length %d, expected %d: %w",
				columns[i].Name(), columns[i].Len(), columns[0].Len(), ErrInconsistentColumnLength)
		}
	}
	//
	return nil
}
