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

// Predicate identifies rows of interest, e.g. for filtering.
type Predicate = iter.Predicate[DataRow]

// RowIterable is implemented by anything which exposes an ordered collection
// of rows (i.e. tables and views).  The traversal and sorting operations of
// this package are defined uniformly over this interface.
type RowIterable interface {
	// Rows returns the row collection of this source.
	Rows() *DataRowCollection
}

// DataRowCollection is an ordered sequence of row indices into the columns
// of a given table.  Two flavours exist: the canonical identity ordering
// owned by the table itself, and an explicit ordering (a permutation or
// subset, possibly with repeats) owned by a view.  The canonical flavour is
// represented with a nil index sequence, avoiding any allocation for the
// common case.
type DataRowCollection struct {
	table *DataTable
	// Row index ordering, with nil representing the identity ordering over
	// all rows of the table.
	indexes []uint
}

// newIdentityRowCollection constructs the canonical row collection of a
// table.
func newIdentityRowCollection(table *DataTable) *DataRowCollection {
	return &DataRowCollection{table, nil}
}

// newRowCollection constructs a row collection with an explicit (already
// validated) index ordering.
func newRowCollection(table *DataTable, indexes []uint) *DataRowCollection {
	return &DataRowCollection{table, indexes}
}

// Count returns the number of rows in this collection.
func (p *DataRowCollection) Count() uint {
	if p.indexes == nil {
		return p.table.RowCount()
	}
	//
	return uint(len(p.indexes))
}

// Get returns the row at a given position in this collection, or an error if
// the position is out-of-bounds.
func (p *DataRowCollection) Get(index uint) (DataRow, error) {
	if index >= p.Count() {
		return DataRow{}, fmt.Errorf("row %d of %d: %w", index, p.Count(), ErrIndexOutOfRange)
	}
	//
	return DataRow{p.table, p.resolve(index)}, nil
}

// Resolve a position in this collection into an underlying table row index.
func (p *DataRowCollection) resolve(index uint) uint {
	if p.indexes == nil {
		return index
	}
	//
	return p.indexes[index]
}

// Indexes returns the row index ordering of this collection, materialised
// for the identity flavour.  The returned slice is a copy, hence modifying
// it does not affect the collection.
func (p *DataRowCollection) Indexes() []uint {
	n := p.Count()
	indexes := make([]uint, n)
	//
	for i := uint(0); i < n; i++ {
		indexes[i] = p.resolve(i)
	}
	//
	return indexes
}

// Iterator returns an iterator over the rows of this collection, in
// collection order.
func (p *DataRowCollection) Iterator() iter.Iterator[DataRow] {
	return iter.NewProjectIterator(iter.NewArrayIterator(p.Indexes()), func(index uint) DataRow {
		return DataRow{p.table, index}
	})
}

// AsSlice returns the rows of this collection, in order.
func (p *DataRowCollection) AsSlice() []DataRow {
	return p.Iterator().Collect()
}

// Filter returns a view containing exactly those rows of this collection
// which match a given predicate, retaining their relative order.  The
// underlying table is unaffected.
func (p *DataRowCollection) Filter(predicate Predicate) *DataView {
	matches := make([]uint, 0)
	n := p.Count()
	//
	for i := uint(0); i < n; i++ {
		index := p.resolve(i)
		//
		if predicate(DataRow{p.table, index}) {
			matches = append(matches, index)
		}
	}
	//
	return newDataView(p.table, matches)
}

// Reduce combines all rows of this collection into a single row using a
// binary operator, visiting rows left-to-right.  Reducing an empty
// collection fails with ErrEmptyReduce.
func (p *DataRowCollection) Reduce(fn func(DataRow, DataRow) DataRow) (DataRow, error) {
	row, ok := iter.Reduce(p.Iterator(), fn)
	//
	if !ok {
		return DataRow{}, ErrEmptyReduce
	}
	//
	return row, nil
}
