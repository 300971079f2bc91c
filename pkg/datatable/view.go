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
	"strings"
)

// DataView is a lightweight, non-owning projection of a table: it references
// the table's column storage directly (never copying it) whilst holding its
// own row index ordering.  Views arise from filtering and sorting, and can
// themselves be filtered and sorted again, always tracing back to the
// original table.  The ordering may repeat indices, but never contains an
// out-of-bounds index.
type DataView struct {
	table *DataTable
	rows  *DataRowCollection
}

// newDataView wraps an already validated index ordering.  The ordering is
// owned by the view hereafter, hence callers must not retain it.
func newDataView(table *DataTable, indexes []uint) *DataView {
	return &DataView{table, newRowCollection(table, indexes)}
}

// NewDataView constructs a view over a given table from an explicit sequence
// of rows.  Every row must belong to the given table (else
// ErrMixedTableRows) and be in-bounds for it (else ErrIndexOutOfRange).
func NewDataView(table *DataTable, rows []DataRow) (*DataView, error) {
	count := table.RowCount()
	indexes := make([]uint, len(rows))
	//
	for i, row := range rows {
		if row.table != table {
			return nil, fmt.Errorf("row at position %d: %w", i, ErrMixedTableRows)
		} else if row.index >= count {
			return nil, fmt.Errorf("row at position %d: %w", i, ErrIndexOutOfRange)
		}
		//
		indexes[i] = row.index
	}
	//
	return newDataView(table, indexes), nil
}

// NewDataViewFromIndexes constructs a view over a given table from an
// explicit row index ordering.  Indices may repeat, but every index must be
// in-bounds for the table (else ErrIndexOutOfRange).
func NewDataViewFromIndexes(table *DataTable, indexes []uint) (*DataView, error) {
	count := table.RowCount()
	//
	for i, index := range indexes {
		if index >= count {
			return nil, fmt.Errorf("index %d at position %d: %w", index, i, ErrIndexOutOfRange)
		}
	}
	// Clone the ordering, so the view is unaffected by any subsequent
	// modification of the original.
	copied := make([]uint, len(indexes))
	copy(copied, indexes)
	//
	return newDataView(table, copied), nil
}

// Table returns the table this view projects.
func (p *DataView) Table() *DataTable {
	return p.table
}

// Rows returns the row collection of this view.
func (p *DataView) Rows() *DataRowCollection {
	return p.rows
}

// RowCount returns the number of rows in this view.  Note, due to repeats,
// this can exceed the row count of the underlying table.
func (p *DataView) RowCount() uint {
	return p.rows.Count()
}

// Row returns the row at a given position in this view's ordering, or an
// error if the position is out-of-bounds.
func (p *DataView) Row(index uint) (DataRow, error) {
	return p.rows.Get(index)
}

// Filter returns a view containing exactly those rows of this view which
// match a given predicate, retaining their relative order.
func (p *DataView) Filter(predicate Predicate) *DataView {
	return p.rows.Filter(predicate)
}

// Reduce combines all rows of this view into a single row using a binary
// operator, visiting rows in view order.  Reducing an empty view fails with
// ErrEmptyReduce.
func (p *DataView) Reduce(fn func(DataRow, DataRow) DataRow) (DataRow, error) {
	return p.rows.Reduce(fn)
}

// QuickSort returns a view sorted by a given column, with an optional sort
// direction (ascending when omitted).  This view and its table are
// unaffected.
func (p *DataView) QuickSort(column string, order ...SortOrder) (*DataView, error) {
	return QuickSort(p, NewSortItem(column, orderOrDefault(order)))
}

// QuickSortByIndex returns a view sorted by the column at a given index,
// with an optional sort direction (ascending when omitted).
func (p *DataView) QuickSortByIndex(index uint, order ...SortOrder) (*DataView, error) {
	return QuickSort(p, NewSortItemByIndex(index, orderOrDefault(order)))
}

// QuickSortBy returns a view sorted lexicographically under one or more
// sort keys.
func (p *DataView) QuickSortBy(items ...SortItem) (*DataView, error) {
	return QuickSort(p, items...)
}

// ToDataTable materialises this view as a new, independent table: for each
// column, exactly the values at the view's row indices are copied out, in
// view order.  This is the sole data-copying operation over views.
func (p *DataView) ToDataTable() *DataTable {
	indexes := p.rows.Indexes()
	columns := make([]Column, len(p.table.columns.columns))
	//
	for i, col := range p.table.columns.columns {
		columns[i] = col.Select(indexes)
	}
	//
	table, err := Build(p.table.name, columns...)
	// Selected columns inherit validity from the source table.
	if err != nil {
		panic(err)
	}
	//
	return table
}

// ToDataView returns a fresh view holding a copy of this view's ordering.
func (p *DataView) ToDataView() *DataView {
	return newDataView(p.table, p.rows.Indexes())
}

func (p *DataView) String() string {
	var id strings.Builder

	id.WriteString(p.table.name)
	id.WriteString("[")

	for i, index := range p.rows.Indexes() {
		if i != 0 {
			id.WriteString(",")
		}

		id.WriteString(fmt.Sprintf("%d", index))
	}

	id.WriteString("]")
	//
	return id.String()
}
