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
	"strings"
)

// DataTable is an immutable, named collection of uniquely-named,
// equal-length columns, together with the canonical (identity) ordering over
// its rows.  Tables are constructed through Build, which enforces all
// invariants atomically: a table either builds completely or not at all, and
// is never modified afterwards.  All transformations produce new tables or
// lightweight views over the original.
type DataTable struct {
	name    string
	columns *ColumnCollection
	rows    *DataRowCollection
}

// Build constructs a table with a given name from a given set of columns.
// The validation pipeline short-circuits on the first failure: duplicate
// column names are reported as ErrDuplicateColumnName, then differing column
// lengths as ErrInconsistentColumnLength.  A build with no columns always
// succeeds, yielding an empty (zero row) table.
func Build(name string, columns ...Column) (*DataTable, error) {
	if err := validateColumnNames(columns); err != nil {
		return nil, err
	}
	//
	if err := validateColumnLengths(columns); err != nil {
		return nil, err
	}
	//
	table := &DataTable{name: name, columns: newColumnCollection(columns)}
	table.rows = newIdentityRowCollection(table)
	//
	return table, nil
}

// Name returns the name of this table.
func (p *DataTable) Name() string {
	return p.name
}

// Columns returns the column collection of this table.
func (p *DataTable) Columns() *ColumnCollection {
	return p.columns
}

// Rows returns the canonical row collection of this table.
func (p *DataTable) Rows() *DataRowCollection {
	return p.rows
}

// RowCount returns the number of rows in this table.  An empty table (i.e.
// one with no columns) has zero rows.
func (p *DataTable) RowCount() uint {
	if len(p.columns.columns) == 0 {
		return 0
	}
	// All columns have the same length, by construction.
	return p.columns.columns[0].Len()
}

// Row returns the row at a given index in this table, or an error if the
// index is out-of-bounds.
func (p *DataTable) Row(index uint) (DataRow, error) {
	return p.rows.Get(index)
}

// Column returns the column at a given index in this table, or an error if
// the index is out-of-bounds.
func (p *DataTable) Column(index uint) (Column, error) {
	return p.columns.Get(index)
}

// ColumnByName returns the column with a given name in this table, or an
// error if no such column exists.
func (p *DataTable) ColumnByName(name string) (Column, error) {
	return p.columns.GetByName(name)
}

// Filter returns a view of this table containing exactly those rows which
// match a given predicate, in their original order.  This table is
// unaffected.
func (p *DataTable) Filter(predicate Predicate) *DataView {
	return p.rows.Filter(predicate)
}

// Reduce combines all rows of this table into a single row using a binary
// operator, visiting rows in order.  Reducing an empty table fails with
// ErrEmptyReduce.
func (p *DataTable) Reduce(fn func(DataRow, DataRow) DataRow) (DataRow, error) {
	return p.rows.Reduce(fn)
}

// QuickSort returns a view of this table sorted by a given column, with an
// optional sort direction (ascending when omitted).
func (p *DataTable) QuickSort(column string, order ...SortOrder) (*DataView, error) {
	return QuickSort(p, NewSortItem(column, orderOrDefault(order)))
}

// QuickSortByIndex returns a view of this table sorted by the column at a
// given index, with an optional sort direction (ascending when omitted).
func (p *DataTable) QuickSortByIndex(index uint, order ...SortOrder) (*DataView, error) {
	return QuickSort(p, NewSortItemByIndex(index, orderOrDefault(order)))
}

// QuickSortBy returns a view of this table sorted lexicographically under
// one or more sort keys.
func (p *DataTable) QuickSortBy(items ...SortItem) (*DataView, error) {
	return QuickSort(p, items...)
}

// ToDataTable returns a fresh table holding the same name and columns as
// this one.  Since columns are immutable, they are shared rather than
// copied.
func (p *DataTable) ToDataTable() *DataTable {
	table, err := Build(p.name, p.columns.columns...)
	// Rebuilding an already validated table cannot fail.
	if err != nil {
		panic(err)
	}
	//
	return table
}

// ToDataView returns a view of this table over its canonical row ordering.
func (p *DataTable) ToDataView() *DataView {
	return newDataView(p, p.rows.Indexes())
}

func (p *DataTable) String() string {
	// Use string builder to try and make this vaguely efficient.
	var id strings.Builder

	id.WriteString(p.name)
	id.WriteString("{")

	for i, col := range p.columns.columns {
		if i != 0 {
			id.WriteString(",")
		}

		id.WriteString(col.String())
	}

	id.WriteString("}")
	//
	return id.String()
}
