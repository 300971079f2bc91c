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
	"slices"

	"github.com/consensys/go-datatable/pkg/util"
)

// SortOrder determines the direction in which values of a column are
// ordered.
type SortOrder uint8

const (
	// Ascending orders values smallest first.
	Ascending SortOrder = iota
	// Descending orders values largest first.
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// SortItem identifies a single sort key: a column, referenced either by name
// or by index, together with a sort direction.
type SortItem struct {
	// Name of the column to sort on (unless referenced by index)
	column string
	// Index of the column to sort on (when byIndex set)
	index uint
	// Indicates whether column or index identifies the sort column
	byIndex bool
	// Direction of the sort
	order SortOrder
}

// NewSortItem constructs a sort key referencing a column by name.
func NewSortItem(column string, order SortOrder) SortItem {
	return SortItem{column: column, order: order}
}

// NewSortItemByIndex constructs a sort key referencing a column by index.
func NewSortItemByIndex(index uint, order SortOrder) SortItem {
	return SortItem{index: index, byIndex: true, order: order}
}

// Order returns the sort direction of this key.
func (p SortItem) Order() SortOrder {
	return p.order
}

// Resolve the column this key references within a given table.
func (p SortItem) resolve(table *DataTable) (Column, error) {
	if p.byIndex {
		return table.Column(p.index)
	}
	//
	return table.ColumnByName(p.column)
}

// QuickSort sorts the rows of a given source (a table or a view) under one
// or more sort keys, producing a view holding the resulting ordering.  Rows
// are compared lexicographically: by the first key's column, then (if equal)
// by the second key's, and so on, with each key's direction applied
// independently.  The sort is stable, hence rows equal under all keys retain
// their relative input order.  The source is never modified, and its column
// data is never copied.
func QuickSort(source RowIterable, items ...SortItem) (*DataView, error) {
	rows := source.Rows()
	table := rows.table
	// Resolve sort keys against the table
	keys := make([]util.Pair[Column, SortOrder], len(items))
	//
	for i, item := range items {
		col, err := item.resolve(table)
		if err != nil {
			return nil, err
		}
		//
		keys[i] = util.NewPair(col, item.order)
	}
	// Clone the incoming ordering, leaving the source untouched
	indexes := rows.Indexes()
	// Sort it
	slices.SortStableFunc(indexes, func(l uint, r uint) int {
		return compareRows(keys, l, r)
	})
	// Done
	return newDataView(table, indexes), nil
}

// AreSorted checks whether the rows of a given source are ordered under the
// given sort keys.  This operation does not modify the source.
func AreSorted(source RowIterable, items ...SortItem) (bool, error) {
	rows := source.Rows()
	// Resolve sort keys against the table
	keys := make([]util.Pair[Column, SortOrder], len(items))
	//
	for i, item := range items {
		col, err := item.resolve(rows.table)
		if err != nil {
			return false, err
		}
		//
		keys[i] = util.NewPair(col, item.order)
	}
	//
	indexes := rows.Indexes()
	for i := 1; i < len(indexes); i++ {
		if compareRows(keys, indexes[i-1], indexes[i]) > 0 {
			return false, nil
		}
	}
	//
	return true, nil
}

// Compare two rows (by underlying index) lexicographically under a set of
// resolved sort keys.
func compareRows(keys []util.Pair[Column, SortOrder], lhs uint, rhs uint) int {
	for _, key := range keys {
		// Compare values under ith key
		c := key.Left.Compare(lhs, rhs)
		// Check whether same
		if c != 0 {
			if key.Right == Descending {
				// Negative
				return -c
			}
			// Positive
			return c
		}
	}
	// Identical under all keys
	return 0
}

// Default the sort direction of the optional trailing argument accepted by
// the single-key convenience forms.
func orderOrDefault(order []SortOrder) SortOrder {
	if len(order) == 0 {
		return Ascending
	}
	//
	return order[0]
}
