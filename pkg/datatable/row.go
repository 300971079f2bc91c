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

// DataRow is a read-only projection of one logical row spanning all columns
// of a table.  A row holds no data of its own: every access resolves lazily
// against the backing table's column storage.  Rows handed out by a table or
// view are always in-bounds for that table.
type DataRow struct {
	table *DataTable
	index uint
}

// Table returns the table this row belongs to.
func (p DataRow) Table() *DataTable {
	return p.table
}

// Index returns the underlying row index within the backing table.  Note,
// for rows obtained through a view, this is the index into the table rather
// than the position within the view's ordering.
func (p DataRow) Index() uint {
	return p.index
}

// Cell returns the value this row holds in a given column, or an error if
// the column index is out-of-bounds.
func (p DataRow) Cell(col uint) (any, error) {
	column, err := p.table.columns.Get(col)
	if err != nil {
		return nil, err
	}
	//
	return column.Get(p.index)
}

// CellByName returns the value this row holds in the column with a given
// name, or an error if no such column exists.
func (p DataRow) CellByName(name string) (any, error) {
	column, err := p.table.columns.GetByName(name)
	if err != nil {
		return nil, err
	}
	//
	return column.Get(p.index)
}

// Values returns the complete tuple of values this row spans, in column
// order.
func (p DataRow) Values() []any {
	columns := p.table.columns.columns
	values := make([]any, len(columns))
	//
	for i, col := range columns {
		// Rows handed out by a table are always in-bounds.
		values[i], _ = col.Get(p.index)
	}
	//
	return values
}

func (p DataRow) String() string {
	var id strings.Builder

	id.WriteString("(")

	for i, value := range p.Values() {
		if i != 0 {
			id.WriteString(",")
		}

		id.WriteString(fmt.Sprintf("%v", value))
	}

	id.WriteString(")")
	//
	return id.String()
}
