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
	"math"

	"github.com/consensys/go-datatable/pkg/util/termio"
)

// ColumnFilter is a predicate which determines whether a given column should
// be included in the print out, or not.
type ColumnFilter = func(uint, Column) bool

// Printer encapsulates various configuration options useful for printing out
// tables and views in human-readable forms.
type Printer struct {
	// First row to print
	startRow uint
	// Last row to print
	endRow uint
	// Which columns to include
	colFilter ColumnFilter
	// Determine maximum width to print
	maxCellWidth uint
	// Enable ANSI
	ansiEscapes bool
}

// NewPrinter constructs a default printer
func NewPrinter() *Printer {
	// Include all columns by default
	emptyFilter := func(col uint, c Column) bool {
		return true
	}
	// Return an empty printer
	return &Printer{0, math.MaxInt, emptyFilter, math.MaxUint, true}
}

// Start configures the starting row for this printer.
func (p *Printer) Start(start uint) *Printer {
	p.startRow = start
	return p
}

// End configures the ending row (inclusive) for this printer.
func (p *Printer) End(end uint) *Printer {
	p.endRow = end
	return p
}

// Columns configures a filter which selects columns to be included in the
// final print out.
func (p *Printer) Columns(filter ColumnFilter) *Printer {
	p.colFilter = filter
	return p
}

// AnsiEscapes can be used to enable or disable the use of ANSI escape sequences
// (e.g. for showing colour in a terminal, etc)
func (p *Printer) AnsiEscapes(enable bool) *Printer {
	p.ansiEscapes = enable
	return p
}

// MaxCellWidth sets the maximum width to use for the cell data.
func (p *Printer) MaxCellWidth(width uint) *Printer {
	p.maxCellWidth = width
	return p
}

// Render a given source (i.e. table or view) as a string using the
// configured printer.  The print out has one line per row (in source order),
// a header line giving the column names, and a leading column giving the
// underlying table row index of each printed row.
func (p *Printer) Render(source RowIterable) string {
	rows := source.Rows()
	indexes := rows.Indexes()
	// Determine range of rows to print
	end := min(uint(len(indexes)), p.endRow+1)
	start := min(p.startRow, end)
	// Filter columns
	columns := make([]Column, 0)
	//
	for i, col := range rows.table.columns.columns {
		if p.colFilter(uint(i), col) {
			columns = append(columns, col)
		}
	}
	// Construct table
	tp := termio.NewTablePrinter(uint(1+len(columns)), 1+end-start)
	// Set column names
	headerEscape := termio.BoldAnsiEscape().FgColour(termio.TERM_WHITE).Build()
	//
	for i, col := range columns {
		tp.Set(uint(i+1), 0, col.Name())
		tp.SetEscape(uint(i+1), 0, headerEscape)
	}
	// Fill table
	indexEscape := termio.NewAnsiEscape().FgColour(termio.TERM_WHITE).Build()
	//
	for row := start; row < end; row++ {
		index := indexes[row]
		// Identify underlying table row
		tp.Set(0, 1+row-start, fmt.Sprintf("%d", index))
		tp.SetEscape(0, 1+row-start, indexEscape)
		//
		for i, col := range columns {
			// Rows of a valid source are always in-bounds.
			val, _ := col.Get(index)
			tp.Set(uint(i+1), 1+row-start, fmt.Sprintf("%v", val))
		}
	}
	// Cap cells (leaving the row index column untouched)
	for i := uint(1); i < tp.Width(); i++ {
		tp.SetMaxWidth(i, p.maxCellWidth)
	}
	//
	tp.AnsiEscapes(p.ansiEscapes)
	// Done
	return tp.Render()
}

// Print a given source (i.e. table or view) using the configured printer.
func (p *Printer) Print(source RowIterable) {
	fmt.Print(p.Render(source))
}
