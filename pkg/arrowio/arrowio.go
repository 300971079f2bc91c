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

// Package arrowio converts between tables and Apache Arrow arrays and
// records, allowing tables to be exchanged with the wider Arrow ecosystem
// (e.g. Parquet readers, IPC streams, etc).
package arrowio

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/consensys/go-datatable/pkg/datatable"
)

var (
	// ErrUnsupportedType indicates an arrow data type for which no column
	// representation exists.
	ErrUnsupportedType = errors.New("unsupported arrow data type")

	// ErrUnsupportedColumn indicates a column whose value type has no arrow
	// representation.
	ErrUnsupportedColumn = errors.New("unsupported column value type")

	// ErrNullValues indicates an arrow array containing nulls, for which no
	// column representation exists.
	ErrNullValues = errors.New("arrow array contains null values")
)

// FromArray converts an arrow array into a column with a given name.  The
// supported data types are int64, uint64, float64, string and bool; nulls
// are rejected, since columns have no notion of a missing value.
func FromArray(name string, arr arrow.Array) (datatable.Column, error) {
	if arr.NullN() > 0 {
		return nil, fmt.Errorf("array %q: %w", name, ErrNullValues)
	}
	//
	switch arr.DataType().ID() {
	case arrow.INT64:
		i64 := arr.(*array.Int64)
		values := make([]int64, arr.Len())
		//
		for i := range values {
			values[i] = i64.Value(i)
		}
		//
		return datatable.NewColumn(name, values), nil
	case arrow.UINT64:
		u64 := arr.(*array.Uint64)
		values := make([]uint64, arr.Len())
		//
		for i := range values {
			values[i] = u64.Value(i)
		}
		//
		return datatable.NewColumn(name, values), nil
	case arrow.FLOAT64:
		f64 := arr.(*array.Float64)
		values := make([]float64, arr.Len())
		//
		for i := range values {
			values[i] = f64.Value(i)
		}
		//
		return datatable.NewColumn(name, values), nil
	case arrow.STRING:
		s := arr.(*array.String)
		values := make([]string, arr.Len())
		//
		for i := range values {
			values[i] = s.Value(i)
		}
		//
		return datatable.NewColumn(name, values), nil
	case arrow.BOOL:
		b := arr.(*array.Boolean)
		values := make([]bool, arr.Len())
		//
		for i := range values {
			values[i] = b.Value(i)
		}
		//
		return datatable.NewColumnFunc(name, values, compareBools), nil
	default:
		return nil, fmt.Errorf("array %q has type %s: %w", name, arr.DataType(), ErrUnsupportedType)
	}
}

// FromRecord converts an arrow record into a table with a given name,
// converting each column of the record in turn.  The resulting table is
// subject to the usual validation (e.g. rejecting duplicate column names).
func FromRecord(name string, rec arrow.Record) (*datatable.DataTable, error) {
	columns := make([]datatable.Column, rec.NumCols())
	//
	for i := 0; i < int(rec.NumCols()); i++ {
		col, err := FromArray(rec.ColumnName(i), rec.Column(i))
		if err != nil {
			return nil, err
		}
		//
		columns[i] = col
	}
	//
	return datatable.Build(name, columns...)
}

// ToArray converts a column into an arrow array allocated with a given
// allocator.  The caller is responsible for releasing the returned array.
func ToArray(col datatable.Column, mem memory.Allocator) (arrow.Array, error) {
	if values, ok := datatable.ColumnValues[int64](col); ok {
		builder := array.NewInt64Builder(mem)
		defer builder.Release()
		builder.AppendValues(values, nil)
		//
		return builder.NewArray(), nil
	}
	//
	if values, ok := datatable.ColumnValues[uint64](col); ok {
		builder := array.NewUint64Builder(mem)
		defer builder.Release()
		builder.AppendValues(values, nil)
		//
		return builder.NewArray(), nil
	}
	//
	if values, ok := datatable.ColumnValues[float64](col); ok {
		builder := array.NewFloat64Builder(mem)
		defer builder.Release()
		builder.AppendValues(values, nil)
		//
		return builder.NewArray(), nil
	}
	//
	if values, ok := datatable.ColumnValues[string](col); ok {
		builder := array.NewStringBuilder(mem)
		defer builder.Release()
		builder.AppendValues(values, nil)
		//
		return builder.NewArray(), nil
	}
	//
	if values, ok := datatable.ColumnValues[bool](col); ok {
		builder := array.NewBooleanBuilder(mem)
		defer builder.Release()
		builder.AppendValues(values, nil)
		//
		return builder.NewArray(), nil
	}
	//
	return nil, fmt.Errorf("column %q: %w", col.Name(), ErrUnsupportedColumn)
}

// ToRecord converts a table into an arrow record allocated with a given
// allocator.  The caller is responsible for releasing the returned record.
func ToRecord(table *datatable.DataTable, mem memory.Allocator) (arrow.Record, error) {
	n := table.Columns().Count()
	fields := make([]arrow.Field, n)
	arrays := make([]arrow.Array, n)
	//
	for i := uint(0); i < n; i++ {
		// Index is always in-bounds here.
		col, _ := table.Column(i)
		//
		arr, err := ToArray(col, mem)
		if err != nil {
			// Release everything built so far
			for _, a := range arrays[:i] {
				a.Release()
			}
			//
			return nil, err
		}
		//
		arrays[i] = arr
		fields[i] = arrow.Field{Name: col.Name(), Type: arr.DataType()}
	}
	//
	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, arrays, int64(table.RowCount()))
	// Record retains the arrays
	for _, a := range arrays {
		a.Release()
	}
	//
	return rec, nil
}

// Order bools with false before true, matching the arrow convention.
func compareBools(l bool, r bool) int {
	switch {
	case l == r:
		return 0
	case r:
		return -1
	default:
		return 1
	}
}
