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
package arrowio

import (
	"math/big"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/consensys/go-datatable/pkg/datatable"
	"github.com/stretchr/testify/require"
)

func Test_FromArray_01(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewInt64Builder(mem)
	defer builder.Release()
	//
	builder.AppendValues([]int64{3, -1, 2}, nil)
	arr := builder.NewArray()
	defer arr.Release()
	//
	col, err := FromArray("x", arr)
	require.NoError(t, err)
	require.Equal(t, "x", col.Name())
	require.Equal(t, uint(3), col.Len())
	//
	values, ok := datatable.ColumnValues[int64](col)
	require.True(t, ok)
	require.Equal(t, []int64{3, -1, 2}, values)
}

func Test_FromArray_02(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewStringBuilder(mem)
	defer builder.Release()
	//
	builder.AppendValues([]string{"b", "a"}, nil)
	arr := builder.NewArray()
	defer arr.Release()
	//
	col, err := FromArray("s", arr)
	require.NoError(t, err)
	// Strings order naturally
	require.Positive(t, col.Compare(0, 1))
}

func Test_FromArray_03(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()
	//
	builder.AppendValues([]bool{true, false}, nil)
	arr := builder.NewArray()
	defer arr.Release()
	//
	col, err := FromArray("b", arr)
	require.NoError(t, err)
	// Bools order false before true
	require.Positive(t, col.Compare(0, 1))
	require.Zero(t, col.Compare(0, 0))
}

func Test_FromArray_04(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewInt64Builder(mem)
	defer builder.Release()
	// Nulls have no column representation
	builder.Append(1)
	builder.AppendNull()
	arr := builder.NewArray()
	defer arr.Release()
	//
	_, err := FromArray("x", arr)
	require.ErrorIs(t, err, ErrNullValues)
}

func Test_FromArray_05(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)
	defer builder.Release()
	//
	builder.Append([]byte{0xde, 0xad})
	arr := builder.NewArray()
	defer arr.Release()
	//
	_, err := FromArray("bytes", arr)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func Test_FromRecord_01(t *testing.T) {
	mem := memory.NewGoAllocator()
	rec := buildTestRecord(t, mem)
	defer rec.Release()
	//
	table, err := FromRecord("imported", rec)
	require.NoError(t, err)
	require.Equal(t, "imported", table.Name())
	require.Equal(t, uint(2), table.Columns().Count())
	require.Equal(t, uint(3), table.RowCount())
	// Converted tables behave like any other, e.g. they sort.
	view, err := table.QuickSort("num")
	require.NoError(t, err)
	require.Equal(t, []uint{1, 2, 0}, view.Rows().Indexes())
}

func Test_ToArray_01(t *testing.T) {
	mem := memory.NewGoAllocator()
	col := datatable.NewColumn("x", []uint64{5, 6})
	//
	arr, err := ToArray(col, mem)
	require.NoError(t, err)
	defer arr.Release()
	//
	u64 := arr.(*array.Uint64)
	require.Equal(t, 2, u64.Len())
	require.Equal(t, uint64(5), u64.Value(0))
	require.Equal(t, uint64(6), u64.Value(1))
}

func Test_ToArray_02(t *testing.T) {
	mem := memory.NewGoAllocator()
	// Big integers have no arrow representation here
	col := datatable.NewComparableColumn("b", []*big.Int{big.NewInt(1)})
	//
	_, err := ToArray(col, mem)
	require.ErrorIs(t, err, ErrUnsupportedColumn)
}

func Test_ToRecord_01(t *testing.T) {
	mem := memory.NewGoAllocator()
	table, err := datatable.Build("t",
		datatable.NewColumn("num", []int64{3, 1, 2}),
		datatable.NewColumn("word", []string{"c", "a", "b"}),
	)
	require.NoError(t, err)
	//
	rec, err := ToRecord(table, mem)
	require.NoError(t, err)
	defer rec.Release()
	//
	require.Equal(t, int64(2), rec.NumCols())
	require.Equal(t, int64(3), rec.NumRows())
	require.Equal(t, "num", rec.ColumnName(0))
	require.Equal(t, "word", rec.ColumnName(1))
	// Round trip back into a table
	copied, err := FromRecord("t", rec)
	require.NoError(t, err)
	require.Equal(t, table.String(), copied.String())
}

func Test_ToRecord_02(t *testing.T) {
	mem := memory.NewGoAllocator()
	table, err := datatable.Build("t",
		datatable.NewColumn("num", []int64{1}),
		datatable.NewComparableColumn("big", []*big.Int{big.NewInt(1)}),
	)
	require.NoError(t, err)
	// Conversion fails on the unsupported column
	_, err = ToRecord(table, mem)
	require.ErrorIs(t, err, ErrUnsupportedColumn)
}

// ===================================================================
// Test Helpers
// ===================================================================

// Construct a record holding a float column and an int column.
func buildTestRecord(t *testing.T, mem memory.Allocator) arrow.Record {
	numBuilder := array.NewFloat64Builder(mem)
	defer numBuilder.Release()
	numBuilder.AppendValues([]float64{2.5, 0.5, 1.5}, nil)
	//
	wordBuilder := array.NewStringBuilder(mem)
	defer wordBuilder.Release()
	wordBuilder.AppendValues([]string{"c", "a", "b"}, nil)
	//
	nums := numBuilder.NewArray()
	defer nums.Release()
	words := wordBuilder.NewArray()
	defer words.Release()
	//
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "num", Type: arrow.PrimitiveTypes.Float64},
		{Name: "word", Type: arrow.BinaryTypes.String},
	}, nil)
	//
	return array.NewRecord(schema, []arrow.Array{nums, words}, 3)
}
