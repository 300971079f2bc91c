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
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"
)

func Test_QuickSort_01(t *testing.T) {
	table := buildSortTable(t)
	//
	view, err := table.QuickSort("num")
	require.NoError(t, err)
	require.Equal(t, []uint{1, 3, 0, 2}, view.Rows().Indexes())
	// Source ordering is untouched.
	require.Equal(t, []uint{0, 1, 2, 3}, table.Rows().Indexes())
}

func Test_QuickSort_02(t *testing.T) {
	table := buildSortTable(t)
	//
	view, err := table.QuickSort("num", Descending)
	require.NoError(t, err)
	require.Equal(t, []uint{0, 2, 3, 1}, view.Rows().Indexes())
}

func Test_QuickSort_03(t *testing.T) {
	// Stability: rows equal under the sort key retain their relative input
	// order.
	table, err := Build("t",
		NewColumn("k", []string{"b", "a", "b", "a"}),
		NewColumn("v", []uint{2, 1, 1, 2}),
	)
	require.NoError(t, err)
	//
	view, err := table.QuickSort("k")
	require.NoError(t, err)
	// Rows 1 and 3 (both "a") keep order 1 < 3; likewise 0 < 2 for "b".
	require.Equal(t, []uint{1, 3, 0, 2}, view.Rows().Indexes())
}

func Test_QuickSort_04(t *testing.T) {
	// Lexicographic multi-key sort, with directions applied per key.
	table, err := Build("t",
		NewColumn("k", []string{"b", "a", "b", "a"}),
		NewColumn("v", []uint{2, 1, 1, 2}),
	)
	require.NoError(t, err)
	//
	view, err := table.QuickSortBy(
		NewSortItem("k", Ascending),
		NewSortItem("v", Descending),
	)
	require.NoError(t, err)
	require.Equal(t, []uint{3, 1, 0, 2}, view.Rows().Indexes())
}

func Test_QuickSort_05(t *testing.T) {
	table := buildSortTable(t)
	// Sorting a view reorders only the rows it holds.
	view := table.Filter(func(row DataRow) bool {
		return row.Index() != 1
	})
	require.Equal(t, []uint{0, 2, 3}, view.Rows().Indexes())
	//
	sorted, err := view.QuickSort("num")
	require.NoError(t, err)
	require.Equal(t, []uint{3, 0, 2}, sorted.Rows().Indexes())
	// The view itself is untouched.
	require.Equal(t, []uint{0, 2, 3}, view.Rows().Indexes())
}

func Test_QuickSort_06(t *testing.T) {
	table := buildSortTable(t)
	//
	_, err := table.QuickSort("missing")
	require.ErrorIs(t, err, ErrColumnNotFound)
	//
	_, err = table.QuickSortByIndex(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	// Multi-key sorts resolve every key.
	_, err = table.QuickSortBy(NewSortItem("num", Ascending), NewSortItem("missing", Ascending))
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func Test_QuickSort_07(t *testing.T) {
	table := buildSortTable(t)
	// Convenience forms route through the multi-key sort.
	lhs, err := table.QuickSort("word")
	require.NoError(t, err)
	//
	rhs, err := table.QuickSortBy(NewSortItem("word", Ascending))
	require.NoError(t, err)
	//
	require.Equal(t, rhs.Rows().Indexes(), lhs.Rows().Indexes())
	// Likewise for the index form.
	lhs, err = table.QuickSortByIndex(1, Descending)
	require.NoError(t, err)
	//
	rhs, err = table.QuickSortBy(NewSortItemByIndex(1, Descending))
	require.NoError(t, err)
	//
	require.Equal(t, rhs.Rows().Indexes(), lhs.Rows().Indexes())
}

func Test_QuickSort_08(t *testing.T) {
	// Sorting a column of field elements, which order themselves via Cmp.
	table, err := Build("t", frColumn("f", 7, 2, 5, 3))
	require.NoError(t, err)
	//
	view, err := table.QuickSort("f")
	require.NoError(t, err)
	require.Equal(t, []uint{1, 3, 2, 0}, view.Rows().Indexes())
}

func Test_QuickSort_09(t *testing.T) {
	table := buildSortTable(t)
	//
	sorted, err := AreSorted(table, NewSortItem("num", Ascending))
	require.NoError(t, err)
	require.False(t, sorted)
	//
	view, err := table.QuickSort("num")
	require.NoError(t, err)
	//
	sorted, err = AreSorted(view, NewSortItem("num", Ascending))
	require.NoError(t, err)
	require.True(t, sorted)
	//
	_, err = AreSorted(table, NewSortItem("missing", Ascending))
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func Test_QuickSort_10(t *testing.T) {
	table, err := Build("empty")
	require.NoError(t, err)
	// Sorting an empty table yields an empty view.
	view, err := table.QuickSortBy()
	require.NoError(t, err)
	require.Equal(t, uint(0), view.RowCount())
}

func Test_QuickSort_11(t *testing.T) {
	// Sorting under no keys leaves the ordering untouched.
	table := buildSortTable(t)
	//
	view, err := table.QuickSortBy()
	require.NoError(t, err)
	require.Equal(t, []uint{0, 1, 2, 3}, view.Rows().Indexes())
}

func Test_QuickSort_12(t *testing.T) {
	table := buildSortTable(t)
	// Sorting an already sorted view is a no-op.
	view, err := table.QuickSort("num")
	require.NoError(t, err)
	//
	again, err := view.QuickSort("num")
	require.NoError(t, err)
	require.Equal(t, view.Rows().Indexes(), again.Rows().Indexes())
}

func Test_SortOrder_01(t *testing.T) {
	require.Equal(t, "ascending", Ascending.String())
	require.Equal(t, "descending", Descending.String())
	require.Equal(t, Ascending, NewSortItem("x", Ascending).Order())
	require.Equal(t, Descending, NewSortItemByIndex(0, Descending).Order())
}

// ===================================================================
// Test Helpers
// ===================================================================

// Construct a table with an unsorted num column for testing.  Note, num
// contains a repeated value, in order to exercise stability.
func buildSortTable(t *testing.T) *DataTable {
	table, err := Build("sort",
		NewColumn("num", []uint{3, 1, 3, 2}),
		NewColumn("word", []string{"c", "a", "cc", "b"}),
	)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	return table
}

// Construct a column of field elements from a given set of values.
func frColumn(name string, values ...uint64) Column {
	elements := make([]*fr.Element, len(values))
	//
	for i, v := range values {
		ith := fr.NewElement(v)
		elements[i] = &ith
	}
	//
	return NewComparableColumn(name, elements)
}
