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
	"github.com/consensys/go-datatable/pkg/util/collection/iter"
)

// Map transforms every row of a given source (a table or a view) into a
// value of some target type, producing a lazy sequence of the results in row
// order.  The source itself is never modified.
//
//nolint:revive
func Map[T any](source RowIterable, fn func(DataRow) T) iter.Iterator[T] {
	return iter.NewProjectIterator(source.Rows().Iterator(), fn)
}

// FlatMap transforms every row of a given source into a sequence of values,
// producing a lazy sequence which concatenates the per-row sequences in row
// order.
//
//nolint:revive
func FlatMap[T any](source RowIterable, fn func(DataRow) iter.Iterator[T]) iter.Iterator[T] {
	return iter.NewFlattenIterator(source.Rows().Iterator(), fn)
}

// FoldLeft accumulates the rows of a given source in ascending row order,
// starting from a given initial value.
//
//nolint:revive
func FoldLeft[A any](source RowIterable, acc A, fn func(A, DataRow) A) A {
	return iter.FoldLeft(source.Rows().Iterator(), acc, fn)
}

// FoldRight accumulates the rows of a given source in descending row order,
// starting from a given initial value.
//
//nolint:revive
func FoldRight[A any](source RowIterable, acc A, fn func(DataRow, A) A) A {
	return iter.FoldRight(source.Rows().Iterator(), acc, fn)
}

// GroupBy partitions the rows of a given source according to a key computed
// for each row.  Within every group, rows retain their source order.
//
//nolint:revive
func GroupBy[K comparable](source RowIterable, fn func(DataRow) K) map[K][]DataRow {
	return iter.GroupBy(source.Rows().Iterator(), fn)
}
