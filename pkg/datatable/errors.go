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

import "errors"

// Sentinel errors reported by this package.  Call sites wrap these with
// additional context using fmt.Errorf and %w, hence they should be matched
// with errors.Is rather than direct comparison.
var (
	// ErrDuplicateColumnName indicates two or more columns given to Build
	// share the same name.
	ErrDuplicateColumnName = errors.New("columns contain duplicate names")

	// ErrInconsistentColumnLength indicates the columns given to Build do not
	// all have the same length.
	ErrInconsistentColumnLength = errors.New("columns have different lengths")

	// ErrColumnNotFound indicates a column name which does not exist in the
	// table being accessed.
	ErrColumnNotFound = errors.New("column not found")

	// ErrIndexOutOfRange indicates a row or column index outside the bounds
	// of the table being accessed.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyReduce indicates an attempt to reduce a row collection
	// containing no rows, for which no value can be produced.
	ErrEmptyReduce = errors.New("cannot reduce an empty row collection")

	// ErrMixedTableRows indicates an attempt to construct a view from rows
	// which do not all belong to the same table.
	ErrMixedTableRows = errors.New("rows belong to different tables")
)
