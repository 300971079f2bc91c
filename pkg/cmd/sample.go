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
package cmd

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/consensys/go-datatable/pkg/datatable"
	"github.com/consensys/go-datatable/pkg/util"
)

// Construct a sample table with a given number of rows, holding an id
// column, a (randomly generated) signed integer column and a (randomly
// generated) word column.
func buildSampleTable(nrows uint) *datatable.DataTable {
	ids := make([]uint64, nrows)
	for i := range ids {
		ids[i] = uint64(i)
	}
	//
	table, err := datatable.Build("sample",
		datatable.NewColumn("id", ids),
		datatable.NewColumn("num", util.GenerateRandomInts(nrows, 100)),
		datatable.NewColumn("word", util.GenerateRandomWords(nrows, 5)),
	)
	// Generated columns always validate.
	if err != nil {
		panic(err)
	}
	//
	return table
}

// Construct a table of random data with given dimensions, cycling through
// unsigned, word and field element columns.
func buildRandomTable(nrows uint, ncols uint) *datatable.DataTable {
	columns := make([]datatable.Column, ncols)
	//
	for i := uint(0); i < ncols; i++ {
		name := fmt.Sprintf("c%d", i)
		//
		switch i % 3 {
		case 0:
			columns[i] = datatable.NewColumn(name, util.GenerateRandomUints(nrows, 16))
		case 1:
			columns[i] = datatable.NewColumn(name, util.GenerateRandomWords(nrows, 3))
		default:
			columns[i] = randomElementColumn(name, nrows)
		}
	}
	//
	table, err := datatable.Build("random", columns...)
	// Generated columns always validate.
	if err != nil {
		panic(err)
	}
	//
	return table
}

// Construct a column of random field elements.  Note, small values are used
// here deliberately, so that multi-key sorts encounter duplicates.
func randomElementColumn(name string, n uint) datatable.Column {
	values := util.GenerateRandomUints(n, 16)
	elements := make([]*fr.Element, n)
	//
	for i, v := range values {
		ith := fr.NewElement(uint64(v))
		elements[i] = &ith
	}
	//
	return datatable.NewComparableColumn(name, elements)
}
