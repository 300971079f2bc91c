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
	"bytes"
	"fmt"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/consensys/go-datatable/pkg/datatable"
)

// Compile a filter expression into a row predicate.  The expression is
// interpreted as a Go boolean expression over a variable "row", which maps
// column names to the values the row holds in them.  For example, the
// expression "row[\"num\"].(int64) > 10" selects rows whose num exceeds ten.
func compileFilter(expr string) (datatable.Predicate, error) {
	var buf bytes.Buffer
	// Construct interpreter for the expression
	i := interp.New(interp.Options{
		Stdout: &buf,
		Stderr: &buf,
	})
	// Use the standard library
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, err
	}
	// Wrap the expression as a predicate over the row mapping
	code := fmt.Sprintf("func(row map[string]interface{}) bool { return %s }", expr)
	//
	v, err := i.Eval(code)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expr, err)
	}
	//
	fn, ok := v.Interface().(func(map[string]interface{}) bool)
	if !ok {
		return nil, fmt.Errorf("filter %q is not a boolean expression", expr)
	}
	// Adapt into a row predicate
	return func(row datatable.DataRow) bool {
		return fn(rowAsMap(row))
	}, nil
}

// Convert a row into a mapping from column names to the values the row holds
// in them.
func rowAsMap(row datatable.DataRow) map[string]any {
	columns := row.Table().Columns()
	values := row.Values()
	mapping := make(map[string]any, len(values))
	//
	for i, val := range values {
		// Column index is always in-bounds here.
		col, _ := columns.Get(uint(i))
		mapping[col.Name()] = val
	}
	//
	return mapping
}
