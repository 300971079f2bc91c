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
	"os"
	"strings"

	"github.com/consensys/go-datatable/pkg/datatable"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected integer flag, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringSlice gets an expected string slice flag, or panic if an error
// arises.
func GetStringSlice(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a set of sort specifications of the form "column" or
// "column:direction", where direction is either "asc" or "desc".
func parseSortItems(specs []string) ([]datatable.SortItem, error) {
	items := make([]datatable.SortItem, len(specs))
	//
	for i, spec := range specs {
		column, direction, found := strings.Cut(spec, ":")
		order := datatable.Ascending
		//
		if found {
			switch direction {
			case "asc":
				order = datatable.Ascending
			case "desc":
				order = datatable.Descending
			default:
				return nil, fmt.Errorf("unknown sort direction %q in %q", direction, spec)
			}
		}
		//
		items[i] = datatable.NewSortItem(column, order)
	}
	//
	return items, nil
}
