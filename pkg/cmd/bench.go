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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-datatable/pkg/datatable"
	"github.com/consensys/go-datatable/pkg/util"
)

var benchCmd = &cobra.Command{
	Use:   "bench [flags]",
	Short: "benchmark sorting over randomly generated tables.",
	Long: `Generate a table of random data with the given dimensions, sort it
	lexicographically under every column, and report timing and memory
	statistics for each phase.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		nrows := GetUint(cmd, "rows")
		ncols := GetUint(cmd, "cols")
		//
		stats := util.NewPerfStats()
		// Generate random data
		table := buildRandomTable(nrows, ncols)
		//
		stats.Log("Generating random table")
		// Sort under every column, left to right
		items := make([]datatable.SortItem, ncols)
		for i := uint(0); i < ncols; i++ {
			items[i] = datatable.NewSortItemByIndex(i, datatable.Ascending)
		}
		//
		view, err := table.QuickSortBy(items...)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log("Sorting random table")
		// Sanity check the resulting ordering
		sorted, err := datatable.AreSorted(view, items...)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		if !sorted {
			log.Error("rows not correctly sorted")
			os.Exit(1)
		}
		//
		stats.Log("Checking row order")
		//
		fmt.Printf("Sorted %d rows of %d columns\n", view.RowCount(), ncols)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Uint("rows", 100000, "number of random rows to generate")
	benchCmd.Flags().Uint("cols", 6, "number of random columns to generate")
}
