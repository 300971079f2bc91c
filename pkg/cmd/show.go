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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-datatable/pkg/datatable"
	"github.com/consensys/go-datatable/pkg/util"
	"github.com/consensys/go-datatable/pkg/util/termio"
)

var showCmd = &cobra.Command{
	Use:   "show [flags]",
	Short: "generate and display a sample table.",
	Long: `Generate a sample table of random data, then display it after
	(optionally) filtering its rows with a boolean expression and
	(optionally) sorting them under one or more sort keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		nrows := GetUint(cmd, "rows")
		filter := GetString(cmd, "filter")
		sorts := GetStringSlice(cmd, "sort")
		//
		stats := util.NewPerfStats()
		// Generate sample data
		view := buildSampleTable(nrows).ToDataView()
		//
		stats.Log("Generating sample table")
		// Filter rows (if requested)
		if filter != "" {
			predicate, err := compileFilter(filter)
			if err != nil {
				log.Error(err)
				os.Exit(1)
			}
			//
			view = view.Filter(predicate)
			//
			stats.Log("Filtering rows")
		}
		// Sort rows (if requested)
		if len(sorts) > 0 {
			items, err := parseSortItems(sorts)
			if err != nil {
				log.Error(err)
				os.Exit(1)
			}
			//
			if view, err = view.QuickSortBy(items...); err != nil {
				log.Error(err)
				os.Exit(1)
			}
			//
			stats.Log("Sorting rows")
		}
		// Configure printer
		maxWidth := GetUint(cmd, "max-width")
		// Tighten the cap on narrow terminals, where four padded columns
		// would otherwise wrap.
		if limit := termio.TerminalWidth(80) / 4; termio.IsTerminal() && limit < maxWidth {
			maxWidth = limit
		}
		//
		printer := datatable.NewPrinter().MaxCellWidth(maxWidth)
		// Suppress escapes outside a terminal
		if !GetFlag(cmd, "ansi") || !termio.IsTerminal() {
			printer.AnsiEscapes(false)
		}
		//
		printer.Print(view)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Uint("rows", 10, "number of sample rows to generate")
	showCmd.Flags().String("filter", "", "filter rows with a boolean expression over \"row\"")
	showCmd.Flags().StringSlice("sort", nil, "sort rows by column[:asc|desc] keys")
	showCmd.Flags().Uint("max-width", 16, "maximum width for any column")
	showCmd.Flags().Bool("ansi", true, "specify whether to allow ANSI escapes or not (e.g. for colour reports)")
}
