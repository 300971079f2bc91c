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
package termio

import (
	"strings"
	"testing"
)

func Test_TablePrinter_01(t *testing.T) {
	tp := NewTablePrinter(2, 2)
	tp.SetRow(0, "a", "bb")
	tp.SetRow(1, "ccc", "d")
	//
	expected := "   a | bb |\n ccc |  d |\n"
	//
	if actual := tp.Render(); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}

func Test_TablePrinter_02(t *testing.T) {
	tp := NewTablePrinter(1, 1)
	tp.Set(0, 0, "abcdefgh")
	tp.SetMaxWidths(5)
	// Overlong cells are truncated to the column width.
	expected := " abc.. |\n"
	//
	if actual := tp.Render(); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}

func Test_TablePrinter_03(t *testing.T) {
	tp := NewTablePrinter(1, 1)
	tp.Set(0, 0, "x")
	tp.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_RED).Build())
	// With escapes disabled, no control characters should be emitted.
	tp.AnsiEscapes(false)
	//
	if actual := tp.Render(); strings.ContainsRune(actual, '\033') {
		t.Errorf("unexpected ansi escape in %q", actual)
	}
	// With escapes enabled, they should.
	tp.AnsiEscapes(true)
	//
	if actual := tp.Render(); !strings.ContainsRune(actual, '\033') {
		t.Errorf("missing ansi escape in %q", actual)
	}
}
