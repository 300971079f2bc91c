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
package iter

import (
	"fmt"
	"testing"
)

func Test_ArrayIter_01(t *testing.T) {
	iter := NewArrayIterator([]uint{1, 2, 3})
	checkIterator(t, iter, []uint{1, 2, 3})
}

func Test_ArrayIter_02(t *testing.T) {
	iter := NewArrayIterator([]uint{})
	checkIterator(t, iter, []uint{})
}

func Test_ArrayIter_03(t *testing.T) {
	iter := NewArrayIterator([]uint{1, 2, 3, 4})
	// Clone should be unaffected by advancing the original.
	clone := iter.Clone()
	iter.Next()
	checkIterator(t, clone, []uint{1, 2, 3, 4})
	checkIterator(t, iter, []uint{2, 3, 4})
}

func Test_ArrayIter_04(t *testing.T) {
	iter := NewArrayIterator([]uint{5, 6, 7})
	if n := iter.Nth(1); n != 6 {
		t.Errorf("expected 6, got %d", n)
	}
}

func Test_ArrayIter_05(t *testing.T) {
	iter := NewArrayIterator([]uint{4, 8, 15, 16, 23, 42})
	index, ok := iter.Find(func(item uint) bool { return item >= 16 })
	//
	if !ok || index != 3 {
		t.Errorf("expected (3,true), got (%d,%t)", index, ok)
	}
}

func Test_ProjectIter_01(t *testing.T) {
	iter := NewProjectIterator(NewArrayIterator([]uint{1, 2, 3}), func(item uint) uint {
		return item * 2
	})
	checkIterator(t, iter, []uint{2, 4, 6})
}

func Test_ProjectIter_02(t *testing.T) {
	iter := NewProjectIterator(NewArrayIterator([]uint{1, 2, 3}), func(item uint) string {
		return fmt.Sprintf("<%d>", item)
	})
	checkIterator(t, iter, []string{"<1>", "<2>", "<3>"})
}

func Test_FlattenIter_01(t *testing.T) {
	iter := NewFlattenIterator(NewArrayIterator([]uint{1, 2, 3}), func(item uint) Iterator[uint] {
		return NewArrayIterator([]uint{item, item})
	})
	checkIterator(t, iter, []uint{1, 1, 2, 2, 3, 3})
}

func Test_FlattenIter_02(t *testing.T) {
	// Empty expansions should simply be skipped.
	iter := NewFlattenIterator(NewArrayIterator([]uint{1, 2, 3, 4}), func(item uint) Iterator[uint] {
		if item%2 == 0 {
			return NewArrayIterator([]uint{})
		}
		//
		return NewUnitIterator(item)
	})
	checkIterator(t, iter, []uint{1, 3})
}

func Test_FlattenIter_03(t *testing.T) {
	iter := NewFlattenIterator(NewArrayIterator([]uint{1, 2}), func(item uint) Iterator[uint] {
		return NewArrayIterator([]uint{item, item + 10})
	})
	//
	if count := iter.Count(); count != 4 {
		t.Errorf("expected 4 items, got %d", count)
	}
	// Count must not drain the iterator.
	checkIterator(t, iter, []uint{1, 11, 2, 12})
}

func Test_AppendIter_01(t *testing.T) {
	lhs := NewArrayIterator([]uint{1, 2})
	rhs := NewArrayIterator([]uint{3, 4})
	checkIterator(t, lhs.Append(rhs), []uint{1, 2, 3, 4})
}

func Test_AppendIter_02(t *testing.T) {
	lhs := NewArrayIterator([]uint{})
	rhs := NewArrayIterator([]uint{3, 4})
	iter := lhs.Append(rhs)
	//
	if count := iter.Count(); count != 2 {
		t.Errorf("expected 2 items, got %d", count)
	}
}

func Test_UnitIter_01(t *testing.T) {
	iter := NewUnitIterator(uint(10))
	checkIterator(t, iter, []uint{10})
}

func Test_FoldLeft_01(t *testing.T) {
	iter := NewArrayIterator([]string{"a", "b", "c"})
	acc := FoldLeft(iter, "_", func(acc string, item string) string {
		return acc + item
	})
	//
	if acc != "_abc" {
		t.Errorf("expected \"_abc\", got %s", acc)
	}
}

func Test_FoldRight_01(t *testing.T) {
	iter := NewArrayIterator([]string{"a", "b", "c"})
	acc := FoldRight(iter, "_", func(item string, acc string) string {
		return acc + item
	})
	//
	if acc != "_cba" {
		t.Errorf("expected \"_cba\", got %s", acc)
	}
}

func Test_FoldEmpty_01(t *testing.T) {
	// Folding an empty sequence always yields the initial accumulator.
	lhs := FoldLeft(NewArrayIterator([]uint{}), uint(32), func(acc uint, item uint) uint { return 0 })
	rhs := FoldRight(NewArrayIterator([]uint{}), uint(32), func(item uint, acc uint) uint { return 0 })
	//
	if lhs != 32 || rhs != 32 {
		t.Errorf("expected (32,32), got (%d,%d)", lhs, rhs)
	}
}

func Test_Reduce_01(t *testing.T) {
	iter := NewArrayIterator([]uint{1, 2, 3, 4})
	acc, ok := Reduce(iter, func(l uint, r uint) uint { return l + r })
	//
	if !ok || acc != 10 {
		t.Errorf("expected (10,true), got (%d,%t)", acc, ok)
	}
}

func Test_Reduce_02(t *testing.T) {
	iter := NewArrayIterator([]uint{})
	_, ok := Reduce(iter, func(l uint, r uint) uint { return l + r })
	//
	if ok {
		t.Errorf("expected reduce of empty sequence to fail")
	}
}

func Test_GroupBy_01(t *testing.T) {
	iter := NewArrayIterator([]uint{1, 2, 3, 4, 5})
	groups := GroupBy(iter, func(item uint) uint { return item % 2 })
	//
	checkItems(t, groups[0], []uint{2, 4})
	checkItems(t, groups[1], []uint{1, 3, 5})
}

func Test_GroupBy_02(t *testing.T) {
	iter := NewArrayIterator([]uint{})
	groups := GroupBy(iter, func(item uint) uint { return item })
	//
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkIterator[T comparable](t *testing.T, iter Iterator[T], expected []T) {
	// Count first, since this must not drain the iterator.
	if count := iter.Clone().Count(); count != uint(len(expected)) {
		t.Errorf("expected %d items, got %d", len(expected), count)
	}
	//
	checkItems(t, iter.Collect(), expected)
}

func checkItems[T comparable](t *testing.T, items []T, expected []T) {
	if len(items) != len(expected) {
		t.Errorf("expected %d items, got %d", len(expected), len(items))
		return
	}
	//
	for i := 0; i < len(expected); i++ {
		if items[i] != expected[i] {
			t.Errorf("expected %v at index %d, got %v", expected[i], i, items[i])
		}
	}
}
