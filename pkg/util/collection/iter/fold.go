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

// FoldLeft reduces the items of an enumerator into a single accumulated value,
// visiting items left-to-right.  Thus, for items [x1,x2,x3] and accumulator
// acc, this computes fn(fn(fn(acc,x1),x2),x3).  This drains the enumerator.
//
//nolint:revive
func FoldLeft[T, A any, S Enumerator[T]](iter S, acc A, fn func(A, T) A) A {
	for iter.HasNext() {
		acc = fn(acc, iter.Next())
	}
	//
	return acc
}

// FoldRight reduces the items of an enumerator into a single accumulated
// value, combining items right-to-left.  Thus, for items [x1,x2,x3] and
// accumulator acc, this computes fn(x1,fn(x2,fn(x3,acc))).  This drains the
// enumerator (items are buffered first, since an enumerator only moves
// forwards).
//
//nolint:revive
func FoldRight[T, A any, S Enumerator[T]](iter S, acc A, fn func(T, A) A) A {
	items := Collect[T](iter)
	//
	for i := len(items); i > 0; i-- {
		acc = fn(items[i-1], acc)
	}
	//
	return acc
}

// Reduce combines the items of an enumerator into a single value using a
// binary operator, visiting items left-to-right.  The second result is false
// if (and only if) the enumerator was empty, since there is then no value to
// reduce to.  This drains the enumerator.
//
//nolint:revive
func Reduce[T any, S Enumerator[T]](iter S, fn func(T, T) T) (T, bool) {
	var acc T
	//
	if !iter.HasNext() {
		// Empty sequence
		return acc, false
	}
	//
	acc = iter.Next()
	for iter.HasNext() {
		acc = fn(acc, iter.Next())
	}
	//
	return acc, true
}

// GroupBy partitions the items of an enumerator according to a key function,
// mapping each key to the items which produced it.  Within each group, items
// retain their original (left-to-right) order.  This drains the enumerator.
//
//nolint:revive
func GroupBy[K comparable, T any, S Enumerator[T]](iter S, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	//
	for iter.HasNext() {
		ith := iter.Next()
		key := fn(ith)
		groups[key] = append(groups[key], ith)
	}
	//
	return groups
}
