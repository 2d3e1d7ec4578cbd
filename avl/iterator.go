// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Iterator - a cursor over the values of a tree
//
// iterators compare with ==, two being equal when they reference the
// same link record.  The zero Iterator references nothing and is
// distinct from every tree position including End.
type Iterator[T any] struct {
	link *Link[T]
}

// Begin - iterator at the value with the lowest key
// equal to End when the tree is empty
func (tree *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{link: tree.origin.extremum(toLeft)}
}

// End - the past-the-end iterator
// it references the tree's origin and stays valid across all
// insertions and deletions; End().Prev() is the highest value
func (tree *Tree[T]) End() Iterator[T] {
	return Iterator[T]{link: &tree.origin}
}

// HasValue - false only for the zero iterator
// a past-the-end iterator references the origin and reports true
func (it Iterator[T]) HasValue() bool {
	return nil != it.link
}

// Item - the referenced value
// nil for the zero iterator and for End; callers must not erase or
// re-insert through a nil result
func (it Iterator[T]) Item() *T {
	if nil == it.link {
		return nil
	}
	return it.link.item
}

// Next - iterator at the in-order successor
// saturates at End; the zero iterator stays put
func (it Iterator[T]) Next() Iterator[T] {
	if nil == it.link {
		return it
	}
	return Iterator[T]{link: it.link.step(toRight)}
}

// Prev - iterator at the in-order predecessor
// stepping back from End yields the highest value; stepping back from
// Begin saturates at End; the zero iterator stays put
func (it Iterator[T]) Prev() Iterator[T] {
	if nil == it.link {
		return it
	}
	return Iterator[T]{link: it.link.step(toLeft)}
}

// BalanceFactor - diagnostic access to the stored balance factor
func (it Iterator[T]) BalanceFactor() int {
	if nil == it.link {
		return 0
	}
	return it.link.balance
}

// Child - diagnostic access to a structural child (false = left,
// true = right); a missing child yields the zero iterator
func (it Iterator[T]) Child(right bool) Iterator[T] {
	if nil == it.link {
		return Iterator[T]{}
	}
	c := it.link.child(direction(right))
	if nil == c {
		return Iterator[T]{}
	}
	return Iterator[T]{link: c}
}
