// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/intree/fault"
)

// FindOrInsert - single descent combining search and insertion
//
// the comparator works as for Search.  When a value matches, the tree
// is left untouched and (match, false) is returned; the factory is
// not called.  Otherwise the factory is called exactly once for the
// value to link in: a nil result abandons the insertion with the tree
// unchanged and returns a valueless iterator, any other result is
// linked at the descent's attach point, the tree is rebalanced and
// (new value, true) is returned.
//
// The factory must return a value whose selected link record is not
// attached to any tree.  This is the only operation that can increase
// Count.
func (tree *Tree[T]) FindOrInsert(cmp func(*T) int, factory func() *T) (Iterator[T], bool) {
	parent := &tree.origin
	dir := toLeft // an empty tree hangs the root off origin.left

	for p := tree.origin.left; nil != p; p = p.child(dir) {
		d := cmp(p.item)
		if 0 == d {
			return Iterator[T]{link: p}, false
		}
		parent = p
		dir = direction(0 < d)
	}

	item := factory()
	if nil == item { // insertion rejected
		return Iterator[T]{}, false
	}

	l := tree.linkOf(item)
	if nil != l.up {
		panic(fault.ErrLinkIsAttached)
	}
	l.left = nil
	l.right = nil
	l.balance = 0
	l.item = item
	l.up = parent
	parent.setChild(dir, l)
	tree.count += 1

	tree.grown(l)
	return Iterator[T]{link: l}, true
}

// InsertAll - bulk load values using a less-than ordering
//
// the ordering is adapted internally to the tri-state comparator.
// Values equivalent under less are dropped silently, first occurrence
// wins.  Returns the number of values actually linked.
func (tree *Tree[T]) InsertAll(less func(a *T, b *T) bool, items ...*T) int {
	n := 0
	for _, item := range items {
		item := item
		_, added := tree.FindOrInsert(
			func(node *T) int {
				if less(item, node) {
					return -1
				}
				if less(node, item) {
					return +1
				}
				return 0
			},
			func() *T { return item },
		)
		if added {
			n += 1
		}
	}
	return n
}

// internal: bottom-up balance maintenance after the branch holding l
// grew by one level
func (tree *Tree[T]) grown(l *Link[T]) {
	for p := l.up; !p.isOrigin(); p = l.up {
		p.balance += lean(direction(l.isChild(toRight)))
		switch p.balance {
		case 0:
			// growth absorbed: sub-tree height unchanged
			return
		case -1, +1:
			// sub-tree grew by one, keep walking up
			l = p
		default:
			// ±2: a single or double rotation restores the
			// pre-insert height, so the walk always stops here
			rebalance(p, direction(0 < p.balance))
			return
		}
	}
}
