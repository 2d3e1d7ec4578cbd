// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/intree/fault"
)

// Erase - unlink the value referenced by the iterator
//
// returns the removed value, which is otherwise untouched; the tree
// never destroys values.  The iterator must reference a value of this
// tree: a default or past-the-end iterator panics.  Iterators to
// every other value stay valid, iterators to the erased value do not.
func (tree *Tree[T]) Erase(it Iterator[T]) *T {
	if nil == it.link || it.link.isOrigin() {
		panic(fault.ErrIteratorWithoutItem)
	}
	item := it.link.item
	tree.unlink(it.link)
	return item
}

// Remove - unlink a value given its own reference
//
// the value must be a member of this tree; an unattached value panics
func (tree *Tree[T]) Remove(item *T) {
	l := tree.linkOf(item)
	if nil == l.up {
		panic(fault.ErrItemNotAttached)
	}
	tree.unlink(l)
}

// internal: physical removal
//
// 0 and 1 child cases splice directly; the 2 child case first swaps
// the node's position with its in-order successor so that only link
// structure moves, never value contents.  Every other value's link
// record, and so every other iterator, stays stable.
func (tree *Tree[T]) unlink(l *Link[T]) {
	p := l.up
	dir := direction(l.isChild(toRight))

	var rp *Link[T]    // parent of the physical removal point
	var rdir direction // the side of rp that shrank

	if nil == l.left || nil == l.right {
		c := l.left
		if nil == c {
			c = l.right
		}
		p.setChild(dir, c)
		if nil != c {
			c.up = p
		}
		rp = p
		rdir = dir
	} else {
		s := l.right.extremum(toLeft) // in-order successor, no left child
		if l == s.up {
			// successor is the right child: it keeps its own
			// right sub-tree and is itself the removal point
			rp = s
			rdir = toRight
		} else {
			// successor is deeper: detach it, splicing in its
			// right child, then give it l's right sub-tree
			rp = s.up
			rdir = toLeft
			rp.left = s.right
			if nil != s.right {
				s.right.up = rp
			}
			s.right = l.right
			s.right.up = s
		}
		// successor assumes l's position and balance
		s.left = l.left
		s.left.up = s
		s.balance = l.balance
		s.up = p
		p.setChild(dir, s)
	}

	// reset to the unattached state
	l.up = nil
	l.left = nil
	l.right = nil
	l.item = nil
	l.balance = 0

	tree.count -= 1
	tree.shrunk(rp, rdir)
}

// internal: bottom-up balance maintenance after the dir side of p
// shrank by one level
//
// unlike insertion the walk cannot stop at the first rotation: a
// rotation that shortens its sub-tree disturbs the balance of every
// ancestor above it, so the walk runs all the way to the origin
// unless some step leaves its sub-tree height unchanged
func (tree *Tree[T]) shrunk(p *Link[T], dir direction) {
	for !p.isOrigin() {
		p.balance -= lean(dir)
		top := p
		switch p.balance {
		case 0:
			// the sub-tree got shorter, keep walking up
		case -1, +1:
			// height unchanged, done
			return
		default:
			// ±2: the side opposite the shrink is now too tall
			heavy := direction(0 < p.balance)
			shorter := false
			top, shorter = rebalance(p, heavy)
			if !shorter {
				return
			}
		}
		dir = direction(top.isChild(toRight))
		p = top.up
	}
}
