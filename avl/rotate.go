// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotation and balance arithmetic shared by the insert and delete
// retrace walks

// numeric lean of a direction: -1 for left, +1 for right
func lean(dir direction) int {
	if toRight == dir {
		return 1
	}
	return -1
}

// single rotation of p towards dir
//
// the child opposite to dir moves up into p's place and p becomes its
// dir child; the displaced grand-child changes sides.  Only link
// fields are touched, balance factors are the caller's business.
func rotate[T any](p *Link[T], dir direction) *Link[T] {
	q := p.child(!dir)
	t := q.child(dir)

	p.setChild(!dir, t)
	if nil != t {
		t.up = p
	}

	q.up = p.up
	if p.up.left == p {
		p.up.left = q // also covers the root slot of the origin
	} else {
		p.up.right = q
	}

	q.setChild(dir, p)
	p.up = q
	return q
}

// rebalance - restore the AVL property at p, which has become
// over-heavy on side dir (balance ±2)
//
// returns the link now rooting the sub-tree and whether the sub-tree
// ended up shorter than it was before the disturbing operation; the
// balance factors of the links involved are recomputed exactly, never
// re-derived from heights
func rebalance[T any](p *Link[T], dir direction) (*Link[T], bool) {
	q := p.child(dir)
	switch q.balance {
	case lean(dir):
		// heavy child leans the same way: single rotation
		rotate(p, !dir)
		p.balance = 0
		q.balance = 0
		return q, true

	case 0:
		// only possible after a deletion: single rotation
		// preserving the sub-tree height
		rotate(p, !dir)
		p.balance = lean(dir)
		q.balance = -lean(dir)
		return q, false

	default:
		// heavy child leans the opposite way: double rotation
		r := q.child(!dir)
		rotate(q, dir)
		rotate(p, !dir)
		if lean(dir) == r.balance {
			p.balance = -lean(dir)
		} else {
			p.balance = 0
		}
		if -lean(dir) == r.balance {
			q.balance = lean(dir)
		} else {
			q.balance = 0
		}
		r.balance = 0
		return r, true
	}
}
