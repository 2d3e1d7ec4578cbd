// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: farthest descendant in one direction
// toLeft gives the lowest key of the sub-tree, toRight the highest
func (l *Link[T]) extremum(dir direction) *Link[T] {
	for nil != l.child(dir) {
		l = l.child(dir)
	}
	return l
}

// internal: in-order neighbour in the given direction
//
// a forward step from the origin saturates, returning the origin
// itself; a backward step from the origin yields the highest value of
// the whole tree since the root hangs off the origin's left slot.
// Both ends of the sequence therefore resolve without nil checks.
func (l *Link[T]) step(dir direction) *Link[T] {
	if c := l.child(dir); nil != c {
		return c.extremum(!dir)
	}
	for l.isChild(dir) {
		l = l.up
	}
	if nil == l.up {
		return l // reached the origin: the sequence is exhausted
	}
	return l.up
}
