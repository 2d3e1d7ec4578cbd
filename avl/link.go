// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// child selector: false = left, true = right
// a boolean direction lets the mirrored halves of the balancing
// logic share one implementation
type direction bool

const (
	toLeft  direction = false
	toRight direction = true
)

// Link - the connection record that makes a value a tree node
//
// embed one Link field in a value for each tree the value can join;
// the zero value is an unattached record.  All fields are managed by
// the tree, the caller must never modify them.
type Link[T any] struct {
	up      *Link[T] // parent link, nil only when unattached or origin
	left    *Link[T] // left sub-tree
	right   *Link[T] // right sub-tree
	item    *T       // owning value, nil for an origin
	balance int      // -1, 0, +1
}

// IsAttached - true while the record is threaded into a tree
func (l *Link[T]) IsAttached() bool {
	return nil != l.up
}

// read a child slot
func (l *Link[T]) child(dir direction) *Link[T] {
	if toRight == dir {
		return l.right
	}
	return l.left
}

// write a child slot; the child's up pointer is not touched
func (l *Link[T]) setChild(dir direction, c *Link[T]) {
	if toRight == dir {
		l.right = c
	} else {
		l.left = c
	}
}

// true iff this link is exactly the named child of its parent
func (l *Link[T]) isChild(dir direction) bool {
	return nil != l.up && l.up.child(dir) == l
}

// the origin is the only link without a parent; its left slot holds
// the root so every real node has a non-nil up pointer
func (l *Link[T]) isOrigin() bool {
	return nil == l.up
}
