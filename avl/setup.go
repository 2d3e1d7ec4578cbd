// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/intree/fault"
)

// Tree - type to hold the origin of a tree
//
// the origin is a link record that never carries a value: its left
// slot is the root of the tree and it doubles as the past-the-end
// position for iterators.  The tree never allocates or frees values,
// it only threads their embedded link records.
type Tree[T any] struct {
	origin Link[T]
	count  int
	linkOf func(*T) *Link[T]
}

// New - create an initially empty tree
//
// linkOf selects which link record inside a value this tree threads;
// a value type carrying several link records can be a member of one
// tree per record
func New[T any](linkOf func(*T) *Link[T]) *Tree[T] {
	if nil == linkOf {
		panic(fault.ErrLinkSelectorRequired)
	}
	return &Tree[T]{
		linkOf: linkOf,
	}
}

// NewFrom - create a tree and bulk load it from a sequence
//
// ordering and duplicate handling as for InsertAll
func NewFrom[T any](linkOf func(*T) *Link[T], less func(a *T, b *T) bool, items ...*T) *Tree[T] {
	tree := New(linkOf)
	tree.InsertAll(less, items...)
	return tree
}

// IsEmpty - true if tree contains no values
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.origin.left
}

// Count - number of values currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}
