// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific value
//
// the comparator receives a candidate value and reports where the
// sought key lies relative to it: negative for before, zero for a
// match, positive for after.  It must be consistent with the strict
// ordering used to build the tree.  Returns End when no value
// matches; absence is never an error.
func (tree *Tree[T]) Search(cmp func(*T) int) Iterator[T] {
	p := tree.origin.left
	for nil != p {
		switch d := cmp(p.item); {
		case d < 0:
			p = p.left
		case d > 0:
			p = p.right
		default:
			return Iterator[T]{link: p}
		}
	}
	return tree.End()
}
