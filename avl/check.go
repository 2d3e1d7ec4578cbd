// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckParents - check the up pointers for consistency
func (tree *Tree[T]) CheckParents() bool {
	return checkup(tree.origin.left, &tree.origin)
}

// internal: consistency checker
func checkup[T any](p *Link[T], up *Link[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at link: %p   actual up: %p  expected: %p\n", p, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckBalance - recompute sub-tree heights and verify that every
// stored balance factor matches and stays within -1..+1
func (tree *Tree[T]) CheckBalance() bool {
	_, ok := checkHeight(tree.origin.left)
	return ok
}

// internal: height checker
func checkHeight[T any](p *Link[T]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, lok := checkHeight(p.left)
	rh, rok := checkHeight(p.right)
	if !lok || !rok {
		return 0, false
	}
	if rh-lh != p.balance || p.balance < -1 || p.balance > 1 {
		fmt.Printf("fail at link: %p   balance: %d  heights: left: %d right: %d\n", p, p.balance, lh, rh)
		return 0, false
	}
	if rh > lh {
		return rh + 1, true
	}
	return lh + 1, true
}
