// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an intrusive AVL balanced tree with parent pointers
// to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// This version never allocates nodes: the link records that thread
// the tree live inside the caller's own values, selected by a
// function supplied at tree creation.  A value type may carry several
// link records and so be a member of several trees at once.  The tree
// holds references only; removing a value from a tree does not
// destroy it and the caller keeps full ownership of every value.
package avl
