// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
//
// these mark caller precondition violations and are used as panic
// values: nothing in the tree itself is fallible in the I/O sense
var (
	ErrIteratorWithoutItem  = InvalidError("iterator does not reference an item")
	ErrItemNotAttached      = NotFoundError("item is not attached to a tree")
	ErrLinkIsAttached       = InvalidError("link record is already attached to a tree")
	ErrLinkSelectorRequired = InvalidError("link selector function is required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
