// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/intree/avl"
)

// a value with two independent link records so it can be a member of
// two trees at the same time
type intNode struct {
	byValue avl.Link[intNode]
	byRank  avl.Link[intNode]
	value   int
	rank    int
}

func valueLink(n *intNode) *avl.Link[intNode] {
	return &n.byValue
}

func rankLink(n *intNode) *avl.Link[intNode] {
	return &n.byRank
}

func valueLess(a *intNode, b *intNode) bool {
	return a.value < b.value
}

func rankLess(a *intNode, b *intNode) bool {
	return a.rank < b.rank
}

func byValue(v int) func(*intNode) int {
	return func(n *intNode) int {
		return v - n.value
	}
}

func alwaysBefore(*intNode) int { return -1 }
func alwaysAfter(*intNode) int  { return +1 }

func TestEmptyTree(t *testing.T) {
	tree := avl.New(valueLink)

	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, 0, tree.Count(), "new tree count not zero")
	assert.Equal(t, tree.End(), tree.Begin(), "begin differs from end on empty tree")
	assert.True(t, tree.End().HasValue(), "end iterator must reference the origin")
	assert.Nil(t, tree.End().Item(), "end iterator must not expose a value")
}

// keys 0..30 inserted in an interleaved even/odd order must come out
// 0,1,2,…,30 with every balance factor within -1..+1
func TestPermutationOrder(t *testing.T) {
	order := []int{
		1, 0, 3, 2, 5, 4, 7, 6, 9, 8, 11, 10, 13, 12, 15, 14,
		17, 16, 19, 18, 21, 20, 23, 22, 25, 24, 27, 26, 30, 29, 28,
	}

	tree := avl.New(valueLink)
	for _, v := range order {
		node := &intNode{value: v}
		_, added := tree.FindOrInsert(byValue(v), func() *intNode { return node })
		assert.True(t, added, "insert of %d failed", v)
	}

	assert.Equal(t, len(order), tree.Count(), "wrong count")
	assert.True(t, tree.CheckParents(), "inconsistent parent pointers")
	assert.True(t, tree.CheckBalance(), "inconsistent balance factors")

	expected := 0
	end := tree.End()
	for curr := tree.Begin(); curr != end; curr = curr.Next() {
		assert.Equal(t, expected, curr.Item().value, "out of order traversal")
		bf := curr.BalanceFactor()
		assert.True(t, -1 <= bf && bf <= 1, "balance factor out of range: %d", bf)
		expected += 1
	}
	assert.Equal(t, 31, expected, "traversal count")
}

func TestFindComparators(t *testing.T) {
	tree := avl.New(valueLink)
	for i := 0; i < 10; i += 1 {
		node := &intNode{value: i}
		tree.FindOrInsert(byValue(i), func() *intNode { return node })
	}

	it := tree.Search(alwaysBefore)
	assert.Equal(t, tree.End(), it, "always-before search must miss")

	it = tree.Search(alwaysAfter)
	assert.Equal(t, tree.End(), it, "always-after search must miss")

	it = tree.Search(byValue(5))
	assert.NotEqual(t, tree.End(), it, "search for 5 missed")
	assert.Equal(t, 5, it.Item().value, "search found wrong value")
}

// two find-or-insert calls with the same key and distinct candidates:
// the first links its candidate, the second returns the first
// candidate untouched and never links its own
func TestFindOrInsertDuplicate(t *testing.T) {
	tree := avl.New(valueLink)

	nodeA := &intNode{value: 0}
	nodeB := &intNode{value: 0}

	itA, added := tree.FindOrInsert(byValue(0), func() *intNode { return nodeA })
	assert.True(t, added, "first insert rejected")
	assert.True(t, nodeA == itA.Item(), "first insert linked wrong node")
	assert.False(t, tree.IsEmpty(), "tree still empty")

	factoryCalled := false
	itB, added := tree.FindOrInsert(byValue(0), func() *intNode {
		factoryCalled = true
		return nodeB
	})
	assert.False(t, added, "duplicate insert accepted")
	assert.False(t, factoryCalled, "factory called for an existing key")
	assert.True(t, nodeA == itB.Item(), "duplicate insert returned wrong node")
	assert.False(t, nodeB.byValue.IsAttached(), "unused candidate was linked")
	assert.Equal(t, 1, tree.Count(), "count changed by duplicate insert")

	// erase and verify the key is gone and the count restored
	erased := tree.Erase(itB)
	assert.True(t, nodeA == erased, "erase removed wrong node")
	assert.Equal(t, tree.End(), tree.Search(byValue(0)), "key still present after erase")
	assert.Equal(t, 0, tree.Count(), "count not restored after erase")
	assert.False(t, nodeA.byValue.IsAttached(), "erased node still attached")
}

// a factory returning nil abandons the insertion with no side effects
func TestRejectedInsertion(t *testing.T) {
	tree := avl.New(valueLink)
	node := &intNode{value: 7}
	tree.FindOrInsert(byValue(7), func() *intNode { return node })

	it, added := tree.FindOrInsert(byValue(3), func() *intNode { return nil })
	assert.False(t, added, "rejected insertion reported as added")
	assert.False(t, it.HasValue(), "rejected insertion must yield a valueless iterator")
	assert.Equal(t, 1, tree.Count(), "rejected insertion changed the count")
	assert.True(t, tree.CheckBalance(), "rejected insertion disturbed the tree")
}

func TestIteratorSaturation(t *testing.T) {
	tree := avl.New(valueLink)
	for i := 0; i < 5; i += 1 {
		node := &intNode{value: i}
		tree.FindOrInsert(byValue(i), func() *intNode { return node })
	}

	end := tree.End()

	// forward: end saturates
	assert.Equal(t, end, end.Next(), "next from end must stay at end")

	// backward: end yields the highest value
	last := end.Prev()
	assert.NotEqual(t, end, last, "prev from end missed the highest value")
	assert.Equal(t, 4, last.Item().value, "prev from end yielded wrong value")

	// backward past the lowest value saturates at end
	assert.Equal(t, end, tree.Begin().Prev(), "prev from begin must reach end")

	// the zero iterator stays put in both directions
	var zero avl.Iterator[intNode]
	assert.False(t, zero.HasValue(), "zero iterator must not have a value")
	assert.Equal(t, zero, zero.Next(), "zero iterator moved forward")
	assert.Equal(t, zero, zero.Prev(), "zero iterator moved backward")
	assert.Nil(t, zero.Item(), "zero iterator exposes a value")
}

// the same values threaded into two trees through two link records;
// membership in one tree is independent of the other
func TestDualMembership(t *testing.T) {
	byValueTree := avl.New(valueLink)
	byRankTree := avl.New(rankLink)

	values := []int{5, 1, 4, 2, 3}
	nodes := make([]*intNode, len(values))
	for i, v := range values {
		// ranks run opposite to values
		nodes[i] = &intNode{value: v, rank: -v}
	}

	byValueTree.InsertAll(valueLess, nodes...)
	byRankTree.InsertAll(rankLess, nodes...)

	assert.Equal(t, len(values), byValueTree.Count(), "value tree count")
	assert.Equal(t, len(values), byRankTree.Count(), "rank tree count")

	// ascending by value
	prev := 0
	end := byValueTree.End()
	for curr := byValueTree.Begin(); curr != end; curr = curr.Next() {
		assert.Greater(t, curr.Item().value, prev, "value order broken")
		prev = curr.Item().value
	}

	// ascending by rank is descending by value
	prev = 6
	end = byRankTree.End()
	for curr := byRankTree.Begin(); curr != end; curr = curr.Next() {
		assert.Less(t, curr.Item().value, prev, "rank order broken")
		prev = curr.Item().value
	}

	// removal from one tree leaves the other intact
	byValueTree.Remove(nodes[0])
	assert.Equal(t, len(values)-1, byValueTree.Count(), "value tree count after removal")
	assert.Equal(t, len(values), byRankTree.Count(), "rank tree disturbed by value tree removal")
	assert.False(t, nodes[0].byValue.IsAttached(), "value link still attached")
	assert.True(t, nodes[0].byRank.IsAttached(), "rank link lost")
	assert.True(t, byValueTree.CheckBalance(), "value tree inconsistent")
	assert.True(t, byRankTree.CheckBalance(), "rank tree inconsistent")
}

// erasing one value invalidates only iterators to that value
func TestIteratorStability(t *testing.T) {
	tree := avl.New(valueLink)
	nodes := make([]*intNode, 16)
	for i := range nodes {
		i := i
		nodes[i] = &intNode{value: i}
		tree.FindOrInsert(byValue(i), func() *intNode { return nodes[i] })
	}

	// take an iterator to every value
	iterators := make(map[int]avl.Iterator[intNode])
	end := tree.End()
	for curr := tree.Begin(); curr != end; curr = curr.Next() {
		iterators[curr.Item().value] = curr
	}

	const victim = 9
	tree.Erase(iterators[victim])

	for v, it := range iterators {
		if victim == v {
			continue
		}
		assert.True(t, nodes[v] == it.Item(), "iterator to %d no longer valid", v)
	}

	// the surviving values still iterate in relative order
	expected := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13, 14, 15}
	actual := []int{}
	for curr := tree.Begin(); curr != end; curr = curr.Next() {
		actual = append(actual, curr.Item().value)
	}
	assert.Equal(t, expected, actual, "traversal after erase")
}

// bulk load drops equivalent values silently, first occurrence wins
func TestInsertAllFirstWins(t *testing.T) {
	tree := avl.New(valueLink)

	first := &intNode{value: 1, rank: 100}
	again := &intNode{value: 1, rank: 200}
	other := &intNode{value: 2, rank: 300}

	kept := tree.InsertAll(valueLess, first, again, other)
	assert.Equal(t, 2, kept, "wrong number of values kept")
	assert.Equal(t, 2, tree.Count(), "wrong count after bulk load")

	it := tree.Search(byValue(1))
	assert.True(t, first == it.Item(), "first occurrence did not win")
	assert.False(t, again.byValue.IsAttached(), "dropped duplicate was linked")
}

// precondition violations fail fast
func TestPreconditionPanics(t *testing.T) {
	tree := avl.New(valueLink)

	assert.Panics(t, func() {
		avl.New[intNode](nil)
	}, "nil link selector accepted")

	assert.Panics(t, func() {
		tree.Erase(tree.End())
	}, "erase through the end iterator accepted")

	assert.Panics(t, func() {
		tree.Erase(avl.Iterator[intNode]{})
	}, "erase through the zero iterator accepted")

	assert.Panics(t, func() {
		tree.Remove(&intNode{value: 1})
	}, "removal of an unattached value accepted")

	node := &intNode{value: 1}
	tree.FindOrInsert(byValue(1), func() *intNode { return node })
	assert.Panics(t, func() {
		// same link record offered to a second insertion
		tree.FindOrInsert(byValue(2), func() *intNode { return node })
	}, "re-insertion of an attached record accepted")
}

// exhaustive churn over every deletion order of a small tree
func TestSmallPermutations(t *testing.T) {
	const n = 7
	for mask := 0; mask < 1<<n; mask += 1 {
		tree := avl.New(valueLink)
		nodes := make([]*intNode, n)
		for i := 0; i < n; i += 1 {
			node := &intNode{value: i}
			nodes[i] = node
			tree.FindOrInsert(byValue(i), func() *intNode { return node })
		}
		for i := 0; i < n; i += 1 {
			if 0 != mask&(1<<i) {
				tree.Remove(nodes[i])
			}
		}
		if !tree.CheckParents() || !tree.CheckBalance() {
			t.Fatalf("inconsistent tree for mask: %0*b", n, mask)
		}
		for i := 0; i < n; i += 1 {
			found := tree.Search(byValue(i)) != tree.End()
			removed := 0 != mask&(1<<i)
			if found == removed {
				t.Fatalf("mask: %0*b  value: %d  found: %v", n, mask, i, found)
			}
		}
	}
}

func ExampleTree() {
	type entry struct {
		link avl.Link[entry]
		name string
	}

	tree := avl.NewFrom(
		func(e *entry) *avl.Link[entry] { return &e.link },
		func(a *entry, b *entry) bool { return a.name < b.name },
		&entry{name: "banana"},
		&entry{name: "apple"},
		&entry{name: "cherry"},
	)

	for curr, end := tree.Begin(), tree.End(); curr != end; curr = curr.Next() {
		fmt.Println(curr.Item().name)
	}
	// Output:
	// apple
	// banana
	// cherry
}
