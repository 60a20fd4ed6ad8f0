// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ordered holds the capability contract shared by every tree variant
// and the queries that only need to walk left/right links and read keys.
package ordered

import (
	"cmp"
	"fmt"
)

// Node is the read-only view of a tree node. Implementations must return a
// nil interface, not a typed nil pointer, for an absent child.
type Node[K cmp.Ordered] interface {
	Left() Node[K]
	Right() Node[K]
	Key() K
}

// Tree is implemented by every variant.
type Tree[K cmp.Ordered] interface {
	Insert(key K)
	Contains(key K) bool
	Min() (K, bool)
	Max() (K, bool)
	Height() int
	CountLeaves() int
	Len() int
	IsEmpty() bool
	InOrder() []K
	PreOrder() []K
	IsValid() bool
	Verify() error
}

// MutableTree is a Tree that also supports deletion.
type MutableTree[K cmp.Ordered] interface {
	Tree[K]
	Delete(key K)
}

// Height counts nodes on the longest root-to-leaf path. An empty tree has
// height 0 and a single node height 1.
func Height[K cmp.Ordered](n Node[K]) int {
	if n == nil {
		return 0
	}
	return max(Height(n.Left()), Height(n.Right())) + 1
}

// CountLeaves counts present nodes with no children.
func CountLeaves[K cmp.Ordered](n Node[K]) int {
	if n == nil {
		return 0
	}
	left, right := n.Left(), n.Right()
	if left == nil && right == nil {
		return 1
	}
	return CountLeaves(left) + CountLeaves(right)
}

// Contains performs an ordered descent looking for key.
func Contains[K cmp.Ordered](n Node[K], key K) bool {
	for n != nil {
		switch c := cmp.Compare(key, n.Key()); {
		case c < 0:
			n = n.Left()
		case c > 0:
			n = n.Right()
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest key, false when the tree is empty.
func Min[K cmp.Ordered](n Node[K]) (K, bool) {
	var zero K
	if n == nil {
		return zero, false
	}
	for l := n.Left(); l != nil; l = n.Left() {
		n = l
	}
	return n.Key(), true
}

// Max returns the largest key, false when the tree is empty.
func Max[K cmp.Ordered](n Node[K]) (K, bool) {
	var zero K
	if n == nil {
		return zero, false
	}
	for r := n.Right(); r != nil; r = n.Right() {
		n = r
	}
	return n.Key(), true
}

// InOrder returns the keys in ascending order.
func InOrder[K cmp.Ordered](n Node[K]) []K {
	keys := []K{}
	inOrder(n, &keys)
	return keys
}

func inOrder[K cmp.Ordered](n Node[K], keys *[]K) {
	if n == nil {
		return
	}
	inOrder(n.Left(), keys)
	*keys = append(*keys, n.Key())
	inOrder(n.Right(), keys)
}

// PreOrder returns the keys node-first, then the left and right subtrees.
func PreOrder[K cmp.Ordered](n Node[K]) []K {
	keys := []K{}
	preOrder(n, &keys)
	return keys
}

func preOrder[K cmp.Ordered](n Node[K], keys *[]K) {
	if n == nil {
		return
	}
	*keys = append(*keys, n.Key())
	preOrder(n.Left(), keys)
	preOrder(n.Right(), keys)
}

// CheckOrder reports the first place where the in-order sequence is not
// strictly increasing.
func CheckOrder[K cmp.Ordered](n Node[K]) error {
	keys := InOrder(n)
	for i := 1; i < len(keys); i++ {
		if cmp.Compare(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("keys out of order at position %d: %v before %v", i, keys[i-1], keys[i])
		}
	}
	return nil
}
