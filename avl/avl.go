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

package avl

import (
	"cmp"

	"github.com/cybrota/arbor/ordered"
)

// Tree is an ordered set of keys. The zero value is an empty tree.
type Tree[K cmp.Ordered] struct {
	root *Node[K]
	size int
}

var _ ordered.MutableTree[int] = (*Tree[int])(nil)

func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{root: nil}
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

func (tree *Tree[K]) rootNode() ordered.Node[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// Insert adds key. Inserting a key that is already present overwrites it and
// leaves the shape of the tree untouched.
func (tree *Tree[K]) Insert(key K) {
	tree.root = tree.insertRecursive(tree.root, key)
}

func (tree *Tree[K]) insertRecursive(node *Node[K], key K) *Node[K] {
	if node == nil {
		tree.size++
		return &Node[K]{key: key, height: 1}
	}

	switch c := cmp.Compare(key, node.key); {
	case c < 0:
		node.left = tree.insertRecursive(node.left, key)
	case c > 0:
		node.right = tree.insertRecursive(node.right, key)
	default:
		node.key = key
		return node
	}

	updateHeight(node)
	return rebalance(node)
}

// Delete removes key. Deleting a key that is not present, or deleting from an
// empty tree, does nothing.
func (tree *Tree[K]) Delete(key K) {
	tree.root = tree.deleteRecursive(tree.root, key)
}

func (tree *Tree[K]) deleteRecursive(node *Node[K], key K) *Node[K] {
	if node == nil {
		return nil // Key not found
	}

	switch c := cmp.Compare(key, node.key); {
	case c < 0:
		node.left = tree.deleteRecursive(node.left, key)
	case c > 0:
		node.right = tree.deleteRecursive(node.right, key)
	default:
		// No children
		if node.left == nil && node.right == nil {
			tree.size--
			return nil
		}
		// One child (right)
		if node.left == nil {
			tree.size--
			return node.right
		}
		// One child (left)
		if node.right == nil {
			tree.size--
			return node.left
		}
		// Two children: take over the successor's key, then remove the
		// successor, which has no left child.
		pivot := findMin(node.right)
		node.key = pivot.key
		node.right = tree.deleteRecursive(node.right, pivot.key)
	}

	updateHeight(node)
	return rebalance(node)
}

func findMin[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func (tree *Tree[K]) Contains(key K) bool {
	return ordered.Contains(tree.rootNode(), key)
}

func (tree *Tree[K]) Min() (K, bool) {
	return ordered.Min(tree.rootNode())
}

func (tree *Tree[K]) Max() (K, bool) {
	return ordered.Max(tree.rootNode())
}

// Height is the stored height of the root, 0 for an empty tree.
func (tree *Tree[K]) Height() int {
	return getHeight(tree.root)
}

func (tree *Tree[K]) CountLeaves() int {
	return ordered.CountLeaves(tree.rootNode())
}

// Len returns the number of keys held.
func (tree *Tree[K]) Len() int {
	return tree.size
}

func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

func (tree *Tree[K]) InOrder() []K {
	return ordered.InOrder(tree.rootNode())
}

func (tree *Tree[K]) PreOrder() []K {
	return ordered.PreOrder(tree.rootNode())
}
