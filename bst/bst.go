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

// Package bst is an unbalanced binary search tree, the baseline the balanced
// variants are measured against.
package bst

import (
	"cmp"
	"fmt"

	"github.com/cybrota/arbor/ordered"
)

type Node[K cmp.Ordered] struct {
	key   K
	left  *Node[K]
	right *Node[K]
}

func (n *Node[K]) Key() K { return n.key }

func (n *Node[K]) Left() ordered.Node[K] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *Node[K]) Right() ordered.Node[K] {
	if n.right == nil {
		return nil
	}
	return n.right
}

type Tree[K cmp.Ordered] struct {
	root *Node[K]
	size int
}

var _ ordered.MutableTree[int] = (*Tree[int])(nil)

func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

func (t *Tree[K]) rootNode() ordered.Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Insert walks down to the first free slot. Sorted input therefore builds a
// list-shaped tree.
func (t *Tree[K]) Insert(key K) {
	link := &t.root
	for *link != nil {
		n := *link
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			link = &n.left
		case c > 0:
			link = &n.right
		default:
			n.key = key
			return
		}
	}
	*link = &Node[K]{key: key}
	t.size++
}

// Delete removes key; a node with two children takes its successor's key.
func (t *Tree[K]) Delete(key K) {
	t.root = t.delete(t.root, key)
}

func (t *Tree[K]) delete(n *Node[K], key K) *Node[K] {
	if n == nil {
		return nil
	}
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left = t.delete(n.left, key)
	case c > 0:
		n.right = t.delete(n.right, key)
	default:
		if n.left == nil {
			t.size--
			return n.right
		}
		if n.right == nil {
			t.size--
			return n.left
		}
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key = succ.key
		n.right = t.delete(n.right, succ.key)
	}
	return n
}

func (t *Tree[K]) Contains(key K) bool {
	return ordered.Contains(t.rootNode(), key)
}

func (t *Tree[K]) Min() (K, bool) { return ordered.Min(t.rootNode()) }
func (t *Tree[K]) Max() (K, bool) { return ordered.Max(t.rootNode()) }

func (t *Tree[K]) Height() int      { return ordered.Height(t.rootNode()) }
func (t *Tree[K]) CountLeaves() int { return ordered.CountLeaves(t.rootNode()) }
func (t *Tree[K]) Len() int         { return t.size }
func (t *Tree[K]) IsEmpty() bool    { return t.root == nil }

func (t *Tree[K]) InOrder() []K  { return ordered.InOrder(t.rootNode()) }
func (t *Tree[K]) PreOrder() []K { return ordered.PreOrder(t.rootNode()) }

// IsValid only checks ordering; there is no balance to keep.
func (t *Tree[K]) IsValid() bool {
	return ordered.CheckOrder(t.rootNode()) == nil
}

func (t *Tree[K]) Verify() error {
	if err := ordered.CheckOrder(t.rootNode()); err != nil {
		return err
	}
	if n := len(t.InOrder()); n != t.size {
		return fmt.Errorf("size %d does not match %d reachable keys", t.size, n)
	}
	return nil
}
