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

// Package llrb is an insert-only left-leaning red-black tree. Rebalancing
// happens on the way back up a recursive insert using two rotations and a
// colour flip, so nodes carry no parent pointer.
package llrb

import (
	"cmp"

	"github.com/cybrota/arbor/ordered"
)

type Color bool

const (
	Red   Color = false
	Black Color = true
)

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "Red"
}

type Node[K cmp.Ordered] struct {
	key   K
	color Color
	left  *Node[K]
	right *Node[K]
}

func (n *Node[K]) Key() K       { return n.key }
func (n *Node[K]) Color() Color { return n.color }

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

func isRed[K cmp.Ordered](n *Node[K]) bool {
	return n != nil && n.color == Red
}

// Tree has no Delete; it satisfies ordered.Tree but not ordered.MutableTree.
type Tree[K cmp.Ordered] struct {
	root *Node[K]
	size int
}

var _ ordered.Tree[int] = (*Tree[int])(nil)

func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

func (t *Tree[K]) rootNode() ordered.Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Insert adds key, overwriting an equal key in place.
func (t *Tree[K]) Insert(key K) {
	t.root = t.insert(t.root, key)
	t.root.color = Black
}

func (t *Tree[K]) insert(n *Node[K], key K) *Node[K] {
	if n == nil {
		t.size++
		return &Node[K]{key: key, color: Red}
	}
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left = t.insert(n.left, key)
	case c > 0:
		n.right = t.insert(n.right, key)
	default:
		n.key = key
	}
	return n.fixUp()
}

func (n *Node[K]) fixUp() *Node[K] {
	if isRed(n.right) && !isRed(n.left) {
		n = n.rotateLeft()
	}
	if isRed(n.left) && isRed(n.left.left) {
		n = n.rotateRight()
	}
	if isRed(n.left) && isRed(n.right) {
		n.flipColors()
	}
	return n
}

// rotateLeft lifts the right child. It takes over n's colour and n turns red.
func (n *Node[K]) rotateLeft() *Node[K] {
	r := n.right
	if r == nil {
		panic("llrb: left rotation needs a right child")
	}
	n.right = r.left
	r.left = n
	r.color = n.color
	n.color = Red
	return r
}

func (n *Node[K]) rotateRight() *Node[K] {
	l := n.left
	if l == nil {
		panic("llrb: right rotation needs a left child")
	}
	n.left = l.right
	l.right = n
	l.color = n.color
	n.color = Red
	return l
}

func (n *Node[K]) flipColors() {
	n.color = !n.color
	n.left.color = !n.left.color
	n.right.color = !n.right.color
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
