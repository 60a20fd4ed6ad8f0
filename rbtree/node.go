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

// Package rbtree implements a red-black tree whose nodes keep a pointer to
// their parent. Insertion and deletion repair colours by walking upward from
// the changed position, rotating where recolouring alone is not enough.
package rbtree

import (
	"cmp"

	"github.com/cybrota/arbor/ordered"
)

type Color uint8

const (
	// Red is the zero value so that fresh nodes start red.
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "Red"
}

// RBNode is a node of an RBTree. parent is nil for the root and is kept in
// step with the parent's left/right link by every rotation and splice.
type RBNode[K cmp.Ordered] struct {
	key    K
	color  Color
	parent *RBNode[K]
	left   *RBNode[K]
	right  *RBNode[K]
}

func (n *RBNode[K]) Key() K       { return n.key }
func (n *RBNode[K]) Color() Color { return n.color }

// Parent returns the node's parent, nil for the root.
func (n *RBNode[K]) Parent() *RBNode[K] { return n.parent }

func (n *RBNode[K]) Left() ordered.Node[K] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *RBNode[K]) Right() ordered.Node[K] {
	if n.right == nil {
		return nil
	}
	return n.right
}

// colorOf treats absent children as black.
func colorOf[K cmp.Ordered](n *RBNode[K]) Color {
	if n == nil {
		return Black
	}
	return n.color
}

func isLeft[K cmp.Ordered](n *RBNode[K]) bool {
	return n.parent != nil && n.parent.left == n
}

func sibling[K cmp.Ordered](n *RBNode[K]) *RBNode[K] {
	if n.parent == nil {
		return nil
	}
	if isLeft(n) {
		return n.parent.right
	}
	return n.parent.left
}

func minimum[K cmp.Ordered](n *RBNode[K]) *RBNode[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}
