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

package rbtree

import (
	"cmp"

	"github.com/cybrota/arbor/ordered"
)

// RBTree is an ordered set of keys. The zero value is an empty tree.
type RBTree[K cmp.Ordered] struct {
	root *RBNode[K]
	size int
}

var _ ordered.MutableTree[int] = (*RBTree[int])(nil)

func New[K cmp.Ordered]() *RBTree[K] {
	return &RBTree[K]{}
}

// Root returns the root node, or nil for an empty tree.
func (t *RBTree[K]) Root() *RBNode[K] {
	return t.root
}

func (t *RBTree[K]) rootNode() ordered.Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root
}

func (t *RBTree[K]) find(key K) *RBNode[K] {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func (t *RBTree[K]) Contains(key K) bool {
	return t.find(key) != nil
}

func (t *RBTree[K]) Min() (K, bool) {
	return ordered.Min(t.rootNode())
}

func (t *RBTree[K]) Max() (K, bool) {
	return ordered.Max(t.rootNode())
}

func (t *RBTree[K]) Height() int {
	return ordered.Height(t.rootNode())
}

func (t *RBTree[K]) CountLeaves() int {
	return ordered.CountLeaves(t.rootNode())
}

// Len returns the number of keys held.
func (t *RBTree[K]) Len() int {
	return t.size
}

func (t *RBTree[K]) IsEmpty() bool {
	return t.root == nil
}

func (t *RBTree[K]) InOrder() []K {
	return ordered.InOrder(t.rootNode())
}

func (t *RBTree[K]) PreOrder() []K {
	return ordered.PreOrder(t.rootNode())
}
