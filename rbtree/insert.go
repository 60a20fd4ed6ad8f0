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

import "cmp"

// Insert adds key as a red leaf and repairs colours upward from it. An
// existing equal key is overwritten with no change of shape or colour.
func (t *RBTree[K]) Insert(key K) {
	var parent *RBNode[K]
	var c int
	for n := t.root; n != nil; {
		c = cmp.Compare(key, n.key)
		if c == 0 {
			n.key = key
			return
		}
		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	n := &RBNode[K]{key: key, color: Red, parent: parent}
	switch {
	case parent == nil:
		t.root = n
	case c < 0:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++
	t.insertFixup(n)
}

// insertFixup restores the red-black properties after n was coloured red.
func (t *RBTree[K]) insertFixup(n *RBNode[K]) {
	parent := n.parent
	if parent == nil {
		n.color = Black
		return
	}
	if parent.color == Black {
		return
	}

	grandparent := parent.parent
	if grandparent == nil {
		parent.color = Black
		return
	}
	if grandparent.color == Red {
		panic("rbtree: red violation")
	}

	if uncle := sibling(parent); colorOf(uncle) == Red {
		parent.color = Black
		uncle.color = Black
		grandparent.color = Red
		t.insertFixup(grandparent)
		return
	}

	if isLeft(parent) {
		if !isLeft(n) {
			// left-right: turn it into left-left with parent as the outer child
			t.rotateLeft(parent)
			t.insertFixup(parent)
			return
		}
		t.rotateRight(grandparent)
	} else {
		if isLeft(n) {
			t.rotateRight(parent)
			t.insertFixup(parent)
			return
		}
		t.rotateLeft(grandparent)
	}
	parent.color = Black
	grandparent.color = Red
}
