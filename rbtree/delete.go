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

// Delete removes key. Deleting an absent key, or deleting from an empty tree,
// does nothing.
func (t *RBTree[K]) Delete(key K) {
	n := t.find(key)
	if n == nil {
		return
	}
	if n.left != nil && n.right != nil {
		// Two children: take over the successor's key and remove the
		// successor instead. It has no left child.
		succ := minimum(n.right)
		n.key = succ.key
		n = succ
	}
	t.size--
	t.remove(n)
}

// remove unlinks n, which has at most one child.
func (t *RBTree[K]) remove(n *RBNode[K]) {
	child := n.left
	if child == nil {
		child = n.right
	}

	if n.color == Red {
		// A red node with at most one child has none.
		t.replace(n, child)
		return
	}

	if child != nil {
		// Black node over a single red child: the child takes its place and
		// its colour so every path keeps its black count.
		t.replace(n, child)
		child.color = Black
		return
	}

	if n.parent == nil {
		t.root = nil
		return
	}

	// Black leaf. Its removal shortens one path by a black node; repair
	// while n is still linked so parent and sibling can be found from it.
	t.deleteFixup(n)
	t.replace(n, nil)
	n.parent = nil
}

// deleteFixup repairs a black deficit on the path through x.
func (t *RBTree[K]) deleteFixup(x *RBNode[K]) {
	parent := x.parent
	if parent == nil {
		return
	}
	sib := sibling(x)
	if sib == nil {
		// unreachable while black-heights agree
		return
	}
	left := isLeft(x)

	if sib.color == Red {
		if left {
			t.rotateLeft(parent)
		} else {
			t.rotateRight(parent)
		}
		parent.color = Red
		sib.color = Black
		t.deleteFixup(x)
		return
	}

	near, far := sib.left, sib.right
	if !left {
		near, far = sib.right, sib.left
	}

	switch {
	case colorOf(near) == Black && colorOf(far) == Black:
		sib.color = Red
		if parent.color == Black {
			t.deleteFixup(parent)
			return
		}
		parent.color = Black

	case colorOf(far) == Black:
		// near nephew red: lift it above the sibling so the far
		// nephew becomes red
		if left {
			t.rotateRight(sib)
		} else {
			t.rotateLeft(sib)
		}
		sib.color = Red
		near.color = Black
		t.deleteFixup(x)

	default:
		if left {
			t.rotateLeft(parent)
		} else {
			t.rotateRight(parent)
		}
		sib.color = parent.color
		parent.color = Black
		far.color = Black
	}
}
