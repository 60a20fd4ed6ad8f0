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

// replace points the link that held old at n, or makes n the root when old
// was the root. n may be nil. old's own links are left untouched.
func (t *RBTree[K]) replace(old, n *RBNode[K]) {
	switch {
	case old.parent == nil:
		t.root = n
	case old.parent.left == old:
		old.parent.left = n
	default:
		old.parent.right = n
	}
	if n != nil {
		n.parent = old.parent
	}
}

/*
	Left rotation around p:

	      g                g
	      |                |
	      p                r
	     / \              / \
	    a   r     →      p   c
	       / \          / \
	      b   c        a   b

	Colours are not touched.
*/
func (t *RBTree[K]) rotateLeft(p *RBNode[K]) {
	r := p.right
	if r == nil {
		panic("rbtree: left rotation needs a right child")
	}
	p.right = r.left
	if r.left != nil {
		r.left.parent = p
	}
	t.replace(p, r)
	r.left = p
	p.parent = r
}

// rotateRight is the mirror of rotateLeft.
func (t *RBTree[K]) rotateRight(p *RBNode[K]) {
	l := p.left
	if l == nil {
		panic("rbtree: right rotation needs a left child")
	}
	p.left = l.right
	if l.right != nil {
		l.right.parent = p
	}
	t.replace(p, l)
	l.right = p
	p.parent = l
}
