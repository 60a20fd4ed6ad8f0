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
	"errors"
	"fmt"

	"github.com/cybrota/arbor/ordered"
)

// IsValid reports whether every root-to-nil path carries the same number of
// black nodes.
func (t *RBTree[K]) IsValid() bool {
	return blackHeight(t.root) != -1
}

// blackHeight counts black nodes down to nil, nil included, or returns -1
// when the two sides of some node disagree.
func blackHeight[K cmp.Ordered](n *RBNode[K]) int {
	if n == nil {
		return 1
	}
	lh := blackHeight(n.left)
	rh := blackHeight(n.right)
	if lh == -1 || rh == -1 || lh != rh {
		return -1
	}
	if n.color == Black {
		return lh + 1
	}
	return lh
}

var errRedRoot = errors.New("root is red")

// Verify checks every red-black property plus parent links and the key count,
// and describes the first violation found.
func (t *RBTree[K]) Verify() error {
	if err := ordered.CheckOrder(t.rootNode()); err != nil {
		return err
	}
	if t.root != nil {
		if t.root.color != Black {
			return errRedRoot
		}
		if t.root.parent != nil {
			return fmt.Errorf("root %v has a parent", t.root.key)
		}
	}
	if _, err := verifyNode(t.root); err != nil {
		return err
	}
	if n := len(t.InOrder()); n != t.size {
		return fmt.Errorf("size %d does not match %d reachable keys", t.size, n)
	}
	return nil
}

func verifyNode[K cmp.Ordered](n *RBNode[K]) (int, error) {
	if n == nil {
		return 1, nil
	}
	for _, c := range []*RBNode[K]{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.parent != n {
			return 0, fmt.Errorf("node %v does not point back to parent %v", c.key, n.key)
		}
		if n.color == Red && c.color == Red {
			return 0, fmt.Errorf("red node %v has red child %v", n.key, c.key)
		}
	}
	lh, err := verifyNode(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := verifyNode(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("node %v has black heights %d and %d", n.key, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}
