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

package llrb

import (
	"cmp"
	"fmt"

	"github.com/cybrota/arbor/ordered"
)

// IsValid reports whether every path from the root to nil crosses the same
// number of black nodes.
func (t *Tree[K]) IsValid() bool {
	return blackHeight(t.root) != -1
}

func blackHeight[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 1
	}
	lh, rh := blackHeight(n.left), blackHeight(n.right)
	if lh == -1 || rh == -1 || lh != rh {
		return -1
	}
	if n.color == Black {
		return lh + 1
	}
	return lh
}

// Verify also checks that red links lean left.
func (t *Tree[K]) Verify() error {
	if err := ordered.CheckOrder(t.rootNode()); err != nil {
		return err
	}
	if isRed(t.root) {
		return fmt.Errorf("root %v is red", t.root.key)
	}
	if _, err := verifyNode(t.root); err != nil {
		return err
	}
	if n := len(t.InOrder()); n != t.size {
		return fmt.Errorf("size %d does not match %d reachable keys", t.size, n)
	}
	return nil
}

func verifyNode[K cmp.Ordered](n *Node[K]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if isRed(n.right) {
		return 0, fmt.Errorf("node %v has a red right child", n.key)
	}
	if isRed(n) && isRed(n.left) {
		return 0, fmt.Errorf("red node %v has red child %v", n.key, n.left.key)
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
