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
	"fmt"

	"github.com/cybrota/arbor/ordered"
)

// IsValid reports whether every node's subtrees differ in height by at most one.
func (tree *Tree[K]) IsValid() bool {
	_, ok := balancedHeight(tree.root)
	return ok
}

// balancedHeight recomputes heights rather than trusting the stored ones.
func balancedHeight[K cmp.Ordered](node *Node[K]) (int, bool) {
	if node == nil {
		return 0, true
	}
	lh, ok := balancedHeight(node.left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(node.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// Verify checks key order, stored heights and balance, and describes the
// first violation found.
func (tree *Tree[K]) Verify() error {
	if err := ordered.CheckOrder(tree.rootNode()); err != nil {
		return err
	}
	if _, err := verifyNode(tree.root); err != nil {
		return err
	}
	if n := len(tree.InOrder()); n != tree.size {
		return fmt.Errorf("size %d does not match %d reachable keys", tree.size, n)
	}
	return nil
}

func verifyNode[K cmp.Ordered](node *Node[K]) (int, error) {
	if node == nil {
		return 0, nil
	}
	lh, err := verifyNode(node.left)
	if err != nil {
		return 0, err
	}
	rh, err := verifyNode(node.right)
	if err != nil {
		return 0, err
	}
	h := max(lh, rh) + 1
	if node.height != h {
		return 0, fmt.Errorf("node %v stores height %d, actual %d", node.key, node.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("node %v has balance factor %d", node.key, bf)
	}
	return h, nil
}
